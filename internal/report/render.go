package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/gcbaptista/go-fuzzy-bench/model"
	"github.com/gcbaptista/go-fuzzy-bench/store"
)

// queryDisplayWidth caps query text in the detail table; longer texts are
// cut to 27 bytes plus an ellipsis.
const queryDisplayWidth = 30

// errWriter folds the repeated Fprintf error checks into one sticky error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// WriteBenchmark renders the results section of a benchmark report: run
// totals, throughput, the per-category rollup table and the per-query
// detail table. Column widths are fixed so downstream tooling can parse
// the output.
func WriteBenchmark(w io.Writer, r *model.BenchmarkReport) error {
	ew := &errWriter{w: w}

	ew.printf("\n=== Results ===\n\n")
	ew.printf("Total time for %d queries (min/median/max): %.1fms / %.1fms / %.1fms\n",
		r.QueryCount, r.MinTotalMs, r.MedianTotalMs, r.MaxTotalMs)
	ew.printf("Throughput (median): %.0fM candidates/sec\n", r.ThroughputM)

	perQueryAvg := 0.0
	if r.QueryCount > 0 {
		perQueryAvg = r.MedianTotalMs / float64(r.QueryCount)
	}
	ew.printf("Per-query average (median): %.2fms\n\n", perQueryAvg)

	ew.printf("%-22s %8s %8s %8s %8s\n", "Category", "Queries", "Med(ms)", "Min(ms)", "Matches")
	ew.printf("%s\n", strings.Repeat("-", 60))
	for _, c := range r.Categories {
		ew.printf("%-22s %8d %8.2f %8.2f %8d\n",
			c.Category, c.QueryCount, c.MedianMs, c.MinMs, c.MatchCount)
	}

	ew.printf("\n=== Per-Query Detail (sorted by median time, descending) ===\n\n")
	ew.printf("%-32s %-8s %-16s %8s %8s %8s\n",
		"Query", "Field", "Category", "Med(ms)", "Min(ms)", "Matches")
	ew.printf("%s\n", strings.Repeat("-", 96))
	for _, q := range r.Queries {
		ew.printf("%-32s %-8s %-16s %8.2f %8.2f %8d\n",
			truncate(q.Text, queryDisplayWidth), q.Field, q.Category, q.MedianMs, q.MinMs, q.MatchCount)
	}

	return ew.err
}

// WriteQualityHits writes one query's ranked hits as tab separated lines:
// query text, field, 1-based rank, score to four decimals, then the
// candidate's original-case symbol and name.
func WriteQualityHits(w io.Writer, corpus *store.CorpusStore, queryText, field string, top []model.ScoredCandidate) error {
	ew := &errWriter{w: w}
	for rank, c := range top {
		inst := corpus.Instrument(c.Index)
		ew.printf("%s\t%s\t%d\t%.4f\t%s\t%s\n",
			queryText, field, rank+1, c.Score, inst.Symbol, inst.Name)
	}
	return ew.err
}

// truncate shortens s to at most width bytes, marking the cut with "...".
func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}
