package report

import (
	"sort"

	"github.com/gcbaptista/go-fuzzy-bench/internal/bench"
	"github.com/gcbaptista/go-fuzzy-bench/model"
)

// Build aggregates a benchmark run into a BenchmarkReport. The per-query
// detail is sorted by median duration descending (ties keep query input
// order); the category rollup follows the given preferred order, skipping
// categories with no member queries. Categories outside the preferred list
// never appear in the rollup even when queries carry them.
func Build(queries []model.Query, corpusSize int, scorer string, timing *bench.Timing, categories []string) *model.BenchmarkReport {
	iterations := len(timing.IterationTotalMs)

	minTotal, maxTotal := MinMax(timing.IterationTotalMs)
	medianTotal := Median(timing.IterationTotalMs)

	// Millions of candidate comparisons per second at the median total.
	throughput := 0.0
	if medianTotal > 0 {
		totalScored := float64(corpusSize) * float64(len(queries))
		throughput = totalScored / (medianTotal / 1000.0) / 1e6
	}

	// Per-query stats in input order; the category rollup reads these
	// before the detail view is resorted.
	stats := make([]model.QueryStat, len(queries))
	for q, query := range queries {
		samples := timing.QueryMs[q]
		min, _ := MinMax(samples)
		stats[q] = model.QueryStat{
			Text:       query.Text,
			Field:      query.Field,
			Category:   query.Category,
			MedianMs:   Median(samples),
			MinMs:      min,
			MatchCount: timing.MatchCounts[q],
		}
	}

	summaries := make([]model.CategorySummary, 0, len(categories))
	for _, cat := range categories {
		summary := model.CategorySummary{Category: cat}
		for _, s := range stats {
			if s.Category != cat {
				continue
			}
			summary.QueryCount++
			summary.MedianMs += s.MedianMs
			summary.MinMs += s.MinMs
			summary.MatchCount += s.MatchCount
		}
		if summary.QueryCount == 0 {
			continue
		}
		summaries = append(summaries, summary)
	}

	detail := make([]model.QueryStat, len(stats))
	copy(detail, stats)
	sort.SliceStable(detail, func(i, j int) bool {
		return detail[i].MedianMs > detail[j].MedianMs
	})

	return &model.BenchmarkReport{
		CorpusSize:    corpusSize,
		QueryCount:    len(queries),
		Iterations:    iterations,
		Scorer:        scorer,
		MinTotalMs:    minTotal,
		MedianTotalMs: medianTotal,
		MaxTotalMs:    maxTotal,
		ThroughputM:   throughput,
		Categories:    summaries,
		Queries:       detail,
	}
}
