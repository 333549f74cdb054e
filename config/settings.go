// Package config provides configuration structures for the benchmark tools.
// It defines run settings, documented default paths, and the preferred
// category display order used by report builders.
package config

import (
	"strings"
)

// Default input paths used when no flags are supplied. They mirror the
// repository layout the corpus exports were historically kept in.
const (
	DefaultCorpusPath  = "../../Resources/instruments-export.tsv"
	DefaultQueriesPath = "../../Resources/queries.tsv"
)

// Defaults for the run parameters.
const (
	DefaultScorer     = "wratio"
	DefaultIterations = 3
	DefaultWorkers    = 1

	// TopKBenchmark bounds the retained result set per query in benchmark
	// mode; TopKQuality is the quality-mode inspection depth.
	TopKBenchmark = 100
	TopKQuality   = 10
)

// DefaultCategories returns the preferred category display order for
// benchmark reports. Categories absent from a query set are skipped;
// categories outside this list are omitted from the rollup view (they still
// appear in per-query detail). Returned fresh so callers cannot mutate a
// shared list.
func DefaultCategories() []string {
	return []string{
		"exact_symbol",
		"exact_name",
		"exact_isin",
		"prefix",
		"typo",
		"substring",
		"multi_word",
		"symbol_spaces",
		"abbreviation",
	}
}

// BenchmarkSettings contains all configuration options for one benchmark
// run: input paths, the scorer backend, iteration count, the top-K bound,
// and the worker count for parallel-by-query scoring.
type BenchmarkSettings struct {
	CorpusPath  string   `json:"corpus_path"`
	QueriesPath string   `json:"queries_path"`
	Scorer      string   `json:"scorer"`
	Iterations  int      `json:"iterations"`
	TopK        int      `json:"top_k"`
	Workers     int      `json:"workers"`
	Categories  []string `json:"categories"`
}

// ApplyDefaults applies default values to unset benchmark settings
func (settings *BenchmarkSettings) ApplyDefaults() {
	if settings.CorpusPath == "" {
		settings.CorpusPath = DefaultCorpusPath
	}
	if settings.QueriesPath == "" {
		settings.QueriesPath = DefaultQueriesPath
	}
	if settings.Scorer == "" {
		settings.Scorer = DefaultScorer
	}
	if settings.Iterations == 0 {
		settings.Iterations = DefaultIterations
	}
	if settings.TopK == 0 {
		settings.TopK = TopKBenchmark
	}
	if settings.Workers == 0 {
		settings.Workers = DefaultWorkers
	}
	if settings.Categories == nil {
		settings.Categories = DefaultCategories()
	}
}

// Validate validates the settings for basic requirements and returns a list
// of conflicts. An empty list means the settings are usable.
func (settings *BenchmarkSettings) Validate() []string {
	var conflicts []string

	if strings.TrimSpace(settings.CorpusPath) == "" {
		conflicts = append(conflicts, "corpus_path cannot be empty or whitespace-only")
	}
	if settings.Iterations < 1 {
		conflicts = append(conflicts, "iterations must be at least 1")
	}
	if settings.TopK < 0 {
		conflicts = append(conflicts, "top_k cannot be negative")
	}
	if settings.Workers < 1 {
		conflicts = append(conflicts, "workers must be at least 1")
	}

	seen := make(map[string]bool)
	for _, cat := range settings.Categories {
		if seen[cat] {
			conflicts = append(conflicts, "Duplicate category '"+cat+"' found in categories")
		}
		seen[cat] = true
	}

	return conflicts
}
