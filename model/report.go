package model

import (
	"time"
)

// QueryStat holds the per-query statistics derived from the timing matrix:
// the query's own median and minimum duration across iterations and its
// canonical match count (recorded on the first timed iteration).
type QueryStat struct {
	Text       string  `json:"text"`
	Field      string  `json:"field"`
	Category   string  `json:"category"`
	MedianMs   float64 `json:"median_ms"`
	MinMs      float64 `json:"min_ms"`
	MatchCount int     `json:"match_count"`
}

// CategorySummary aggregates the queries of one category: the sums of their
// per-query medians, minimums and match counts.
type CategorySummary struct {
	Category   string  `json:"category"`
	QueryCount int     `json:"query_count"`
	MedianMs   float64 `json:"median_ms"`
	MinMs      float64 `json:"min_ms"`
	MatchCount int     `json:"match_count"`
}

// BenchmarkReport is the complete statistical output of one benchmark run.
// Categories holds only categories from the configured display list, in that
// order; Queries holds every query sorted by descending median duration.
type BenchmarkReport struct {
	ID            string    `json:"id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	CorpusSize    int       `json:"corpus_size"`
	QueryCount    int       `json:"query_count"`
	Iterations    int       `json:"iterations"`
	Scorer        string    `json:"scorer"`
	MinTotalMs    float64   `json:"min_total_ms"`
	MedianTotalMs float64   `json:"median_total_ms"`
	MaxTotalMs    float64   `json:"max_total_ms"`

	// ThroughputM is the median throughput in millions of candidates per
	// second: corpus size x query count over the median total duration.
	ThroughputM float64 `json:"throughput_m_per_sec"`

	Categories []CategorySummary `json:"categories"`
	Queries    []QueryStat       `json:"queries"`
}
