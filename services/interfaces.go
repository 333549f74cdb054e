package services

import (
	"github.com/gcbaptista/go-fuzzy-bench/model"
)

// ScoreHit is a single ranked candidate in a scoring response.
type ScoreHit struct {
	Rank   int     `json:"rank"`   // 1-based position in the ranked hits
	Score  float64 `json:"score"`  // Similarity score in 0-100
	Symbol string  `json:"symbol"` // Original-case instrument symbol
	Name   string  `json:"name"`   // Original-case instrument name
}

// ScoreResult represents the response to a single scoring request,
// including the ranked hits and the total number of matching candidates.
type ScoreResult struct {
	Hits       []ScoreHit `json:"hits"`
	MatchCount int        `json:"match_count"` // Candidates scoring above zero, including those beyond the hits
	Took       int64      `json:"took"`        // milliseconds
	QueryId    string     `json:"query_id"`    // unique UUID for this scoring request
}

// ScoreQuery represents a single scoring request against a corpus.
type ScoreQuery struct {
	Text   string `json:"text"`
	Field  string `json:"field"`            // symbol, name or isin; unknown fields fall back to name
	Scorer string `json:"scorer,omitempty"` // Optional: override the server default scorer
	TopK   int    `json:"top_k,omitempty"`  // Optional: bound the ranked hits (default 10)
}

// BenchmarkRequest configures an asynchronous benchmark run over a corpus.
type BenchmarkRequest struct {
	Queries    []model.Query `json:"queries"`
	Scorer     string        `json:"scorer,omitempty"`
	Iterations int           `json:"iterations,omitempty"`
	Workers    int           `json:"workers,omitempty"`
}

// CorpusManager manages the lifecycle of named corpora.
type CorpusManager interface {
	CreateCorpus(name string, instruments []model.Instrument) error
	DeleteCorpus(name string) error
	ListCorpora() []string
	CorpusSize(name string) (int, error)
	Score(corpusName string, query ScoreQuery) (ScoreResult, error)
}

// BenchmarkRunner starts background benchmark runs and exposes their
// finished reports.
type BenchmarkRunner interface {
	StartBenchmark(corpusName string, req BenchmarkRequest) (string, error) // Returns job ID
	GetReport(reportID string) (*model.BenchmarkReport, error)
	ListReports() []*model.BenchmarkReport
}

// JobManager defines operations for managing background jobs
type JobManager interface {
	GetJob(jobID string) (*model.Job, error)
	ListJobs(corpusName string, status *model.JobStatus) []*model.Job
}

// CorpusService combines every capability the HTTP layer needs.
type CorpusService interface {
	CorpusManager
	BenchmarkRunner
	JobManager
}
