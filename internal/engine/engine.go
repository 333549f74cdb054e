// Package engine wires named corpora, scorer backends, benchmark jobs, and
// gob persistence into a single orchestrator. Engine implements the
// services.CorpusService interface consumed by the HTTP layer.
package engine

import (
	"log"
	"sort"
	"sync"
	"time"

	"github.com/gcbaptista/go-fuzzy-bench/internal/errors"
	"github.com/gcbaptista/go-fuzzy-bench/internal/jobs"
	"github.com/gcbaptista/go-fuzzy-bench/internal/persistence"
	"github.com/gcbaptista/go-fuzzy-bench/model"
)

// maxConcurrentJobs bounds the benchmark runs executing at once; each run
// already saturates its own worker pool.
const maxConcurrentJobs = 2

// Engine manages multiple named corpora and the benchmark runs over them.
type Engine struct {
	mu      sync.RWMutex
	corpora map[string]*CorpusInstance

	reportsMu sync.RWMutex
	reports   map[string]*model.BenchmarkReport

	store      *persistence.Store
	jobManager *jobs.Manager
}

// NewEngine creates a new corpus engine rooted at dataDir and loads any
// previously persisted corpora and reports.
func NewEngine(dataDir string) *Engine {
	eng := &Engine{
		corpora:    make(map[string]*CorpusInstance),
		reports:    make(map[string]*model.BenchmarkReport),
		store:      persistence.NewStore(dataDir),
		jobManager: jobs.NewManager(maxConcurrentJobs),
	}
	eng.jobManager.Start()
	eng.loadFromDisk()
	return eng
}

func (e *Engine) loadFromDisk() {
	corpora, err := e.store.LoadCorpora()
	if err != nil {
		log.Printf("Warning: Failed to load corpora from disk: %v. No corpora loaded.", err)
	}
	for name, instruments := range corpora {
		instance, err := NewCorpusInstance(name, instruments)
		if err != nil {
			log.Printf("Warning: Skipping persisted corpus '%s': %v", name, err)
			continue
		}
		e.corpora[name] = instance
		log.Printf("Successfully loaded corpus '%s' (%d instruments)", name, instance.Size())
	}

	reports, err := e.store.LoadReports()
	if err != nil {
		log.Printf("Warning: Failed to load reports from disk: %v. No reports loaded.", err)
	}
	for _, report := range reports {
		e.reports[report.ID] = report
	}
	if len(reports) > 0 {
		log.Printf("Loaded %d persisted benchmark reports", len(reports))
	}
}

// Stop shuts down the background job manager. In-flight benchmark runs are
// allowed to finish.
func (e *Engine) Stop() {
	e.jobManager.Stop()
}

// GetJob retrieves a job by its ID.
func (e *Engine) GetJob(jobID string) (*model.Job, error) {
	return e.jobManager.GetJob(jobID)
}

// ListJobs returns all jobs for a corpus, optionally filtered by status.
func (e *Engine) ListJobs(corpusName string, status *model.JobStatus) []*model.Job {
	return e.jobManager.ListJobs(corpusName, status)
}

// GetJobMetrics returns a snapshot of job execution metrics.
func (e *Engine) GetJobMetrics() jobs.JobMetricsData {
	return e.jobManager.GetMetrics()
}

// GetJobSuccessRate returns the fraction of finished jobs that completed
// successfully.
func (e *Engine) GetJobSuccessRate() float64 {
	return e.jobManager.GetJobSuccessRate()
}

// GetCurrentWorkload returns the number of jobs currently running.
func (e *Engine) GetCurrentWorkload() int64 {
	return e.jobManager.GetCurrentWorkload()
}

// GetReport retrieves a finished benchmark report by its ID.
func (e *Engine) GetReport(reportID string) (*model.BenchmarkReport, error) {
	e.reportsMu.RLock()
	defer e.reportsMu.RUnlock()

	report, exists := e.reports[reportID]
	if !exists {
		return nil, errors.NewReportNotFoundError(reportID)
	}
	return report, nil
}

// ListReports returns all finished benchmark reports, newest first.
func (e *Engine) ListReports() []*model.BenchmarkReport {
	e.reportsMu.RLock()
	defer e.reportsMu.RUnlock()

	reports := make([]*model.BenchmarkReport, 0, len(e.reports))
	for _, report := range e.reports {
		reports = append(reports, report)
	}
	sort.Slice(reports, func(i, j int) bool {
		if !reports[i].CreatedAt.Equal(reports[j].CreatedAt) {
			return reports[i].CreatedAt.After(reports[j].CreatedAt)
		}
		return reports[i].ID < reports[j].ID
	})
	return reports
}

// storeReport records a finished report in memory and persists it to disk.
// A persistence failure is logged; the report stays servable from memory.
func (e *Engine) storeReport(report *model.BenchmarkReport) {
	report.CreatedAt = time.Now()

	e.reportsMu.Lock()
	e.reports[report.ID] = report
	e.reportsMu.Unlock()

	if err := e.store.SaveReport(report); err != nil {
		log.Printf("Warning: Failed to persist report %s: %v", report.ID, err)
	}
}
