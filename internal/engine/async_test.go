package engine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/gcbaptista/go-fuzzy-bench/internal/errors"
	"github.com/gcbaptista/go-fuzzy-bench/model"
	"github.com/gcbaptista/go-fuzzy-bench/services"
)

func benchmarkQueries() []model.Query {
	return []model.Query{
		{Text: "AAPL", Field: "symbol", Category: "exact_symbol"},
		{Text: "microsoft", Field: "name", Category: "prefix"},
		{Text: "alphabt inc", Field: "name", Category: "typo"},
	}
}

func TestEngine_StartBenchmarkProducesReport(t *testing.T) {
	dataDir := t.TempDir()

	eng := NewEngine(dataDir)
	defer eng.Stop()

	if err := eng.CreateCorpus("instruments", testInstruments()); err != nil {
		t.Fatalf("Failed to create corpus: %v", err)
	}

	jobID, err := eng.StartBenchmark("instruments", services.BenchmarkRequest{
		Queries:    benchmarkQueries(),
		Scorer:     "wratio",
		Iterations: 2,
		Workers:    2,
	})
	if err != nil {
		t.Fatalf("Failed to start benchmark: %v", err)
	}
	if jobID == "" {
		t.Fatal("Expected non-empty job ID")
	}

	job, err := eng.GetJob(jobID)
	if err != nil {
		t.Fatalf("Failed to get job: %v", err)
	}
	if job.Type != model.JobTypeBenchmark {
		t.Errorf("Expected job type %s, got %s", model.JobTypeBenchmark, job.Type)
	}
	if job.CorpusName != "instruments" {
		t.Errorf("Expected corpus name 'instruments', got %s", job.CorpusName)
	}

	// Wait for job completion (with timeout)
	timeout := time.After(5 * time.Second)
	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()

	var finalJob *model.Job
	for {
		select {
		case <-timeout:
			t.Fatal("Benchmark job did not complete within timeout")
		case <-ticker.C:
			finalJob, err = eng.GetJob(jobID)
			if err != nil {
				t.Fatalf("Failed to get job status: %v", err)
			}

			if finalJob.Status == model.JobStatusCompleted {
				goto jobCompleted
			}
			if finalJob.Status == model.JobStatusFailed {
				t.Fatalf("Benchmark job failed: %s", finalJob.Error)
			}
		}
	}

jobCompleted:
	if finalJob.CompletedAt == nil {
		t.Error("Expected completion timestamp to be set")
	}
	if finalJob.ReportID == "" {
		t.Fatal("Expected completed job to carry a report ID")
	}

	report, err := eng.GetReport(finalJob.ReportID)
	if err != nil {
		t.Fatalf("Failed to get report: %v", err)
	}
	if report.CorpusSize != 3 {
		t.Errorf("Expected corpus size 3, got %d", report.CorpusSize)
	}
	if report.QueryCount != 3 {
		t.Errorf("Expected query count 3, got %d", report.QueryCount)
	}
	if report.Iterations != 2 {
		t.Errorf("Expected 2 iterations, got %d", report.Iterations)
	}
	if report.Scorer != "wratio" {
		t.Errorf("Expected scorer wratio, got %s", report.Scorer)
	}
	if len(report.Queries) != 3 {
		t.Fatalf("Expected 3 per-query stats, got %d", len(report.Queries))
	}
	for _, q := range report.Queries {
		if q.Text == "AAPL" && q.MatchCount < 1 {
			t.Errorf("Expected the exact-symbol query to match, got %d", q.MatchCount)
		}
	}

	if reports := eng.ListReports(); len(reports) != 1 {
		t.Errorf("Expected 1 listed report, got %d", len(reports))
	}

	// Reports survive an engine restart
	eng.Stop()
	reloaded := NewEngine(dataDir)
	defer reloaded.Stop()

	persisted, err := reloaded.GetReport(finalJob.ReportID)
	if err != nil {
		t.Fatalf("Expected report to survive restart: %v", err)
	}
	if persisted.QueryCount != report.QueryCount {
		t.Errorf("Expected persisted query count %d, got %d", report.QueryCount, persisted.QueryCount)
	}
}

func TestEngine_LoadCorpusAsync(t *testing.T) {
	eng := NewEngine(t.TempDir())
	defer eng.Stop()

	tsvPath := filepath.Join(t.TempDir(), "instruments.tsv")
	tsv := "symbol\tname\tisin\n" +
		"AAPL\tApple Inc\tUS0378331005\n" +
		"MSFT\tMicrosoft Corp\tUS5949181045\n"
	if err := os.WriteFile(tsvPath, []byte(tsv), 0o600); err != nil {
		t.Fatalf("Failed to write TSV fixture: %v", err)
	}

	jobID, err := eng.LoadCorpusAsync("instruments", tsvPath)
	if err != nil {
		t.Fatalf("Failed to start corpus load: %v", err)
	}

	waitForJobStatus(t, eng, jobID, model.JobStatusCompleted)

	size, err := eng.CorpusSize("instruments")
	if err != nil {
		t.Fatalf("Expected loaded corpus: %v", err)
	}
	if size != 2 {
		t.Errorf("Expected 2 instruments, got %d", size)
	}

	// A second load under the same name is rejected up front
	_, err = eng.LoadCorpusAsync("instruments", tsvPath)
	if !errors.Is(err, apperrors.ErrCorpusAlreadyExists) {
		t.Errorf("Expected corpus-already-exists error, got %v", err)
	}
}

func TestEngine_LoadCorpusAsyncWithBadPath(t *testing.T) {
	eng := NewEngine(t.TempDir())
	defer eng.Stop()

	jobID, err := eng.LoadCorpusAsync("instruments", "/nonexistent/instruments.tsv")
	if err != nil {
		t.Fatalf("Failed to start corpus load: %v", err)
	}

	job := waitForJobStatus(t, eng, jobID, model.JobStatusFailed)
	if job.Error == "" {
		t.Error("Expected failed job to carry an error message")
	}
	if _, err := eng.CorpusSize("instruments"); !errors.Is(err, apperrors.ErrCorpusNotFound) {
		t.Errorf("Expected no corpus to be registered, got %v", err)
	}
}

// waitForJobStatus polls until the job reaches the wanted terminal status.
func waitForJobStatus(t *testing.T, eng *Engine, jobID string, want model.JobStatus) *model.Job {
	t.Helper()

	timeout := time.After(5 * time.Second)
	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			t.Fatalf("Job %s did not reach status %s within timeout", jobID, want)
		case <-ticker.C:
			job, err := eng.GetJob(jobID)
			if err != nil {
				t.Fatalf("Failed to get job status: %v", err)
			}
			if job.Status == want {
				return job
			}
			if job.Status == model.JobStatusFailed && want != model.JobStatusFailed {
				t.Fatalf("Job %s failed: %s", jobID, job.Error)
			}
		}
	}
}

func TestEngine_StartBenchmarkWithNonExistentCorpus(t *testing.T) {
	eng := NewEngine(t.TempDir())
	defer eng.Stop()

	_, err := eng.StartBenchmark("non-existent", services.BenchmarkRequest{Queries: benchmarkQueries()})
	if !errors.Is(err, apperrors.ErrCorpusNotFound) {
		t.Errorf("Expected corpus-not-found error, got %v", err)
	}
}

func TestEngine_StartBenchmarkValidation(t *testing.T) {
	eng := NewEngine(t.TempDir())
	defer eng.Stop()

	if err := eng.CreateCorpus("instruments", testInstruments()); err != nil {
		t.Fatalf("Failed to create corpus: %v", err)
	}

	_, err := eng.StartBenchmark("instruments", services.BenchmarkRequest{})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("Expected validation error for empty query set, got %v", err)
	}

	_, err = eng.StartBenchmark("instruments", services.BenchmarkRequest{
		Queries: benchmarkQueries(),
		Scorer:  "soundex",
	})
	if !errors.Is(err, apperrors.ErrUnknownScorer) {
		t.Errorf("Expected unknown-scorer error, got %v", err)
	}

	_, err = eng.StartBenchmark("instruments", services.BenchmarkRequest{
		Queries:    benchmarkQueries(),
		Iterations: -1,
	})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("Expected validation error for negative iterations, got %v", err)
	}
}

func TestEngine_ListJobsForCorpus(t *testing.T) {
	eng := NewEngine(t.TempDir())
	defer eng.Stop()

	if err := eng.CreateCorpus("corpus1", testInstruments()); err != nil {
		t.Fatalf("Failed to create corpus1: %v", err)
	}
	if err := eng.CreateCorpus("corpus2", testInstruments()); err != nil {
		t.Fatalf("Failed to create corpus2: %v", err)
	}

	jobID1, err := eng.StartBenchmark("corpus1", services.BenchmarkRequest{Queries: benchmarkQueries(), Iterations: 1})
	if err != nil {
		t.Fatalf("Failed to start benchmark for corpus1: %v", err)
	}
	jobID2, err := eng.StartBenchmark("corpus2", services.BenchmarkRequest{Queries: benchmarkQueries(), Iterations: 1})
	if err != nil {
		t.Fatalf("Failed to start benchmark for corpus2: %v", err)
	}

	jobs1 := eng.ListJobs("corpus1", nil)
	if len(jobs1) != 1 {
		t.Errorf("Expected 1 job for corpus1, got %d", len(jobs1))
	}
	if len(jobs1) > 0 && jobs1[0].ID != jobID1 {
		t.Errorf("Expected job ID %s for corpus1, got %s", jobID1, jobs1[0].ID)
	}

	jobs2 := eng.ListJobs("corpus2", nil)
	if len(jobs2) != 1 {
		t.Errorf("Expected 1 job for corpus2, got %d", len(jobs2))
	}
	if len(jobs2) > 0 && jobs2[0].ID != jobID2 {
		t.Errorf("Expected job ID %s for corpus2, got %s", jobID2, jobs2[0].ID)
	}

	if jobs3 := eng.ListJobs("non-existent", nil); len(jobs3) != 0 {
		t.Errorf("Expected 0 jobs for non-existent corpus, got %d", len(jobs3))
	}
}
