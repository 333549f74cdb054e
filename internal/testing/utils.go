// Package testing provides utilities and helpers for testing the benchmark engine.
package testing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-fuzzy-bench/internal/engine"
	"github.com/gcbaptista/go-fuzzy-bench/model"
	"github.com/gcbaptista/go-fuzzy-bench/services"
)

// CreateTestEngine creates a new engine instance for testing with automatic cleanup
func CreateTestEngine(t *testing.T) *engine.Engine {
	eng := engine.NewEngine(t.TempDir())
	t.Cleanup(eng.Stop)
	return eng
}

// TestInstruments returns a small instrument corpus shared across tests
func TestInstruments() []model.Instrument {
	return []model.Instrument{
		{Symbol: "AAPL", Name: "Apple Inc", ISIN: "US0378331005"},
		{Symbol: "MSFT", Name: "Microsoft Corp", ISIN: "US5949181045"},
		{Symbol: "GOOG", Name: "Alphabet Inc", ISIN: "US02079K1079"},
		{Symbol: "AMZN", Name: "Amazon.com Inc", ISIN: "US0231351067"},
		{Symbol: "TSLA", Name: "Tesla Inc", ISIN: "US88160R1014"},
	}
}

// TestQueries returns benchmark queries covering the standard categories
// against the TestInstruments corpus
func TestQueries() []model.Query {
	return []model.Query{
		{Text: "AAPL", Field: "symbol", Category: "exact_symbol", ExpectedName: "Apple Inc"},
		{Text: "microsoft corp", Field: "name", Category: "exact_name", ExpectedName: "Microsoft Corp"},
		{Text: "alpha", Field: "name", Category: "prefix", ExpectedName: "Alphabet Inc"},
		{Text: "amazn", Field: "name", Category: "typo", ExpectedName: "Amazon.com Inc"},
	}
}

// CreateTestCorpus registers the shared test instruments under corpusName
func CreateTestCorpus(t *testing.T, eng *engine.Engine, corpusName string) []model.Instrument {
	instruments := TestInstruments()

	err := eng.CreateCorpus(corpusName, instruments)
	require.NoError(t, err, "Failed to create test corpus")

	return instruments
}

// WriteInstrumentTSV writes instruments to a temp corpus TSV (with header
// line) and returns its path
func WriteInstrumentTSV(t *testing.T, instruments []model.Instrument) string {
	var sb strings.Builder
	sb.WriteString("symbol\tname\tisin\n")
	for _, inst := range instruments {
		sb.WriteString(inst.Symbol + "\t" + inst.Name + "\t" + inst.ISIN + "\n")
	}

	path := filepath.Join(t.TempDir(), "instruments.tsv")
	err := os.WriteFile(path, []byte(sb.String()), 0o600)
	require.NoError(t, err, "Failed to write instrument TSV")

	return path
}

// WriteQueryTSV writes queries to a temp query TSV (no header line) and
// returns its path
func WriteQueryTSV(t *testing.T, queries []model.Query) string {
	var sb strings.Builder
	for _, q := range queries {
		sb.WriteString(q.Text + "\t" + q.Field + "\t" + q.Category)
		if q.ExpectedName != "" {
			sb.WriteString("\t" + q.ExpectedName)
		}
		sb.WriteString("\n")
	}

	path := filepath.Join(t.TempDir(), "queries.tsv")
	err := os.WriteFile(path, []byte(sb.String()), 0o600)
	require.NoError(t, err, "Failed to write query TSV")

	return path
}

// JobPollingOptions configures job polling behavior
type JobPollingOptions struct {
	Timeout      time.Duration
	PollInterval time.Duration
	LogProgress  bool
}

// DefaultJobPollingOptions returns sensible defaults for job polling
func DefaultJobPollingOptions() JobPollingOptions {
	return JobPollingOptions{
		Timeout:      10 * time.Second,
		PollInterval: 100 * time.Millisecond,
		LogProgress:  true,
	}
}

// WaitForJobCompletion polls a job until it completes or times out
func WaitForJobCompletion(t *testing.T, jobManager services.JobManager, jobID string, opts JobPollingOptions) *model.Job {
	timeout := time.After(opts.Timeout)
	ticker := time.NewTicker(opts.PollInterval)
	defer ticker.Stop()

	var job *model.Job
	var err error

	for {
		select {
		case <-timeout:
			t.Fatalf("Job %s did not complete within %v timeout", jobID, opts.Timeout)
		case <-ticker.C:
			job, err = jobManager.GetJob(jobID)
			require.NoError(t, err, "Failed to get job status")

			switch job.Status {
			case model.JobStatusCompleted:
				if opts.LogProgress {
					t.Logf("Job %s completed successfully in %v", jobID, job.CompletedAt.Sub(job.CreatedAt))
				}
				return job
			case model.JobStatusFailed:
				t.Fatalf("Job %s failed: %s", jobID, job.Error)
			case model.JobStatusRunning:
				if opts.LogProgress && job.Progress != nil {
					t.Logf("Job %s progress: %d/%d - %s",
						jobID,
						job.Progress.Current,
						job.Progress.Total,
						job.Progress.Message)
				}
			}
		}
	}
}

// AssertJobCompleted verifies that a job completed successfully
func AssertJobCompleted(t *testing.T, job *model.Job, expectedType model.JobType, expectedCorpus string) {
	assert.Equal(t, model.JobStatusCompleted, job.Status, "Job should be completed")
	assert.Equal(t, expectedType, job.Type, "Job type should match")
	assert.Equal(t, expectedCorpus, job.CorpusName, "Job corpus name should match")
	assert.NotNil(t, job.CompletedAt, "Job should have completion timestamp")
	assert.Empty(t, job.Error, "Job should not have error")
}
