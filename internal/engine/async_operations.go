package engine

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/gcbaptista/go-fuzzy-bench/config"
	"github.com/gcbaptista/go-fuzzy-bench/internal/bench"
	"github.com/gcbaptista/go-fuzzy-bench/internal/corpus"
	"github.com/gcbaptista/go-fuzzy-bench/internal/errors"
	"github.com/gcbaptista/go-fuzzy-bench/internal/report"
	"github.com/gcbaptista/go-fuzzy-bench/internal/scorer"
	"github.com/gcbaptista/go-fuzzy-bench/internal/scoring"
	"github.com/gcbaptista/go-fuzzy-bench/model"
	"github.com/gcbaptista/go-fuzzy-bench/services"
)

// LoadCorpusAsync reads an instrument TSV from a server-side path and
// registers it as a new corpus in the background. Returns the ID of the job
// tracking the load.
func (e *Engine) LoadCorpusAsync(name, path string) (string, error) {
	if name == "" {
		return "", errors.NewValidationError("name", "corpus name cannot be empty")
	}
	if path == "" {
		return "", errors.NewValidationError("path", "corpus path cannot be empty")
	}

	e.mu.RLock()
	if _, exists := e.corpora[name]; exists {
		e.mu.RUnlock()
		return "", errors.NewCorpusAlreadyExistsError(name)
	}
	e.mu.RUnlock()

	jobID := e.jobManager.CreateJob(model.JobTypeLoadCorpus, name, map[string]string{
		"operation": "load_corpus",
		"path":      path,
	})

	err := e.jobManager.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
		return e.executeLoadCorpusJob(ctx, name, path, jobID)
	})
	if err != nil {
		return "", fmt.Errorf("failed to start corpus load job: %w", err)
	}

	return jobID, nil
}

// executeLoadCorpusJob reads the TSV and registers the corpus.
func (e *Engine) executeLoadCorpusJob(_ context.Context, name, path, jobID string) error {
	e.jobManager.UpdateJobProgress(jobID, 0, 2, "Reading instrument TSV")

	instruments, err := corpus.LoadInstruments(path)
	if err != nil {
		return fmt.Errorf("failed to load instruments from %s: %w", path, err)
	}

	e.jobManager.UpdateJobProgress(jobID, 1, 2, fmt.Sprintf("Registering %d instruments", len(instruments)))

	if err := e.CreateCorpus(name, instruments); err != nil {
		return err
	}

	e.jobManager.UpdateJobProgress(jobID, 2, 2, "Corpus ready")
	return nil
}

// StartBenchmark launches an asynchronous benchmark run over a corpus and
// returns the ID of the job tracking it. The finished report is attached to
// the job and retrievable through GetReport.
func (e *Engine) StartBenchmark(corpusName string, req services.BenchmarkRequest) (string, error) {
	e.mu.RLock()
	if _, exists := e.corpora[corpusName]; !exists {
		e.mu.RUnlock()
		return "", errors.NewCorpusNotFoundError(corpusName)
	}
	e.mu.RUnlock()

	if len(req.Queries) == 0 {
		return "", errors.NewValidationError("queries", "benchmark needs at least one query")
	}

	scorerName := req.Scorer
	if scorerName == "" {
		scorerName = config.DefaultScorer
	}
	builder, _, err := scorer.For(scorerName)
	if err != nil {
		return "", err
	}

	iterations := req.Iterations
	if iterations == 0 {
		iterations = config.DefaultIterations
	}
	if iterations < 1 {
		return "", errors.NewValidationError("iterations", "must be at least 1")
	}
	workers := req.Workers
	if workers == 0 {
		workers = config.DefaultWorkers
	}

	jobID := e.jobManager.CreateJob(model.JobTypeBenchmark, corpusName, map[string]string{
		"operation":   "benchmark",
		"scorer":      scorerName,
		"query_count": fmt.Sprintf("%d", len(req.Queries)),
		"iterations":  fmt.Sprintf("%d", iterations),
	})

	err = e.jobManager.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
		return e.executeBenchmarkJob(ctx, corpusName, req.Queries, builder, scorerName, iterations, workers, jobID)
	})
	if err != nil {
		return "", fmt.Errorf("failed to start benchmark job: %w", err)
	}

	return jobID, nil
}

// executeBenchmarkJob runs the benchmark passes and stores the resulting
// report. Progress counts one warmup pass plus the timed iterations.
func (e *Engine) executeBenchmarkJob(ctx context.Context, corpusName string, queries []model.Query, builder scorer.Builder, scorerName string, iterations, workers int, jobID string) error {
	e.mu.RLock()
	instance, exists := e.corpora[corpusName]
	e.mu.RUnlock()

	if !exists {
		return errors.NewCorpusNotFoundError(corpusName)
	}

	service, err := scoring.NewService(instance.Corpus(), builder, config.TopKBenchmark)
	if err != nil {
		return fmt.Errorf("failed to create scoring service for corpus '%s': %w", corpusName, err)
	}

	totalSteps := iterations + 1
	e.jobManager.UpdateJobProgress(jobID, 0, totalSteps, "Starting warmup")

	runner, err := bench.NewRunner(service, queries, bench.Options{
		Iterations: iterations,
		Workers:    workers,
		OnWarmup: func() {
			e.jobManager.UpdateJobProgress(jobID, 1, totalSteps, "Warmup complete")
		},
		OnIteration: func(iteration int, totalMs float64) {
			e.jobManager.UpdateJobProgress(jobID, iteration+1, totalSteps,
				fmt.Sprintf("Iteration %d complete (%.1fms)", iteration, totalMs))
		},
	})
	if err != nil {
		return fmt.Errorf("failed to prepare benchmark runner: %w", err)
	}

	timing, err := runner.Run(ctx)
	if err != nil {
		return fmt.Errorf("benchmark run failed for corpus '%s': %w", corpusName, err)
	}

	benchReport := report.Build(queries, instance.Size(), scorerName, timing, config.DefaultCategories())
	benchReport.ID = uuid.New().String()
	e.storeReport(benchReport)
	e.jobManager.SetJobReport(jobID, benchReport.ID)

	log.Printf("Benchmark completed for corpus '%s': %d queries x %d iterations (report %s)",
		corpusName, len(queries), iterations, benchReport.ID)
	return nil
}
