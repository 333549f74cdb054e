package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gcbaptista/go-fuzzy-bench/config"
	"github.com/gcbaptista/go-fuzzy-bench/internal/bench"
	"github.com/gcbaptista/go-fuzzy-bench/internal/corpus"
	"github.com/gcbaptista/go-fuzzy-bench/internal/report"
	"github.com/gcbaptista/go-fuzzy-bench/internal/scorer"
	"github.com/gcbaptista/go-fuzzy-bench/internal/scoring"
	"github.com/gcbaptista/go-fuzzy-bench/store"
)

func main() {
	// Define command-line flags
	var (
		help        = flag.Bool("help", false, "Show help message")
		version     = flag.Bool("version", false, "Show version information")
		tsvPath     = flag.String("tsv", config.DefaultCorpusPath, "Path to the instrument corpus TSV")
		queriesPath = flag.String("queries", config.DefaultQueriesPath, "Path to the queries TSV")
		scorerName  = flag.String("scorer", config.DefaultScorer, "Similarity scorer: wratio, partial_ratio or jaro_winkler")
		iterations  = flag.Int("iterations", config.DefaultIterations, "Number of timed iterations")
		workers     = flag.Int("workers", config.DefaultWorkers, "Number of parallel scoring workers")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("Fuzzy Bench - Exhaustive fuzzy matching benchmark over instrument corpora\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                                # Benchmark with default corpus and queries\n", os.Args[0])
		fmt.Printf("  %s --scorer partial_ratio         # Use the partial ratio scorer\n", os.Args[0])
		fmt.Printf("  %s --iterations 5 --workers 4     # Five iterations, four scoring workers\n", os.Args[0])
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("Fuzzy Bench v1.0.0\n")
		fmt.Printf("Exhaustive scoring benchmark with top-K selection and per-category rollups\n")
		return
	}

	settings := config.BenchmarkSettings{
		CorpusPath:  *tsvPath,
		QueriesPath: *queriesPath,
		Scorer:      *scorerName,
		Iterations:  *iterations,
		TopK:        config.TopKBenchmark,
		Workers:     *workers,
	}
	settings.ApplyDefaults()
	if conflicts := settings.Validate(); len(conflicts) > 0 {
		for _, conflict := range conflicts {
			fmt.Fprintf(os.Stderr, "Error: %s\n", conflict)
		}
		os.Exit(1)
	}

	// Queries load first so a bad queries path fails before the corpus scan.
	queries, err := corpus.LoadQueries(settings.QueriesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open queries file %s\n", settings.QueriesPath)
		os.Exit(1)
	}

	fmt.Printf("Loading corpus from %s...", settings.CorpusPath)
	instruments, err := corpus.LoadInstruments(settings.CorpusPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, " FAILED\nError: cannot open %s\n", settings.CorpusPath)
		os.Exit(1)
	}
	fmt.Printf(" done\n")
	fmt.Printf("Loaded %d instruments\n", len(instruments))

	corpusStore := store.NewCorpusStore(instruments)

	builder, displayName := scorer.ForOrDefault(settings.Scorer)
	fmt.Printf("Running %d queries (scorer: %s)\n\n", len(queries), displayName)

	svc, err := scoring.NewService(corpusStore, builder, settings.TopK)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runner, err := bench.NewRunner(svc, queries, bench.Options{
		Iterations: settings.Iterations,
		Workers:    settings.Workers,
		OnWarmup: func() {
			fmt.Printf("Warmup complete\n")
			fmt.Printf("\n=== Benchmark: %s scoring %d queries x %d candidates ===\n\n",
				displayName, len(queries), corpusStore.Len())
		},
		OnIteration: func(iteration int, totalMs float64) {
			fmt.Printf("Iteration %d: %.1fms total\n", iteration, totalMs)
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	timing, err := runner.Run(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	benchReport := report.Build(queries, corpusStore.Len(), displayName, timing, settings.Categories)
	if err := report.WriteBenchmark(os.Stdout, benchReport); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to write report: %v\n", err)
		os.Exit(1)
	}
}
