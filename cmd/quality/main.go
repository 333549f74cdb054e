package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gcbaptista/go-fuzzy-bench/config"
	"github.com/gcbaptista/go-fuzzy-bench/internal/corpus"
	"github.com/gcbaptista/go-fuzzy-bench/internal/quality"
	"github.com/gcbaptista/go-fuzzy-bench/internal/report"
	"github.com/gcbaptista/go-fuzzy-bench/internal/scorer"
	"github.com/gcbaptista/go-fuzzy-bench/internal/scoring"
	"github.com/gcbaptista/go-fuzzy-bench/model"
	"github.com/gcbaptista/go-fuzzy-bench/store"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <tsv-path> [--scorer wratio|partial_ratio|jaro_winkler] [--queries <path>]\n", os.Args[0])
}

func main() {
	// Define command-line flags
	var (
		help        = flag.Bool("help", false, "Show help message")
		version     = flag.Bool("version", false, "Show version information")
		scorerName  = flag.String("scorer", config.DefaultScorer, "Similarity scorer: wratio, partial_ratio or jaro_winkler")
		queriesPath = flag.String("queries", "", "Evaluate ground truth from this queries TSV instead of reading stdin")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("Fuzzy Bench Quality - Ranked top-10 inspection and ground truth evaluation\n\n")
		fmt.Printf("Usage: %s <tsv-path> [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nReads tab separated \"query<TAB>field\" pairs from stdin and prints the\n")
		fmt.Printf("top 10 hits per query, unless --queries switches to ground truth mode.\n")
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  printf 'apple\\tname\\n' | %s instruments.tsv\n", os.Args[0])
		fmt.Printf("  %s instruments.tsv --scorer partial_ratio\n", os.Args[0])
		fmt.Printf("  %s instruments.tsv --queries queries.tsv\n", os.Args[0])
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("Fuzzy Bench Quality v1.0.0\n")
		fmt.Printf("Stable top-10 ranking output for corpus quality comparisons\n")
		return
	}

	args := flag.Args()
	if len(args) < 1 {
		usage()
		os.Exit(1)
	}
	tsvPath := args[0]
	// Flags may trail the corpus path.
	if len(args) > 1 {
		_ = flag.CommandLine.Parse(args[1:])
	}

	instruments, err := corpus.LoadInstruments(tsvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open %s\n", tsvPath)
		os.Exit(1)
	}
	corpusStore := store.NewCorpusStore(instruments)

	builder, displayName := scorer.ForOrDefault(*scorerName)

	if *queriesPath != "" {
		runGroundTruth(corpusStore, builder, displayName, *queriesPath)
		return
	}

	svc, err := scoring.NewService(corpusStore, builder, config.TopKQuality)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err = corpus.ForEachPair(os.Stdin, func(text, field string) error {
		result := svc.ScoreQuery(model.Query{Text: text, Field: field})
		return report.WriteQualityHits(os.Stdout, corpusStore, text, field, result.Top)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runGroundTruth(corpusStore *store.CorpusStore, builder scorer.Builder, displayName, queriesPath string) {
	queries, err := corpus.LoadQueries(queriesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open queries file %s\n", queriesPath)
		os.Exit(1)
	}

	evaluator, err := quality.NewEvaluator(corpusStore, builder)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	evaluation := evaluator.Evaluate(queries)
	if evaluation.Evaluated == 0 {
		fmt.Printf("No queries carry an expected name; nothing to evaluate.\n")
		return
	}
	if err := quality.WriteEvaluation(os.Stdout, displayName, evaluation); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to write evaluation: %v\n", err)
		os.Exit(1)
	}
}
