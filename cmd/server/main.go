package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-fuzzy-bench/api"
	"github.com/gcbaptista/go-fuzzy-bench/internal/engine"
)

func main() {
	// Define command-line flags
	var (
		help    = flag.Bool("help", false, "Show help message")
		version = flag.Bool("version", false, "Show version information")
		port    = flag.String("port", "8080", "Port to run the server on")
		dataDir = flag.String("data-dir", "./bench_data", "Directory to store corpora and benchmark reports")
	)

	flag.Parse()

	// Handle help flag
	if *help {
		fmt.Printf("Fuzzy Bench Server - Fuzzy matching benchmarks over instrument corpora\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                          # Start server on default port 8080\n", os.Args[0])
		fmt.Printf("  %s --port 9000              # Start server on port 9000\n", os.Args[0])
		fmt.Printf("  %s --data-dir /tmp/bench    # Use custom data directory\n", os.Args[0])
		return
	}

	// Handle version flag
	if *version {
		fmt.Printf("Fuzzy Bench Server v1.0.0\n")
		fmt.Printf("Corpus scoring, async benchmark runs, and persisted reports\n")
		return
	}

	// Initialize the benchmark engine
	log.Printf("Using data directory: %s", *dataDir)
	benchEngine := engine.NewEngine(*dataDir)
	defer benchEngine.Stop()

	// Initialize Gin router
	router := gin.Default()

	// Setup API routes
	api.SetupRoutes(router, benchEngine)

	// Start the server
	log.Printf("Starting server on port %s...", *port)
	if err := router.Run(":" + *port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
