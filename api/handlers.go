package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-fuzzy-bench/services"
)

// API holds dependencies for API handlers, primarily the benchmark engine.
type API struct {
	engine services.CorpusService
}

// NewAPI creates a new API handler structure.
func NewAPI(engine services.CorpusService) *API {
	return &API{engine: engine}
}

// SetupRoutes defines all the API routes for the benchmark service.
func SetupRoutes(router *gin.Engine, engine services.CorpusService) {
	apiHandler := NewAPI(engine)

	// Request ID first so every response carries one
	router.Use(RequestIDMiddleware())
	router.Use(CORSMiddleware())
	router.Use(RequestSizeLimitMiddleware(maxRequestBodyBytes))

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Job management routes
	jobRoutes := router.Group("/jobs")
	{
		jobRoutes.GET("/:jobId", apiHandler.GetJobHandler)         // Get job status by ID
		jobRoutes.GET("/metrics", apiHandler.GetJobMetricsHandler) // Get job performance metrics
	}

	// Corpus management routes
	corpusRoutes := router.Group("/corpora")
	{
		corpusRoutes.POST("", apiHandler.CreateCorpusHandler)               // Create a new corpus (inline or from TSV path)
		corpusRoutes.GET("", apiHandler.ListCorporaHandler)                 // List all corpora
		corpusRoutes.GET("/:corpusName", apiHandler.GetCorpusHandler)       // Get specific corpus details
		corpusRoutes.DELETE("/:corpusName", apiHandler.DeleteCorpusHandler) // Delete a corpus
		corpusRoutes.GET("/:corpusName/jobs", apiHandler.ListJobsHandler)   // List jobs for a corpus

		// Scoring and benchmarking routes per corpus
		corpusRoutes.POST("/:corpusName/_score", apiHandler.ScoreHandler)
		corpusRoutes.POST("/:corpusName/_benchmark", apiHandler.StartBenchmarkHandler)
	}

	// Benchmark report routes
	reportRoutes := router.Group("/reports")
	{
		reportRoutes.GET("", apiHandler.ListReportsHandler)         // List all benchmark reports
		reportRoutes.GET("/:reportId", apiHandler.GetReportHandler) // Get a specific benchmark report
	}
}

// HealthCheckHandler provides a simple health check endpoint
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "go-fuzzy-bench",
		"timestamp": fmt.Sprintf("%d", time.Now().Unix()),
	})
}
