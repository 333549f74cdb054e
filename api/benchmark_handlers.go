package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-fuzzy-bench/internal/corpus"
	internalErrors "github.com/gcbaptista/go-fuzzy-bench/internal/errors"
	"github.com/gcbaptista/go-fuzzy-bench/model"
	"github.com/gcbaptista/go-fuzzy-bench/services"
)

// BenchmarkRunRequest defines the structure for starting a benchmark run.
// Queries are supplied inline or loaded from a server-side TSV file.
type BenchmarkRunRequest struct {
	Queries     []model.Query `json:"queries,omitempty"`
	QueriesPath string        `json:"queries_path,omitempty"` // Server-side query TSV file
	Scorer      string        `json:"scorer,omitempty"`       // Optional: override the server default scorer
	Iterations  int           `json:"iterations,omitempty"`   // Optional: timed iterations
	Workers     int           `json:"workers,omitempty"`      // Optional: parallel scoring workers
}

// StartBenchmarkHandler handles requests to start an asynchronous benchmark
// run against a corpus.
// Request Body: BenchmarkRunRequest
func (api *API) StartBenchmarkHandler(c *gin.Context) {
	corpusName := c.Param("corpusName")

	var req BenchmarkRunRequest

	// Validate JSON binding
	if result := ValidateJSONBinding(c, &req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	// Validate benchmark request
	if result := ValidateBenchmarkRequest(&req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	queries := req.Queries
	if req.QueriesPath != "" {
		loaded, err := corpus.LoadQueries(req.QueriesPath)
		if err != nil {
			result := &ValidationResult{Valid: true}
			result.AddError("queries_path", fmt.Sprintf("Failed to load queries: %v", err))
			SendValidationError(c, result)
			return
		}
		queries = loaded
	}

	jobID, err := api.engine.StartBenchmark(corpusName, services.BenchmarkRequest{
		Queries:    queries,
		Scorer:     req.Scorer,
		Iterations: req.Iterations,
		Workers:    req.Workers,
	})
	if err != nil {
		if errors.Is(err, internalErrors.ErrCorpusNotFound) {
			SendCorpusNotFoundError(c, corpusName)
			return
		}
		if errors.Is(err, internalErrors.ErrUnknownScorer) {
			SendUnknownScorerError(c, req.Scorer)
			return
		}
		if errors.Is(err, internalErrors.ErrInvalidInput) {
			SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, err.Error())
			return
		}
		SendJobExecutionError(c, "benchmark", err)
		return
	}

	// Return job ID with 202 Accepted status
	c.JSON(http.StatusAccepted, gin.H{
		"status":      "accepted",
		"message":     fmt.Sprintf("Benchmark started for corpus '%s' (%d queries)", corpusName, len(queries)),
		"job_id":      jobID,
		"query_count": len(queries),
	})
}

// ListReportsHandler lists all stored benchmark reports, newest first.
func (api *API) ListReportsHandler(c *gin.Context) {
	reports := api.engine.ListReports()
	c.JSON(http.StatusOK, gin.H{"reports": reports, "total": len(reports)})
}

// GetReportHandler retrieves a specific benchmark report by ID.
func (api *API) GetReportHandler(c *gin.Context) {
	reportID := c.Param("reportId")

	report, err := api.engine.GetReport(reportID)
	if err != nil {
		if errors.Is(err, internalErrors.ErrReportNotFound) {
			SendReportNotFoundError(c, reportID)
			return
		}
		SendInternalError(c, "get report", err)
		return
	}

	c.JSON(http.StatusOK, report)
}
