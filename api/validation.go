package api

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-fuzzy-bench/model"
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the outcome of request validation
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ValidateCorpusName validates a corpus name. Corpus names double as file
// names under the data directory, so path separators and traversal
// sequences are rejected.
func ValidateCorpusName(name string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if name == "" {
		result.AddError("name", "Corpus name is required")
		return result
	}

	if strings.TrimSpace(name) != name {
		result.AddError("name", "Corpus name cannot have leading or trailing whitespace")
	}

	if len(name) > 255 {
		result.AddError("name", "Corpus name cannot exceed 255 characters")
	}

	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		result.AddError("name", "Corpus name cannot contain path separators or '..'")
	}

	return result
}

// ValidateInstruments validates an inline instrument list
func ValidateInstruments(instruments []model.Instrument) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if len(instruments) == 0 {
		result.AddError("instruments", "At least one instrument is required")
		return result
	}

	for i, inst := range instruments {
		if inst.Symbol == "" && inst.Name == "" && inst.ISIN == "" {
			result.AddError(fmt.Sprintf("instruments[%d]", i), "Instrument must have at least one of symbol, name or isin")
		}
	}

	return result
}

// ValidateScoreRequest validates a scoring request
func ValidateScoreRequest(req *ScoreRequest) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if req.Text == "" {
		result.AddError("text", "Query text is required")
	}

	if req.TopK < 0 {
		result.AddError("top_k", "top_k cannot be negative")
	}

	return result
}

// ValidateBenchmarkRequest validates a benchmark run request
func ValidateBenchmarkRequest(req *BenchmarkRunRequest) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if len(req.Queries) == 0 && req.QueriesPath == "" {
		result.AddError("queries", "Either queries or queries_path is required")
	}

	if len(req.Queries) > 0 && req.QueriesPath != "" {
		result.AddError("queries", "queries and queries_path are mutually exclusive")
	}

	if req.Iterations < 0 {
		result.AddError("iterations", "iterations cannot be negative")
	}

	if req.Workers < 0 {
		result.AddError("workers", "workers cannot be negative")
	}

	return result
}

// ValidateJSONBinding validates JSON binding and returns a structured error
func ValidateJSONBinding(c *gin.Context, obj interface{}) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if err := c.ShouldBindJSON(obj); err != nil {
		result.AddError("request_body", fmt.Sprintf("Invalid JSON format: %v", err))
	}

	return result
}

// SendValidationError sends a structured validation error response
func SendValidationError(c *gin.Context, result *ValidationResult) {
	SendStructuredValidationError(c, result)
}
