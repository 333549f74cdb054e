package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-fuzzy-bench/internal/engine"
	internalErrors "github.com/gcbaptista/go-fuzzy-bench/internal/errors"
	"github.com/gcbaptista/go-fuzzy-bench/model"
)

// CreateCorpusRequest defines the structure for creating a corpus. Instruments
// are supplied inline or loaded from a server-side TSV file.
type CreateCorpusRequest struct {
	Name        string             `json:"name"`
	Path        string             `json:"path,omitempty"`        // Server-side TSV file to load asynchronously
	Instruments []model.Instrument `json:"instruments,omitempty"` // Inline instruments, registered synchronously
}

// CreateCorpusHandler handles the request to create a new corpus.
// Request Body: CreateCorpusRequest
func (api *API) CreateCorpusHandler(c *gin.Context) {
	var req CreateCorpusRequest

	// Validate JSON binding
	if result := ValidateJSONBinding(c, &req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	// Validate corpus name
	if result := ValidateCorpusName(req.Name); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if req.Path != "" && len(req.Instruments) > 0 {
		result := &ValidationResult{Valid: true}
		result.AddError("path", "path and instruments are mutually exclusive")
		SendValidationError(c, result)
		return
	}

	// Load from a server-side TSV asynchronously when a path is given
	if req.Path != "" {
		concreteEngine, ok := api.engine.(*engine.Engine)
		if !ok {
			SendError(c, http.StatusNotImplemented, ErrorCodeInternalError, "Corpus loading from path not supported by this engine")
			return
		}

		jobID, err := concreteEngine.LoadCorpusAsync(req.Name, req.Path)
		if err != nil {
			if errors.Is(err, internalErrors.ErrCorpusAlreadyExists) {
				SendCorpusExistsError(c, req.Name)
				return
			}
			if errors.Is(err, internalErrors.ErrInvalidInput) {
				SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, err.Error())
				return
			}
			SendJobExecutionError(c, "corpus load", err)
			return
		}

		// Async response with job ID
		c.JSON(http.StatusAccepted, gin.H{
			"status":  "accepted",
			"message": "Corpus load started for '" + req.Name + "'",
			"job_id":  jobID,
		})
		return
	}

	// Validate inline instruments
	if result := ValidateInstruments(req.Instruments); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	if err := api.engine.CreateCorpus(req.Name, req.Instruments); err != nil {
		if errors.Is(err, internalErrors.ErrCorpusAlreadyExists) {
			SendCorpusExistsError(c, req.Name)
			return
		}
		if errors.Is(err, internalErrors.ErrInvalidInput) {
			SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, err.Error())
			return
		}
		SendInternalError(c, "create corpus", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":          "Corpus '" + req.Name + "' created successfully",
		"instrument_count": len(req.Instruments),
	})
}

// ListCorporaHandler lists all available corpora.
func (api *API) ListCorporaHandler(c *gin.Context) {
	names := api.engine.ListCorpora()
	c.JSON(http.StatusOK, gin.H{"corpora": names, "count": len(names)})
}

// GetCorpusHandler retrieves details about a specific corpus.
func (api *API) GetCorpusHandler(c *gin.Context) {
	corpusName := c.Param("corpusName")

	size, err := api.engine.CorpusSize(corpusName)
	if err != nil {
		if errors.Is(err, internalErrors.ErrCorpusNotFound) {
			SendCorpusNotFoundError(c, corpusName)
			return
		}
		SendInternalError(c, "get corpus", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":             corpusName,
		"instrument_count": size,
	})
}

// DeleteCorpusHandler handles deleting a corpus.
func (api *API) DeleteCorpusHandler(c *gin.Context) {
	corpusName := c.Param("corpusName")

	if err := api.engine.DeleteCorpus(corpusName); err != nil {
		if errors.Is(err, internalErrors.ErrCorpusNotFound) {
			SendCorpusNotFoundError(c, corpusName)
			return
		}
		// For other errors (file system errors, etc.), return internal server error
		SendInternalError(c, "delete corpus", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Corpus '" + corpusName + "' deleted successfully"})
}
