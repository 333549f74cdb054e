package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/gcbaptista/go-fuzzy-bench/internal/errors"
	"github.com/gcbaptista/go-fuzzy-bench/services"
)

// ScoreRequest defines the structure for scoring requests.
// It mirrors services.ScoreQuery and is adapted for JSON binding.
type ScoreRequest struct {
	Text   string `json:"text"`
	Field  string `json:"field,omitempty"`  // symbol, name or isin; unknown fields fall back to name
	Scorer string `json:"scorer,omitempty"` // Optional: override the server default scorer
	TopK   int    `json:"top_k,omitempty"`  // Optional: bound the ranked hits
}

// ScoreHandler handles scoring requests against a corpus.
// Request Body: ScoreRequest
func (api *API) ScoreHandler(c *gin.Context) {
	corpusName := c.Param("corpusName")

	var req ScoreRequest

	// Validate JSON binding
	if result := ValidateJSONBinding(c, &req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	// Validate score request
	if result := ValidateScoreRequest(&req); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	result, err := api.engine.Score(corpusName, services.ScoreQuery{
		Text:   req.Text,
		Field:  req.Field,
		Scorer: req.Scorer,
		TopK:   req.TopK,
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
		SendScoringError(c, corpusName, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
