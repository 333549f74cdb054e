package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/gcbaptista/go-fuzzy-bench/config"
	"github.com/gcbaptista/go-fuzzy-bench/internal/scorer"
	"github.com/gcbaptista/go-fuzzy-bench/model"
	"github.com/gcbaptista/go-fuzzy-bench/services"
)

// Score runs a single ad-hoc scoring request against a named corpus and
// returns the ranked hits with original-case instrument fields. Unlike the
// CLI tools, unknown scorer names are rejected here so API callers get an
// explicit error instead of a silent fallback.
func (e *Engine) Score(corpusName string, query services.ScoreQuery) (services.ScoreResult, error) {
	startTime := time.Now()

	instance, err := e.getInstance(corpusName)
	if err != nil {
		return services.ScoreResult{}, err
	}

	scorerName := query.Scorer
	if scorerName == "" {
		scorerName = config.DefaultScorer
	}
	builder, _, err := scorer.For(scorerName)
	if err != nil {
		return services.ScoreResult{}, err
	}

	topK := query.TopK
	if topK <= 0 {
		topK = config.TopKQuality
	}

	result, err := instance.Score(builder, topK, model.Query{Text: query.Text, Field: query.Field})
	if err != nil {
		return services.ScoreResult{}, err
	}

	hits := make([]services.ScoreHit, 0, len(result.Top))
	for i, candidate := range result.Top {
		instrument := instance.Corpus().Instrument(candidate.Index)
		hits = append(hits, services.ScoreHit{
			Rank:   i + 1,
			Score:  candidate.Score,
			Symbol: instrument.Symbol,
			Name:   instrument.Name,
		})
	}

	return services.ScoreResult{
		Hits:       hits,
		MatchCount: result.MatchCount,
		Took:       time.Since(startTime).Milliseconds(),
		QueryId:    uuid.New().String(),
	}, nil
}
