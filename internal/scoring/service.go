// Package scoring runs single queries against a corpus view and collects
// the match count together with the top scoring candidates.
package scoring

import (
	"fmt"
	"strings"

	"github.com/gcbaptista/go-fuzzy-bench/internal/scorer"
	"github.com/gcbaptista/go-fuzzy-bench/internal/topk"
	"github.com/gcbaptista/go-fuzzy-bench/model"
	"github.com/gcbaptista/go-fuzzy-bench/store"
)

// Service scores queries against a single corpus with a fixed backend.
type Service struct {
	corpus  *store.CorpusStore
	builder scorer.Builder
	topK    int
}

// NewService creates a new scoring Service.
func NewService(corpus *store.CorpusStore, builder scorer.Builder, topK int) (*Service, error) {
	if corpus == nil {
		return nil, fmt.Errorf("corpus store cannot be nil")
	}
	if builder == nil {
		return nil, fmt.Errorf("scorer builder cannot be nil")
	}
	if topK < 0 {
		return nil, fmt.Errorf("top K cannot be negative, got %d", topK)
	}
	return &Service{
		corpus:  corpus,
		builder: builder,
		topK:    topK,
	}, nil
}

// Result holds the outcome of scoring one query against the full corpus.
type Result struct {
	// MatchCount is the number of candidates that scored above zero,
	// including those that did not fit into Top.
	MatchCount int
	// Top holds the highest scoring candidates, best first. Ties are
	// ordered by corpus position.
	Top []model.ScoredCandidate
}

// ScoreQuery scores one query against every candidate in the view matching
// the query's field. Unknown fields fall back to the name view. The query
// text is lowercased so comparisons against the prefolded views are
// case-insensitive. Safe for concurrent use: each call builds its own
// scorer and selector, and the corpus views are read-only.
func (s *Service) ScoreQuery(query model.Query) Result {
	text := strings.ToLower(query.Text)
	view := s.corpus.View(query.Field)

	sc := s.builder(text)
	selector := topk.NewSelector(s.topK)

	matches := 0
	for i, candidate := range view {
		score := sc.Similarity(candidate)
		if score > 0 {
			matches++
			selector.Push(score, i)
		}
	}

	return Result{
		MatchCount: matches,
		Top:        selector.Drain(),
	}
}
