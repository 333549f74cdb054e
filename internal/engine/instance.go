package engine

import (
	"fmt"

	"github.com/gcbaptista/go-fuzzy-bench/internal/scorer"
	"github.com/gcbaptista/go-fuzzy-bench/internal/scoring"
	"github.com/gcbaptista/go-fuzzy-bench/model"
	"github.com/gcbaptista/go-fuzzy-bench/store"
)

// CorpusInstance holds the components for a single named corpus: the raw
// instrument records and the precomputed candidate views built from them.
// Instances are immutable once built and safe for concurrent use.
type CorpusInstance struct {
	name   string
	corpus *store.CorpusStore
}

// NewCorpusInstance creates and initializes a new CorpusInstance.
func NewCorpusInstance(name string, instruments []model.Instrument) (*CorpusInstance, error) {
	if name == "" {
		return nil, fmt.Errorf("corpus name cannot be empty")
	}
	return &CorpusInstance{
		name:   name,
		corpus: store.NewCorpusStore(instruments),
	}, nil
}

// Name returns the corpus name.
func (c *CorpusInstance) Name() string {
	return c.name
}

// Size returns the number of instruments in the corpus.
func (c *CorpusInstance) Size() int {
	return c.corpus.Len()
}

// Corpus returns the underlying candidate views.
func (c *CorpusInstance) Corpus() *store.CorpusStore {
	return c.corpus
}

// Score runs one query against this corpus with the given scorer builder,
// returning the bounded ranked candidates and the total match count.
func (c *CorpusInstance) Score(builder scorer.Builder, topK int, query model.Query) (scoring.Result, error) {
	svc, err := scoring.NewService(c.corpus, builder, topK)
	if err != nil {
		return scoring.Result{}, fmt.Errorf("failed to create scoring service for corpus '%s': %w", c.name, err)
	}
	return svc.ScoreQuery(query), nil
}
