// Package quality checks ranked scoring output against expected names and
// rolls the hit rate up per category.
package quality

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gcbaptista/go-fuzzy-bench/config"
	"github.com/gcbaptista/go-fuzzy-bench/internal/scorer"
	"github.com/gcbaptista/go-fuzzy-bench/internal/scoring"
	"github.com/gcbaptista/go-fuzzy-bench/model"
	"github.com/gcbaptista/go-fuzzy-bench/store"
)

// displayNames maps raw category labels to their report display names.
var displayNames = map[string]string{
	"exact_symbol":  "Exact symbol",
	"exact_name":    "Exact name",
	"exact_isin":    "Exact ISIN",
	"prefix":        "Prefix / progressive typing",
	"typo":          "Typo / misspelling",
	"substring":     "Keyword / substring",
	"multi_word":    "Multi-word descriptive",
	"symbol_spaces": "Symbol with spaces",
	"abbreviation":  "Abbreviation (first letters)",
}

// deepCategories accept the expected instrument anywhere in the first five
// hits. All other categories require it in the top hit.
var deepCategories = map[string]bool{
	"typo":         true,
	"prefix":       true,
	"abbreviation": true,
}

// CategoryScore is one category's ground truth outcome.
type CategoryScore struct {
	Category   string `json:"category"`
	Display    string `json:"display"`
	TopN       int    `json:"top_n"`
	QueryCount int    `json:"query_count"`
	Hits       int    `json:"hits"`
}

// Percent returns the hit rate as a whole-number percentage, rounded down.
func (c CategoryScore) Percent() int {
	if c.QueryCount == 0 {
		return 0
	}
	return c.Hits * 100 / c.QueryCount
}

// Evaluation aggregates ground truth outcomes over a query set.
type Evaluation struct {
	Categories []CategoryScore `json:"categories"`
	Evaluated  int             `json:"evaluated"`
	Hits       int             `json:"hits"`
	Skipped    int             `json:"skipped"`
}

// Percent returns the overall hit rate as a whole-number percentage,
// rounded down.
func (e *Evaluation) Percent() int {
	if e.Evaluated == 0 {
		return 0
	}
	return e.Hits * 100 / e.Evaluated
}

// Evaluator scores queries and checks whether the expected instrument name
// shows up in the leading hits.
type Evaluator struct {
	corpus *store.CorpusStore
	svc    *scoring.Service
}

// NewEvaluator creates an Evaluator with its own scoring service bounded at
// the quality top K.
func NewEvaluator(corpus *store.CorpusStore, builder scorer.Builder) (*Evaluator, error) {
	svc, err := scoring.NewService(corpus, builder, config.TopKQuality)
	if err != nil {
		return nil, fmt.Errorf("failed to create scoring service: %w", err)
	}
	return &Evaluator{corpus: corpus, svc: svc}, nil
}

// Evaluate runs every evaluable query and aggregates per-category hit
// counts. Queries without an expected name count as skipped. Categories
// appear in the preferred report order first, then any remaining ones in
// alphabetical order.
func (e *Evaluator) Evaluate(queries []model.Query) *Evaluation {
	byCategory := make(map[string]*CategoryScore)
	skipped := 0

	for _, q := range queries {
		if !q.Evaluable() {
			skipped++
			continue
		}

		cs := byCategory[q.Category]
		if cs == nil {
			topN := 1
			display := q.Category
			if name, ok := displayNames[q.Category]; ok {
				display = name
			}
			if deepCategories[q.Category] {
				topN = 5
				display += " (top-5)"
			}
			cs = &CategoryScore{Category: q.Category, Display: display, TopN: topN}
			byCategory[q.Category] = cs
		}

		cs.QueryCount++
		if e.hit(q, cs.TopN) {
			cs.Hits++
		}
	}

	categories := make([]CategoryScore, 0, len(byCategory))
	for _, name := range config.DefaultCategories() {
		if cs, ok := byCategory[name]; ok {
			categories = append(categories, *cs)
			delete(byCategory, name)
		}
	}
	extras := make([]string, 0, len(byCategory))
	for name := range byCategory {
		extras = append(extras, name)
	}
	sort.Strings(extras)
	for _, name := range extras {
		categories = append(categories, *byCategory[name])
	}

	ev := &Evaluation{Categories: categories, Skipped: skipped}
	for _, c := range categories {
		ev.Evaluated += c.QueryCount
		ev.Hits += c.Hits
	}
	return ev
}

// hit reports whether the expected name appears, as a case-insensitive
// substring, in one of the first topN hit names for the query.
func (e *Evaluator) hit(q model.Query, topN int) bool {
	result := e.svc.ScoreQuery(q)
	expected := strings.ToLower(q.ExpectedName)
	for i, c := range result.Top {
		if i >= topN {
			break
		}
		name := strings.ToLower(e.corpus.Instrument(c.Index).Name)
		if strings.Contains(name, expected) {
			return true
		}
	}
	return false
}
