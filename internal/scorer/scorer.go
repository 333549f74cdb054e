// Package scorer provides the similarity backends queries are scored with.
// A backend is consumed as an opaque capability: built once per query from
// the normalized query text, it maps candidate strings to scores in 0-100
// where higher is more similar and exactly 0 means "no match". Backends are
// total; they never fail on well-formed string inputs.
package scorer

import (
	"github.com/hbollon/go-edlib"
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/gcbaptista/go-fuzzy-bench/internal/errors"
)

// Scorer scores candidates against the query it was built for. A Scorer may
// keep query-side state and must not be shared across queries.
type Scorer interface {
	Similarity(candidate string) float64
}

// Builder constructs a Scorer primed with a normalized (lowercased) query.
type Builder func(query string) Scorer

// Names of the available backends.
const (
	NameWRatio       = "wratio"
	NamePartialRatio = "partial_ratio"
	NameJaroWinkler  = "jaro_winkler"
)

// For resolves a backend name to its Builder and display name. Unknown
// names return an UnknownScorerError.
func For(name string) (Builder, string, error) {
	switch name {
	case NameWRatio:
		return newWRatio, "WRatio", nil
	case NamePartialRatio:
		return newPartialRatio, "PartialRatio", nil
	case NameJaroWinkler:
		return newJaroWinkler, "JaroWinkler", nil
	default:
		return nil, "", errors.NewUnknownScorerError(name)
	}
}

// ForOrDefault resolves a backend name, silently falling back to wratio for
// unknown names. The CLIs use this; strict callers use For.
func ForOrDefault(name string) (Builder, string) {
	builder, display, err := For(name)
	if err != nil {
		builder, display, _ = For(NameWRatio)
	}
	return builder, display
}

type wRatioScorer struct {
	query string
}

func newWRatio(query string) Scorer {
	return &wRatioScorer{query: query}
}

func (s *wRatioScorer) Similarity(candidate string) float64 {
	return float64(fuzzy.WRatio(s.query, candidate))
}

type partialRatioScorer struct {
	query string
}

func newPartialRatio(query string) Scorer {
	return &partialRatioScorer{query: query}
}

func (s *partialRatioScorer) Similarity(candidate string) float64 {
	return float64(fuzzy.PartialRatio(s.query, candidate))
}

type jaroWinklerScorer struct {
	query string
}

func newJaroWinkler(query string) Scorer {
	return &jaroWinklerScorer{query: query}
}

func (s *jaroWinklerScorer) Similarity(candidate string) float64 {
	sim, err := edlib.StringsSimilarity(s.query, candidate, edlib.JaroWinkler)
	if err != nil {
		// Treat algorithm errors as no match; the oracle contract is total.
		return 0
	}
	return float64(sim) * 100
}
