package store

import (
	"strings"

	"github.com/gcbaptista/go-fuzzy-bench/model"
)

// CorpusStore holds the full instrument collection and three precomputed
// lowercased candidate views, one per field. Views are parallel to the
// instrument slice: View(field)[i] is the case-folded field value of
// Instrument(i), same length, same order. The store is built once and never
// mutated afterwards, which makes it safe for any number of concurrent
// readers without locking.
type CorpusStore struct {
	instruments []model.Instrument
	symbolView  []string
	nameView    []string
	isinView    []string
}

// NewCorpusStore builds the store and its candidate views from the given
// records. The slice is retained as-is; callers must not mutate it after
// handing it over.
func NewCorpusStore(instruments []model.Instrument) *CorpusStore {
	s := &CorpusStore{
		instruments: instruments,
		symbolView:  make([]string, len(instruments)),
		nameView:    make([]string, len(instruments)),
		isinView:    make([]string, len(instruments)),
	}
	for i := range instruments {
		s.symbolView[i] = strings.ToLower(instruments[i].Symbol)
		s.nameView[i] = strings.ToLower(instruments[i].Name)
		s.isinView[i] = strings.ToLower(instruments[i].ISIN)
	}
	return s
}

// Len returns the number of instruments in the corpus.
func (s *CorpusStore) Len() int {
	return len(s.instruments)
}

// Instrument returns the record at the given corpus index.
func (s *CorpusStore) Instrument(i int) model.Instrument {
	return s.instruments[i]
}

// Instruments returns the backing record slice, read-only by convention.
func (s *CorpusStore) Instruments() []model.Instrument {
	return s.instruments
}

// View returns the lowercased candidate view for a field. Unrecognized field
// names fall back to the name view.
func (s *CorpusStore) View(field string) []string {
	switch field {
	case model.FieldSymbol:
		return s.symbolView
	case model.FieldISIN:
		return s.isinView
	default:
		return s.nameView
	}
}
