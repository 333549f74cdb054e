package model

// Field names a query can target. Anything else is scored against the name
// view (documented fallback, not an error).
const (
	FieldSymbol = "symbol"
	FieldName   = "name"
	FieldISIN   = "isin"
)

// ExpectedSkip marks a query that carries no ground-truth expectation.
const ExpectedSkip = "_SKIP_"

// Instrument is one corpus record. Records are immutable and addressed by
// their position in the corpus; that index is the stable identity used by
// scoring results.
type Instrument struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	ISIN   string `json:"isin"`
}

// Query is one benchmark query: the text to match, the corpus field it
// targets, and a free-form category label used only for report grouping.
// ExpectedName is the optional ground-truth column; empty or ExpectedSkip
// means the query is excluded from evaluation.
type Query struct {
	Text         string `json:"text"`
	Field        string `json:"field"`
	Category     string `json:"category"`
	ExpectedName string `json:"expected_name,omitempty"`
}

// Evaluable reports whether the query carries a usable ground-truth
// expectation.
func (q Query) Evaluable() bool {
	return q.ExpectedName != "" && q.ExpectedName != ExpectedSkip
}

// ScoredCandidate pairs a similarity score with the candidate's corpus
// index. It lives only for the duration of one query evaluation.
type ScoredCandidate struct {
	Score float64 `json:"score"`
	Index int     `json:"index"`
}
