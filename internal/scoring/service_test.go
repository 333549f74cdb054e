package scoring

import (
	"testing"

	"github.com/gcbaptista/go-fuzzy-bench/internal/scorer"
	"github.com/gcbaptista/go-fuzzy-bench/model"
	"github.com/gcbaptista/go-fuzzy-bench/store"
)

func newTestCorpus() *store.CorpusStore {
	return store.NewCorpusStore([]model.Instrument{
		{Symbol: "AAA", Name: "Alpha Corp", ISIN: "US0000000001"},
		{Symbol: "AAB", Name: "Beta Industries", ISIN: "US0000000002"},
		{Symbol: "ZZZ", Name: "Zenith Ltd", ISIN: "US0000000003"},
	})
}

func newTestService(t *testing.T, corpus *store.CorpusStore, topK int) *Service {
	t.Helper()
	builder, _, err := scorer.For(scorer.NameWRatio)
	if err != nil {
		t.Fatalf("failed to resolve scorer: %v", err)
	}
	svc, err := NewService(corpus, builder, topK)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	return svc
}

func TestNewService_Validation(t *testing.T) {
	builder, _, _ := scorer.For(scorer.NameWRatio)

	if _, err := NewService(nil, builder, 10); err == nil {
		t.Error("expected error for nil corpus")
	}
	if _, err := NewService(newTestCorpus(), nil, 10); err == nil {
		t.Error("expected error for nil builder")
	}
	if _, err := NewService(newTestCorpus(), builder, -1); err == nil {
		t.Error("expected error for negative top K")
	}
}

func TestScoreQuery_RanksExactMatchFirst(t *testing.T) {
	svc := newTestService(t, newTestCorpus(), 100)

	result := svc.ScoreQuery(model.Query{Text: "AAA", Field: model.FieldSymbol})

	if result.MatchCount < 1 {
		t.Fatalf("expected at least one match, got %d", result.MatchCount)
	}
	if len(result.Top) == 0 {
		t.Fatal("expected a non-empty top list")
	}
	if result.Top[0].Index != 0 {
		t.Errorf("top candidate index = %d, want 0", result.Top[0].Index)
	}
	if result.Top[0].Score != 100 {
		t.Errorf("top candidate score = %v, want 100", result.Top[0].Score)
	}
	// AAB shares two of three characters with the query and must rank as a
	// weaker match; Zenith's symbol shares none and must be excluded.
	for _, c := range result.Top {
		if c.Index == 2 {
			t.Errorf("disjoint candidate ZZZ leaked into the top list with score %v", c.Score)
		}
	}
}

func TestScoreQuery_LowercasesQueryText(t *testing.T) {
	svc := newTestService(t, newTestCorpus(), 100)

	upper := svc.ScoreQuery(model.Query{Text: "ALPHA CORP", Field: model.FieldName})
	lower := svc.ScoreQuery(model.Query{Text: "alpha corp", Field: model.FieldName})

	if upper.MatchCount != lower.MatchCount {
		t.Errorf("match counts differ across case: %d vs %d", upper.MatchCount, lower.MatchCount)
	}
	if len(upper.Top) == 0 || len(lower.Top) == 0 {
		t.Fatal("expected matches for both casings")
	}
	if upper.Top[0].Index != lower.Top[0].Index || upper.Top[0].Score != lower.Top[0].Score {
		t.Errorf("top candidate differs across case: %+v vs %+v", upper.Top[0], lower.Top[0])
	}
	if upper.Top[0].Score != 100 {
		t.Errorf("exact name match score = %v, want 100", upper.Top[0].Score)
	}
}

func TestScoreQuery_UnknownFieldUsesNameView(t *testing.T) {
	svc := newTestService(t, newTestCorpus(), 100)

	unknown := svc.ScoreQuery(model.Query{Text: "zenith ltd", Field: "description"})
	name := svc.ScoreQuery(model.Query{Text: "zenith ltd", Field: model.FieldName})

	if unknown.MatchCount != name.MatchCount {
		t.Errorf("match counts differ: unknown field %d, name field %d", unknown.MatchCount, name.MatchCount)
	}
	if len(unknown.Top) == 0 {
		t.Fatal("expected matches via the name view fallback")
	}
	if unknown.Top[0].Index != 2 {
		t.Errorf("top candidate index = %d, want 2", unknown.Top[0].Index)
	}
}

func TestScoreQuery_MatchCountExceedsTopK(t *testing.T) {
	corpus := store.NewCorpusStore([]model.Instrument{
		{Symbol: "ACME", Name: "Acme Holdings"},
		{Symbol: "ACMA", Name: "Acme Materials"},
		{Symbol: "ACMB", Name: "Acme Brands"},
		{Symbol: "ACMC", Name: "Acme Capital"},
	})
	svc := newTestService(t, corpus, 2)

	result := svc.ScoreQuery(model.Query{Text: "acme", Field: model.FieldSymbol})

	if result.MatchCount != 4 {
		t.Errorf("match count = %d, want 4", result.MatchCount)
	}
	if len(result.Top) != 2 {
		t.Errorf("top list length = %d, want 2", len(result.Top))
	}
	if result.Top[0].Index != 0 || result.Top[0].Score != 100 {
		t.Errorf("top candidate = %+v, want exact match at index 0", result.Top[0])
	}
}

func TestScoreQuery_EmptyCorpus(t *testing.T) {
	svc := newTestService(t, store.NewCorpusStore(nil), 100)

	result := svc.ScoreQuery(model.Query{Text: "anything", Field: model.FieldName})

	if result.MatchCount != 0 {
		t.Errorf("match count = %d, want 0", result.MatchCount)
	}
	if len(result.Top) != 0 {
		t.Errorf("top list length = %d, want 0", len(result.Top))
	}
}
