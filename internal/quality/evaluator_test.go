package quality

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/gcbaptista/go-fuzzy-bench/internal/scorer"
	"github.com/gcbaptista/go-fuzzy-bench/model"
	"github.com/gcbaptista/go-fuzzy-bench/store"
)

func newTestEvaluator(t *testing.T) *Evaluator {
	t.Helper()
	corpus := store.NewCorpusStore([]model.Instrument{
		{Symbol: "AAPL", Name: "Apple Inc", ISIN: "US0378331005"},
		{Symbol: "MSFT", Name: "Microsoft Corp", ISIN: "US5949181045"},
		{Symbol: "ORCL", Name: "Oracle Corp", ISIN: "US68389X1054"},
	})
	builder, _, err := scorer.For(scorer.NameWRatio)
	if err != nil {
		t.Fatalf("failed to resolve scorer: %v", err)
	}
	ev, err := NewEvaluator(corpus, builder)
	if err != nil {
		t.Fatalf("failed to create evaluator: %v", err)
	}
	return ev
}

func TestEvaluate_TopOneHitAndMiss(t *testing.T) {
	ev := newTestEvaluator(t)

	result := ev.Evaluate([]model.Query{
		{Text: "apple inc", Field: model.FieldName, Category: "exact_name", ExpectedName: "Apple"},
		{Text: "microsoft corp", Field: model.FieldName, Category: "exact_name", ExpectedName: "Oracle"},
	})

	if result.Evaluated != 2 {
		t.Fatalf("evaluated = %d, want 2", result.Evaluated)
	}
	if result.Hits != 1 {
		t.Errorf("hits = %d, want 1 (exact query hits, mismatched expectation misses)", result.Hits)
	}
	if len(result.Categories) != 1 {
		t.Fatalf("got %d categories, want 1", len(result.Categories))
	}
	c := result.Categories[0]
	if c.Category != "exact_name" || c.TopN != 1 || c.QueryCount != 2 || c.Hits != 1 {
		t.Errorf("category score = %+v, want exact_name top-1 with 1/2", c)
	}
	if c.Display != "Exact name" {
		t.Errorf("display = %q, want %q", c.Display, "Exact name")
	}
	if c.Percent() != 50 {
		t.Errorf("percent = %d, want 50", c.Percent())
	}
}

func TestEvaluate_DeepCategoryAcceptsTopFive(t *testing.T) {
	ev := newTestEvaluator(t)

	result := ev.Evaluate([]model.Query{
		{Text: "aple inc", Field: model.FieldName, Category: "typo", ExpectedName: "Apple"},
	})

	if result.Hits != 1 {
		t.Errorf("hits = %d, want 1 (typo queries accept the expected name in the top 5)", result.Hits)
	}
	c := result.Categories[0]
	if c.TopN != 5 {
		t.Errorf("topN = %d, want 5", c.TopN)
	}
	if c.Display != "Typo / misspelling (top-5)" {
		t.Errorf("display = %q, want %q", c.Display, "Typo / misspelling (top-5)")
	}
}

func TestEvaluate_SkipsQueriesWithoutExpectation(t *testing.T) {
	ev := newTestEvaluator(t)

	result := ev.Evaluate([]model.Query{
		{Text: "AAPL", Field: model.FieldSymbol, Category: "exact_symbol", ExpectedName: model.ExpectedSkip},
		{Text: "MSFT", Field: model.FieldSymbol, Category: "exact_symbol"},
		{Text: "oracle corp", Field: model.FieldName, Category: "exact_name", ExpectedName: "Oracle"},
	})

	if result.Skipped != 2 {
		t.Errorf("skipped = %d, want 2", result.Skipped)
	}
	if result.Evaluated != 1 || result.Hits != 1 {
		t.Errorf("evaluated/hits = %d/%d, want 1/1", result.Evaluated, result.Hits)
	}
}

func TestEvaluate_CategoryOrderAndUnknownCategories(t *testing.T) {
	ev := newTestEvaluator(t)

	result := ev.Evaluate([]model.Query{
		{Text: "oracle corp", Field: model.FieldName, Category: "zz_custom", ExpectedName: "Oracle"},
		{Text: "aple inc", Field: model.FieldName, Category: "typo", ExpectedName: "Apple"},
		{Text: "apple inc", Field: model.FieldName, Category: "exact_name", ExpectedName: "Apple"},
		{Text: "microsoft corp", Field: model.FieldName, Category: "aa_custom", ExpectedName: "Microsoft"},
	})

	got := make([]string, 0, len(result.Categories))
	for _, c := range result.Categories {
		got = append(got, c.Category)
	}
	want := []string{"exact_name", "typo", "aa_custom", "zz_custom"}
	if len(got) != len(want) {
		t.Fatalf("categories = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("categories = %v, want preferred order then alphabetical extras %v", got, want)
		}
	}

	// Unknown categories keep the raw label and the strict top-1 policy.
	for _, c := range result.Categories {
		if c.Category == "aa_custom" {
			if c.Display != "aa_custom" || c.TopN != 1 {
				t.Errorf("unknown category score = %+v, want raw display and top-1", c)
			}
		}
	}
}

func TestEvaluate_PercentRoundsDown(t *testing.T) {
	ev := newTestEvaluator(t)

	result := ev.Evaluate([]model.Query{
		{Text: "apple inc", Field: model.FieldName, Category: "exact_name", ExpectedName: "Apple"},
		{Text: "microsoft corp", Field: model.FieldName, Category: "exact_name", ExpectedName: "Oracle"},
		{Text: "oracle corp", Field: model.FieldName, Category: "exact_name", ExpectedName: "Apple"},
	})

	c := result.Categories[0]
	if c.QueryCount != 3 || c.Hits != 1 {
		t.Fatalf("category score = %+v, want 1/3", c)
	}
	if c.Percent() != 33 {
		t.Errorf("percent = %d, want 33 (floor of 33.3)", c.Percent())
	}
}

func TestWriteEvaluation(t *testing.T) {
	ev := &Evaluation{
		Categories: []CategoryScore{
			{Category: "exact_name", Display: "Exact name", TopN: 1, QueryCount: 4, Hits: 3},
			{Category: "typo", Display: "Typo / misspelling (top-5)", TopN: 5, QueryCount: 2, Hits: 2},
		},
		Evaluated: 6,
		Hits:      5,
		Skipped:   3,
	}

	var buf bytes.Buffer
	if err := WriteEvaluation(&buf, "WRatio", ev); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	out := buf.String()

	wantParts := []string{
		"=== Ground Truth Evaluation ===",
		fmt.Sprintf("%-30s %7s  %14s", "Category", "Queries", "WRatio"),
		fmt.Sprintf("%-30s %7d  %3d/%d %3d%%", "Exact name", 4, 3, 4, 75),
		fmt.Sprintf("%-30s %7d  %3d/%d %3d%%", "Typo / misspelling (top-5)", 2, 2, 2, 100),
		fmt.Sprintf("%-30s %7d  %3d/%d %3d%%", "TOTAL", 6, 5, 6, 83),
		"Note: 3 queries skipped (no expected name).",
		"use top-5",
	}
	for _, want := range wantParts {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\nfull output:\n%s", want, out)
		}
	}

	if strings.Index(out, "Exact name") > strings.Index(out, "TOTAL") {
		t.Error("TOTAL row must come after category rows")
	}
}
