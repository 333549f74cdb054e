package persistence

import (
	"testing"

	"github.com/gcbaptista/go-fuzzy-bench/model"
)

func TestStore_CorpusRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	instruments := []model.Instrument{
		{Symbol: "AAPL", Name: "Apple Inc", ISIN: "US0378331005"},
		{Symbol: "MSFT", Name: "Microsoft Corp", ISIN: "US5949181045"},
	}
	if err := store.SaveCorpus("tech", instruments); err != nil {
		t.Fatalf("Failed to save corpus: %v", err)
	}

	corpora, err := store.LoadCorpora()
	if err != nil {
		t.Fatalf("Failed to load corpora: %v", err)
	}
	loaded, ok := corpora["tech"]
	if !ok {
		t.Fatalf("Expected corpus 'tech' after reload, got %v", corpora)
	}
	if len(loaded) != 2 || loaded[0].Symbol != "AAPL" || loaded[1].Name != "Microsoft Corp" {
		t.Errorf("Loaded corpus does not match saved data: %+v", loaded)
	}
}

func TestStore_LoadCorpora_FreshStart(t *testing.T) {
	store := NewStore(t.TempDir())

	corpora, err := store.LoadCorpora()
	if err != nil {
		t.Fatalf("Expected fresh start without error, got: %v", err)
	}
	if len(corpora) != 0 {
		t.Errorf("Expected no corpora, got %d", len(corpora))
	}
}

func TestStore_DeleteCorpus(t *testing.T) {
	store := NewStore(t.TempDir())

	if err := store.SaveCorpus("doomed", []model.Instrument{{Symbol: "X", Name: "X Corp"}}); err != nil {
		t.Fatalf("Failed to save corpus: %v", err)
	}
	if err := store.DeleteCorpus("doomed"); err != nil {
		t.Fatalf("Failed to delete corpus: %v", err)
	}

	corpora, err := store.LoadCorpora()
	if err != nil {
		t.Fatalf("Failed to load corpora: %v", err)
	}
	if _, ok := corpora["doomed"]; ok {
		t.Error("Deleted corpus still present after reload")
	}

	// Deleting again must not fail
	if err := store.DeleteCorpus("doomed"); err != nil {
		t.Errorf("Deleting a missing corpus returned error: %v", err)
	}
}

func TestStore_ReportRoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	report := &model.BenchmarkReport{
		ID:            "run-1",
		CorpusSize:    100,
		QueryCount:    3,
		Iterations:    2,
		Scorer:        "WRatio",
		MedianTotalMs: 12.5,
		Categories: []model.CategorySummary{
			{Category: "exact_symbol", QueryCount: 3, MedianMs: 12.5, MinMs: 11.0, MatchCount: 9},
		},
		Queries: []model.QueryStat{
			{Text: "AAPL", Field: "symbol", Category: "exact_symbol", MedianMs: 4.0, MinMs: 3.5, MatchCount: 3},
		},
	}
	if err := store.SaveReport(report); err != nil {
		t.Fatalf("Failed to save report: %v", err)
	}

	reports, err := store.LoadReports()
	if err != nil {
		t.Fatalf("Failed to load reports: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("Expected 1 report, got %d", len(reports))
	}
	got := reports[0]
	if got.ID != "run-1" || got.Scorer != "WRatio" || got.MedianTotalMs != 12.5 {
		t.Errorf("Loaded report does not match saved data: %+v", got)
	}
	if len(got.Categories) != 1 || got.Categories[0].MatchCount != 9 {
		t.Errorf("Loaded report lost category data: %+v", got.Categories)
	}
}

func TestStore_SaveReport_RequiresID(t *testing.T) {
	store := NewStore(t.TempDir())

	if err := store.SaveReport(&model.BenchmarkReport{}); err == nil {
		t.Error("Expected error for report without ID")
	}
}
