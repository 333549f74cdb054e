package config

import (
	"testing"
)

func TestApplyDefaults(t *testing.T) {
	settings := BenchmarkSettings{}
	settings.ApplyDefaults()

	if settings.CorpusPath != DefaultCorpusPath {
		t.Errorf("Expected default corpus path %q, got %q", DefaultCorpusPath, settings.CorpusPath)
	}
	if settings.QueriesPath != DefaultQueriesPath {
		t.Errorf("Expected default queries path %q, got %q", DefaultQueriesPath, settings.QueriesPath)
	}
	if settings.Scorer != DefaultScorer {
		t.Errorf("Expected default scorer %q, got %q", DefaultScorer, settings.Scorer)
	}
	if settings.Iterations != DefaultIterations {
		t.Errorf("Expected default iterations %d, got %d", DefaultIterations, settings.Iterations)
	}
	if settings.TopK != TopKBenchmark {
		t.Errorf("Expected default top_k %d, got %d", TopKBenchmark, settings.TopK)
	}
	if settings.Workers != DefaultWorkers {
		t.Errorf("Expected default workers %d, got %d", DefaultWorkers, settings.Workers)
	}
	if len(settings.Categories) == 0 {
		t.Error("Expected default categories to be populated")
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	settings := BenchmarkSettings{
		CorpusPath: "corpus.tsv",
		Scorer:     "partial_ratio",
		Iterations: 5,
		Workers:    4,
	}
	settings.ApplyDefaults()

	if settings.CorpusPath != "corpus.tsv" {
		t.Errorf("Expected explicit corpus path to survive, got %q", settings.CorpusPath)
	}
	if settings.Scorer != "partial_ratio" {
		t.Errorf("Expected explicit scorer to survive, got %q", settings.Scorer)
	}
	if settings.Iterations != 5 {
		t.Errorf("Expected explicit iterations to survive, got %d", settings.Iterations)
	}
	if settings.Workers != 4 {
		t.Errorf("Expected explicit workers to survive, got %d", settings.Workers)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name              string
		settings          BenchmarkSettings
		expectedConflicts int
	}{
		{
			name: "defaults are valid",
			settings: func() BenchmarkSettings {
				s := BenchmarkSettings{}
				s.ApplyDefaults()
				return s
			}(),
			expectedConflicts: 0,
		},
		{
			name: "zero iterations rejected",
			settings: BenchmarkSettings{
				CorpusPath: "corpus.tsv",
				Iterations: 0,
				Workers:    1,
			},
			expectedConflicts: 1,
		},
		{
			name: "negative top_k and zero workers rejected",
			settings: BenchmarkSettings{
				CorpusPath: "corpus.tsv",
				Iterations: 3,
				TopK:       -1,
				Workers:    0,
			},
			expectedConflicts: 2,
		},
		{
			name: "blank corpus path rejected",
			settings: BenchmarkSettings{
				CorpusPath: "   ",
				Iterations: 3,
				Workers:    1,
			},
			expectedConflicts: 1,
		},
		{
			name: "duplicate categories rejected",
			settings: BenchmarkSettings{
				CorpusPath: "corpus.tsv",
				Iterations: 3,
				Workers:    1,
				Categories: []string{"typo", "prefix", "typo"},
			},
			expectedConflicts: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflicts := tt.settings.Validate()
			if len(conflicts) != tt.expectedConflicts {
				t.Errorf("Expected %d conflicts, got %d. Conflicts: %v", tt.expectedConflicts, len(conflicts), conflicts)
			}
		})
	}
}

func TestDefaultCategories_ReturnsFreshSlice(t *testing.T) {
	a := DefaultCategories()
	a[0] = "mutated"
	b := DefaultCategories()
	if b[0] != "exact_symbol" {
		t.Errorf("Expected a fresh slice per call, got leaked mutation: %q", b[0])
	}
}
