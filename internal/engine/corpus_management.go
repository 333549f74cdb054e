package engine

import (
	"fmt"
	"log"
	"sort"

	"github.com/gcbaptista/go-fuzzy-bench/internal/errors"
	"github.com/gcbaptista/go-fuzzy-bench/model"
)

// CreateCorpus registers a new named corpus, builds its candidate views, and
// persists the records.
func (e *Engine) CreateCorpus(name string, instruments []model.Instrument) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if name == "" {
		return errors.NewValidationError("name", "corpus name cannot be empty")
	}
	if _, exists := e.corpora[name]; exists {
		return errors.NewCorpusAlreadyExistsError(name)
	}

	// Build the in-memory instance first
	instance, err := NewCorpusInstance(name, instruments)
	if err != nil {
		return fmt.Errorf("failed to create corpus instance for '%s': %w", name, err)
	}

	// Persist the records
	if err := e.store.SaveCorpus(name, instruments); err != nil {
		return fmt.Errorf("failed to persist new corpus '%s': %w", name, err)
	}

	e.corpora[name] = instance
	log.Printf("Corpus '%s' created and persisted (%d instruments).", name, instance.Size())
	return nil
}

// DeleteCorpus removes a corpus from memory and disk.
func (e *Engine) DeleteCorpus(name string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.corpora[name]; !exists {
		return errors.NewCorpusNotFoundError(name)
	}

	// Remove from memory
	delete(e.corpora, name)

	// Remove from disk
	if err := e.store.DeleteCorpus(name); err != nil {
		return fmt.Errorf("failed to remove corpus data for '%s': %w", name, err)
	}

	log.Printf("Corpus '%s' deleted from memory and disk.", name)
	return nil
}

// ListCorpora returns the names of all loaded corpora, sorted.
func (e *Engine) ListCorpora() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	names := make([]string, 0, len(e.corpora))
	for name := range e.corpora {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CorpusSize returns the number of instruments in a corpus.
func (e *Engine) CorpusSize(name string) (int, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	instance, exists := e.corpora[name]
	if !exists {
		return 0, errors.NewCorpusNotFoundError(name)
	}
	return instance.Size(), nil
}

// getInstance looks up a corpus instance under the read lock.
func (e *Engine) getInstance(name string) (*CorpusInstance, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	instance, exists := e.corpora[name]
	if !exists {
		return nil, errors.NewCorpusNotFoundError(name)
	}
	return instance, nil
}
