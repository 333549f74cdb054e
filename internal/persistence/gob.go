// Package persistence stores server state, corpora and benchmark reports,
// as gob files under a data directory.
package persistence

import (
	"encoding/gob"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gcbaptista/go-fuzzy-bench/model"
)

// Store persists corpora and benchmark reports under a data directory:
//
//	<dataDir>/corpora/<name>.gob
//	<dataDir>/reports/<id>.gob
//
// Directories are created lazily on first save.
type Store struct {
	dataDir string
}

// NewStore creates a Store rooted at dataDir.
func NewStore(dataDir string) *Store {
	return &Store{dataDir: dataDir}
}

func (s *Store) corpusPath(name string) string {
	return filepath.Join(s.dataDir, "corpora", name+".gob")
}

func (s *Store) reportPath(id string) string {
	return filepath.Join(s.dataDir, "reports", id+".gob")
}

// SaveCorpus writes one named corpus to disk.
func (s *Store) SaveCorpus(name string, instruments []model.Instrument) error {
	return saveGob(s.corpusPath(name), instruments)
}

// LoadCorpora reads every persisted corpus. A missing data directory is a
// fresh start, not an error; unreadable files are skipped with a warning so
// one corrupt corpus cannot block startup.
func (s *Store) LoadCorpora() (map[string][]model.Instrument, error) {
	dir := filepath.Join(s.dataDir, "corpora")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string][]model.Instrument{}, nil
		}
		return nil, fmt.Errorf("failed to read corpora directory %s: %w", dir, err)
	}

	corpora := make(map[string][]model.Instrument)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".gob") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".gob")
		var instruments []model.Instrument
		if err := loadGob(filepath.Join(dir, entry.Name()), &instruments); err != nil {
			log.Printf("Warning: failed to load corpus '%s': %v", name, err)
			continue
		}
		corpora[name] = instruments
	}
	return corpora, nil
}

// DeleteCorpus removes the persisted file for a corpus. Deleting a corpus
// that was never persisted is not an error.
func (s *Store) DeleteCorpus(name string) error {
	if err := os.Remove(s.corpusPath(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete corpus file for '%s': %w", name, err)
	}
	return nil
}

// SaveReport writes one benchmark report to disk, keyed by its ID.
func (s *Store) SaveReport(report *model.BenchmarkReport) error {
	if report.ID == "" {
		return fmt.Errorf("cannot persist a report without an ID")
	}
	return saveGob(s.reportPath(report.ID), report)
}

// LoadReports reads every persisted benchmark report. Unreadable files are
// skipped with a warning.
func (s *Store) LoadReports() ([]*model.BenchmarkReport, error) {
	dir := filepath.Join(s.dataDir, "reports")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read reports directory %s: %w", dir, err)
	}

	var reports []*model.BenchmarkReport
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".gob") {
			continue
		}
		var report model.BenchmarkReport
		if err := loadGob(filepath.Join(dir, entry.Name()), &report); err != nil {
			log.Printf("Warning: failed to load report '%s': %v", entry.Name(), err)
			continue
		}
		reports = append(reports, &report)
	}
	return reports, nil
}

// saveGob encodes the given object using gob and saves it to filePath,
// creating parent directories as needed.
func saveGob(filePath string, object interface{}) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	file, err := os.Create(filePath) // #nosec G304 -- filePath is controlled by application, not user input
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", filePath, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			// Log the error but don't override the main error
			fmt.Printf("Warning: failed to close file %s: %v\n", filePath, closeErr)
		}
	}()

	encoder := gob.NewEncoder(file)
	if err := encoder.Encode(object); err != nil {
		return fmt.Errorf("failed to gob encode to file %s: %w", filePath, err)
	}
	return nil
}

// loadGob decodes a gob-encoded file from filePath into the provided object
// pointer. If the file does not exist it returns os.ErrNotExist, allowing
// callers to handle fresh starts gracefully.
func loadGob(filePath string, objectPointer interface{}) error {
	file, err := os.Open(filePath) // #nosec G304 -- filePath is controlled by application, not user input
	if err != nil {
		if os.IsNotExist(err) {
			return os.ErrNotExist
		}
		return fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			// Log the error but don't override the main error
			fmt.Printf("Warning: failed to close file %s: %v\n", filePath, closeErr)
		}
	}()

	decoder := gob.NewDecoder(file)
	if err := decoder.Decode(objectPointer); err != nil {
		return fmt.Errorf("failed to gob decode from file %s: %w", filePath, err)
	}
	return nil
}
