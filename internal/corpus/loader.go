// Package corpus reads the flat TSV inputs: the instrument corpus and the
// benchmark query set. Parsing is deliberately lenient; malformed lines are
// skipped silently rather than reported.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gcbaptista/go-fuzzy-bench/model"
)

// Corpus exports run to a few hundred thousand lines; size the scanner
// buffer so a long name column cannot abort the load.
const maxLineSize = 1024 * 1024

// LoadInstruments reads the corpus TSV at path. The first line is a header
// and is always skipped; every other line must contain at least two tabs
// (symbol, name, isin) or it is dropped. The third column takes the
// remainder of the line.
func LoadInstruments(path string) ([]model.Instrument, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file %s: %w", path, err)
	}
	defer file.Close()

	instruments, err := ReadInstruments(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file %s: %w", path, err)
	}
	return instruments, nil
}

// ReadInstruments parses corpus records from r. See LoadInstruments for the
// line format.
func ReadInstruments(r io.Reader) ([]model.Instrument, error) {
	instruments := make([]model.Instrument, 0, 1024)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			first = false // header
			continue
		}
		symbol, name, isin, ok := splitThree(line)
		if !ok {
			continue
		}
		instruments = append(instruments, model.Instrument{Symbol: symbol, Name: name, ISIN: isin})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return instruments, nil
}

// LoadQueries reads the benchmark query TSV at path. There is no header
// line. Each record is `text \t field \t category` with an optional fourth
// `expected_name` column used for ground-truth evaluation; lines missing
// either of the first two tabs are skipped.
func LoadQueries(path string) ([]model.Query, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open queries file %s: %w", path, err)
	}
	defer file.Close()

	queries, err := ReadQueries(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read queries file %s: %w", path, err)
	}
	return queries, nil
}

// ReadQueries parses benchmark query records from r. See LoadQueries for the
// line format.
func ReadQueries(r io.Reader) ([]model.Query, error) {
	var queries []model.Query

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		text, field, rest, ok := splitThree(line)
		if !ok {
			continue
		}
		category := rest
		expected := ""
		if tab := strings.IndexByte(rest, '\t'); tab >= 0 {
			category = rest[:tab]
			expected = rest[tab+1:]
			if tab := strings.IndexByte(expected, '\t'); tab >= 0 {
				expected = expected[:tab]
			}
		}
		queries = append(queries, model.Query{
			Text:         text,
			Field:        field,
			Category:     category,
			ExpectedName: expected,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return queries, nil
}

// ForEachPair reads quality-mode query lines (`text \t field`) from r and
// invokes fn for each. Blank lines and lines without a tab are skipped; the
// field is everything after the first tab. Processing stops at the first fn
// error.
func ForEachPair(r io.Reader, fn func(text, field string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		tab := strings.IndexByte(line, '\t')
		if tab < 0 {
			continue
		}
		if err := fn(line[:tab], line[tab+1:]); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// splitThree splits a line at its first two tabs. The third part takes the
// remainder of the line.
func splitThree(line string) (first, second, rest string, ok bool) {
	t1 := strings.IndexByte(line, '\t')
	if t1 < 0 {
		return "", "", "", false
	}
	tail := line[t1+1:]
	t2 := strings.IndexByte(tail, '\t')
	if t2 < 0 {
		return "", "", "", false
	}
	return line[:t1], tail[:t2], tail[t2+1:], true
}
