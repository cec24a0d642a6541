package wordlist

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// headerAliases are first-column labels that mark a reference file's first
// row as a header rather than data.
var headerAliases = map[string]bool{
	"word":     true,
	"lemma":    true,
	"headword": true,
	"item":     true,
}

// LoadReferenceSet reads a reference table (NGSL-style CSV) and returns the
// set of lowercase base forms from its first column. A header row, if
// present, is detected and skipped.
func LoadReferenceSet(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open reference table: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // column counts vary across NGSL exports

	set := make(map[string]struct{}, 3000)
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed row: skip, keep reading.
			slog.Debug("Skipping malformed reference row", "path", path, "err", err)
			continue
		}
		row++
		if len(record) == 0 {
			continue
		}

		lemma := strings.ToLower(strings.TrimSpace(record[0]))
		if lemma == "" {
			continue
		}
		if row == 1 && looksLikeHeader(lemma, record) {
			continue
		}
		set[lemma] = struct{}{}
	}

	if len(set) == 0 {
		return nil, fmt.Errorf("reference table %s contains no words", path)
	}

	slog.Debug("Reference set loaded", "path", path, "words", len(set))
	return set, nil
}

// looksLikeHeader reports whether a file's first row is a column header.
// The first cell matching a known label is a header; so is a multi-column
// row whose remaining cells hold no numbers, since NGSL data rows carry
// rank or frequency figures alongside the word.
func looksLikeHeader(first string, record []string) bool {
	if headerAliases[first] {
		return true
	}
	if len(record) < 2 {
		return false
	}
	for _, field := range record[1:] {
		if _, err := strconv.ParseFloat(strings.TrimSpace(field), 64); err == nil {
			return false
		}
	}
	return true
}
