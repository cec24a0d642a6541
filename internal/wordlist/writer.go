package wordlist

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// WordListHeader is the fixed header label of the difficult-word list.
const WordListHeader = "Word"

// WriteWordList writes the difficult-word list as a single-column CSV,
// one word per row under a fixed header. Any prior output is overwritten;
// the extraction pipeline is cheap enough to rerun in full.
func WriteWordList(path string, words []Word) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create word list: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{WordListHeader}); err != nil {
		return fmt.Errorf("failed to write word list header: %w", err)
	}
	for _, word := range words {
		if err := w.Write([]string{word.Text}); err != nil {
			return fmt.Errorf("failed to write word list row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush word list: %w", err)
	}
	return nil
}

// ReadWordList loads a difficult-word list written by WriteWordList.
// Extra columns are tolerated; only the first is used.
func ReadWordList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}

	var words []string
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		word := strings.TrimSpace(row[0])
		if word == "" {
			continue
		}
		if i == 0 && strings.EqualFold(word, WordListHeader) {
			continue
		}
		words = append(words, word)
	}
	return words, nil
}
