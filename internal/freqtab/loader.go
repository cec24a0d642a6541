package freqtab

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ErrNoHeadwordColumn is returned when an export's header row contains no
// recognizable headword column.
var ErrNoHeadwordColumn = errors.New("no recognizable headword column")

// ErrNoExports is returned when no frequency export files are found.
var ErrNoExports = errors.New("no frequency export files found")

// Column aliases recognized in export headers, matched case- and
// whitespace-insensitively. "type" is the label older concordance exports
// use for the headword column.
var (
	headwordAliases = map[string]bool{"headword": true, "word": true, "type": true, "lemma": true}
	freqAliases     = map[string]bool{"freq": true, "frequency": true, "count": true}
)

// CollectExportFiles returns the frequency export files under dir,
// following the concordance tool's naming convention: the canonical
// Word_results.txt plus any numbered Word_results_*.txt, in sorted order.
func CollectExportFiles(dir string) ([]string, error) {
	var paths []string

	canonical := filepath.Join(dir, "Word_results.txt")
	if _, err := os.Stat(canonical); err == nil {
		paths = append(paths, canonical)
	}

	numbered, err := filepath.Glob(filepath.Join(dir, "Word_results_*.txt"))
	if err != nil {
		return nil, fmt.Errorf("failed to glob export files: %w", err)
	}
	sort.Strings(numbered)
	paths = append(paths, numbered...)

	seen := make(map[string]bool, len(paths))
	unique := paths[:0]
	for _, p := range paths {
		if !seen[p] {
			seen[p] = true
			unique = append(unique, p)
		}
	}

	if len(unique) == 0 {
		return nil, fmt.Errorf("%w in %s (expected Word_results.txt or Word_results_*.txt)", ErrNoExports, dir)
	}
	return unique, nil
}

// InferSchema scans a header line for recognized headword and frequency
// column aliases. Tab-delimited layouts are detected from the header;
// otherwise columns split on runs of whitespace.
func InferSchema(headerLine string) (Schema, error) {
	schema := Schema{WordCol: -1, FreqCol: -1}

	var parts []string
	if strings.Contains(headerLine, "\t") {
		schema.TabDelimited = true
		parts = strings.Split(headerLine, "\t")
	} else {
		parts = strings.Fields(headerLine)
	}

	for i, part := range parts {
		label := strings.ToLower(strings.TrimSpace(part))
		if schema.WordCol == -1 && headwordAliases[label] {
			schema.WordCol = i
		}
		if schema.FreqCol == -1 && freqAliases[label] {
			schema.FreqCol = i
		}
	}

	if schema.WordCol == -1 {
		return schema, ErrNoHeadwordColumn
	}
	return schema, nil
}

// ParseExport reads one frequency export, applying normalize to every
// headword. Malformed rows (missing fields, no numeric frequency, tokens
// that normalize to nothing) are skipped, never fatal.
func ParseExport(path string, normalize func(string) string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open export file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
		}
		return nil, nil // empty file
	}

	schema, err := InferSchema(scanner.Text())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var records []Record
	lineNum := 1
	skipped := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var parts []string
		if schema.TabDelimited {
			parts = strings.Split(line, "\t")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
		} else {
			parts = strings.Fields(line)
		}

		freq, ok := rowFrequency(parts, schema)
		if !ok {
			slog.Debug("Skipping row without frequency", "path", path, "line", lineNum)
			skipped++
			continue
		}

		if schema.WordCol >= len(parts) || parts[schema.WordCol] == "" {
			slog.Debug("Skipping row without headword", "path", path, "line", lineNum)
			skipped++
			continue
		}

		word := normalize(parts[schema.WordCol])
		if word == "" {
			skipped++
			continue
		}

		records = append(records, Record{Word: word, Freq: freq})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	slog.Debug("Export parsed", "path", path, "rows", len(records), "skipped", skipped)
	return records, nil
}

// rowFrequency extracts the frequency from a row: the schema's frequency
// column when present and numeric, otherwise the last numeric token.
func rowFrequency(parts []string, schema Schema) (float64, bool) {
	if schema.FreqCol >= 0 && schema.FreqCol < len(parts) {
		if freq, err := strconv.ParseFloat(parts[schema.FreqCol], 64); err == nil {
			return freq, true
		}
	}
	for i := len(parts) - 1; i >= 0; i-- {
		if freq, err := strconv.ParseFloat(parts[i], 64); err == nil {
			return freq, true
		}
	}
	return 0, false
}

// Merge parses every export file and sums frequencies per normalized word.
// Files whose header has no recognizable headword column are skipped with
// a warning; the merge fails only when no file at all could be parsed.
func Merge(paths []string, normalize func(string) string) (map[string]float64, error) {
	if len(paths) == 0 {
		return nil, ErrNoExports
	}

	merged := make(map[string]float64)
	parsed := 0
	for _, path := range paths {
		records, err := ParseExport(path, normalize)
		if err != nil {
			slog.Warn("Skipping unparseable export", "path", path, "err", err)
			continue
		}
		parsed++
		for _, rec := range records {
			merged[rec.Word] += rec.Freq
		}
	}

	if parsed == 0 {
		return nil, fmt.Errorf("%w in any of %d export file(s)", ErrNoHeadwordColumn, len(paths))
	}

	slog.Info("Exports merged", "files", parsed, "distinct_words", len(merged))
	return merged, nil
}
