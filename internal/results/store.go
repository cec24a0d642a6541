package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/nmordaunt/vocabsift/internal/dictionary"
)

// Header is the fixed column layout of the definitions table.
var Header = []string{"Word", "Phonetic", "POS", "Definition", "Example", "Status"}

// Record is one persisted definition row.
type Record struct {
	Word       string
	Phonetic   string
	POS        string
	Definition string
	Example    string
	Status     dictionary.Status
}

// Load reads an existing definitions table. A missing file is not an
// error; it returns nil, meaning nothing has been processed yet. An
// existing file with no data rows returns an empty, non-nil slice, so
// callers can tell an absent table from an empty one. Rows written by
// older versions without a Status column are accepted: a row with any
// definition data counts as found, the rest as not-found.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open definitions table: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var records []Record
	row := 0
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read definitions table: %w", err)
		}
		row++
		if len(fields) == 0 || strings.TrimSpace(fields[0]) == "" {
			continue
		}
		if row == 1 && strings.EqualFold(fields[0], Header[0]) {
			continue
		}
		records = append(records, recordFromRow(fields))
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

func recordFromRow(fields []string) Record {
	get := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}
	rec := Record{
		Word:       strings.TrimSpace(get(0)),
		Phonetic:   get(1),
		POS:        get(2),
		Definition: get(3),
		Example:    get(4),
		Status:     dictionary.Status(get(5)),
	}
	if rec.Status == "" {
		// Legacy row without a status column.
		if rec.Definition != "" || rec.Phonetic != "" || rec.POS != "" {
			rec.Status = dictionary.StatusFound
		} else {
			rec.Status = dictionary.StatusNotFound
		}
	}
	return rec
}

// Processed indexes records by lowercase word. Later rows win, though a
// completed run never produces duplicates in the first place.
func Processed(records []Record) map[string]Record {
	processed := make(map[string]Record, len(records))
	for _, rec := range records {
		processed[strings.ToLower(rec.Word)] = rec
	}
	return processed
}

// Store appends definition records to a CSV table. Each Append writes one
// fully-formed row and flushes it to the OS before returning, so an
// interrupted run leaves the table re-loadable with every prior record
// intact.
type Store struct {
	path string
	f    *os.File
	w    *csv.Writer
}

// Open opens (or creates) the definitions table for appending, writing the
// header when the file is new or empty.
func Open(path string) (*Store, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open definitions table: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat definitions table: %w", err)
	}

	s := &Store{path: path, f: f, w: csv.NewWriter(f)}
	if info.Size() == 0 {
		if err := s.w.Write(Header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
		s.w.Flush()
		if err := s.w.Error(); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to flush header: %w", err)
		}
	}
	return s, nil
}

// Append writes one record and flushes it before returning.
func (s *Store) Append(rec Record) error {
	row := []string{rec.Word, rec.Phonetic, rec.POS, rec.Definition, rec.Example, string(rec.Status)}
	if err := s.w.Write(row); err != nil {
		return fmt.Errorf("failed to write record for %q: %w", rec.Word, err)
	}
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		return fmt.Errorf("failed to flush record for %q: %w", rec.Word, err)
	}
	if err := s.f.Sync(); err != nil {
		return fmt.Errorf("failed to sync definitions table: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying file.
func (s *Store) Close() error {
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		s.f.Close()
		return err
	}
	return s.f.Close()
}

// Compact rewrites the table keeping only records for which keep returns
// true. The rewrite goes through a temp file and a rename so an interrupted
// compaction never corrupts the existing table. A missing table is a no-op.
func Compact(path string, keep func(Record) bool) error {
	records, err := Load(path)
	if err != nil {
		return err
	}
	if records == nil {
		return nil
	}

	tempPath := path + ".tmp"
	f, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("failed to create temp table: %w", err)
	}

	w := csv.NewWriter(f)
	kept := 0
	err = w.Write(Header)
	for _, rec := range records {
		if err != nil {
			break
		}
		if !keep(rec) {
			continue
		}
		err = w.Write([]string{rec.Word, rec.Phonetic, rec.POS, rec.Definition, rec.Example, string(rec.Status)})
		kept++
	}
	if err == nil {
		w.Flush()
		err = w.Error()
	}
	if err != nil {
		f.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to write temp table: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to close temp table: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to replace definitions table: %w", err)
	}

	slog.Debug("Definitions table compacted", "path", path, "kept", kept, "dropped", len(records)-kept)
	return nil
}
