package results

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/parquet-go/parquet-go"
)

// ParquetRecord is the Parquet layout of a definition row.
type ParquetRecord struct {
	Word       string `parquet:"word"`
	Phonetic   string `parquet:"phonetic,optional"`
	POS        string `parquet:"pos,optional"`
	Definition string `parquet:"definition,optional"`
	Example    string `parquet:"example,optional"`
	Status     string `parquet:"status"`
}

// ExportParquet writes the definition records to a Parquet file, for
// loading into analysis tools that choke on loosely-typed CSV.
func ExportParquet(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}
	defer f.Close()

	writer := parquet.NewGenericWriter[ParquetRecord](f)

	rows := make([]ParquetRecord, 0, len(records))
	for _, rec := range records {
		rows = append(rows, ParquetRecord{
			Word:       rec.Word,
			Phonetic:   rec.Phonetic,
			POS:        rec.POS,
			Definition: rec.Definition,
			Example:    rec.Example,
			Status:     string(rec.Status),
		})
	}

	if _, err := writer.Write(rows); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write parquet rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}

	slog.Info("Parquet export written", "path", path, "rows", len(rows))
	return nil
}
