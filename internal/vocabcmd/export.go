package vocabcmd

import (
	"fmt"

	"github.com/nmordaunt/vocabsift/internal/results"
	"github.com/spf13/cobra"
)

// NewExportCmd creates the export command, converting the enriched CSV
// table into Parquet for analysis tools.
func NewExportCmd() *cobra.Command {
	var inputPath string
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the definitions table to Parquet",
		Example: `  vocabsift export
  vocabsift export --input defs.csv --output defs.parquet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := results.Load(inputPath)
			if err != nil {
				return err
			}
			if records == nil {
				return fmt.Errorf("definitions table not found: %s (run define first)", inputPath)
			}
			if err := results.ExportParquet(outputPath, records); err != nil {
				return err
			}
			fmt.Printf("Exported %d records to %s\n", len(records), outputPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "difficult_words_with_defs.csv", "Input definitions table")
	cmd.Flags().StringVar(&outputPath, "output", "difficult_words_with_defs.parquet", "Output Parquet file")

	return cmd
}
