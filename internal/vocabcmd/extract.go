package vocabcmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/nmordaunt/vocabsift/internal/freqtab"
	"github.com/nmordaunt/vocabsift/internal/wordlist"
	"github.com/spf13/cobra"
)

type extractOptions struct {
	dir            string
	referencePath  string
	referenceURL   string
	fetchReference bool
	outputPath     string
	configPath     string
	ceiling        float64
	minLength      int
}

// NewExtractCmd creates the extract command (pipeline 1: merge, normalize,
// filter, write the difficult-word list).
func NewExtractCmd() *cobra.Command {
	var opts extractOptions

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract difficult vocabulary from concordance frequency exports",
		Long: `Extract merges the word-frequency exports in a directory, normalizes the
headwords, and keeps only the words that are hard enough to be worth
studying: not in the reference common-word list (directly or via their
lemma), not on the stoplist, and not above the frequency ceiling.

The output is a single-column CSV, rarest words first, consumed by the
define command.`,
		Example: `  # Process Word_results*.txt in the current directory
  vocabsift extract

  # Custom locations and a stricter ceiling
  vocabsift extract --dir ./exports --reference ./NGSL_1.2_stats.csv --ceiling 500

  # Extend the stoplist and lemma table from a config file
  vocabsift extract --config filter.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeExtract(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.dir, "dir", ".", "Directory containing Word_results*.txt exports")
	cmd.Flags().StringVar(&opts.referencePath, "reference", "NGSL_1.2_stats.csv", "Path to the reference common-word table")
	cmd.Flags().StringVar(&opts.referenceURL, "reference-url", "", "URL to download the reference table from (with --fetch-reference)")
	cmd.Flags().BoolVar(&opts.fetchReference, "fetch-reference", false, "Download the reference table when the file is missing")
	cmd.Flags().StringVar(&opts.outputPath, "output", "difficult_words.csv", "Output path for the difficult-word list")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to a YAML filter config (stoplist, lemmas, ceiling)")
	cmd.Flags().Float64Var(&opts.ceiling, "ceiling", 0, "Frequency ceiling override (0 uses the config value)")
	cmd.Flags().IntVar(&opts.minLength, "min-length", 0, "Minimum word length override (0 uses the config value)")

	return cmd
}

func executeExtract(ctx context.Context, opts extractOptions) error {
	cfg := wordlist.DefaultFilterConfig()
	if opts.configPath != "" {
		loaded, err := wordlist.LoadFilterConfig(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if opts.ceiling > 0 {
		cfg.Ceiling = opts.ceiling
	}
	if opts.minLength > 0 {
		cfg.MinLength = opts.minLength
	}

	files, err := freqtab.CollectExportFiles(opts.dir)
	if err != nil {
		return err
	}
	slog.Info("Export files collected", "dir", opts.dir, "files", len(files))

	if _, err := os.Stat(opts.referencePath); os.IsNotExist(err) {
		if opts.fetchReference {
			if opts.referenceURL == "" {
				return fmt.Errorf("--fetch-reference requires --reference-url")
			}
			if err := wordlist.DownloadReference(ctx, opts.referenceURL, opts.referencePath); err != nil {
				return err
			}
		} else {
			return fmt.Errorf("reference table not found: %s\n\nPlace the NGSL CSV next to the exports, or point --reference at it,\nor download it with --fetch-reference --reference-url <url>", opts.referencePath)
		}
	}

	reference, err := wordlist.LoadReferenceSet(opts.referencePath)
	if err != nil {
		return err
	}

	merged, err := freqtab.Merge(files, wordlist.Normalize)
	if err != nil {
		return err
	}

	filter := wordlist.NewFilter(cfg, reference)
	difficult := filter.Apply(merged)

	if err := wordlist.WriteWordList(opts.outputPath, difficult); err != nil {
		return err
	}

	fmt.Printf("%d difficult words saved to %s\n", len(difficult), opts.outputPath)
	return nil
}
