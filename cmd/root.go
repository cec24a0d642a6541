package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/nmordaunt/vocabsift/internal/vocabcmd"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "vocabsift",
		Short: "Difficult-vocabulary extraction with dictionary enrichment",
		Long: `Vocabsift extracts infrequent vocabulary from concordance word-frequency
exports, filters out common words using an NGSL-style reference list, and
enriches the surviving words with definitions from dictionaryapi.dev.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose logging")

	// Add subcommands
	cmd.AddCommand(vocabcmd.NewExtractCmd())
	cmd.AddCommand(vocabcmd.NewDefineCmd())
	cmd.AddCommand(vocabcmd.NewExportCmd())

	return cmd
}
