package vocabcmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nmordaunt/vocabsift/internal/batch"
	"github.com/nmordaunt/vocabsift/internal/dictionary"
	"github.com/nmordaunt/vocabsift/internal/results"
	"github.com/nmordaunt/vocabsift/internal/wordlist"
	"github.com/spf13/cobra"
)

type defineOptions struct {
	inputPath       string
	outputPath      string
	endpoint        string
	limit           int
	delay           time.Duration
	timeout         time.Duration
	retries         int
	fallback        string
	fallbackModel   string
	refetchNotFound bool
}

// NewDefineCmd creates the define command (pipeline 2: resumable
// definition enrichment).
func NewDefineCmd() *cobra.Command {
	var opts defineOptions

	cmd := &cobra.Command{
		Use:   "define",
		Short: "Fetch dictionary definitions for the difficult-word list",
		Long: `Define reads the difficult-word list and looks each word up against
dictionaryapi.dev, recording the first phonetic spelling, part of speech,
definition, and example sentence.

The output table is append-only and resumable: words already recorded
(found, not-found, or error) are skipped on the next run. Words the
dictionary does not know can optionally be retried with --refetch-not-found,
or handed to a Gemini fallback with --fallback gemini (requires
GEMINI_API_KEY).`,
		Example: `  # Define everything still pending
  vocabsift define

  # A throttled trial run of 20 words
  vocabsift define --limit 20 --delay 1s

  # Retry words the dictionary previously had no entry for
  vocabsift define --refetch-not-found --fallback gemini`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeDefine(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.inputPath, "input", "difficult_words.csv", "Input word list (written by extract)")
	cmd.Flags().StringVar(&opts.outputPath, "output", "difficult_words_with_defs.csv", "Output definitions table")
	cmd.Flags().StringVar(&opts.endpoint, "endpoint", dictionary.DefaultBaseURL, "Dictionary lookup endpoint")
	cmd.Flags().IntVar(&opts.limit, "limit", -1, "Maximum number of new words to process this run (-1 for all)")
	cmd.Flags().DurationVar(&opts.delay, "delay", 300*time.Millisecond, "Delay between requests")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "Per-request timeout")
	cmd.Flags().IntVar(&opts.retries, "retries", 3, "Maximum retry attempts per word on transient failures")
	cmd.Flags().StringVar(&opts.fallback, "fallback", "none", "Fallback provider for not-found words (none or gemini)")
	cmd.Flags().StringVar(&opts.fallbackModel, "fallback-model", "", "Model for the gemini fallback (defaults to GEMINI_MODEL)")
	cmd.Flags().BoolVar(&opts.refetchNotFound, "refetch-not-found", false, "Retry words previously recorded as not-found")

	return cmd
}

func executeDefine(ctx context.Context, opts defineOptions) error {
	words, err := wordlist.ReadWordList(opts.inputPath)
	if err != nil {
		return fmt.Errorf("cannot read word list (run extract first?): %w", err)
	}
	slog.Info("Word list loaded", "path", opts.inputPath, "words", len(words))

	var fallback dictionary.Provider
	switch opts.fallback {
	case "", "none":
	case "gemini":
		fallback = dictionary.NewGemini(opts.fallbackModel)
	default:
		return fmt.Errorf("unsupported fallback provider: %s", opts.fallback)
	}

	if opts.refetchNotFound {
		err := results.Compact(opts.outputPath, func(rec results.Record) bool {
			return rec.Status != dictionary.StatusNotFound
		})
		if err != nil {
			return err
		}
	}

	existing, err := results.Load(opts.outputPath)
	if err != nil {
		return err
	}
	processed := results.Processed(existing)
	slog.Info("Resuming definitions table", "path", opts.outputPath, "already_processed", len(processed))

	store, err := results.Open(opts.outputPath)
	if err != nil {
		return err
	}
	defer store.Close()

	driver := &batch.Driver{
		Provider: dictionary.NewClient(opts.endpoint, opts.timeout, opts.retries, opts.delay),
		Fallback: fallback,
		Store:    store,
		Delay:    opts.delay,
		Limit:    opts.limit,
	}

	sum, err := driver.Run(ctx, words, processed)
	if err != nil {
		return err
	}

	// Failed lookups are data, not a failed run.
	fmt.Printf("Processed %d new words (%d found, %d not found, %d errors, %d already done) into %s\n",
		sum.Fetched, sum.Found, sum.NotFound, sum.Errors, sum.Skipped, opts.outputPath)
	return nil
}
