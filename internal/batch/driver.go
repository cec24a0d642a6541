// Package batch drives the resumable definition-enrichment run: it walks
// the word list, skips words already in a terminal state, throttles
// requests, and appends one complete record per word.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nmordaunt/vocabsift/internal/dictionary"
	"github.com/nmordaunt/vocabsift/internal/results"
)

// Driver runs one enrichment pass over a word list.
type Driver struct {
	Provider dictionary.Provider
	Fallback dictionary.Provider // optional, consulted on not-found
	Store    *results.Store
	Delay    time.Duration // pause between words, respects the remote service
	Limit    int           // cap on new words this run; <0 means no cap
}

// Summary counts the outcomes of a run.
type Summary struct {
	Fetched  int
	Found    int
	NotFound int
	Errors   int
	Skipped  int
}

// Run processes every word absent from processed, up to Limit new words.
// A word that exhausts its retries is recorded with status error rather
// than aborting the batch. Cancelling ctx stops the run, even mid-lookup;
// records already appended stay valid and the interrupted word is not
// recorded, so the next run retries it.
func (d *Driver) Run(ctx context.Context, words []string, processed map[string]results.Record) (Summary, error) {
	var sum Summary

	for i, word := range words {
		key := strings.ToLower(word)
		if _, done := processed[key]; done {
			sum.Skipped++
			continue
		}
		if d.Limit >= 0 && sum.Fetched >= d.Limit {
			break
		}
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		rec, err := d.define(ctx, word)
		if err != nil {
			// Interrupted mid-lookup: the word was never resolved, so no
			// record is written and the next run picks it up again.
			return sum, err
		}
		if err := d.Store.Append(rec); err != nil {
			return sum, fmt.Errorf("failed to persist record for %q: %w", word, err)
		}
		processed[key] = rec
		sum.Fetched++
		switch rec.Status {
		case dictionary.StatusFound:
			sum.Found++
		case dictionary.StatusNotFound:
			sum.NotFound++
		default:
			sum.Errors++
		}

		slog.Info("Word processed",
			"word", word,
			"status", string(rec.Status),
			"progress", fmt.Sprintf("%d/%d", i+1, len(words)))

		if d.Delay > 0 {
			if err := sleep(ctx, d.Delay); err != nil {
				return sum, err
			}
		}
	}

	return sum, nil
}

// define resolves one word to a terminal record, consulting the fallback
// provider when the primary has no entry. A ctx cancellation that aborts a
// lookup in flight is returned as an error, never as a terminal record: an
// interrupted word stays pending.
func (d *Driver) define(ctx context.Context, word string) (results.Record, error) {
	def, err := d.Provider.Define(ctx, word)

	if errors.Is(err, dictionary.ErrNotFound) && d.Fallback != nil {
		slog.Debug("Primary lookup empty, trying fallback", "word", word)
		fbDef, fbErr := d.Fallback.Define(ctx, word)
		switch {
		case fbErr == nil:
			def, err = fbDef, nil
		case ctx.Err() != nil:
			return results.Record{}, ctx.Err()
		case !errors.Is(fbErr, dictionary.ErrNotFound):
			slog.Debug("Fallback lookup failed", "word", word, "err", fbErr)
		}
	}

	switch {
	case err == nil:
		return results.Record{
			Word:       word,
			Phonetic:   def.Phonetic,
			POS:        def.POS,
			Definition: def.Definition,
			Example:    def.Example,
			Status:     dictionary.StatusFound,
		}, nil
	case errors.Is(err, dictionary.ErrNotFound):
		return results.Record{Word: word, Status: dictionary.StatusNotFound}, nil
	case ctx.Err() != nil:
		return results.Record{}, ctx.Err()
	default:
		slog.Debug("Lookup failed after retries", "word", word, "err", err)
		return results.Record{Word: word, Status: dictionary.StatusError}, nil
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
