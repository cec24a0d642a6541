package batch

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/nmordaunt/vocabsift/internal/dictionary"
	"github.com/nmordaunt/vocabsift/internal/results"
)

// fakeProvider returns canned outcomes per word and counts lookups.
type fakeProvider struct {
	notFound map[string]bool
	failing  map[string]bool
	calls    map[string]int
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		notFound: make(map[string]bool),
		failing:  make(map[string]bool),
		calls:    make(map[string]int),
	}
}

func (p *fakeProvider) Define(_ context.Context, word string) (*dictionary.Definition, error) {
	p.calls[word]++
	if p.failing[word] {
		return nil, errors.New("connection reset")
	}
	if p.notFound[word] {
		return nil, dictionary.ErrNotFound
	}
	return &dictionary.Definition{Word: word, Definition: "a definition of " + word}, nil
}

func openStore(t *testing.T) (*results.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "defs.csv")
	store, err := results.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, path
}

func TestRunRecordsTerminalStatuses(t *testing.T) {
	provider := newFakeProvider()
	provider.notFound["half-reproachful"] = true
	provider.failing["xyzzy"] = true

	store, path := openStore(t)
	driver := &Driver{Provider: provider, Store: store, Limit: -1}

	sum, err := driver.Run(context.Background(), []string{"orgastic", "half-reproachful", "xyzzy"}, map[string]results.Record{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if sum.Fetched != 3 || sum.Found != 1 || sum.NotFound != 1 || sum.Errors != 1 {
		t.Errorf("Unexpected summary: %+v", sum)
	}

	loaded, err := results.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	byWord := results.Processed(loaded)
	if byWord["orgastic"].Status != dictionary.StatusFound {
		t.Errorf("Expected orgastic found, got %q", byWord["orgastic"].Status)
	}
	if byWord["half-reproachful"].Status != dictionary.StatusNotFound {
		t.Errorf("Expected half-reproachful not-found, got %q", byWord["half-reproachful"].Status)
	}
	if rec := byWord["half-reproachful"]; rec.Definition != "" || rec.Phonetic != "" {
		t.Errorf("Not-found record should have empty fields: %+v", rec)
	}
	if byWord["xyzzy"].Status != dictionary.StatusError {
		t.Errorf("Expected xyzzy error, got %q", byWord["xyzzy"].Status)
	}
}

func TestRunSkipsProcessedWords(t *testing.T) {
	provider := newFakeProvider()
	store, path := openStore(t)
	driver := &Driver{Provider: provider, Store: store, Limit: -1}

	processed := results.Processed([]results.Record{
		{Word: "Orgastic", Status: dictionary.StatusFound},
		{Word: "xyzzy", Status: dictionary.StatusError},
	})

	sum, err := driver.Run(context.Background(), []string{"orgastic", "xyzzy", "punctilious"}, processed)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if sum.Fetched != 1 || sum.Skipped != 2 {
		t.Errorf("Unexpected summary: %+v", sum)
	}
	if provider.calls["orgastic"] != 0 || provider.calls["xyzzy"] != 0 {
		t.Error("Run must not re-issue requests for words in a terminal state")
	}
	if provider.calls["punctilious"] != 1 {
		t.Errorf("Expected one lookup for the new word, got %d", provider.calls["punctilious"])
	}

	loaded, err := results.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 1 {
		t.Errorf("Expected only the new record appended, got %d rows", len(loaded))
	}
}

func TestRunHonorsLimit(t *testing.T) {
	provider := newFakeProvider()
	store, _ := openStore(t)
	driver := &Driver{Provider: provider, Store: store, Limit: 2}

	sum, err := driver.Run(context.Background(), []string{"one-off", "two-fold", "three-ply"}, map[string]results.Record{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if sum.Fetched != 2 {
		t.Errorf("Expected 2 fetched under limit, got %d", sum.Fetched)
	}
	if provider.calls["three-ply"] != 0 {
		t.Error("Limit exceeded: third word was looked up")
	}
}

func TestRunFallbackOnNotFound(t *testing.T) {
	primary := newFakeProvider()
	primary.notFound["orgastic"] = true
	fallback := newFakeProvider()

	store, path := openStore(t)
	driver := &Driver{Provider: primary, Fallback: fallback, Store: store, Limit: -1}

	sum, err := driver.Run(context.Background(), []string{"orgastic", "punctilious"}, map[string]results.Record{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if sum.Found != 2 {
		t.Errorf("Expected fallback to upgrade not-found to found, summary: %+v", sum)
	}
	if fallback.calls["orgastic"] != 1 {
		t.Errorf("Expected one fallback lookup, got %d", fallback.calls["orgastic"])
	}
	if fallback.calls["punctilious"] != 0 {
		t.Error("Fallback must not run for words the primary found")
	}

	loaded, err := results.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if results.Processed(loaded)["orgastic"].Status != dictionary.StatusFound {
		t.Error("Expected orgastic found via fallback")
	}
}

// interruptingProvider cancels its context while the lookup is in flight,
// the way an operator interrupt lands mid-request.
type interruptingProvider struct {
	cancel context.CancelFunc
}

func (p *interruptingProvider) Define(ctx context.Context, _ string) (*dictionary.Definition, error) {
	p.cancel()
	return nil, ctx.Err()
}

func TestRunInterruptMidLookupLeavesWordPending(t *testing.T) {
	store, path := openStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	driver := &Driver{Provider: &interruptingProvider{cancel: cancel}, Store: store, Limit: -1}

	_, err := driver.Run(ctx, []string{"orgastic"}, map[string]results.Record{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	store.Close()

	loaded, err := results.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("Interrupted word must not be recorded, got %+v", loaded)
	}

	// A fresh run picks the word up again.
	store2, err := results.Open(path)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer store2.Close()
	provider := newFakeProvider()
	driver2 := &Driver{Provider: provider, Store: store2, Limit: -1}

	sum, err := driver2.Run(context.Background(), []string{"orgastic"}, results.Processed(loaded))
	if err != nil {
		t.Fatalf("Resumed run failed: %v", err)
	}
	if sum.Fetched != 1 || sum.Found != 1 {
		t.Errorf("Expected the interrupted word to be fetched on resume, summary: %+v", sum)
	}
	if provider.calls["orgastic"] != 1 {
		t.Errorf("Expected one lookup on resume, got %d", provider.calls["orgastic"])
	}
}

func TestRunInterruptDuringFallbackLeavesWordPending(t *testing.T) {
	primary := newFakeProvider()
	primary.notFound["orgastic"] = true

	store, path := openStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	driver := &Driver{
		Provider: primary,
		Fallback: &interruptingProvider{cancel: cancel},
		Store:    store,
		Limit:    -1,
	}

	_, err := driver.Run(ctx, []string{"orgastic"}, map[string]results.Record{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	store.Close()

	loaded, err := results.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("Word interrupted during fallback must not be recorded, got %+v", loaded)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	provider := newFakeProvider()
	store, path := openStore(t)
	driver := &Driver{Provider: provider, Store: store, Limit: -1}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := driver.Run(ctx, []string{"orgastic"}, map[string]results.Record{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}

	// The table stays loadable after an interrupted run.
	if _, err := results.Load(path); err != nil {
		t.Errorf("Table unreadable after cancellation: %v", err)
	}
}
