package wordlist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFilterConfigMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "filter.yaml")

	doc := `version: 2
ceiling: 250
stoplist:
  - chapter
lemmas:
  wrought: work
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadFilterConfig(path)
	if err != nil {
		t.Fatalf("LoadFilterConfig failed: %v", err)
	}

	if cfg.Version != 2 {
		t.Errorf("Expected version 2, got %d", cfg.Version)
	}
	if cfg.Ceiling != 250 {
		t.Errorf("Expected ceiling 250, got %v", cfg.Ceiling)
	}
	if cfg.MinLength != DefaultMinLength {
		t.Errorf("Expected default min length %d, got %d", DefaultMinLength, cfg.MinLength)
	}

	// File stoplist extends the defaults.
	stop := make(map[string]bool)
	for _, w := range cfg.Stoplist {
		stop[w] = true
	}
	if !stop["chapter"] {
		t.Error("Expected file stoplist entry to be present")
	}
	if !stop["the"] {
		t.Error("Expected default stoplist entries to survive the merge")
	}

	// File lemmas extend the defaults.
	if cfg.Lemmas["wrought"] != "work" {
		t.Errorf("Expected wrought -> work, got %q", cfg.Lemmas["wrought"])
	}
	if cfg.Lemmas["thought"] != "think" {
		t.Errorf("Expected default lemma thought -> think to survive, got %q", cfg.Lemmas["thought"])
	}
}

func TestLoadFilterConfigMissingFile(t *testing.T) {
	_, err := LoadFilterConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing config file")
	}
}
