package wordlist

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FilterConfig is the operator-editable filter configuration document.
// Stoplist entries and lemma mappings from the file extend the built-in
// tables; scalar settings replace the defaults only when set.
type FilterConfig struct {
	Version   int               `yaml:"version"`
	Ceiling   float64           `yaml:"ceiling"`
	MinLength int               `yaml:"min_length"`
	Stoplist  []string          `yaml:"stoplist"`
	Lemmas    map[string]string `yaml:"lemmas"`
}

const (
	// DefaultCeiling drops tokens whose merged frequency marks them as too
	// common to be worth studying (frequent names, function words the
	// reference list misses).
	DefaultCeiling = 1000

	// DefaultMinLength drops one- and two-letter residue from tokenization.
	DefaultMinLength = 3
)

// DefaultStoplist returns the built-in stoplist: function words and
// numerals not fully covered by the reference list, plus stray tokens
// that concordance exports tend to produce.
func DefaultStoplist() []string {
	return []string{
		"a", "an", "the", "and", "or", "but", "if", "so", "to", "of", "in", "on",
		"at", "by", "for", "from", "as",
		"i", "me", "my", "you", "your", "we", "our", "he", "him", "his", "she",
		"her", "it", "its", "they", "them", "their",
		"is", "am", "are", "was", "were", "be", "been", "being", "do", "did",
		"done", "have", "has", "had",
		"one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
		"ten", "hundred", "thousand",
		"de", "s",
	}
}

// DefaultFilterConfig returns the compiled-in configuration used when no
// config file is given.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		Version:   1,
		Ceiling:   DefaultCeiling,
		MinLength: DefaultMinLength,
		Stoplist:  DefaultStoplist(),
		Lemmas:    DefaultLemmaTable(),
	}
}

// LoadFilterConfig reads a YAML filter config and merges it over the
// defaults: stoplist entries are appended, lemma mappings are added or
// overridden, and ceiling/min_length replace the defaults when positive.
func LoadFilterConfig(path string) (FilterConfig, error) {
	cfg := DefaultFilterConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read filter config: %w", err)
	}

	var file FilterConfig
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("failed to parse filter config %s: %w", path, err)
	}

	if file.Version > 0 {
		cfg.Version = file.Version
	}
	if file.Ceiling > 0 {
		cfg.Ceiling = file.Ceiling
	}
	if file.MinLength > 0 {
		cfg.MinLength = file.MinLength
	}
	cfg.Stoplist = append(cfg.Stoplist, file.Stoplist...)
	for inflected, base := range file.Lemmas {
		cfg.Lemmas[inflected] = base
	}

	return cfg, nil
}
