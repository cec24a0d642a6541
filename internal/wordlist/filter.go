package wordlist

import (
	"log/slog"
	"sort"
)

// Word is a normalized word with its merged frequency across all exports.
type Word struct {
	Text string
	Freq float64
}

// Filter decides which merged words count as difficult. Each check is an
// independent exclusion; they are ordered cheapest-first so common words
// short-circuit early.
type Filter struct {
	Reference  map[string]struct{}
	Stoplist   map[string]struct{}
	Lemmatizer *Lemmatizer
	Ceiling    float64
	MinLength  int
}

// NewFilter builds a Filter from a config and a loaded reference set.
func NewFilter(cfg FilterConfig, reference map[string]struct{}) *Filter {
	stop := make(map[string]struct{}, len(cfg.Stoplist))
	for _, w := range cfg.Stoplist {
		stop[w] = struct{}{}
	}
	return &Filter{
		Reference:  reference,
		Stoplist:   stop,
		Lemmatizer: NewLemmatizer(cfg.Lemmas),
		Ceiling:    cfg.Ceiling,
		MinLength:  cfg.MinLength,
	}
}

// Include reports whether a single normalized word survives every exclusion.
func (f *Filter) Include(word string, freq float64) bool {
	if word == "" {
		return false
	}
	if freq > f.Ceiling {
		return false
	}
	if len(word) < f.MinLength {
		return false
	}
	if _, ok := f.Stoplist[word]; ok {
		return false
	}
	if _, ok := f.Reference[word]; ok {
		return false
	}
	if _, ok := f.Reference[f.Lemmatizer.Lemma(word)]; ok {
		return false
	}
	return true
}

// Apply filters the merged frequency mapping and returns the difficult
// words ordered rarest-first (ties broken alphabetically for stable output).
func (f *Filter) Apply(merged map[string]float64) []Word {
	difficult := make([]Word, 0, len(merged)/4)
	for word, freq := range merged {
		if f.Include(word, freq) {
			difficult = append(difficult, Word{Text: word, Freq: freq})
		}
	}

	sort.Slice(difficult, func(i, j int) bool {
		if difficult[i].Freq != difficult[j].Freq {
			return difficult[i].Freq < difficult[j].Freq
		}
		return difficult[i].Text < difficult[j].Text
	})

	slog.Debug("Difficulty filter applied", "candidates", len(merged), "kept", len(difficult))
	return difficult
}
