package wordlist

import "testing"

func TestLemma(t *testing.T) {
	lem := NewLemmatizer(DefaultLemmaTable())

	tests := []struct {
		word     string
		expected string
	}{
		{"thought", "think"},
		{"went", "go"},
		{"men", "man"},
		{"them", "they"},
		{"reproachful", "reproachful"}, // not in table, unchanged
		{"running", "running"},         // no suffix stripping
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := lem.Lemma(tt.word); got != tt.expected {
				t.Errorf("Lemma(%q) = %q, want %q", tt.word, got, tt.expected)
			}
		})
	}
}
