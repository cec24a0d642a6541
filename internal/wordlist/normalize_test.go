package wordlist

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases",
			input:    "Reproachful",
			expected: "reproachful",
		},
		{
			name:     "strips trailing possessive",
			input:    "Gatsby's",
			expected: "gatsby",
		},
		{
			name:     "strips curly possessive",
			input:    "Daisy’s",
			expected: "daisy",
		},
		{
			name:     "keeps internal hyphen",
			input:    "half-reproachful",
			expected: "half-reproachful",
		},
		{
			name:     "collapses hyphen runs",
			input:    "well--known",
			expected: "well-known",
		},
		{
			name:     "trims edge hyphens",
			input:    "-ish-",
			expected: "ish",
		},
		{
			name:     "strips surrounding punctuation",
			input:    `"fastidious,"`,
			expected: "fastidious",
		},
		{
			name:     "rejects pure number",
			input:    "1925",
			expected: "",
		},
		{
			name:     "rejects symbols",
			input:    "--",
			expected: "",
		},
		{
			name:     "rejects empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.input)
			if result != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Gatsby's", "HALF-REPROACHFUL", "o'clock", "  spaced  ", "1925", "d'art--nouveau",
	}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}
