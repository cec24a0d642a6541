package wordlist

import (
	"regexp"
	"strings"
)

var (
	possessiveRe = regexp.MustCompile(`('s|’s)$`)
	nonLetterRe  = regexp.MustCompile(`[^a-z-]+`)
	hyphenRunRe  = regexp.MustCompile(`\s*-+\s*`)
	spaceRunRe   = regexp.MustCompile(`\s+`)
)

// Normalize reduces a raw token to its canonical lowercase form: trailing
// possessive markers are stripped, internal hyphens are preserved (a
// hyphenated compound stays one token), surrounding punctuation is removed,
// and tokens with no alphabetic character collapse to the empty string.
// Normalizing an already-normalized word is a no-op.
func Normalize(raw string) string {
	lowered := strings.ToLower(strings.TrimSpace(raw))
	lowered = possessiveRe.ReplaceAllString(lowered, "")

	cleaned := nonLetterRe.ReplaceAllString(lowered, " ")
	cleaned = hyphenRunRe.ReplaceAllString(cleaned, "-")
	cleaned = spaceRunRe.ReplaceAllString(cleaned, " ")
	cleaned = strings.Trim(cleaned, "- ")

	if !hasLetter(cleaned) {
		return ""
	}
	return cleaned
}

func hasLetter(s string) bool {
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			return true
		}
	}
	return false
}
