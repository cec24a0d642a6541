package wordlist

// Lemmatizer maps inflected forms onto base forms using a fixed table.
// It deliberately does no suffix stripping: guessing stems for short or
// already-base words produces more false matches than it prevents, so
// anything absent from the table passes through unchanged.
type Lemmatizer struct {
	table map[string]string
}

// NewLemmatizer builds a lemmatizer from an inflected-form to base-form table.
func NewLemmatizer(table map[string]string) *Lemmatizer {
	return &Lemmatizer{table: table}
}

// Lemma returns the base form for word, or word itself when unknown.
func (l *Lemmatizer) Lemma(word string) string {
	if base, ok := l.table[word]; ok {
		return base
	}
	return word
}

// DefaultLemmaTable returns the built-in irregular-form table: common
// irregular verbs, a few irregular plurals, and pronoun case collapses.
// Operators extend or override it through the filter config file.
func DefaultLemmaTable() map[string]string {
	return map[string]string{
		// Irregular verbs
		"was": "be", "were": "be", "been": "be", "am": "be", "is": "be", "are": "be",
		"has": "have", "had": "have",
		"did": "do", "done": "do", "does": "do",
		"said": "say",
		"made": "make",
		"went": "go", "gone": "go", "goes": "go",
		"got": "get", "gotten": "get",
		"came": "come",
		"told": "tell",
		"saw": "see", "seen": "see",
		"thought": "think", "thinking": "think",
		"knew": "know", "known": "know",
		"took": "take", "taken": "take",
		"gave": "give", "given": "give",
		"found": "find",
		"left": "leave",
		"felt": "feel",
		"kept": "keep",
		"held": "hold",
		"bought": "buy",
		"brought": "bring",
		"became": "become",
		"began": "begin", "begun": "begin",
		"ran":   "run",
		"wrote": "write", "written": "write",
		"spoke": "speak", "spoken": "speak",
		"sat":   "sit",
		"stood": "stand",
		"led":   "lead",
		"lost":  "lose",
		"paid":  "pay",
		"met":   "meet",
		// Irregular plurals
		"men":  "man",
		"eyes": "eye",
		// Pronouns
		"me": "i", "my": "i", "mine": "i",
		"us": "we", "our": "we", "ours": "we",
		"him": "he", "his": "he",
		"her": "she", "hers": "she",
		"them": "they", "their": "they", "theirs": "they",
		"your": "you", "yours": "you",
	}
}
