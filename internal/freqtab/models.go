package freqtab

// Record is one parsed row of a frequency export: a normalized headword
// and its frequency in the source text.
type Record struct {
	Word string
	Freq float64
}

// Schema describes where the headword and frequency live in an export
// file, inferred from its header row. A FreqCol of -1 means no frequency
// column was recognized and the last numeric token of each row is used
// instead.
type Schema struct {
	WordCol      int
	FreqCol      int
	TabDelimited bool
}
