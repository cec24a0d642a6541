package dictionary

import (
	"context"
	"errors"
)

// Status is the terminal fetch state of a word.
type Status string

const (
	StatusFound    Status = "found"
	StatusNotFound Status = "not-found"
	StatusError    Status = "error"
)

// ErrNotFound indicates the lookup service has no entry for the word.
// It is a normal outcome, recorded as such rather than retried.
var ErrNotFound = errors.New("word not found in dictionary")

// Definition is the extracted first sense of a dictionary entry. Every
// field except Word is optional; upstream coverage is inconsistent.
type Definition struct {
	Word       string
	Phonetic   string
	POS        string
	Definition string
	Example    string
}

// Provider defines the interface for a definition lookup backend.
type Provider interface {
	Define(ctx context.Context, word string) (*Definition, error)
}
