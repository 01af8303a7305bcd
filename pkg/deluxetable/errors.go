package deluxetable

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound reports an input document that cannot be opened.
	ErrFileNotFound = errors.New("file not found")
	// ErrMalformedTable reports a missing or misplaced data marker.
	ErrMalformedTable = errors.New("malformed table")
	// ErrMalformedCitation reports a citation cell without a {...} group.
	ErrMalformedCitation = errors.New("malformed citation")
	// ErrInvalidColumn reports a negative column index.
	ErrInvalidColumn = errors.New("invalid column")
)

// CitationError describes which cell could not be read.
// Row is the 1-based data row, Column the zero-based field index.
type CitationError struct {
	Row    int
	Column int
	Field  string
	Reason string
}

func (e *CitationError) Error() string {
	return fmt.Sprintf("%v: row %d, column %d: %s: %q", ErrMalformedCitation, e.Row, e.Column, e.Reason, e.Field)
}

// Unwrap makes errors.Is(err, ErrMalformedCitation) hold.
func (e *CitationError) Unwrap() error {
	return ErrMalformedCitation
}
