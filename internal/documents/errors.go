package documents

import "errors"

var (
	// ErrInvalidInput marks client-caused validation failures.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmptyExtraction means extraction succeeded but produced only whitespace.
	ErrEmptyExtraction = errors.New("no text could be extracted from the file")
)
