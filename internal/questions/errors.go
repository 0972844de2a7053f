package questions

import "errors"

var (
	// ErrMissingQuestion means the question was absent or whitespace-only.
	ErrMissingQuestion = errors.New("question is required")
	// ErrNoDocuments means no document ids were supplied.
	ErrNoDocuments = errors.New("no documents uploaded")
	// ErrNoValidDocuments means none of the supplied ids resolved to usable text.
	ErrNoValidDocuments = errors.New("no valid documents found")
)
