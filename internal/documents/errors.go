package documents

import "errors"

// ErrNotFound is returned when a document does not exist or is not owned
// by the caller.
var ErrNotFound = errors.New("document not found")

// ErrInvalidInput is returned for uploads that fail validation.
var ErrInvalidInput = errors.New("invalid input")
