package extract

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrEmptyDocument is returned when the payload has no bytes.
var ErrEmptyDocument = errors.New("empty document payload")

// ErrEmptyResponse is returned when the provider responds with no usable text.
var ErrEmptyResponse = errors.New("empty extraction response")

// Client turns a PDF payload into structured Section A JSON.
type Client interface {
	Extract(ctx context.Context, pdf []byte) (json.RawMessage, error)
}
