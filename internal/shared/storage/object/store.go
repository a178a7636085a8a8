package object

import (
	"context"
	"io"
)

// Store defines the contract for durable writes of raw document bytes.
// Save returns a stable URL from which the object can be retrieved later.
type Store interface {
	Save(ctx context.Context, ownerID string, fileName string, r io.Reader) (fileURL string, sizeBytes int64, mimeType string, err error)
	Open(ctx context.Context, fileURL string) (io.ReadCloser, error)
}
