package port

import (
	"context"
	"io"
)

// ObjectStorage abstracts where uploaded files live. Keys are
// slash-separated relative paths ("orders/20240115_093045.pdf").
type ObjectStorage interface {
	Save(ctx context.Context, key, contentType string, body io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}
