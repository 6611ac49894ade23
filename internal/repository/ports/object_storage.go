package ports

import (
	"context"
	"io"
)

// ObjectStorage stores catalog media and returns the URL clients should load it from.
type ObjectStorage interface {
	Upload(ctx context.Context, bucket, objectName, contentType string, reader io.Reader, size int64) (string, error)
}
