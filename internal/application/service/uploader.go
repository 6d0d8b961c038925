package service

import (
	"context"
	"io"
)

// Uploader stores media and backup files in the remote asset store.
type Uploader interface {
	// Upload stores an image and returns its public URL.
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
	// UploadRaw stores an opaque file such as a JSON snapshot.
	UploadRaw(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
	Delete(ctx context.Context, publicID string) error
}
