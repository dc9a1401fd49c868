package storage

import (
	"context"
	"io"
)

// FileStorage abstracts where uploaded files (the school logo) end up.
type FileStorage interface {
	// Upload stores a file under path and returns the stored key.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Delete removes a stored file.
	Delete(ctx context.Context, path string) error

	// GetURL returns the public URL for a stored file.
	GetURL(ctx context.Context, path string) (string, error)
}
