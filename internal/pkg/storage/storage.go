package storage

import (
	"context"
	"errors"
	"io"
)

var ErrFileNotFound = errors.New("file not found")

type FileStorage interface {
	// Upload writes a file and returns its storage path
	Upload(ctx context.Context, file io.Reader, path string) (string, error)

	// Download opens a stored file
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file. Missing files are not an error.
	Delete(ctx context.Context, path string) error

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)
}
