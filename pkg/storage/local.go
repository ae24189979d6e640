package storage

import (
	"context"
	"fmt"
	"io"
	"os"
)

// LocalFetcher resolves file:// references against the local filesystem
type LocalFetcher struct{}

// NewLocalFetcher creates a new local fetcher
func NewLocalFetcher() *LocalFetcher {
	return &LocalFetcher{}
}

// Get reads a local file
func (lf *LocalFetcher) Get(ctx context.Context, uri string) (io.ReadCloser, error) {
	scheme, path, err := ParseURI(uri)
	if err != nil {
		return nil, err
	}

	if scheme != "file" {
		return nil, fmt.Errorf("local fetcher only supports file:// URIs, got %s://", scheme)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

// Exists checks if a local file exists
func (lf *LocalFetcher) Exists(ctx context.Context, uri string) (bool, error) {
	scheme, path, err := ParseURI(uri)
	if err != nil {
		return false, err
	}

	if scheme != "file" {
		return false, fmt.Errorf("local fetcher only supports file:// URIs, got %s://", scheme)
	}

	_, err = os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat file: %w", err)
	}

	return true, nil
}
