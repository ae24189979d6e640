package storage

import (
	"context"
	"fmt"
	"io"
)

// Manager dispatches reference resolution to the backend matching the
// reference scheme
type Manager struct {
	local *LocalFetcher
	http  *HTTPFetcher
	s3    *S3Fetcher
}

// NewManager creates a new fetch manager
func NewManager() *Manager {
	m := &Manager{
		local: NewLocalFetcher(),
		http:  NewHTTPFetcher(),
	}

	// Try to initialize S3 (may fail if no AWS credentials)
	ctx := context.Background()
	s3Fetcher, err := NewS3Fetcher(ctx)
	if err == nil {
		m.s3 = s3Fetcher
	}

	return m
}

// getFetcher returns the appropriate backend for a URI
func (m *Manager) getFetcher(uri string) (Fetcher, error) {
	scheme, _, err := ParseURI(uri)
	if err != nil {
		return nil, err
	}

	if !IsAllowedScheme(scheme) {
		return nil, fmt.Errorf("URI scheme not allowed: %s", scheme)
	}

	switch scheme {
	case "file":
		return m.local, nil
	case "http", "https":
		return m.http, nil
	default: // s3
		if m.s3 == nil {
			return nil, fmt.Errorf("S3 fetcher not initialized (AWS credentials may be missing)")
		}
		return m.s3, nil
	}
}

// Get resolves a reference through the backend matching its scheme
func (m *Manager) Get(ctx context.Context, uri string) (io.ReadCloser, error) {
	f, err := m.getFetcher(uri)
	if err != nil {
		return nil, err
	}
	return f.Get(ctx, uri)
}

// Exists checks a reference through the backend matching its scheme
func (m *Manager) Exists(ctx context.Context, uri string) (bool, error) {
	f, err := m.getFetcher(uri)
	if err != nil {
		return false, err
	}
	return f.Exists(ctx, uri)
}
