package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// HTTPFetcher resolves http:// and https:// references
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates a new HTTP fetcher
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{},
	}
}

// Get downloads a payload over HTTP/HTTPS
func (hf *HTTPFetcher) Get(ctx context.Context, uri string) (io.ReadCloser, error) {
	scheme, _, err := ParseURI(uri)
	if err != nil {
		return nil, err
	}

	if scheme != "http" && scheme != "https" {
		return nil, fmt.Errorf("HTTP fetcher only supports http:// and https:// URIs, got %s://", scheme)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", uri, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := hf.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP request failed with status %d", resp.StatusCode)
	}

	return resp.Body, nil
}

// Exists checks if a payload exists by sending a HEAD request
func (hf *HTTPFetcher) Exists(ctx context.Context, uri string) (bool, error) {
	scheme, _, err := ParseURI(uri)
	if err != nil {
		return false, err
	}

	if scheme != "http" && scheme != "https" {
		return false, fmt.Errorf("HTTP fetcher only supports http:// and https:// URIs, got %s://", scheme)
	}

	req, err := http.NewRequestWithContext(ctx, "HEAD", uri, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := hf.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to check existence: %w", err)
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}
