// Package storage fetches referenced input payloads. A submitted complex
// value may carry an href instead of inline data; the fetcher resolves the
// reference before the payload is staged into the execution working
// directory.
package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
)

// AllowedSchemes is the whitelist of allowed reference schemes
var AllowedSchemes = []string{"https", "http", "s3", "file"}

// Fetcher is the interface for all reference backends
type Fetcher interface {
	// Get resolves the given URI and returns a reader over its payload
	Get(ctx context.Context, uri string) (io.ReadCloser, error)

	// Exists checks if a payload exists at the given URI
	Exists(ctx context.Context, uri string) (bool, error)
}

// ParseURI parses a URI and returns scheme and path
func ParseURI(uri string) (scheme string, path string, err error) {
	if uri == "" {
		return "", "", fmt.Errorf("URI cannot be empty")
	}

	parsed, err := url.Parse(uri)
	if err != nil {
		return "", "", fmt.Errorf("invalid URI: %w", err)
	}

	if parsed.Scheme == "" {
		return "", "", fmt.Errorf("URI must have a scheme (e.g., https://, s3://)")
	}

	// For file:// URIs, use the full path
	if parsed.Scheme == "file" {
		return parsed.Scheme, parsed.Path, nil
	}

	// For other URIs (s3://, https://, etc.), combine host and path
	path = parsed.Host
	if parsed.Path != "" {
		path = path + parsed.Path
	}

	return parsed.Scheme, path, nil
}

// IsAllowedScheme checks if a URI scheme is in the whitelist
func IsAllowedScheme(scheme string) bool {
	for _, allowed := range AllowedSchemes {
		if scheme == allowed {
			return true
		}
	}
	return false
}
