package storage

import (
	"context"
	"time"
)

// Client is the archive backend for rendered frames and daily reports
type Client interface {
	// Close closes the storage client
	Close() error

	// Store writes an artifact under the day folder for timestamp ts
	Store(ctx context.Context, ts time.Time, name string, data []byte) error

	// Get retrieves an artifact by its full path
	Get(ctx context.Context, path string) ([]byte, error)

	// List returns up to limit artifact paths whose file name starts
	// with prefix, newest first. An empty prefix matches everything.
	List(ctx context.Context, prefix string, limit int) ([]string, error)
}
