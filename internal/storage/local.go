package storage

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// LocalClient archives artifacts on the local file system
type LocalClient struct {
	baseDir string
}

// NewLocalClient creates a local archive rooted at baseDir
func NewLocalClient(baseDir string) (*LocalClient, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory %s: %w", baseDir, err)
	}
	return &LocalClient{baseDir: baseDir}, nil
}

// Close is a no-op for local storage
func (l *LocalClient) Close() error {
	return nil
}

// Store writes an artifact under the day folder for ts
func (l *LocalClient) Store(ctx context.Context, ts time.Time, name string, data []byte) error {
	full := filepath.Join(l.baseDir, filepath.FromSlash(archivePath(ts, name)))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", full, err)
	}
	if err := os.WriteFile(full, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", full, err)
	}
	return nil
}

// Get retrieves an artifact by its archive path
func (l *LocalClient) Get(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(l.baseDir, filepath.FromSlash(path)))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// List returns up to limit archive paths under prefix, newest first
func (l *LocalClient) List(ctx context.Context, prefix string, limit int) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(l.baseDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(l.baseDir, p)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if prefix == "" || strings.HasPrefix(path.Base(rel), prefix) {
			paths = append(paths, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk archive directory: %w", err)
	}

	newestFirst(paths)
	if limit > 0 && limit < len(paths) {
		paths = paths[:limit]
	}
	return paths, nil
}
