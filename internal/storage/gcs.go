package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// GCSClient archives artifacts in a Google Cloud Storage bucket
type GCSClient struct {
	client *storage.Client
	bucket string
}

// NewGCSClient creates a GCS archive client for the given bucket
func NewGCSClient(ctx context.Context, bucket string) (*GCSClient, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}
	return &GCSClient{client: client, bucket: bucket}, nil
}

// Close closes the underlying GCS client
func (g *GCSClient) Close() error {
	return g.client.Close()
}

// Store writes an artifact under the day folder for ts
func (g *GCSClient) Store(ctx context.Context, ts time.Time, name string, data []byte) error {
	objectPath := archivePath(ts, name)

	writer := g.client.Bucket(g.bucket).Object(objectPath).NewWriter(ctx)
	writer.ContentType = contentType(name)
	writer.Metadata = map[string]string{
		"archived-at": ts.UTC().Format(time.RFC3339),
	}

	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write gs://%s/%s: %w", g.bucket, objectPath, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize gs://%s/%s: %w", g.bucket, objectPath, err)
	}
	return nil
}

// Get retrieves an artifact by its archive path
func (g *GCSClient) Get(ctx context.Context, objectPath string) ([]byte, error) {
	reader, err := g.client.Bucket(g.bucket).Object(objectPath).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open gs://%s/%s: %w", g.bucket, objectPath, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read gs://%s/%s: %w", g.bucket, objectPath, err)
	}
	return data, nil
}

// List returns up to limit archive paths whose file name starts with
// prefix, newest first
func (g *GCSClient) List(ctx context.Context, prefix string, limit int) ([]string, error) {
	var paths []string
	it := g.client.Bucket(g.bucket).Objects(ctx, &storage.Query{})
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list gs://%s: %w", g.bucket, err)
		}
		if prefix == "" || strings.HasPrefix(path.Base(attrs.Name), prefix) {
			paths = append(paths, attrs.Name)
		}
	}

	newestFirst(paths)
	if limit > 0 && limit < len(paths) {
		paths = paths[:limit]
	}
	return paths, nil
}
