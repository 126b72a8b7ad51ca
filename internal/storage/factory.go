package storage

import (
	"context"
	"fmt"

	"solixmon/internal/config"
)

// New creates the archive client selected by the deployment mode
func New(ctx context.Context, cfg *config.Config) (Client, error) {
	switch cfg.Deployment {
	case config.DeploymentLocal:
		dir := cfg.LocalArchiveDir
		if dir == "" {
			dir = "archive"
		}
		client, err := NewLocalClient(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local archive: %w", err)
		}
		return client, nil

	case config.DeploymentGCS:
		client, err := NewGCSClient(ctx, cfg.GCSBucket)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize GCS archive: %w", err)
		}
		return client, nil

	default:
		return nil, fmt.Errorf("unsupported deployment mode: %s", cfg.Deployment)
	}
}
