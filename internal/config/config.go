package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Source modes
const (
	ModeCloud = "cloud"
	ModeMeter = "meter"
)

// Deployment modes for the archive backend
const (
	DeploymentLocal = "local"
	DeploymentGCS   = "gcs"
)

// Config holds all configuration for the energy monitor service
type Config struct {
	// Server configuration
	Port string `env:"PORT,default=8980"`

	// Data source selection; fixed for the process lifetime
	Mode string `env:"SOURCE_MODE,default=cloud"`

	// Cloud source configuration
	CloudAuthURL   string `env:"CLOUD_AUTH_URL"`
	CloudEnergyURL string `env:"CLOUD_ENERGY_URL"`
	CloudAccount   string `env:"CLOUD_ACCOUNT"`
	CloudPassword  string `env:"CLOUD_PASSWORD"`
	CloudCountry   string `env:"CLOUD_COUNTRY,default=DE"`

	// Local smart meter source configuration
	MeterHost  string `env:"METER_HOST"`
	MeterPath  string `env:"METER_PATH,default=/api/v1/energy"`
	MeterToken string `env:"METER_TOKEN"`

	// Acquisition configuration
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL,default=5m"`
	PointsPerDay    int           `env:"POINTS_PER_DAY,default=24"`
	HTTPTimeout     time.Duration `env:"HTTP_TIMEOUT,default=30s"`

	// Archive configuration (rendered frames and daily reports)
	Deployment      string `env:"DEPLOYMENT,default=local"`
	LocalArchiveDir string `env:"LOCAL_ARCHIVE_DIR,default=./archive"`
	GCSBucket       string `env:"GCS_BUCKET"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=text"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints that tags cannot express
func (c *Config) Validate() error {
	if c.Mode != ModeCloud && c.Mode != ModeMeter {
		return fmt.Errorf("unsupported source mode: %s", c.Mode)
	}
	if c.PointsPerDay < 1 {
		return fmt.Errorf("points per day must be at least 1, got %d", c.PointsPerDay)
	}
	if c.RefreshInterval <= 0 {
		return fmt.Errorf("refresh interval must be positive, got %s", c.RefreshInterval)
	}
	if c.Deployment != DeploymentLocal && c.Deployment != DeploymentGCS {
		return fmt.Errorf("unsupported deployment mode: %s", c.Deployment)
	}
	if c.Deployment == DeploymentGCS && c.GCSBucket == "" {
		return fmt.Errorf("GCS deployment requires GCS_BUCKET")
	}
	return nil
}
