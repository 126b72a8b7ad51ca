package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"solixmon/internal/config"
	"solixmon/internal/models"

	"github.com/go-resty/resty/v2"
)

// Source fetches one energy reading from its configured endpoint. A
// source holds no state between calls; every Fetch stands alone.
type Source interface {
	Name() string
	Fetch(ctx context.Context) (*models.Reading, error)
}

// FromConfig builds the source selected by the configuration. The mode is
// fixed for the process lifetime.
func FromConfig(cfg *config.Config) (Source, error) {
	client := newClient(cfg.HTTPTimeout)
	switch cfg.Mode {
	case config.ModeCloud:
		return NewCloudSource(client, cfg), nil
	case config.ModeMeter:
		return NewMeterSource(client, cfg), nil
	default:
		return nil, fmt.Errorf("unsupported source mode: %s", cfg.Mode)
	}
}

// newClient creates the shared HTTP client with timeout and retries
func newClient(timeout time.Duration) *resty.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	client := resty.New()
	client.SetTimeout(timeout)
	client.SetRetryCount(2)
	client.SetRetryWaitTime(2 * time.Second)
	return client
}

// decodeReading parses an energy response body into a Reading
func decodeReading(body []byte) (*models.Reading, error) {
	var r models.Reading
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}
	return &r, nil
}
