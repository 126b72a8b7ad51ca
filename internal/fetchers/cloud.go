package fetchers

import (
	"context"
	"encoding/json"
	"fmt"

	"solixmon/internal/config"
	"solixmon/internal/models"

	"github.com/go-resty/resty/v2"
)

// CloudSource fetches energy data from the vendor cloud API. Each fetch
// authenticates with the account credentials, then requests the daily
// energy data with the returned bearer token.
type CloudSource struct {
	client    *resty.Client
	authURL   string
	energyURL string
	account   string
	password  string
	country   string
}

// NewCloudSource creates a cloud source from the configuration
func NewCloudSource(client *resty.Client, cfg *config.Config) *CloudSource {
	return &CloudSource{
		client:    client,
		authURL:   cfg.CloudAuthURL,
		energyURL: cfg.CloudEnergyURL,
		account:   cfg.CloudAccount,
		password:  cfg.CloudPassword,
		country:   cfg.CloudCountry,
	}
}

// Name identifies the source in logs and health output
func (s *CloudSource) Name() string {
	return "cloud"
}

// Fetch authenticates and retrieves one energy reading
func (s *CloudSource) Fetch(ctx context.Context) (*models.Reading, error) {
	if s.authURL == "" || s.energyURL == "" {
		return nil, fmt.Errorf("%w: cloud auth or energy URL is empty", ErrConfigMissing)
	}

	token, err := s.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader("Authorization", "Bearer "+token).
		Get(s.energyURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("%w: energy endpoint returned status %d", ErrRequestFailed, resp.StatusCode())
	}

	return decodeReading(resp.Body())
}

// authenticate posts the account credentials and returns the access token
func (s *CloudSource) authenticate(ctx context.Context) (string, error) {
	login := map[string]string{
		"userAccount": s.account,
		"password":    s.password,
		"country":     s.country,
	}
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(login).
		Post(s.authURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("%w: auth endpoint returned status %d", ErrAuthFailed, resp.StatusCode())
	}

	var auth struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(resp.Body(), &auth); err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	if auth.AccessToken == "" {
		return "", fmt.Errorf("%w: no access token in response", ErrAuthFailed)
	}
	return auth.AccessToken, nil
}
