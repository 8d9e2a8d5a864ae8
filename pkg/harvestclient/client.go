// Package harvestclient provides the main entry point for creating Greenhouse Harvest API clients
package harvestclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/harvest-client/internal/client"
	"github.com/fivetwenty-io/harvest-client/internal/constants"
	"github.com/fivetwenty-io/harvest-client/pkg/harvest"
)

// New creates a new Harvest API client from config.
func New(config *harvest.Config) (harvest.Client, error) {
	if config == nil {
		return nil, harvest.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, harvest.ErrAPIKeyRequired
	}

	normalized := *config

	normalized.BaseURL = strings.TrimSuffix(normalized.BaseURL, "/")
	if normalized.BaseURL == "" {
		normalized.BaseURL = constants.DefaultBaseURL
	}

	c, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithAPIKey creates a client for the default Harvest host.
func NewWithAPIKey(apiKey string) (harvest.Client, error) {
	return New(&harvest.Config{
		APIKey: apiKey,
	})
}

// NewWithBaseURL creates a client for a specific Harvest host, such as a
// regional deployment or a test server.
func NewWithBaseURL(apiKey, baseURL string) (harvest.Client, error) {
	return New(&harvest.Config{
		APIKey:  apiKey,
		BaseURL: baseURL,
	})
}
