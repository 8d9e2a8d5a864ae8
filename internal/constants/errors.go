package constants

import "errors"

// CLI configuration errors.
var (
	ErrNoAPIKeyConfigured = errors.New("no API key configured, use 'harvest login' or set HARVEST_API_KEY")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrEmptyAPIKey        = errors.New("API key must not be empty")
)

// CLI argument errors.
var (
	ErrInvalidID          = errors.New("invalid ID, expected a positive integer")
	ErrOnBehalfOfRequired = errors.New("--on-behalf-of (or HARVEST_ON_BEHALF_OF) is required for this command")
	ErrInvalidOutput      = errors.New("invalid output format, expected table, json or yaml")
)
