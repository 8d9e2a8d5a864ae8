package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/harvest-client/internal/constants"
	"github.com/fivetwenty-io/harvest-client/pkg/harvest"
	"github.com/fivetwenty-io/harvest-client/pkg/harvestclient"
)

// newClient creates a Harvest client from the flags, environment and config file.
func newClient(cmd *cobra.Command) (harvest.Client, error) {
	apiKey := viper.GetString(keyAPIKey)
	if apiKey == "" {
		return nil, constants.ErrNoAPIKeyConfigured
	}

	verbose := viper.GetBool(keyVerbose)
	logger := newLogger(cmd.ErrOrStderr(), viper.GetString(keyLogLevel), verbose)

	client, err := harvestclient.New(&harvest.Config{
		APIKey:  apiKey,
		BaseURL: viper.GetString(keyBaseURL),
		Debug:   verbose,
		Logger:  harvest.NewZerologLogger(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// onBehalfOf returns the configured acting user, possibly empty.
func onBehalfOf() string {
	return viper.GetString(keyOnBehalfOf)
}

// requireOnBehalfOf returns the acting user for commands Harvest audits.
func requireOnBehalfOf() (string, error) {
	userID := onBehalfOf()
	if userID == "" {
		return "", constants.ErrOnBehalfOfRequired
	}

	return userID, nil
}

// requireOnBehalfOfID is requireOnBehalfOf for endpoints taking a numeric user ID.
func requireOnBehalfOfID() (int64, error) {
	userID, err := requireOnBehalfOf()
	if err != nil {
		return 0, err
	}

	return parseID(userID)
}

// parseID parses a positive resource ID argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", constants.ErrInvalidID, arg)
	}

	return id, nil
}
