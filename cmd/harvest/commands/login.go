package commands

import (
	"bufio"
	"fmt"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fivetwenty-io/harvest-client/internal/constants"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		apiKey  string
		baseURL string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a Harvest API key",
		Long:  "Save a Harvest API key (and optionally a base URL) to the CLI configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiKey == "" {
				key, err := readAPIKey(cmd)
				if err != nil {
					return err
				}

				apiKey = key
			}

			apiKey = strings.TrimSpace(apiKey)
			if apiKey == "" {
				return constants.ErrEmptyAPIKey
			}

			config, err := loadConfig()
			if err != nil {
				return err
			}

			config.APIKey = apiKey

			if baseURL != "" {
				config.BaseURL = baseURL
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			path, _ := configFilePath()
			fmt.Fprintf(cmd.OutOrStdout(), "API key saved to %s\n", path)

			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "key", "", "API key to store (prompted when omitted)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Harvest API base URL to store")

	return cmd
}

// readAPIKey prompts for the key without echo on a terminal, and reads a
// line from stdin otherwise.
func readAPIKey(cmd *cobra.Command) (string, error) {
	if term.IsTerminal(int(syscall.Stdin)) {
		fmt.Fprint(cmd.OutOrStdout(), "API key: ")

		byteKey, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return "", fmt.Errorf("failed to read API key: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout())

		return string(byteKey), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}

	return line, nil
}
