package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/harvest-client/internal/constants"
)

// Config represents the CLI configuration file.
type Config struct {
	APIKey     string `json:"api_key,omitempty"      yaml:"api_key,omitempty"`
	BaseURL    string `json:"base_url,omitempty"     yaml:"base_url,omitempty"`
	OnBehalfOf string `json:"on_behalf_of,omitempty" yaml:"on_behalf_of,omitempty"`
	Output     string `json:"output,omitempty"       yaml:"output,omitempty"`
	LogLevel   string `json:"log_level,omitempty"    yaml:"log_level,omitempty"`
}

// ConfigUpdateResult is printed after config set and unset.
type ConfigUpdateResult struct {
	Action string `json:"action"          yaml:"action"`
	Key    string `json:"key"             yaml:"key"`
	Value  string `json:"value,omitempty" yaml:"value,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the settings stored in the Harvest CLI configuration file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective CLI configuration with the API key masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			masked := *config
			if masked.APIKey != "" {
				masked.APIKey = constants.MaskedSecret
			}

			baseURL := config.BaseURL
			if baseURL == "" {
				baseURL = constants.DefaultBaseURL
			}

			path, _ := configFilePath()

			return renderOutput(cmd.OutOrStdout(), masked, propertyTable([][]string{
				{"Config File", path},
				{"API Key", formatOptionalString(&masked.APIKey)},
				{"Base URL", baseURL},
				{"On Behalf Of", formatOptionalString(&config.OnBehalfOf)},
				{"Output", config.Output},
				{"Log Level", config.LogLevel},
			}))
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set one of api_key, base_url, on_behalf_of, output or log_level",
		Args:  cobra.ExactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			config, err := loadConfig()
			if err != nil {
				return err
			}

			handler, exists := configHandlers()[key]
			if !exists {
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			handler(config, value)

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			display := value
			if key == keyAPIKey {
				display = constants.MaskedSecret
			}

			return outputConfigUpdateResult(cmd, ConfigUpdateResult{Action: "Set", Key: key, Value: display})
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove one of api_key, base_url, on_behalf_of, output or log_level from the configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			config, err := loadConfig()
			if err != nil {
				return err
			}

			handler, exists := configHandlers()[key]
			if !exists {
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			handler(config, "")

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			return outputConfigUpdateResult(cmd, ConfigUpdateResult{Action: "Unset", Key: key})
		},
	}
}

// configHandlers maps each settable key to its field.
func configHandlers() map[string]func(*Config, string) {
	return map[string]func(*Config, string){
		keyAPIKey:     func(c *Config, v string) { c.APIKey = v },
		keyBaseURL:    func(c *Config, v string) { c.BaseURL = v },
		keyOnBehalfOf: func(c *Config, v string) { c.OnBehalfOf = v },
		keyOutput:     func(c *Config, v string) { c.Output = v },
		keyLogLevel:   func(c *Config, v string) { c.LogLevel = v },
	}
}

// loadConfig reads the configuration file, ignoring flag and environment
// overrides so that saving never persists them. A missing file is an empty
// configuration; a file that does not parse is an error so it is never
// overwritten.
func loadConfig() (*Config, error) {
	config := &Config{}

	path, err := configFilePath()
	if err != nil {
		return nil, err
	}

	// path comes from the --config flag or the user's home directory
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}

		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return config, nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func outputConfigUpdateResult(cmd *cobra.Command, result ConfigUpdateResult) error {
	rows := [][]string{
		{"Action", result.Action},
		{"Key", result.Key},
	}

	if result.Value != "" {
		rows = append(rows, []string{"Value", result.Value})
	}

	return renderOutput(cmd.OutOrStdout(), result, propertyTable(rows))
}
