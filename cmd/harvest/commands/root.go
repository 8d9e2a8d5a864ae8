package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/harvest-client/internal/constants"
)

// Viper keys shared by the commands.
const (
	keyConfig     = "config"
	keyAPIKey     = "api_key"
	keyBaseURL    = "base_url"
	keyOnBehalfOf = "on_behalf_of"
	keyOutput     = "output"
	keyVerbose    = "verbose"
	keyLogLevel   = "log_level"
)

const configDirName = ".harvest"

// NewRootCommand creates the harvest command with every subcommand attached.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "harvest",
		Short: "Greenhouse Harvest API CLI",
		Long: `A command-line interface for the Greenhouse Harvest API.

This CLI gives access to applications, candidates, custom fields, jobs and
job posts using a Harvest API key.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initConfig(cmd)

			_, err := outputFormat()

			return err
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.harvest/config.yml)")
	flags.StringP("api-key", "k", "", "Harvest API key")
	flags.String("base-url", "", "Harvest API base URL (default "+constants.DefaultBaseURL+")")
	flags.String("on-behalf-of", "", "Greenhouse user ID recorded as the actor of writes")
	flags.StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	flags.BoolP("verbose", "v", false, "log every request and response")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")

	_ = viper.BindPFlag(keyConfig, flags.Lookup("config"))
	_ = viper.BindPFlag(keyAPIKey, flags.Lookup("api-key"))
	_ = viper.BindPFlag(keyBaseURL, flags.Lookup("base-url"))
	_ = viper.BindPFlag(keyOnBehalfOf, flags.Lookup("on-behalf-of"))
	_ = viper.BindPFlag(keyOutput, flags.Lookup("output"))
	_ = viper.BindPFlag(keyVerbose, flags.Lookup("verbose"))
	_ = viper.BindPFlag(keyLogLevel, flags.Lookup("log-level"))

	rootCmd.AddCommand(NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(NewLoginCommand())
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewApplicationsCommand())
	rootCmd.AddCommand(NewCandidatesCommand())
	rootCmd.AddCommand(NewCustomFieldsCommand())
	rootCmd.AddCommand(NewJobsCommand())
	rootCmd.AddCommand(NewJobPostsCommand())

	return rootCmd
}

func initConfig(cmd *cobra.Command) {
	cfgFile := viper.GetString(keyConfig)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, configDirName))
		}

		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("HARVEST")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err == nil && viper.GetBool(keyVerbose) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", viper.ConfigFileUsed())
	}
}

// configFilePath returns the file login and config set write to.
func configFilePath() (string, error) {
	if cfgFile := viper.GetString(keyConfig); cfgFile != "" {
		return cfgFile, nil
	}

	if used := viper.ConfigFileUsed(); used != "" {
		return used, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, configDirName, "config.yml"), nil
}
