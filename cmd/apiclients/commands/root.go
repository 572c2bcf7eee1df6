package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configDirName  = ".apiclients"
	configFileName = "config.yml"
	envPrefix      = "APICLIENTS"
)

// NewRootCommand creates the apiclients command tree.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "apiclients",
		Short: "Typed clients for third-party REST APIs",
		Long: `A command-line interface over the DocuSign, ShipBob and Slack bindings.

Tokens and base URLs are read from $HOME/.apiclients/config.yml, from
APICLIENTS_* environment variables or from the --token and --base-url flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.apiclients/config.yml)")
	rootCmd.PersistentFlags().StringP("output", "o", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log HTTP traffic to stderr")
	rootCmd.PersistentFlags().StringP("token", "t", "", "access token, overrides the configured one")
	rootCmd.PersistentFlags().String("base-url", "", "service base URL, overrides the configured one")

	// Bind flags to viper
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
	_ = viper.BindPFlag("base-url", rootCmd.PersistentFlags().Lookup("base-url"))

	rootCmd.AddCommand(NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewLoginCommand())
	rootCmd.AddCommand(NewEndpointsCommand())
	rootCmd.AddCommand(NewDocuSignCommand())
	rootCmd.AddCommand(NewShipBobCommand())
	rootCmd.AddCommand(NewSlackCommand())

	return rootCmd
}

func initConfig(cmd *cobra.Command) error {
	cfgFile, _ := cmd.Flags().GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		// Search config in ~/.apiclients/config.yml
		viper.AddConfigPath(filepath.Join(home, configDirName))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match, e.g. APICLIENTS_SERVICES_SLACK_TOKEN
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		notFound := viper.ConfigFileNotFoundError{}
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("failed to read config file: %w", err)
	}

	if viper.GetBool("verbose") {
		fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", viper.ConfigFileUsed())
	}

	return nil
}
