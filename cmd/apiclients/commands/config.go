package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/detailyang/third-party-api-clients/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	keyOutput  = "output"
	keyToken   = "token"
	keyBaseURL = "base_url"
)

// Config represents the CLI configuration file.
type Config struct {
	Output   string                    `json:"output,omitempty"   yaml:"output,omitempty"`
	Services map[string]*ServiceConfig `json:"services,omitempty" yaml:"services,omitempty"`
}

// ServiceConfig holds the settings of one service.
type ServiceConfig struct {
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Token   string `json:"token,omitempty"    yaml:"token,omitempty"`
}

func knownServices() []string {
	return []string{constants.ServiceDocuSign, constants.ServiceShipBob, constants.ServiceSlack}
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage per-service tokens and base URLs and the default output format",
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
		Long:  "Display the current CLI configuration with tokens masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := maskedConfig(loadConfig())

			return renderOutput(cmd.OutOrStdout(), config, func(table *tablewriter.Table, config *Config) {
				table.Header("Key", "Value")
				_ = table.Append(keyOutput, valueOrNA(config.Output))

				for _, service := range knownServices() {
					settings := config.Services[service]
					if settings == nil {
						continue
					}

					_ = table.Append(service+"."+keyBaseURL, valueOrNA(settings.BaseURL))
					_ = table.Append(service+"."+keyToken, valueOrNA(settings.Token))
				}
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long: `Set a configuration value. Keys are "output" or SERVICE.token and
SERVICE.base_url where SERVICE is docusign, shipbob or slack.`,
		Args: cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], "")
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])

			return nil
		},
	}
}

func loadConfig() *Config {
	config := &Config{
		Services: make(map[string]*ServiceConfig),
	}

	if viper.InConfig(keyOutput) {
		config.Output = viper.GetString(keyOutput)
	}

	for _, service := range knownServices() {
		settings := &ServiceConfig{
			BaseURL: viper.GetString(serviceKey(service, keyBaseURL)),
			Token:   viper.GetString(serviceKey(service, keyToken)),
		}

		if settings.BaseURL != "" || settings.Token != "" {
			config.Services[service] = settings
		}
	}

	return config
}

func serviceKey(service, field string) string {
	return "services." + service + "." + field
}

// setConfigValue applies key=value to config. An empty value clears the key.
func setConfigValue(config *Config, key, value string) error {
	if key == keyOutput {
		if value != "" {
			value = strings.ToLower(value)
			if value != constants.FormatJSON && value != constants.FormatYAML && value != constants.FormatTable {
				return fmt.Errorf("%w: %q", constants.ErrInvalidOutput, value)
			}
		}

		config.Output = value

		return nil
	}

	service, field, found := strings.Cut(key, ".")
	if !found {
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	if !slices.Contains(knownServices(), service) {
		return fmt.Errorf("%w: %s", constants.ErrUnknownService, service)
	}

	settings := config.Services[service]
	if settings == nil {
		settings = &ServiceConfig{}
		config.Services[service] = settings
	}

	switch field {
	case keyToken:
		settings.Token = value
	case keyBaseURL:
		settings.BaseURL = value
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	if settings.Token == "" && settings.BaseURL == "" {
		delete(config.Services, service)
	}

	return nil
}

func maskedConfig(config *Config) *Config {
	masked := &Config{
		Output:   config.Output,
		Services: make(map[string]*ServiceConfig, len(config.Services)),
	}

	for service, settings := range config.Services {
		masked.Services[service] = &ServiceConfig{
			BaseURL: settings.BaseURL,
			Token:   maskSecret(settings.Token),
		}
	}

	return masked
}

func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, configDirName, configFileName), nil
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
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	// Reload so later reads in this process see the new values
	viper.SetConfigFile(configFile)

	err = viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("failed to reload config file: %w", err)
	}

	return nil
}
