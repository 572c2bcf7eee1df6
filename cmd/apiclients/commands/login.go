package commands

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/detailyang/third-party-api-clients/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login SERVICE",
		Short: "Store an access token for a service",
		Long: `Store an access token for docusign, shipbob or slack.

The token is taken from --token when given, otherwise it is read from the
terminal without echo.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := strings.ToLower(args[0])
			if !slices.Contains(knownServices(), service) {
				return fmt.Errorf("%w: %s", constants.ErrUnknownService, args[0])
			}

			token := viper.GetString("token")
			if token == "" {
				var err error

				token, err = promptToken(cmd, service)
				if err != nil {
					return err
				}
			}

			token = strings.TrimSpace(token)
			if token == "" {
				return constants.ErrEmptyToken
			}

			config := loadConfig()

			err := setConfigValue(config, service+"."+keyToken, token)
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s token\n", service)

			return nil
		},
	}
}

func promptToken(cmd *cobra.Command, service string) (string, error) {
	fd := int(os.Stdin.Fd()) // #nosec G115 -- file descriptors fit in int
	if !term.IsTerminal(fd) {
		return "", constants.ErrNotATerminal
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s token: ", service)

	byteToken, err := term.ReadPassword(fd)
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}

	fmt.Fprintln(cmd.ErrOrStderr())

	return string(byteToken), nil
}
