package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/detailyang/third-party-api-clients/internal/constants"
	"github.com/detailyang/third-party-api-clients/pkg/apiclients"
	"github.com/detailyang/third-party-api-clients/pkg/docusign"
	"github.com/detailyang/third-party-api-clients/pkg/rest"
	"github.com/detailyang/third-party-api-clients/pkg/shipbob"
	"github.com/detailyang/third-party-api-clients/pkg/slack"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// OutputRenderer handles different output formats.
type OutputRenderer[T any] struct {
	RenderJSON  func(data T) error
	RenderYAML  func(data T) error
	RenderTable func(data T) error
}

// Render outputs data in the specified format.
func (o *OutputRenderer[T]) Render(data T, format string) error {
	switch format {
	case constants.FormatJSON:
		return o.RenderJSON(data)
	case constants.FormatYAML:
		return o.RenderYAML(data)
	default:
		return o.RenderTable(data)
	}
}

// renderOutput writes data to w in the format selected by --output. The
// table layout is supplied by the caller.
func renderOutput[T any](w io.Writer, data T, renderTable func(table *tablewriter.Table, data T)) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	renderer := &OutputRenderer[T]{
		RenderJSON: func(data T) error {
			return writeJSON(w, data)
		},
		RenderYAML: func(data T) error {
			return writeYAML(w, data)
		},
		RenderTable: func(data T) error {
			table := tablewriter.NewWriter(w)
			renderTable(table, data)

			err := table.Render()
			if err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}

	return renderer.Render(data, format)
}

func outputFormat() (string, error) {
	format := strings.ToLower(strings.TrimSpace(viper.GetString("output")))

	switch format {
	case "":
		return constants.FormatTable, nil
	case constants.FormatJSON, constants.FormatYAML, constants.FormatTable:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %q", constants.ErrInvalidOutput, format)
	}
}

func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

func writeYAML(w io.Writer, data any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(constants.JSONIndentSize)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return encoder.Close()
}

func valueOrNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

func maskSecret(value string) string {
	if value == "" {
		return ""
	}

	return constants.MaskedSecret
}

// newLogger returns a zap development logger when --verbose is set.
func newLogger() rest.Logger {
	if !viper.GetBool("verbose") {
		return rest.NewZapLogger(nil)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return rest.NewZapLogger(nil)
	}

	return rest.NewZapLogger(logger)
}

// serviceConfig merges flags, environment and the config file into the
// client configuration of service.
func serviceConfig(service string) *rest.Config {
	settings := loadConfig().Services[service]
	if settings == nil {
		settings = &ServiceConfig{}
	}

	token := viper.GetString("token")
	if token == "" {
		token = settings.Token
	}

	baseURL := viper.GetString("base-url")
	if baseURL == "" {
		baseURL = settings.BaseURL
	}

	return &rest.Config{
		BaseURL:     baseURL,
		AccessToken: token,
		UserAgent:   constants.DefaultUserAgent,
		HTTPTimeout: constants.DefaultHTTPTimeout,
		Debug:       viper.GetBool("verbose"),
		Logger:      newLogger(),
	}
}

func newDocuSignClient() (*docusign.Client, error) {
	client, err := apiclients.NewDocuSign(serviceConfig(constants.ServiceDocuSign))
	if err != nil {
		return nil, fmt.Errorf("failed to create DocuSign client: %w", err)
	}

	return client, nil
}

func newShipBobClient() (*shipbob.Client, error) {
	client, err := apiclients.NewShipBob(serviceConfig(constants.ServiceShipBob))
	if err != nil {
		return nil, fmt.Errorf("failed to create ShipBob client: %w", err)
	}

	return client, nil
}

func newSlackClient() (*slack.Client, error) {
	client, err := apiclients.NewSlack(serviceConfig(constants.ServiceSlack))
	if err != nil {
		return nil, fmt.Errorf("failed to create Slack client: %w", err)
	}

	return client, nil
}
