package commands

import (
	"fmt"
	"strings"

	"github.com/detailyang/third-party-api-clients/internal/constants"
	"github.com/detailyang/third-party-api-clients/pkg/docusign"
	"github.com/detailyang/third-party-api-clients/pkg/rest"
	"github.com/detailyang/third-party-api-clients/pkg/shipbob"
	"github.com/detailyang/third-party-api-clients/pkg/slack"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// EndpointInfo describes one bound remote operation.
type EndpointInfo struct {
	Service   string   `json:"service"         yaml:"service"`
	Name      string   `json:"name"            yaml:"name"`
	Method    string   `json:"method"          yaml:"method"`
	Path      string   `json:"path"            yaml:"path"`
	Query     []string `json:"query,omitempty" yaml:"query,omitempty"`
	Paginated bool     `json:"paginated"       yaml:"paginated"`
}

// NewEndpointsCommand creates the endpoints command.
func NewEndpointsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "endpoints [SERVICE]",
		Short: "List the bound API endpoints",
		Long:  "List every endpoint the clients can call, optionally for one service",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := ""
			if len(args) == 1 {
				filter = strings.ToLower(args[0])
			}

			infos, err := endpointInfos(filter)
			if err != nil {
				return err
			}

			return renderOutput(cmd.OutOrStdout(), infos, func(table *tablewriter.Table, infos []EndpointInfo) {
				table.Header("Service", "Name", "Method", "Path", "Query")

				for _, info := range infos {
					_ = table.Append(info.Service, info.Name, info.Method, info.Path, strings.Join(info.Query, ","))
				}
			})
		},
	}
}

func endpointInfos(filter string) ([]EndpointInfo, error) {
	tables := map[string][]rest.Endpoint{
		constants.ServiceDocuSign: docusign.Endpoints(),
		constants.ServiceShipBob:  shipbob.Endpoints(),
		constants.ServiceSlack:    slack.Endpoints(),
	}

	if filter != "" {
		if _, ok := tables[filter]; !ok {
			return nil, fmt.Errorf("%w: %s", constants.ErrUnknownService, filter)
		}
	}

	var infos []EndpointInfo

	for _, service := range knownServices() {
		if filter != "" && filter != service {
			continue
		}

		for _, endpoint := range tables[service] {
			infos = append(infos, EndpointInfo{
				Service:   service,
				Name:      endpoint.Name,
				Method:    endpoint.Method,
				Path:      endpoint.Path,
				Query:     endpoint.Query,
				Paginated: endpoint.Paginated,
			})
		}
	}

	return infos, nil
}
