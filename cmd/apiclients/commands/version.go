package commands

import (
	"github.com/detailyang/third-party-api-clients/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// VersionInfo describes the running binary.
type VersionInfo struct {
	Version       string `json:"version"        yaml:"version"`
	Commit        string `json:"commit"         yaml:"commit"`
	Built         string `json:"built"          yaml:"built"`
	ClientVersion string `json:"client_version" yaml:"client_version"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the apiclients CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := VersionInfo{
				Version:       version,
				Commit:        commit,
				Built:         date,
				ClientVersion: constants.Version,
			}

			return renderOutput(cmd.OutOrStdout(), info, func(table *tablewriter.Table, info VersionInfo) {
				table.Header("Property", "Value")
				_ = table.Append("Version", info.Version)
				_ = table.Append("Commit", info.Commit)
				_ = table.Append("Built", info.Built)
				_ = table.Append("Client", info.ClientVersion)
			})
		},
	}
}
