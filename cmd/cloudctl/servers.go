package main

import (
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jrsteele09/go-cloud-client/compute"
	"github.com/jrsteele09/go-cloud-client/internal/output"
	"github.com/jrsteele09/go-cloud-client/providers"
)

var serversCmd = &cobra.Command{
	Use:   "servers",
	Short: "List compute servers",
	RunE:  runServers,
}

func init() {
	rootCmd.AddCommand(serversCmd)
}

func runServers(cmd *cobra.Command, args []string) error {
	client, err := computeClient(cmd)
	if err != nil {
		return err
	}

	servers, err := client.Servers(cmd.Context())
	if err != nil {
		return err
	}

	table := output.NewTable([]string{"ID", "Name", "Status", "Progress"})
	for _, server := range servers {
		table.AddRow([]string{
			server.ID,
			server.Name,
			colorStatus(server.Status),
			strconv.Itoa(server.Progress),
		})
	}
	table.Render()
	return nil
}

func computeClient(cmd *cobra.Command) (*compute.Client, error) {
	id, err := newIdentity(cmd.Context())
	if err != nil {
		return nil, err
	}
	return compute.New(id)
}

func colorStatus(status providers.ServerStatus) string {
	switch status {
	case providers.StatusRunning:
		return color.GreenString(string(status))
	case providers.StatusError, providers.StatusUnknown:
		return color.RedString(string(status))
	default:
		return color.YellowString(string(status))
	}
}
