package main

import (
	"github.com/spf13/cobra"

	"github.com/jrsteele09/go-cloud-client/internal/output"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Show the resolved service catalog",
	RunE:  runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	id, err := newIdentity(cmd.Context())
	if err != nil {
		return err
	}

	table := output.NewTable([]string{"Service", "Region", "Public URL"})
	for _, serviceType := range id.Catalog.ServiceTypes() {
		for _, ep := range id.Catalog.Endpoints(serviceType) {
			regionName := ep.Region
			if regionName == "" {
				regionName = "(all)"
			}
			table.AddRow([]string{serviceType, regionName, ep.PublicURL})
		}
	}
	table.Render()
	return nil
}
