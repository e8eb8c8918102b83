package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jrsteele09/go-cloud-client/internal/output"
)

var flavorsCmd = &cobra.Command{
	Use:   "flavors",
	Short: "List compute flavors",
	RunE:  runFlavors,
}

var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "List machine images",
	RunE:  runImages,
}

func init() {
	rootCmd.AddCommand(flavorsCmd)
	rootCmd.AddCommand(imagesCmd)
}

func runFlavors(cmd *cobra.Command, args []string) error {
	client, err := computeClient(cmd)
	if err != nil {
		return err
	}

	flavors, err := client.Flavors(cmd.Context())
	if err != nil {
		return err
	}

	table := output.NewTable([]string{"ID", "Name", "RAM", "Disk", "VCPUs"})
	for _, flavor := range flavors {
		table.AddRow([]string{
			flavor.ID,
			flavor.Name,
			strconv.Itoa(flavor.RAM),
			strconv.Itoa(flavor.Disk),
			strconv.Itoa(flavor.VCPUs),
		})
	}
	table.Render()
	return nil
}

func runImages(cmd *cobra.Command, args []string) error {
	client, err := computeClient(cmd)
	if err != nil {
		return err
	}

	images, err := client.Images(cmd.Context())
	if err != nil {
		return err
	}

	table := output.NewTable([]string{"ID", "Name", "Status"})
	for _, image := range images {
		table.AddRow([]string{image.ID, image.Name, image.Status})
	}
	table.Render()
	return nil
}
