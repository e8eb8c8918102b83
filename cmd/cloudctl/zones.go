package main

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jrsteele09/go-cloud-client/dns"
	"github.com/jrsteele09/go-cloud-client/internal/output"
)

var zonesCmd = &cobra.Command{
	Use:   "zones",
	Short: "List DNS zones",
	RunE:  runZones,
}

var recordsCmd = &cobra.Command{
	Use:   "records <zone-id>",
	Short: "List the records of a DNS zone",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecords,
}

func init() {
	rootCmd.AddCommand(zonesCmd)
	rootCmd.AddCommand(recordsCmd)
}

func runZones(cmd *cobra.Command, args []string) error {
	client, err := dnsClient(cmd)
	if err != nil {
		return err
	}

	zones, err := client.Zones(cmd.Context())
	if err != nil {
		return err
	}

	table := output.NewTable([]string{"ID", "Name", "Email", "TTL"})
	for _, zone := range zones {
		table.AddRow([]string{
			strconv.FormatInt(zone.ID, 10),
			zone.Name,
			zone.EmailAddress,
			strconv.Itoa(zone.TTL),
		})
	}
	table.Render()
	return nil
}

func runRecords(cmd *cobra.Command, args []string) error {
	zoneID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return errors.Wrapf(err, "invalid zone id %q", args[0])
	}

	client, err := dnsClient(cmd)
	if err != nil {
		return err
	}

	records, err := client.Records(cmd.Context(), zoneID)
	if err != nil {
		return err
	}

	table := output.NewTable([]string{"ID", "Name", "Type", "Data", "TTL"})
	for _, record := range records {
		table.AddRow([]string{
			record.ID,
			record.Name,
			record.Type,
			record.Data,
			strconv.Itoa(record.TTL),
		})
	}
	table.Render()
	return nil
}

func dnsClient(cmd *cobra.Command) (*dns.Client, error) {
	id, err := newIdentity(cmd.Context())
	if err != nil {
		return nil, err
	}
	return dns.New(id)
}
