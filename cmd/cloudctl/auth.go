package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Authenticate and show the scoped token",
	RunE:  runAuth,
}

func init() {
	rootCmd.AddCommand(authCmd)
}

func runAuth(cmd *cobra.Command, args []string) error {
	displayAppname(cfg.GetAppName())

	id, err := newIdentity(cmd.Context())
	if err != nil {
		return err
	}

	color.Green("Authenticated as tenant %s (%s)", id.Token.Tenant.Name, id.Token.Tenant.ID)
	fmt.Printf("Token:   %s\n", id.Token.ID)
	if !id.Token.Expires.IsZero() {
		fmt.Printf("Expires: %s\n", id.Token.Expires.Format(time.RFC3339))
	}
	if id.Region() != "" {
		fmt.Printf("Region:  %s\n", id.Region())
	}
	return nil
}
