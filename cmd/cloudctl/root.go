package main

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jrsteele09/go-cloud-client/identity"
	"github.com/jrsteele09/go-cloud-client/internal/config"
	"github.com/jrsteele09/go-cloud-client/providers"
	"github.com/jrsteele09/go-cloud-client/transport"
)

var (
	verbose bool
	region  string
	cfg     config.Config
	logger  zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "cloudctl",
	Short: "Inspect a federated cloud account through its identity handshake",
	Long: `cloudctl authenticates against an OpenStack-style identity endpoint and
queries the account's resources through the resolved service catalog.

Credentials come from OS_AUTH_URL, OS_USERNAME, OS_PASSWORD and, optionally,
OS_REGION_NAME, OS_TENANT_ID or OS_TENANT_NAME (a .env file is honoured).

Example usage:
  cloudctl auth                # Authenticate and show the scoped token
  cloudctl catalog             # Show the resolved service catalog
  cloudctl servers             # List compute servers
  cloudctl zones               # List DNS zones`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&region, "region", "", "region override (default: OS_REGION_NAME)")
}

func initConfig() error {
	cfg = config.New()

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
	return nil
}

// newIdentity runs the handshake with the configured credentials.
func newIdentity(ctx context.Context) (*identity.Identity, error) {
	if cfg.GetAuthURL() == "" {
		return nil, errors.New("OS_AUTH_URL is not set")
	}

	selectedRegion := region
	if selectedRegion == "" {
		selectedRegion = cfg.GetRegion()
	}

	return identity.Create(ctx, &identity.Options{
		URL:        cfg.GetAuthURL(),
		Username:   cfg.GetUsername(),
		Password:   cfg.GetPassword(),
		Region:     selectedRegion,
		TenantID:   cfg.GetTenantID(),
		TenantName: cfg.GetTenantName(),
		Profile:    providers.ByName(cfg.GetProvider()),
		Client:     transport.New(transport.WithLogger(logger)),
	})
}
