package compute

import (
	"context"

	"github.com/pkg/errors"

	interrors "github.com/jrsteele09/go-cloud-client/internal/errors"
)

// Flavor describes a hardware configuration for a server.
type Flavor struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	RAM   int    `json:"ram"`
	Disk  int    `json:"disk"`
	VCPUs int    `json:"vcpus"`
	Swap  int    `json:"swap"`
}

// Flavors lists the flavors offered to the identity's tenant.
func (c *Client) Flavors(ctx context.Context) ([]Flavor, error) {
	var payload struct {
		Flavors []Flavor `json:"flavors"`
	}
	if err := c.get(ctx, "/flavors/detail", &payload); err != nil {
		return nil, errors.Wrap(err, "[Client.Flavors] list flavors")
	}
	return payload.Flavors, nil
}

// Flavor fetches one flavor by id.
func (c *Client) Flavor(ctx context.Context, flavorID string) (*Flavor, error) {
	if flavorID == "" {
		return nil, interrors.ErrMissingParameters
	}

	var payload struct {
		Flavor Flavor `json:"flavor"`
	}
	if err := c.get(ctx, "/flavors/"+flavorID, &payload); err != nil {
		return nil, errors.Wrap(err, "[Client.Flavor] get flavor")
	}
	return &payload.Flavor, nil
}
