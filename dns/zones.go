package dns

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	interrors "github.com/jrsteele09/go-cloud-client/internal/errors"
)

// Nameserver is one authoritative nameserver for a zone.
type Nameserver struct {
	Name string `json:"name"`
}

// Zone is a DNS zone ("domain" on the wire). Zone ids are numeric on this
// provider, unlike record ids.
type Zone struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	EmailAddress string       `json:"emailAddress"`
	TTL          int          `json:"ttl"`
	AccountID    int64        `json:"accountId"`
	Nameservers  []Nameserver `json:"nameservers"`
	Created      string       `json:"created"`
	Updated      string       `json:"updated"`
}

// Zones lists the tenant's zones.
func (c *Client) Zones(ctx context.Context) ([]Zone, error) {
	var payload struct {
		Domains []Zone `json:"domains"`
	}
	if err := c.send(ctx, http.MethodGet, "/domains", nil, &payload); err != nil {
		return nil, errors.Wrap(err, "[Client.Zones] list zones")
	}
	return payload.Domains, nil
}

// Zone fetches one zone by id.
func (c *Client) Zone(ctx context.Context, zoneID int64) (*Zone, error) {
	if zoneID == 0 {
		return nil, interrors.ErrMissingParameters
	}

	var zone Zone
	if err := c.send(ctx, http.MethodGet, fmt.Sprintf("/domains/%d", zoneID), nil, &zone); err != nil {
		return nil, errors.Wrap(err, "[Client.Zone] get zone")
	}
	return &zone, nil
}

// CreateZoneOptions describes a new zone.
type CreateZoneOptions struct {
	Name         string `json:"name"`
	EmailAddress string `json:"emailAddress"`
	TTL          int    `json:"ttl,omitempty"`
	Comment      string `json:"comment,omitempty"`
}

// CreateZone submits a zone creation and returns the provider's job handle.
func (c *Client) CreateZone(ctx context.Context, opts CreateZoneOptions) (*Job, error) {
	if opts.Name == "" || opts.EmailAddress == "" {
		return nil, interrors.ErrMissingParameters
	}

	body := map[string][]CreateZoneOptions{"domains": {opts}}
	var job Job
	if err := c.send(ctx, http.MethodPost, "/domains", body, &job); err != nil {
		return nil, errors.Wrap(err, "[Client.CreateZone] create zone")
	}
	return &job, nil
}

// DeleteZone submits a zone deletion and returns the provider's job handle.
func (c *Client) DeleteZone(ctx context.Context, zoneID int64) (*Job, error) {
	if zoneID == 0 {
		return nil, interrors.ErrMissingParameters
	}

	var job Job
	if err := c.send(ctx, http.MethodDelete, fmt.Sprintf("/domains/%d", zoneID), nil, &job); err != nil {
		return nil, errors.Wrap(err, "[Client.DeleteZone] delete zone")
	}
	return &job, nil
}
