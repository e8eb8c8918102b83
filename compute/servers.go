package compute

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	interrors "github.com/jrsteele09/go-cloud-client/internal/errors"
	"github.com/jrsteele09/go-cloud-client/providers"
)

// Server is a compute instance. Status is normalized through the provider
// profile so callers never see raw provider status strings.
type Server struct {
	ID        string
	Name      string
	Status    providers.ServerStatus
	RawStatus string
	Progress  int
	ImageID   string
	FlavorID  string
	HostID    string
	AdminPass string
	Addresses map[string][]string
	Metadata  map[string]string
}

type addressPayload struct {
	Addr    string `json:"addr"`
	Version int    `json:"version"`
}

type serverPayload struct {
	ID        string                      `json:"id"`
	Name      string                      `json:"name"`
	Status    string                      `json:"status"`
	Progress  int                         `json:"progress"`
	ImageID   string                      `json:"imageId"`
	FlavorID  string                      `json:"flavorId"`
	HostID    string                      `json:"hostId"`
	AdminPass string                      `json:"adminPass"`
	Addresses map[string][]addressPayload `json:"addresses"`
	Metadata  map[string]string           `json:"metadata"`
}

func (c *Client) newServer(payload serverPayload) Server {
	addresses := make(map[string][]string, len(payload.Addresses))
	for network, addrs := range payload.Addresses {
		for _, addr := range addrs {
			addresses[network] = append(addresses[network], addr.Addr)
		}
	}

	return Server{
		ID:        payload.ID,
		Name:      payload.Name,
		Status:    c.profile.NormalizeServerStatus(payload.Status),
		RawStatus: payload.Status,
		Progress:  payload.Progress,
		ImageID:   payload.ImageID,
		FlavorID:  payload.FlavorID,
		HostID:    payload.HostID,
		AdminPass: payload.AdminPass,
		Addresses: addresses,
		Metadata:  payload.Metadata,
	}
}

// Servers lists all servers visible to the identity's tenant.
func (c *Client) Servers(ctx context.Context) ([]Server, error) {
	var payload struct {
		Servers []serverPayload `json:"servers"`
	}
	if err := c.get(ctx, "/servers/detail", &payload); err != nil {
		return nil, errors.Wrap(err, "[Client.Servers] list servers")
	}

	servers := make([]Server, 0, len(payload.Servers))
	for _, sp := range payload.Servers {
		servers = append(servers, c.newServer(sp))
	}
	return servers, nil
}

// Server fetches one server by id.
func (c *Client) Server(ctx context.Context, serverID string) (*Server, error) {
	if serverID == "" {
		return nil, interrors.ErrMissingParameters
	}

	var payload struct {
		Server serverPayload `json:"server"`
	}
	if err := c.get(ctx, "/servers/"+serverID, &payload); err != nil {
		return nil, errors.Wrap(err, "[Client.Server] get server")
	}

	server := c.newServer(payload.Server)
	return &server, nil
}

// CreateServerOptions describes a new server.
type CreateServerOptions struct {
	Name     string            `json:"name"`
	ImageID  string            `json:"imageId,omitempty"`
	FlavorID string            `json:"flavorId,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// CreateServer provisions a server; the returned server carries the
// generated admin password and usually starts in PROVISIONING.
func (c *Client) CreateServer(ctx context.Context, opts CreateServerOptions) (*Server, error) {
	if opts.Name == "" {
		return nil, interrors.ErrMissingParameters
	}

	var payload struct {
		Server serverPayload `json:"server"`
	}
	body := map[string]CreateServerOptions{"server": opts}
	if err := c.post(ctx, "/servers", body, &payload); err != nil {
		return nil, errors.Wrap(err, "[Client.CreateServer] create server")
	}

	server := c.newServer(payload.Server)
	return &server, nil
}

// DeleteServer destroys a server.
func (c *Client) DeleteServer(ctx context.Context, serverID string) error {
	if serverID == "" {
		return interrors.ErrMissingParameters
	}
	return errors.Wrap(c.delete(ctx, "/servers/"+serverID), "[Client.DeleteServer] delete server")
}

// RebootServer reboots a server, hard (power cycle) or soft.
func (c *Client) RebootServer(ctx context.Context, serverID string, hard bool) error {
	rebootType := "SOFT"
	if hard {
		rebootType = "HARD"
	}
	return c.ServerAction(ctx, serverID, map[string]interface{}{
		"reboot": map[string]string{"type": rebootType},
	})
}

// ResizeServer moves a server to a new flavor; the resize must then be
// confirmed or reverted.
func (c *Client) ResizeServer(ctx context.Context, serverID, flavorID string) error {
	if flavorID == "" {
		return interrors.ErrMissingParameters
	}
	return c.ServerAction(ctx, serverID, map[string]interface{}{
		"resize": map[string]string{"flavorId": flavorID},
	})
}

// ConfirmResize commits a pending resize.
func (c *Client) ConfirmResize(ctx context.Context, serverID string) error {
	return c.ServerAction(ctx, serverID, map[string]interface{}{"confirmResize": nil})
}

// RevertResize rolls a pending resize back.
func (c *Client) RevertResize(ctx context.Context, serverID string) error {
	return c.ServerAction(ctx, serverID, map[string]interface{}{"revertResize": nil})
}

// ChangeAdminPassword sets a server's administrator password.
func (c *Client) ChangeAdminPassword(ctx context.Context, serverID, newPassword string) error {
	if newPassword == "" {
		return interrors.ErrMissingParameters
	}
	return c.ServerAction(ctx, serverID, map[string]interface{}{
		"changePassword": map[string]string{"adminPass": newPassword},
	})
}

// ServerAction posts a raw action body to /servers/{id}/action.
func (c *Client) ServerAction(ctx context.Context, serverID string, body interface{}) error {
	if serverID == "" || body == nil {
		return interrors.ErrMissingParameters
	}
	path := fmt.Sprintf("/servers/%s/action", serverID)
	return errors.Wrap(c.post(ctx, path, body, nil), "[Client.ServerAction] server action")
}

// Limits returns the tenant's current API limits as reported by the
// provider, undecoded.
func (c *Client) Limits(ctx context.Context) (json.RawMessage, error) {
	var payload struct {
		Limits json.RawMessage `json:"limits"`
	}
	if err := c.get(ctx, "/limits", &payload); err != nil {
		return nil, errors.Wrap(err, "[Client.Limits] get limits")
	}
	return payload.Limits, nil
}
