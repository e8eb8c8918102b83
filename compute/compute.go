// Package compute is a thin wrapper over an authenticated compute API. It
// derives its base URL from the identity's service catalog and attaches the
// identity's token to every request; all real work happens server-side.
package compute

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	interrors "github.com/jrsteele09/go-cloud-client/internal/errors"
	"github.com/jrsteele09/go-cloud-client/identity"
	"github.com/jrsteele09/go-cloud-client/providers"
	"github.com/jrsteele09/go-cloud-client/transport"
)

// Client issues compute API calls on behalf of one authenticated identity.
type Client struct {
	id      *identity.Identity
	client  *transport.Client
	profile providers.Profile
	base    string
}

// New resolves the compute endpoint from the identity's catalog. The
// identity's region constraint applies; a catalog without a usable compute
// endpoint is an error here, not at first use.
func New(id *identity.Identity) (*Client, error) {
	if id == nil {
		return nil, errors.New("[compute.New] identity is required")
	}

	base := id.ServiceURL(providers.Compute, "")
	if base == "" {
		return nil, interrors.Wrapf(interrors.ErrNoServiceEndpoint, "[compute.New] %q", id.Profile().ServiceType(providers.Compute))
	}

	return &Client{
		id:      id,
		client:  id.Transport(),
		profile: id.Profile(),
		base:    base,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	return c.send(ctx, http.MethodGet, path, nil, result)
}

func (c *Client) post(ctx context.Context, path string, body, result interface{}) error {
	return c.send(ctx, http.MethodPost, path, body, result)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.send(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) send(ctx context.Context, method, path string, body, result interface{}) error {
	err := c.client.Send(ctx, transport.Request{
		Method: method,
		URL:    c.base + path,
		Token:  c.id.Token.ID,
		Body:   body,
		Result: result,
	})
	if transport.IsStatus(err, http.StatusNotFound) {
		return interrors.ErrNotFound
	}
	return err
}
