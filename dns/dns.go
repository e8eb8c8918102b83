// Package dns wraps a Rackspace-style cloud DNS API. Mutating calls are
// asynchronous on the wire: the provider answers with a Job that callers may
// poll through JobStatus. Like every wrapper, the base URL and auth token
// come from the identity, never from this package.
package dns

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	interrors "github.com/jrsteele09/go-cloud-client/internal/errors"
	"github.com/jrsteele09/go-cloud-client/identity"
	"github.com/jrsteele09/go-cloud-client/providers"
	"github.com/jrsteele09/go-cloud-client/transport"
)

// Client issues DNS API calls on behalf of one authenticated identity.
type Client struct {
	id     *identity.Identity
	client *transport.Client
	base   string
}

// New resolves the DNS endpoint from the identity's catalog.
func New(id *identity.Identity) (*Client, error) {
	if id == nil {
		return nil, errors.New("[dns.New] identity is required")
	}

	base := id.ServiceURL(providers.DNS, "")
	if base == "" {
		return nil, interrors.Wrapf(interrors.ErrNoServiceEndpoint, "[dns.New] %q", id.Profile().ServiceType(providers.DNS))
	}

	return &Client{
		id:     id,
		client: id.Transport(),
		base:   base,
	}, nil
}

// Job is the provider's handle for an asynchronous DNS change.
type Job struct {
	ID          string `json:"jobId"`
	Status      string `json:"status"`
	CallbackURL string `json:"callbackUrl"`
}

// JobStatus looks up the current state of an asynchronous change.
func (c *Client) JobStatus(ctx context.Context, jobID string) (*Job, error) {
	if jobID == "" {
		return nil, interrors.ErrMissingParameters
	}

	var job Job
	if err := c.send(ctx, http.MethodGet, "/status/"+jobID+"?showDetails=true", nil, &job); err != nil {
		return nil, errors.Wrap(err, "[Client.JobStatus] get job status")
	}
	if job.ID == "" {
		job.ID = jobID
	}
	return &job, nil
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
