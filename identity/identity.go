// Package identity implements the authentication handshake against a
// v2-style federated cloud identity API: unscoped authentication, tenant
// discovery, scoped authentication, and service-catalog resolution. Resource
// wrappers obtain their auth token and base URLs from the Identity this
// package produces; they never build either themselves.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/jrsteele09/go-cloud-client/providers"
	"github.com/jrsteele09/go-cloud-client/transport"
)

// Tenant is the account/project scope a token is authorized against.
// Immutable once fetched.
type Tenant struct {
	ID      string
	Name    string
	Enabled bool
}

// Token is the opaque credential produced by a successful scoped
// authentication. Expiry is informational; this package never refreshes.
type Token struct {
	ID      string
	Expires time.Time
	Tenant  Tenant
}

// Identity is the handshake's output: the scoped token, the service catalog
// and the provider's raw access payload. It is immutable and safe for
// concurrent use; lifetime is caller-managed.
type Identity struct {
	Token   Token
	Catalog ServiceCatalog

	// Raw is the provider-specific access payload from the scoped-auth
	// response, preserved for callers that need fields this package does
	// not model.
	Raw json.RawMessage

	authURL string
	region  string
	profile providers.Profile
	client  *transport.Client
}

// Region returns the region the identity was created for ("" if none).
func (i *Identity) Region() string { return i.region }

// Profile returns the provider profile the identity was created with.
func (i *Identity) Profile() providers.Profile { return i.profile }

// Transport returns the request collaborator shared by this identity's
// remote calls. It is stateless and safe for concurrent use.
func (i *Identity) Transport() *transport.Client { return i.client }

// ServiceURL resolves the public base URL for an abstract service kind in
// the identity's region, or "" when the catalog has no such endpoint.
func (i *Identity) ServiceURL(kind providers.Kind, region string) string {
	if region == "" {
		region = i.region
	}
	return i.Catalog.URL(i.profile.ServiceType(kind), region)
}

// ValidateToken checks, using this identity's own token, that tokenID is
// valid and belongs to tenantID. A nil return means the remote service
// accepted the token. Privilege failures arrive as ordinary
// *transport.StatusError values; there is no separate privilege error.
func (i *Identity) ValidateToken(ctx context.Context, tokenID, tenantID string) error {
	endpoint := fmt.Sprintf("%s/tokens/%s?belongsTo=%s",
		i.adminURL(), url.PathEscape(tokenID), url.QueryEscape(tenantID))

	err := i.client.Send(ctx, transport.Request{
		Method: http.MethodGet,
		URL:    endpoint,
		Token:  i.Token.ID,
	})
	return errors.Wrap(err, "[Identity.ValidateToken] validation request")
}

// TenantInfo fetches tenant metadata using this identity's token. Whether
// the token is privileged enough is decided entirely by the remote service.
func (i *Identity) TenantInfo(ctx context.Context, tenantID string) (*Tenant, error) {
	endpoint := fmt.Sprintf("%s/tenants/%s", i.adminURL(), url.PathEscape(tenantID))

	var payload tenantWrapper
	if err := i.client.Send(ctx, transport.Request{
		Method: http.MethodGet,
		URL:    endpoint,
		Token:  i.Token.ID,
		Result: &payload,
	}); err != nil {
		return nil, errors.Wrap(err, "[Identity.TenantInfo] tenant request")
	}

	return &Tenant{
		ID:      payload.Tenant.ID,
		Name:    payload.Tenant.Name,
		Enabled: payload.Tenant.Enabled,
	}, nil
}

// adminURL prefers the identity service advertised in the catalog (admin
// deployments publish it there) and falls back to the auth endpoint the
// identity was created against.
func (i *Identity) adminURL() string {
	if u := i.Catalog.URL(i.profile.ServiceType(providers.IdentityKind), i.region); u != "" {
		return strings.TrimSuffix(u, "/")
	}
	return joinURL(i.authURL, i.profile.IdentityPath())
}

func joinURL(base string, parts ...string) string {
	joined := strings.TrimSuffix(base, "/")
	for _, part := range parts {
		joined += "/" + strings.Trim(part, "/")
	}
	return joined
}
