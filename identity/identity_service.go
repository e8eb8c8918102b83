package identity

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"

	"github.com/jrsteele09/go-cloud-client/providers"
	"github.com/jrsteele09/go-cloud-client/transport"
)

// handshakeState tracks the strictly ordered progression of the handshake.
// Each step consumes the previous step's output, so no step may be skipped
// or reordered.
type handshakeState int

const (
	stateUnauthenticated handshakeState = iota
	stateTenantDiscovered
	stateScoped
	stateFailed
)

// Create executes the identity handshake: unscoped authentication, tenant
// discovery, scoped authentication, catalog construction. Every Create call
// owns its own state; concurrent calls never interfere.
//
// Argument-shape failures return *ArgumentError before any I/O. Handshake
// business failures return *AuthError; HTTP failures pass through as
// *transport.StatusError without retries.
func Create(ctx context.Context, opts *Options) (*Identity, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	if opts.Identity != nil {
		return opts.Identity, nil
	}

	if opts.Username == "" || opts.Password == "" {
		return nil, ErrMissingCredentials
	}

	h := &handshake{
		opts:    opts,
		profile: opts.profile(),
		client:  opts.client(),
		state:   stateUnauthenticated,
	}
	return h.run(ctx)
}

// handshake holds the in-flight state of one Create call.
type handshake struct {
	opts    *Options
	profile providers.Profile
	client  *transport.Client
	state   handshakeState

	unscopedToken string
	tenant        tenantPayload
	rawAccess     json.RawMessage
	access        accessPayload
}

func (h *handshake) run(ctx context.Context) (*Identity, error) {
	steps := []func(context.Context) error{
		h.authenticate,
		h.discoverTenant,
		h.scope,
	}
	for _, step := range steps {
		if err := step(ctx); err != nil {
			return nil, h.fail(err)
		}
	}

	id, err := h.identity()
	if err != nil {
		return nil, h.fail(err)
	}
	return id, nil
}

func (h *handshake) fail(err error) error {
	h.state = stateFailed
	return err
}

// authenticate posts the credentials without a tenant, yielding the
// preliminary token used for discovery.
func (h *handshake) authenticate(ctx context.Context) error {
	if h.state != stateUnauthenticated {
		return errors.Errorf("[handshake.authenticate] unexpected state %d", h.state)
	}

	var payload accessWrapper
	if err := h.client.Send(ctx, transport.Request{
		Method: http.MethodPost,
		URL:    h.tokensURL(),
		Body: authWrapper{Auth: authRequest{
			PasswordCredentials: passwordCredentials{
				Username: h.opts.Username,
				Password: h.opts.Password,
			},
		}},
		Result: &payload,
	}); err != nil {
		return errors.Wrap(err, "[handshake.authenticate] unscoped auth")
	}

	var access accessPayload
	if err := json.Unmarshal(payload.Access, &access); err != nil {
		return errors.Wrap(err, "[handshake.authenticate] decode access payload")
	}
	if access.Token.ID == "" {
		return errors.New("[handshake.authenticate] auth response contained no token")
	}

	h.unscopedToken = access.Token.ID
	return nil
}

// discoverTenant lists the tenants visible to the unscoped token and selects
// the one the scoped authentication will bind to.
func (h *handshake) discoverTenant(ctx context.Context) error {
	if h.state != stateUnauthenticated || h.unscopedToken == "" {
		return errors.Errorf("[handshake.discoverTenant] unexpected state %d", h.state)
	}

	var payload tenantsPayload
	if err := h.client.Send(ctx, transport.Request{
		Method: http.MethodGet,
		URL:    h.baseURL("tenants"),
		Token:  h.unscopedToken,
		Result: &payload,
	}); err != nil {
		return errors.Wrap(err, "[handshake.discoverTenant] tenant list")
	}

	if len(payload.Tenants) == 0 {
		return ErrNoTenants
	}

	selected, ok := h.selectTenant(payload.Tenants)
	if !ok {
		return ErrNoActiveTenant
	}

	h.tenant = selected
	h.state = stateTenantDiscovered
	return nil
}

// selectTenant filters to enabled tenants, preferring the caller's requested
// tenant and otherwise taking the first enabled tenant in response order. A
// requested tenant that matches no enabled tenant is indistinguishable from
// having no enabled tenants at all.
func (h *handshake) selectTenant(candidates []tenantPayload) (tenantPayload, bool) {
	requested := h.opts.TenantID != "" || h.opts.TenantName != ""

	for _, tenant := range candidates {
		if !tenant.Enabled {
			continue
		}
		if !requested {
			return tenant, true
		}
		if (h.opts.TenantID != "" && tenant.ID == h.opts.TenantID) ||
			(h.opts.TenantName != "" && tenant.Name == h.opts.TenantName) {
			return tenant, true
		}
	}
	return tenantPayload{}, false
}

// scope posts the credentials again with the chosen tenant id, yielding the
// final token and the raw service-catalog payload.
func (h *handshake) scope(ctx context.Context) error {
	if h.state != stateTenantDiscovered {
		return errors.Errorf("[handshake.scope] unexpected state %d", h.state)
	}

	var payload accessWrapper
	if err := h.client.Send(ctx, transport.Request{
		Method: http.MethodPost,
		URL:    h.tokensURL(),
		Body: authWrapper{Auth: authRequest{
			PasswordCredentials: passwordCredentials{
				Username: h.opts.Username,
				Password: h.opts.Password,
			},
			TenantID: h.tenant.ID,
		}},
		Result: &payload,
	}); err != nil {
		return errors.Wrap(err, "[handshake.scope] scoped auth")
	}

	var access accessPayload
	if err := json.Unmarshal(payload.Access, &access); err != nil {
		return errors.Wrap(err, "[handshake.scope] decode access payload")
	}
	if access.Token.ID == "" {
		return errors.New("[handshake.scope] auth response contained no token")
	}

	h.rawAccess = payload.Access
	h.access = access
	h.state = stateScoped
	return nil
}

// identity builds the catalog, enforces the region constraint and assembles
// the final Identity. Runs only from the scoped state.
func (h *handshake) identity() (*Identity, error) {
	if h.state != stateScoped {
		return nil, errors.Errorf("[handshake.identity] unexpected state %d", h.state)
	}

	catalog := newServiceCatalog(h.access.ServiceCatalog)
	if h.opts.Region != "" {
		if err := catalog.checkRegion(h.opts.Region); err != nil {
			return nil, err
		}
	}

	// The scoped response restates the tenant but usually omits its enabled
	// flag; discovery already proved the tenant enabled.
	tenant := Tenant{ID: h.tenant.ID, Name: h.tenant.Name, Enabled: h.tenant.Enabled}
	if h.access.Token.Tenant != nil {
		tenant.ID = h.access.Token.Tenant.ID
		tenant.Name = h.access.Token.Tenant.Name
	}

	return &Identity{
		Token: Token{
			ID:      h.access.Token.ID,
			Expires: parseExpires(h.access.Token.Expires),
			Tenant:  tenant,
		},
		Catalog: catalog,
		Raw:     h.rawAccess,
		authURL: h.opts.URL,
		region:  h.opts.Region,
		profile: h.profile,
		client:  h.client,
	}, nil
}

func (h *handshake) tokensURL() string {
	return h.baseURL("tokens")
}

func (h *handshake) baseURL(resource string) string {
	return joinURL(h.opts.URL, h.profile.IdentityPath(), resource)
}
