package identity

import (
	"github.com/jrsteele09/go-cloud-client/providers"
	"github.com/jrsteele09/go-cloud-client/transport"
)

// Options configures a Create call.
type Options struct {
	// URL is the authentication endpoint, without the version path.
	// Required, even when Identity is supplied.
	URL string

	// Username and Password authenticate the caller. Required unless
	// Identity is supplied.
	Username string
	Password string

	// Region restricts endpoint resolution; the handshake fails if any
	// region-tagged service cannot serve it. Empty means no constraint.
	Region string

	// TenantID / TenantName select a specific tenant during discovery.
	// When neither is set the first enabled tenant wins.
	TenantID   string
	TenantName string

	// Identity short-circuits the handshake: Create returns it unchanged.
	// Used when composing admin and user flows that already authenticated.
	Identity *Identity

	// Profile selects the provider mappings. Defaults to OpenStack.
	Profile providers.Profile

	// Client is the request collaborator. Defaults to transport.New().
	Client *transport.Client
}

// validate enforces argument shape before any I/O. Failures here are
// *ArgumentError: the caller's program is structurally wrong. Authorization
// failures are a different class and only ever occur after I/O starts.
func (o *Options) validate() error {
	if o == nil {
		return ErrMissingOptions
	}
	if o.URL == "" {
		return ErrMissingURL
	}
	return nil
}

func (o *Options) profile() providers.Profile {
	if o.Profile != nil {
		return o.Profile
	}
	return providers.OpenStack()
}

func (o *Options) client() *transport.Client {
	if o.Client != nil {
		return o.Client
	}
	return transport.New()
}
