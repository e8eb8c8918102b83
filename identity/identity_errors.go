package identity

import "fmt"

// ArgumentError reports a structurally wrong call: malformed or missing
// arguments detected before any I/O. It is never used for remote failures.
type ArgumentError struct {
	message string
}

func (e *ArgumentError) Error() string { return e.message }

// AuthError reports a handshake-level business failure: missing credentials,
// no usable tenant, or a region with no matching endpoints. HTTP-layer
// failures are not AuthErrors; they surface as *transport.StatusError.
type AuthError struct {
	message string
}

func (e *AuthError) Error() string { return e.message }

var (
	ErrMissingOptions = &ArgumentError{"options is a required argument"}
	ErrMissingURL     = &ArgumentError{"options.url is a required option"}

	ErrMissingCredentials = &AuthError{"Unable to authorize; missing required inputs"}
	ErrNoTenants          = &AuthError{"Unable to find tenants"}
	ErrNoActiveTenant     = &AuthError{"Unable to find an active tenant"}
)

func errEndpointNotFound(serviceType string) *AuthError {
	return &AuthError{fmt.Sprintf("Unable to identify target endpoint for Service: %s", serviceType)}
}
