package identity

import (
	"encoding/json"
	"time"
)

// Wire shapes for the v2 identity API. Request bodies are built here and
// nowhere else; response payloads are converted into the exported value
// types immediately after decoding.

type passwordCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authRequest struct {
	PasswordCredentials passwordCredentials `json:"passwordCredentials"`
	TenantID            string              `json:"tenantId,omitempty"`
}

type authWrapper struct {
	Auth authRequest `json:"auth"`
}

type tenantPayload struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

type tenantsPayload struct {
	Tenants []tenantPayload `json:"tenants"`
}

type tenantWrapper struct {
	Tenant tenantPayload `json:"tenant"`
}

type tokenPayload struct {
	ID      string         `json:"id"`
	Expires string         `json:"expires"`
	Tenant  *tenantPayload `json:"tenant,omitempty"`
}

type endpointPayload struct {
	Region      string `json:"region,omitempty"`
	PublicURL   string `json:"publicURL"`
	InternalURL string `json:"internalURL,omitempty"`
}

type servicePayload struct {
	Name      string            `json:"name,omitempty"`
	Type      string            `json:"type"`
	Endpoints []endpointPayload `json:"endpoints"`
}

type accessPayload struct {
	Token          tokenPayload     `json:"token"`
	ServiceCatalog []servicePayload `json:"serviceCatalog"`
	User           json.RawMessage  `json:"user,omitempty"`
}

type accessWrapper struct {
	Access json.RawMessage `json:"access"`
}

// parseExpires tolerates the timestamp variants v2 providers emit. A value
// that parses as nothing yields the zero time; expiry is informational only.
func parseExpires(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts
	}
	if ts, err := time.Parse("2006-01-02T15:04:05", value); err == nil {
		return ts
	}
	return time.Time{}
}
