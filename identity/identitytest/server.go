// Package identitytest provides an in-process identity service double for
// exercising the handshake and admin operations without a real provider.
// Accounts, tenants and catalog services are registered up front; tokens are
// minted per authentication so concurrent handshakes stay distinguishable.
package identitytest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Tenant mirrors the tenant payload the identity API serves.
type Tenant struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// Endpoint is one catalog endpoint entry.
type Endpoint struct {
	Region      string `json:"region,omitempty"`
	PublicURL   string `json:"publicURL"`
	InternalURL string `json:"internalURL,omitempty"`
}

// Service is one catalog service entry.
type Service struct {
	Name      string     `json:"name,omitempty"`
	Type      string     `json:"type"`
	Endpoints []Endpoint `json:"endpoints"`
}

type account struct {
	password string
	admin    bool
	tenants  []Tenant
}

type tokenRecord struct {
	username string
	tenantID string
	admin    bool
}

// Server is the fake identity service. All methods are safe for concurrent
// use, matching the concurrency the handshake tests exercise.
type Server struct {
	srv *httptest.Server

	mu       sync.Mutex
	accounts map[string]*account
	services []Service
	tokens   map[string]tokenRecord
}

// New starts the server. Callers own the returned value and must Close it.
func New() *Server {
	s := &Server{
		accounts: make(map[string]*account),
		tokens:   make(map[string]tokenRecord),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v2.0/tokens", s.handleAuthenticate)
	mux.HandleFunc("GET /v2.0/tokens/{id}", s.handleValidateToken)
	mux.HandleFunc("GET /v2.0/tenants", s.handleListTenants)
	mux.HandleFunc("GET /v2.0/tenants/{id}", s.handleTenantInfo)
	s.srv = httptest.NewServer(mux)
	return s
}

// URL returns the server's base URL, suitable for Options.URL.
func (s *Server) URL() string { return s.srv.URL }

// Close shuts the server down.
func (s *Server) Close() { s.srv.Close() }

// AddUser registers a user with the tenants it may scope to.
func (s *Server) AddUser(username, password string, tenants ...Tenant) {
	s.addAccount(username, password, false, tenants)
}

// AddAdmin registers a user whose tokens may validate other users' tokens
// and read any tenant's metadata.
func (s *Server) AddAdmin(username, password string, tenants ...Tenant) {
	s.addAccount(username, password, true, tenants)
}

// AddService registers a catalog service returned with every scoped token.
func (s *Server) AddService(serviceType string, endpoints ...Endpoint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services = append(s.services, Service{Type: serviceType, Endpoints: endpoints})
}

func (s *Server) addAccount(username, password string, admin bool, tenants []Tenant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[username] = &account{password: password, admin: admin, tenants: tenants}
}

type authBody struct {
	Auth struct {
		PasswordCredentials struct {
			Username string `json:"username"`
			Password string `json:"password"`
		} `json:"passwordCredentials"`
		TenantID string `json:"tenantId"`
	} `json:"auth"`
}

func (s *Server) handleAuthenticate(w http.ResponseWriter, r *http.Request) {
	var body authBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "malformed auth request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	creds := body.Auth.PasswordCredentials
	acct, ok := s.accounts[creds.Username]
	if !ok || acct.password != creds.Password {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	tokenID := uuid.NewString()
	expires := time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339)

	token := map[string]interface{}{"id": tokenID, "expires": expires}
	access := map[string]interface{}{"token": token}

	if tenantID := body.Auth.TenantID; tenantID != "" {
		tenant, ok := findTenant(acct.tenants, tenantID)
		if !ok {
			http.Error(w, "tenant not authorized", http.StatusUnauthorized)
			return
		}
		token["tenant"] = tenant
		access["serviceCatalog"] = s.catalogLocked()
		s.tokens[tokenID] = tokenRecord{username: creds.Username, tenantID: tenantID, admin: acct.admin}
	} else {
		s.tokens[tokenID] = tokenRecord{username: creds.Username, admin: acct.admin}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"access": access})
}

// catalogLocked appends an identity service entry pointing back at this
// server so admin operations resolve here through the catalog.
func (s *Server) catalogLocked() []Service {
	catalog := make([]Service, 0, len(s.services)+1)
	catalog = append(catalog, s.services...)
	catalog = append(catalog, Service{
		Type:      "identity",
		Endpoints: []Endpoint{{PublicURL: s.srv.URL + "/v2.0"}},
	})
	return catalog
}

func (s *Server) handleListTenants(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.tokens[r.Header.Get("X-Auth-Token")]
	if !ok {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	tenants := s.accounts[record.username].tenants
	if tenants == nil {
		tenants = []Tenant{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"tenants": tenants})
}

func (s *Server) handleValidateToken(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, ok := s.tokens[r.Header.Get("X-Auth-Token")]
	if !ok {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}
	if !caller.admin {
		http.Error(w, "admin token required", http.StatusForbidden)
		return
	}

	subject, ok := s.tokens[r.PathValue("id")]
	if !ok || subject.tenantID == "" || subject.tenantID != r.URL.Query().Get("belongsTo") {
		http.Error(w, "token not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleTenantInfo(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	caller, ok := s.tokens[r.Header.Get("X-Auth-Token")]
	if !ok {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	tenantID := r.PathValue("id")
	if !caller.admin && caller.tenantID != tenantID {
		http.Error(w, "not authorized for tenant", http.StatusForbidden)
		return
	}

	for _, acct := range s.accounts {
		if tenant, ok := findTenant(acct.tenants, tenantID); ok {
			writeJSON(w, http.StatusOK, map[string]interface{}{"tenant": tenant})
			return
		}
	}
	http.Error(w, "tenant not found", http.StatusNotFound)
}

func findTenant(tenants []Tenant, id string) (Tenant, bool) {
	for _, tenant := range tenants {
		if tenant.ID == id {
			return tenant, true
		}
	}
	return Tenant{}, false
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
