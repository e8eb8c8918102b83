package dns_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-cloud-client/dns"
	"github.com/jrsteele09/go-cloud-client/identity"
	"github.com/jrsteele09/go-cloud-client/identity/identitytest"
	interrors "github.com/jrsteele09/go-cloud-client/internal/errors"
)

const (
	testUsername = "MOCK-USERNAME"
	testPassword = "asdf1234"
	testTenantID = "72e90ecb69c44d0296072ea39e537041"

	testZoneID = int64(4100483)
)

type testFixture struct {
	identitySrv *identitytest.Server
	dnsSrv      *httptest.Server

	client *dns.Client

	lastCreateZone   map[string][]dns.CreateZoneOptions
	lastCreateRecord map[string][]dns.Record
	lastUpdateRecord dns.Record
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	f := &testFixture{}
	f.dnsSrv = httptest.NewServer(f.dnsHandler(t))
	t.Cleanup(f.dnsSrv.Close)

	f.identitySrv = identitytest.New()
	t.Cleanup(f.identitySrv.Close)
	f.identitySrv.AddUser(testUsername, testPassword,
		identitytest.Tenant{ID: testTenantID, Name: "MOCK-TENANT", Enabled: true})
	f.identitySrv.AddService("dns", identitytest.Endpoint{PublicURL: f.dnsSrv.URL})

	id, err := identity.Create(context.Background(), &identity.Options{
		URL:      f.identitySrv.URL(),
		Username: testUsername,
		Password: testPassword,
	})
	require.NoError(t, err)

	client, err := dns.New(id)
	require.NoError(t, err)
	f.client = client
	return f
}

func (f *testFixture) dnsHandler(t *testing.T) http.Handler {
	pendingJob := func() map[string]interface{} {
		return map[string]interface{}{
			"jobId":       "mock-job-id",
			"status":      "RUNNING",
			"callbackUrl": f.dnsURL("/status/mock-job-id"),
		}
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /domains", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"domains": []map[string]interface{}{
				{
					"id":           testZoneID,
					"name":         "example.org",
					"emailAddress": "hostmaster@example.org",
					"ttl":          3600,
					"nameservers":  []map[string]string{{"name": "ns1.example.org"}},
				},
				{"id": 4100484, "name": "example.net", "emailAddress": "hostmaster@example.net"},
			},
		})
	})

	mux.HandleFunc("GET /domains/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "4100483" {
			http.Error(w, "zone not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"id":           testZoneID,
			"name":         "example.org",
			"emailAddress": "hostmaster@example.org",
			"ttl":          3600,
		})
	})

	mux.HandleFunc("POST /domains", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&f.lastCreateZone))
		writeJSON(w, http.StatusAccepted, pendingJob())
	})

	mux.HandleFunc("DELETE /domains/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusAccepted, pendingJob())
	})

	mux.HandleFunc("GET /domains/{id}/records", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"records": []map[string]interface{}{
				{"id": "A-1234", "name": "www.example.org", "type": "A", "data": "203.0.113.10", "ttl": 300},
				{"id": "MX-5678", "name": "example.org", "type": "MX", "data": "mail.example.org"},
			},
		})
	})

	mux.HandleFunc("GET /domains/{id}/records/{recordID}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("recordID") != "A-1234" {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"id": "A-1234", "name": "www.example.org", "type": "A", "data": "203.0.113.10",
		})
	})

	mux.HandleFunc("POST /domains/{id}/records", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&f.lastCreateRecord))
		writeJSON(w, http.StatusAccepted, pendingJob())
	})

	mux.HandleFunc("PUT /domains/{id}/records/{recordID}", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&f.lastUpdateRecord))
		writeJSON(w, http.StatusAccepted, pendingJob())
	})

	mux.HandleFunc("DELETE /domains/{id}/records/{recordID}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusAccepted, pendingJob())
	})

	mux.HandleFunc("GET /status/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "mock-job-id" {
			http.Error(w, "job not found", http.StatusNotFound)
			return
		}
		assert.Equal(t, "true", r.URL.Query().Get("showDetails"))
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"jobId": "mock-job-id", "status": "COMPLETED",
		})
	})

	return mux
}

func (f *testFixture) dnsURL(path string) string { return f.dnsSrv.URL + path }

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func TestNewRequiresDNSEndpoint(t *testing.T) {
	srv := identitytest.New()
	t.Cleanup(srv.Close)
	srv.AddUser(testUsername, testPassword,
		identitytest.Tenant{ID: testTenantID, Name: "MOCK-TENANT", Enabled: true})

	id, err := identity.Create(context.Background(), &identity.Options{
		URL:      srv.URL(),
		Username: testUsername,
		Password: testPassword,
	})
	require.NoError(t, err)

	client, err := dns.New(id)
	require.ErrorIs(t, err, interrors.ErrNoServiceEndpoint)
	assert.Nil(t, client)
}

func TestZones(t *testing.T) {
	f := setupTestFixture(t)

	zones, err := f.client.Zones(context.Background())
	require.NoError(t, err)
	require.Len(t, zones, 2)
	assert.Equal(t, testZoneID, zones[0].ID)
	assert.Equal(t, "example.org", zones[0].Name)
	assert.Equal(t, "ns1.example.org", zones[0].Nameservers[0].Name)
}

func TestZoneByID(t *testing.T) {
	f := setupTestFixture(t)

	zone, err := f.client.Zone(context.Background(), testZoneID)
	require.NoError(t, err)
	assert.Equal(t, "example.org", zone.Name)
	assert.Equal(t, 3600, zone.TTL)

	_, err = f.client.Zone(context.Background(), 99)
	assert.ErrorIs(t, err, interrors.ErrNotFound)

	_, err = f.client.Zone(context.Background(), 0)
	assert.ErrorIs(t, err, interrors.ErrMissingParameters)
}

func TestCreateZoneReturnsJob(t *testing.T) {
	f := setupTestFixture(t)

	job, err := f.client.CreateZone(context.Background(), dns.CreateZoneOptions{
		Name:         "example.com",
		EmailAddress: "hostmaster@example.com",
		TTL:          300,
	})
	require.NoError(t, err)
	assert.Equal(t, "mock-job-id", job.ID)
	assert.Equal(t, "RUNNING", job.Status)

	sent := f.lastCreateZone["domains"]
	require.Len(t, sent, 1)
	assert.Equal(t, "example.com", sent[0].Name)

	_, err = f.client.CreateZone(context.Background(), dns.CreateZoneOptions{Name: "example.com"})
	assert.ErrorIs(t, err, interrors.ErrMissingParameters)
}

func TestDeleteZoneReturnsJob(t *testing.T) {
	f := setupTestFixture(t)

	job, err := f.client.DeleteZone(context.Background(), testZoneID)
	require.NoError(t, err)
	assert.Equal(t, "mock-job-id", job.ID)

	_, err = f.client.DeleteZone(context.Background(), 0)
	assert.ErrorIs(t, err, interrors.ErrMissingParameters)
}

func TestRecords(t *testing.T) {
	f := setupTestFixture(t)

	records, err := f.client.Records(context.Background(), testZoneID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "A-1234", records[0].ID)
	assert.Equal(t, "203.0.113.10", records[0].Data)

	record, err := f.client.Record(context.Background(), testZoneID, "A-1234")
	require.NoError(t, err)
	assert.Equal(t, "www.example.org", record.Name)

	_, err = f.client.Record(context.Background(), testZoneID, "no-such-record")
	assert.ErrorIs(t, err, interrors.ErrNotFound)
}

func TestRecordLifecycle(t *testing.T) {
	f := setupTestFixture(t)
	ctx := context.Background()

	job, err := f.client.CreateRecord(ctx, testZoneID, dns.Record{
		Name: "api.example.org",
		Type: "A",
		Data: "203.0.113.20",
		TTL:  300,
	})
	require.NoError(t, err)
	assert.Equal(t, "mock-job-id", job.ID)

	sent := f.lastCreateRecord["records"]
	require.Len(t, sent, 1)
	assert.Equal(t, "api.example.org", sent[0].Name)

	job, err = f.client.UpdateRecord(ctx, testZoneID, dns.Record{
		ID:   "A-1234",
		Name: "www.example.org",
		Type: "A",
		Data: "203.0.113.30",
	})
	require.NoError(t, err)
	assert.Equal(t, "mock-job-id", job.ID)
	assert.Equal(t, "203.0.113.30", f.lastUpdateRecord.Data)

	job, err = f.client.DeleteRecord(ctx, testZoneID, "A-1234")
	require.NoError(t, err)
	assert.Equal(t, "mock-job-id", job.ID)

	_, err = f.client.CreateRecord(ctx, testZoneID, dns.Record{Name: "x"})
	assert.ErrorIs(t, err, interrors.ErrMissingParameters)
	_, err = f.client.UpdateRecord(ctx, testZoneID, dns.Record{})
	assert.ErrorIs(t, err, interrors.ErrMissingParameters)
	_, err = f.client.DeleteRecord(ctx, 0, "A-1234")
	assert.ErrorIs(t, err, interrors.ErrMissingParameters)
}

func TestJobStatus(t *testing.T) {
	f := setupTestFixture(t)

	job, err := f.client.JobStatus(context.Background(), "mock-job-id")
	require.NoError(t, err)
	assert.Equal(t, "COMPLETED", job.Status)

	_, err = f.client.JobStatus(context.Background(), "no-such-job")
	assert.ErrorIs(t, err, interrors.ErrNotFound)

	_, err = f.client.JobStatus(context.Background(), "")
	assert.ErrorIs(t, err, interrors.ErrMissingParameters)
}
