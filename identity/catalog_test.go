package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multiRegionCatalog() ServiceCatalog {
	return newServiceCatalog([]servicePayload{
		{Type: "compute", Endpoints: []endpointPayload{
			{Region: "DFW", PublicURL: "https://dfw.compute.example.com/v2"},
			{Region: "ORD", PublicURL: "https://ord.compute.example.com/v2"},
		}},
		{Type: "volume", Endpoints: []endpointPayload{
			{Region: "DFW", PublicURL: "https://dfw.volume.example.com/v1"},
		}},
		{Type: "dns", Endpoints: []endpointPayload{
			{PublicURL: "https://dns.example.com/v1"},
		}},
	})
}

func TestResolveExactRegionMatch(t *testing.T) {
	catalog := multiRegionCatalog()

	ep, ok := catalog.Resolve("compute", "ORD")
	require.True(t, ok)
	assert.Equal(t, "ORD", ep.Region)
	assert.Equal(t, "https://ord.compute.example.com/v2", ep.PublicURL)
}

func TestResolveWithoutRegionReturnsFirstEndpoint(t *testing.T) {
	catalog := multiRegionCatalog()

	ep, ok := catalog.Resolve("compute", "")
	require.True(t, ok)
	assert.Equal(t, "DFW", ep.Region)
}

func TestResolveFallsBackToRegionlessEndpoint(t *testing.T) {
	catalog := multiRegionCatalog()

	ep, ok := catalog.Resolve("dns", "SYD")
	require.True(t, ok)
	assert.Empty(t, ep.Region)
	assert.Equal(t, "https://dns.example.com/v1", ep.PublicURL)
}

func TestResolveMissReturnsZeroEndpoint(t *testing.T) {
	catalog := multiRegionCatalog()

	ep, ok := catalog.Resolve("volume", "SYD")
	assert.False(t, ok)
	assert.Equal(t, Endpoint{}, ep)

	ep, ok = catalog.Resolve("object-store", "")
	assert.False(t, ok)
	assert.Equal(t, Endpoint{}, ep)
}

func TestResolveIsIdempotent(t *testing.T) {
	catalog := multiRegionCatalog()

	first, firstOK := catalog.Resolve("compute", "DFW")
	second, secondOK := catalog.Resolve("compute", "DFW")
	assert.Equal(t, firstOK, secondOK)
	assert.Equal(t, first, second)
}

func TestURLReturnsEmptyStringOnMiss(t *testing.T) {
	catalog := multiRegionCatalog()

	assert.Equal(t, "https://dfw.volume.example.com/v1", catalog.URL("volume", "DFW"))
	assert.Empty(t, catalog.URL("volume", "SYD"))
	assert.Empty(t, catalog.URL("no-such-service", ""))
}

func TestServiceTypesPreservesCatalogOrder(t *testing.T) {
	catalog := multiRegionCatalog()
	assert.Equal(t, []string{"compute", "volume", "dns"}, catalog.ServiceTypes())
}

func TestCheckRegionReportsFirstMismatchedService(t *testing.T) {
	catalog := newServiceCatalog([]servicePayload{
		{Type: "volume", Endpoints: []endpointPayload{
			{Region: "DFW", PublicURL: "https://dfw.volume.example.com/v1"},
		}},
		{Type: "compute", Endpoints: []endpointPayload{
			{Region: "DFW", PublicURL: "https://dfw.compute.example.com/v2"},
		}},
	})

	err := catalog.checkRegion("foo")
	require.Error(t, err)
	assert.EqualError(t, err, "Unable to identify target endpoint for Service: volume")
}

func TestCheckRegionAcceptsRegionlessFallback(t *testing.T) {
	catalog := newServiceCatalog([]servicePayload{
		{Type: "compute", Endpoints: []endpointPayload{
			{Region: "DFW", PublicURL: "https://dfw.compute.example.com/v2"},
			{PublicURL: "https://compute.example.com/v2"},
		}},
	})

	require.NoError(t, catalog.checkRegion("foo"))
}

func TestCheckRegionIgnoresRegionlessServices(t *testing.T) {
	catalog := newServiceCatalog([]servicePayload{
		{Type: "dns", Endpoints: []endpointPayload{
			{PublicURL: "https://dns.example.com/v1"},
		}},
	})

	require.NoError(t, catalog.checkRegion("foo"))
}

func TestCatalogMergesRepeatedServiceTypes(t *testing.T) {
	catalog := newServiceCatalog([]servicePayload{
		{Type: "compute", Endpoints: []endpointPayload{
			{Region: "DFW", PublicURL: "https://dfw.compute.example.com/v2"},
		}},
		{Type: "compute", Endpoints: []endpointPayload{
			{Region: "ORD", PublicURL: "https://ord.compute.example.com/v2"},
		}},
	})

	require.Equal(t, []string{"compute"}, catalog.ServiceTypes())
	assert.Len(t, catalog.Endpoints("compute"), 2)

	ep, ok := catalog.Resolve("compute", "ORD")
	require.True(t, ok)
	assert.Equal(t, "https://ord.compute.example.com/v2", ep.PublicURL)
}
