package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jrsteele09/go-cloud-client/internal/config"
)

func TestEnvVarsCredentials(t *testing.T) {
	t.Setenv("OS_AUTH_URL", "https://identity.example.com")
	t.Setenv("OS_USERNAME", "MOCK-USERNAME")
	t.Setenv("OS_PASSWORD", "asdf1234")
	t.Setenv("OS_REGION_NAME", "ORD")
	t.Setenv("OS_TENANT_ID", "72e90ecb69c44d0296072ea39e537041")
	t.Setenv("OS_TENANT_NAME", "MOCK-TENANT")

	cfg := config.EnvVars{}
	assert.Equal(t, "https://identity.example.com", cfg.GetAuthURL())
	assert.Equal(t, "MOCK-USERNAME", cfg.GetUsername())
	assert.Equal(t, "asdf1234", cfg.GetPassword())
	assert.Equal(t, "ORD", cfg.GetRegion())
	assert.Equal(t, "72e90ecb69c44d0296072ea39e537041", cfg.GetTenantID())
	assert.Equal(t, "MOCK-TENANT", cfg.GetTenantName())
}

func TestEnvVarsDefaults(t *testing.T) {
	t.Setenv("CLOUD_PROVIDER", "")
	t.Setenv("APP_NAME", "")
	t.Setenv("ENV", "")
	t.Setenv("OS_AUTH_URL", "")

	cfg := config.EnvVars{}
	assert.Equal(t, "openstack", cfg.GetProvider())
	assert.Equal(t, "cloudctl", cfg.GetAppName())
	assert.Equal(t, "DEV", cfg.GetEnv())
	assert.Empty(t, cfg.GetAuthURL())
}

func TestEnvVarsOverrides(t *testing.T) {
	t.Setenv("CLOUD_PROVIDER", "rackspace")
	t.Setenv("ENV", "PROD")

	cfg := config.EnvVars{}
	assert.Equal(t, "rackspace", cfg.GetProvider())
	assert.Equal(t, "PROD", cfg.GetEnv())
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SOME_TEST_VAR", "set")
	assert.Equal(t, "set", config.GetEnv("SOME_TEST_VAR", "fallback"))
	assert.Equal(t, "fallback", config.GetEnv("SOME_UNSET_TEST_VAR", "fallback"))
}
