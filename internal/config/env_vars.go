package config

import "os"

const (
	authURLEnvVar    = "OS_AUTH_URL"
	usernameEnvVar   = "OS_USERNAME"
	passwordEnvVar   = "OS_PASSWORD"
	regionEnvVar     = "OS_REGION_NAME"
	tenantIDEnvVar   = "OS_TENANT_ID"
	tenantNameEnvVar = "OS_TENANT_NAME"
	providerEnvVar   = "CLOUD_PROVIDER"
	appNameEnvVar    = "APP_NAME"
)

type EnvVars struct{}

var _ Config = EnvVars{}

func (EnvVars) GetAuthURL() string {
	return GetEnv(authURLEnvVar, "")
}

func (EnvVars) GetUsername() string {
	return GetEnv(usernameEnvVar, "")
}

func (EnvVars) GetPassword() string {
	return GetEnv(passwordEnvVar, "")
}

func (EnvVars) GetRegion() string {
	return GetEnv(regionEnvVar, "")
}

func (EnvVars) GetTenantID() string {
	return GetEnv(tenantIDEnvVar, "")
}

func (EnvVars) GetTenantName() string {
	return GetEnv(tenantNameEnvVar, "")
}

func (EnvVars) GetProvider() string {
	return GetEnv(providerEnvVar, "openstack")
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameEnvVar, "cloudctl")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
