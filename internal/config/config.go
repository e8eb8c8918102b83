package config

import "github.com/joho/godotenv"

type Config interface {
	CredentialsConfig
	ClientConfig
}

// CredentialsConfig exposes the credentials the SDK authenticates with,
// following the conventional OS_* environment variables.
type CredentialsConfig interface {
	GetAuthURL() string
	GetUsername() string
	GetPassword() string
	GetRegion() string
	GetTenantID() string
	GetTenantName() string
}

type ClientConfig interface {
	GetProvider() string
	GetAppName() string
	GetEnv() string
}

type mainConfig struct {
	EnvVars
}

// New loads a .env file if present and returns the env-backed config.
func New() Config {
	_ = godotenv.Load()
	return mainConfig{}
}
