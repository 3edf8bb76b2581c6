package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const minimalConfig = `
server:
  external_url: "https://deck.example.com"
`

func TestLoadConfigMinimal(t *testing.T) {
	cfg, err := LoadConfig(writeConfigFile(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, DefaultServerConfig.Port, cfg.Server.Port)
	assert.Equal(t, DefaultLogConfig.Level, cfg.Log.Level)
	assert.Equal(t, DefaultLogConfig.Format, cfg.Log.Format)
	assert.Equal(t, DefaultSessionConfig.Store, cfg.Sessions.Store)
	assert.Equal(t, DefaultCacheConfig.Type, cfg.Cache.Type)
	assert.Equal(t, DefaultCacheConfig.TTL, cfg.Cache.TTL)
	assert.Equal(t, DefaultGitHubConfig.Scope, cfg.Integrations.GitHub.Scope)
	assert.Equal(t, DefaultDashboardConfig.HealthCheckInterval, cfg.Dashboard.HealthCheckInterval)

	require.NotNil(t, cfg.Storage)
	assert.False(t, cfg.Storage.Configured)
}

func TestLoadConfigMissingPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfigMissingExternalURL(t *testing.T) {
	_, err := LoadConfig(writeConfigFile(t, "server:\n  port: 9090\n"))
	assert.Error(t, err)
}

func TestStorageSentinelResolution(t *testing.T) {
	tests := []struct {
		name           string
		storage        string
		wantConfigured bool
		wantErr        bool
	}{
		{
			name:           "no storage section",
			storage:        "",
			wantConfigured: false,
		},
		{
			name: "empty host",
			storage: `
storage:
  host: ""
`,
			wantConfigured: false,
		},
		{
			name: "placeholder host",
			storage: `
storage:
  host: "your-database-host"
  port: 5432
  database: founderdeck
`,
			wantConfigured: false,
		},
		{
			name: "real host",
			storage: `
storage:
  host: "db.internal"
  port: 5432
  database: founderdeck
`,
			wantConfigured: true,
		},
		{
			name: "real host without database",
			storage: `
storage:
  host: "db.internal"
  port: 5432
`,
			wantErr: true,
		},
		{
			name: "invalid port",
			storage: `
storage:
  host: "db.internal"
  port: 99999
  database: founderdeck
`,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfigFile(t, minimalConfig+tc.storage))
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg.Storage)
			assert.Equal(t, tc.wantConfigured, cfg.Storage.Configured)
		})
	}
}

func TestOIDCConfigOptionalWhenEmpty(t *testing.T) {
	cfg, err := LoadConfig(writeConfigFile(t, minimalConfig))
	require.NoError(t, err)
	assert.Empty(t, cfg.OIDC.IssuerURL)
}

func TestOIDCConfigPartialIsError(t *testing.T) {
	content := minimalConfig + `
oidc:
  issuer_url: "https://auth.example.com"
`
	_, err := LoadConfig(writeConfigFile(t, content))
	assert.Error(t, err)
}

func TestOIDCConfigCompleteAppliesScopeDefaults(t *testing.T) {
	content := minimalConfig + `
oidc:
  issuer_url: "https://auth.example.com"
  client_id: "founderdeck"
  client_secret: "secret"
  redirect_url: "https://deck.example.com/api/auth/callback"
`
	cfg, err := LoadConfig(writeConfigFile(t, content))
	require.NoError(t, err)
	assert.Equal(t, DefaultOIDCConfig.Scopes, cfg.OIDC.Scopes)
}

func TestInvalidLogConfig(t *testing.T) {
	_, err := LoadConfig(writeConfigFile(t, minimalConfig+"log:\n  level: verbose\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfigFile(t, minimalConfig+"log:\n  format: xml\n"))
	assert.Error(t, err)
}

func TestRedisConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		redis   string
		wantErr bool
	}{
		{
			name: "valid",
			redis: `
redis:
  address: "localhost:6379"
  session_index: 0
  cache_index: 1
`,
		},
		{
			name: "missing address",
			redis: `
redis:
  session_index: 0
  cache_index: 1
`,
			wantErr: true,
		},
		{
			name: "address without port",
			redis: `
redis:
  address: "localhost"
`,
			wantErr: true,
		},
		{
			name: "colliding indexes",
			redis: `
redis:
  address: "localhost:6379"
  session_index: 2
  cache_index: 2
`,
			wantErr: true,
		},
		{
			name: "index out of range",
			redis: `
redis:
  address: "localhost:6379"
  session_index: 1
  cache_index: 42
`,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			content := minimalConfig + "cache:\n  type: redis\n" + tc.redis
			_, err := LoadConfig(writeConfigFile(t, content))
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRedisCacheWithoutRedisSection(t *testing.T) {
	_, err := LoadConfig(writeConfigFile(t, minimalConfig+"cache:\n  type: redis\n"))
	assert.Error(t, err)
}

func TestDashboardHealthCheckIntervalBounds(t *testing.T) {
	cfg := &Config{Dashboard: DashboardConfig{HealthCheckInterval: 5 * time.Second}}
	assert.Error(t, cfg.validateDashboardConfig())

	cfg = &Config{Dashboard: DashboardConfig{HealthCheckInterval: time.Minute}}
	require.NoError(t, cfg.validateDashboardConfig())
	assert.Equal(t, time.Minute, cfg.Dashboard.HealthCheckInterval)

	cfg = &Config{}
	require.NoError(t, cfg.validateDashboardConfig())
	assert.Equal(t, DefaultDashboardConfig.HealthCheckInterval, cfg.Dashboard.HealthCheckInterval)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvGitHubClientID, "env-client-id")
	t.Setenv(EnvGitHubClientSecret, "env-client-secret")
	t.Setenv(EnvResendAPIKey, "env-resend-key")
	t.Setenv(EnvStorageHost, "db.internal")
	t.Setenv(EnvStoragePort, "5432")
	t.Setenv(EnvStorageDatabase, "founderdeck")

	cfg, err := LoadConfig(writeConfigFile(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "env-client-id", cfg.Integrations.GitHub.ClientID)
	assert.Equal(t, "env-client-secret", cfg.Integrations.GitHub.ClientSecret)
	assert.Equal(t, "env-resend-key", cfg.Integrations.Resend.APIKey)
	require.NotNil(t, cfg.Storage)
	assert.True(t, cfg.Storage.Configured)
}
