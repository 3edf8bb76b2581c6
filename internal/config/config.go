package config

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		return nil, fmt.Errorf("config file path is required (use -config)")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvironmentOverrides(&config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

var (
	EnvOIDCClientID       = "FOUNDERDECK_OIDC_CLIENT_ID"
	EnvOIDCClientSecret   = "FOUNDERDECK_OIDC_CLIENT_SECRET"
	EnvOIDCIssuerURL      = "FOUNDERDECK_OIDC_ISSUER_URL"
	EnvOIDCRedirectURL    = "FOUNDERDECK_OIDC_REDIRECT_URL"
	EnvRedisPassword      = "FOUNDERDECK_REDIS_PASSWORD"
	EnvRedisUsername      = "FOUNDERDECK_REDIS_USERNAME"
	EnvStorageHost        = "FOUNDERDECK_STORAGE_HOST"
	EnvStoragePort        = "FOUNDERDECK_STORAGE_PORT"
	EnvStorageUsername    = "FOUNDERDECK_STORAGE_USERNAME"
	EnvStoragePassword    = "FOUNDERDECK_STORAGE_PASSWORD"
	EnvStorageDatabase    = "FOUNDERDECK_STORAGE_DATABASE"
	EnvGitHubClientID     = "FOUNDERDECK_GITHUB_CLIENT_ID"
	EnvGitHubClientSecret = "FOUNDERDECK_GITHUB_CLIENT_SECRET"
	EnvGitHubAccessToken  = "FOUNDERDECK_GITHUB_ACCESS_TOKEN"
	EnvResendAPIKey       = "FOUNDERDECK_RESEND_API_KEY"
)

func applyEnvironmentOverrides(config *Config) {
	if clientID := os.Getenv(EnvOIDCClientID); clientID != "" {
		config.OIDC.ClientID = clientID
	}

	if clientSecret := os.Getenv(EnvOIDCClientSecret); clientSecret != "" {
		config.OIDC.ClientSecret = clientSecret
	}

	if issuerURL := os.Getenv(EnvOIDCIssuerURL); issuerURL != "" {
		config.OIDC.IssuerURL = issuerURL
	}

	if redirectURL := os.Getenv(EnvOIDCRedirectURL); redirectURL != "" {
		config.OIDC.RedirectURI = redirectURL
	}

	if redisPassword := os.Getenv(EnvRedisPassword); redisPassword != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Password = redisPassword
	}

	if redisUsername := os.Getenv(EnvRedisUsername); redisUsername != "" {
		if config.Redis == nil {
			config.Redis = &RedisConfig{}
		}
		config.Redis.Username = redisUsername
	}

	if host := os.Getenv(EnvStorageHost); host != "" {
		if config.Storage == nil {
			config.Storage = &StorageConfig{}
		}
		config.Storage.Host = host
	}

	if portStr := os.Getenv(EnvStoragePort); portStr != "" {
		if config.Storage == nil {
			config.Storage = &StorageConfig{}
		}
		if port, err := strconv.Atoi(portStr); err == nil {
			config.Storage.Port = port
		}
	}

	if username := os.Getenv(EnvStorageUsername); username != "" {
		if config.Storage == nil {
			config.Storage = &StorageConfig{}
		}
		config.Storage.Username = username
	}

	if password := os.Getenv(EnvStoragePassword); password != "" {
		if config.Storage == nil {
			config.Storage = &StorageConfig{}
		}
		config.Storage.Password = password
	}

	if database := os.Getenv(EnvStorageDatabase); database != "" {
		if config.Storage == nil {
			config.Storage = &StorageConfig{}
		}
		config.Storage.Database = database
	}

	if clientID := os.Getenv(EnvGitHubClientID); clientID != "" {
		config.Integrations.GitHub.ClientID = clientID
	}

	if clientSecret := os.Getenv(EnvGitHubClientSecret); clientSecret != "" {
		config.Integrations.GitHub.ClientSecret = clientSecret
	}

	if accessToken := os.Getenv(EnvGitHubAccessToken); accessToken != "" {
		config.Integrations.GitHub.AccessToken = accessToken
	}

	if apiKey := os.Getenv(EnvResendAPIKey); apiKey != "" {
		config.Integrations.Resend.APIKey = apiKey
	}
}

func validateConfig(config *Config) error {
	err := config.validateServerConfig()
	if err != nil {
		return err
	}

	err = config.validateOIDCConfig()
	if err != nil {
		return err
	}

	err = config.validateLogConfig()
	if err != nil {
		return err
	}

	err = config.validateCORSConfig()
	if err != nil {
		return err
	}

	err = config.validateSessionConfig()
	if err != nil {
		return err
	}

	err = config.validateStorageConfig()
	if err != nil {
		return err
	}

	err = config.validateCacheConfig()
	if err != nil {
		return err
	}

	if config.Cache.Type == "redis" || config.Sessions.Store == "redis" {
		err = config.validateRedisConfig()
		if err != nil {
			return err
		}
	}

	err = config.validateIntegrationsConfig()
	if err != nil {
		return err
	}

	err = config.validateDashboardConfig()
	if err != nil {
		return err
	}

	return nil
}

func (c *Config) validateServerConfig() error {
	if c.Server.Port == 0 {
		c.Server.Port = DefaultServerConfig.Port
	}

	if c.Server.ExternalURL == "" {
		return fmt.Errorf("server.external_url is required")
	}

	if c.Server.Debug != nil && c.Server.Debug.Enabled {
		if c.Server.Debug.Host == "" {
			c.Server.Debug.Host = DefaultDebugConfig.Host
		}
		if c.Server.Debug.Port <= 0 || c.Server.Debug.Port >= 65535 {
			c.Server.Debug.Port = DefaultDebugConfig.Port
		}
	}

	return nil
}

// validateOIDCConfig allows a fully empty OIDC section: the server then runs
// without sign-in (demo mode). A partially filled section is a config error.
func (c *Config) validateOIDCConfig() error {
	if c.OIDC.IssuerURL == "" && c.OIDC.ClientID == "" && c.OIDC.ClientSecret == "" {
		return nil
	}

	if c.OIDC.ClientID == "" {
		return fmt.Errorf("oidc client id is required")
	}

	if c.OIDC.ClientSecret == "" {
		return fmt.Errorf("oidc client secret is required")
	}

	if err := validateURL(c.OIDC.IssuerURL, "issuer_url"); err != nil {
		return err
	}

	if err := validateURL(c.OIDC.RedirectURI, "redirect_url"); err != nil {
		return err
	}

	if len(c.OIDC.Scopes) == 0 {
		c.OIDC.Scopes = DefaultOIDCConfig.Scopes
	}

	return nil
}

func (c *Config) validateLogConfig() error {
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogConfig.Format
	} else {
		switch c.Log.Format {
		case "text", "json":
		default:
			return fmt.Errorf("invalid log format: %s, options are text or json", c.Log.Format)
		}
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogConfig.Level
	} else {
		switch c.Log.Level {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("invalid log level: %s, options are debug, info, warn, error", c.Log.Level)
		}
	}

	return nil
}

func (c *Config) validateCORSConfig() error {
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = DefaultCORSConfig.AllowedOrigins
	}
	if len(c.CORS.AllowedMethods) == 0 {
		c.CORS.AllowedMethods = DefaultCORSConfig.AllowedMethods
	}
	if len(c.CORS.AllowedHeaders) == 0 {
		c.CORS.AllowedHeaders = DefaultCORSConfig.AllowedHeaders
	}
	if c.CORS.MaxAgeSeconds == 0 {
		c.CORS.MaxAgeSeconds = DefaultCORSConfig.MaxAgeSeconds
	}

	return nil
}

func (c *Config) validateSessionConfig() error {
	if c.Sessions.Store == "" {
		c.Sessions.Store = DefaultSessionConfig.Store
	} else {
		switch c.Sessions.Store {
		case "memory", "redis":
		default:
			return fmt.Errorf("invalid session store: %s, options are 'memory' or 'redis'", c.Sessions.Store)
		}
	}

	if c.Sessions.Name == "" {
		c.Sessions.Name = DefaultSessionConfig.Name
	}

	if c.Sessions.FixedTimeout == 0 {
		c.Sessions.FixedTimeout = DefaultSessionConfig.FixedTimeout
	}

	return nil
}

// validateStorageConfig resolves the "setup not complete" sentinel exactly once.
// A nil storage section, an empty host, or the placeholder host all mean the
// backend is unconfigured; that is a degraded mode, never an error.
func (c *Config) validateStorageConfig() error {
	if c.Storage == nil {
		c.Storage = &StorageConfig{}
		return nil
	}

	if c.Storage.Host == "" || c.Storage.Host == HostPlaceholder {
		c.Storage.Configured = false
		return nil
	}

	if c.Storage.Port <= 0 || c.Storage.Port > 65535 {
		return fmt.Errorf("storage.port must be between 1 and 65535, got %d", c.Storage.Port)
	}

	if c.Storage.Database == "" {
		return fmt.Errorf("storage.database is required when storage is configured")
	}

	c.Storage.Configured = true
	return nil
}

func (c *Config) validateCacheConfig() error {
	if c.Cache.Type == "" {
		c.Cache.Type = DefaultCacheConfig.Type
	}

	switch c.Cache.Type {
	case "memory":
	case "redis":
		if c.Redis == nil {
			return fmt.Errorf("redis configuration must be present to use redis for the dashboard cache")
		}
	default:
		return fmt.Errorf("invalid cache type: %s, must be 'memory' or 'redis'", c.Cache.Type)
	}

	if c.Cache.TTL <= 0 {
		c.Cache.TTL = DefaultCacheConfig.TTL
	}

	return nil
}

func (c *Config) validateRedisConfig() error {
	if c.Redis == nil {
		return fmt.Errorf("redis config is nil")
	}

	if c.Redis.Address == "" {
		return fmt.Errorf("redis address is required")
	}

	if _, _, err := net.SplitHostPort(c.Redis.Address); err != nil {
		return fmt.Errorf("invalid redis address format (expected host:port): %w", err)
	}

	if c.Redis.SessionIndex == 0 && c.Redis.CacheIndex == 0 {
		c.Redis.SessionIndex = DefaultRedisConfig.SessionIndex
		c.Redis.CacheIndex = DefaultRedisConfig.CacheIndex
	}

	if c.Redis.SessionIndex < 0 {
		return fmt.Errorf("redis session_index must be non-negative, got %d", c.Redis.SessionIndex)
	}

	if c.Redis.CacheIndex < 0 {
		return fmt.Errorf("redis cache_index must be non-negative, got %d", c.Redis.CacheIndex)
	}

	if c.Redis.SessionIndex == c.Redis.CacheIndex {
		return fmt.Errorf("redis session_index and cache_index should be different to avoid data collision (both are %d)", c.Redis.SessionIndex)
	}

	const maxRedisDB = 15
	if c.Redis.SessionIndex > maxRedisDB {
		return fmt.Errorf("redis session_index %d exceeds typical maximum of %d", c.Redis.SessionIndex, maxRedisDB)
	}

	if c.Redis.CacheIndex > maxRedisDB {
		return fmt.Errorf("redis cache_index %d exceeds typical maximum of %d", c.Redis.CacheIndex, maxRedisDB)
	}

	return nil
}

// validateIntegrationsConfig applies defaults only. Missing GitHub or Resend
// credentials are not errors: connect and send degrade with stable error codes
// when nothing is resolvable at request time.
func (c *Config) validateIntegrationsConfig() error {
	if c.Integrations.GitHub.Scope == "" {
		c.Integrations.GitHub.Scope = DefaultGitHubConfig.Scope
	}

	return nil
}

func (c *Config) validateDashboardConfig() error {
	if c.Dashboard.HealthCheckInterval <= 0 {
		c.Dashboard.HealthCheckInterval = DefaultDashboardConfig.HealthCheckInterval
	} else if c.Dashboard.HealthCheckInterval.Seconds() < 30 {
		return fmt.Errorf("dashboard.health_check_interval cannot be less than 30 seconds")
	}

	return nil
}
