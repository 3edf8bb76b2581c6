package config

import (
	"time"
)

type Config struct {
	Server       ServerConfig       `yaml:"server"`
	OIDC         OIDCConfig         `yaml:"oidc"`
	Log          LogConfig          `yaml:"log"`
	CORS         CORSConfig         `yaml:"cors"`
	Sessions     SessionConfig      `yaml:"sessions"`
	Storage      *StorageConfig     `yaml:"storage"`
	Cache        CacheConfig        `yaml:"cache"`
	Redis        *RedisConfig       `yaml:"redis"`
	Integrations IntegrationsConfig `yaml:"integrations"`
	Dashboard    DashboardConfig    `yaml:"dashboard"`
}

type ServerConfig struct {
	Port        int                `yaml:"port"`
	ExternalURL string             `yaml:"external_url"`
	Debug       *ServerDebugConfig `yaml:"debug"`
}

var DefaultServerConfig = ServerConfig{
	Port: 8080,
}

type ServerDebugConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
}

var DefaultDebugConfig = ServerDebugConfig{
	Enabled: false,
	Host:    "localhost",
	Port:    5123,
}

type OIDCConfig struct {
	ClientID     string   `yaml:"client_id"`
	ClientSecret string   `yaml:"client_secret"`
	IssuerURL    string   `yaml:"issuer_url"`
	RedirectURI  string   `yaml:"redirect_url"`
	Scopes       []string `yaml:"scopes"`
}

var DefaultOIDCConfig = OIDCConfig{
	Scopes: []string{"openid", "profile", "email"},
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

var DefaultLogConfig = LogConfig{
	Level:  "info",
	Format: "text",
}

type CORSConfig struct {
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	ExposedHeaders   []string `yaml:"exposed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAgeSeconds    int      `yaml:"max_age_seconds"`
}

var DefaultCORSConfig = CORSConfig{
	AllowedOrigins: []string{"http://localhost:5173"},
	AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	AllowedHeaders: []string{"*"},
	MaxAgeSeconds:  300,
}

type SessionConfig struct {
	Store        string        `yaml:"store"`
	FixedTimeout time.Duration `yaml:"fixed_timeout"`
	Name         string        `yaml:"name"`
	Secure       bool          `yaml:"secure"`
}

var DefaultSessionConfig = SessionConfig{
	Store:        "memory",
	FixedTimeout: 24 * time.Hour,
	Name:         "session_id",
	Secure:       true,
}

// HostPlaceholder is the value shipped in the example config. A storage host
// still set to it means setup has not been completed; the session gate and the
// dashboard degrade to demo mode instead of failing.
const HostPlaceholder = "your-database-host"

type StorageConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`

	// Configured is resolved once during LoadConfig and never re-derived.
	Configured bool `yaml:"-"`
}

type CacheConfig struct {
	Type string        `yaml:"type"` // "memory" or "redis"
	TTL  time.Duration `yaml:"ttl"`
}

var DefaultCacheConfig = CacheConfig{
	Type: "memory",
	TTL:  time.Minute,
}

type RedisConfig struct {
	Address      string `yaml:"address"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	SessionIndex int    `yaml:"session_index"`
	CacheIndex   int    `yaml:"cache_index"`
}

var DefaultRedisConfig = RedisConfig{
	SessionIndex: 0,
	CacheIndex:   1,
}

type IntegrationsConfig struct {
	GitHub GitHubConfig `yaml:"github"`
	Resend ResendConfig `yaml:"resend"`
}

type GitHubConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	AccessToken  string `yaml:"access_token"`
	Scope        string `yaml:"scope"`
}

var DefaultGitHubConfig = GitHubConfig{
	Scope: "repo read:user",
}

type ResendConfig struct {
	APIKey      string `yaml:"api_key"`
	FromAddress string `yaml:"from_address"`
}

type DashboardConfig struct {
	HealthCheckInterval time.Duration `yaml:"health_check_interval"`
}

var DefaultDashboardConfig = DashboardConfig{
	HealthCheckInterval: 5 * time.Minute,
}
