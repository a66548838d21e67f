package config

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// APIServerConfig represents the API server configuration
type APIServerConfig struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Logging    LoggingConfig    `yaml:"logging"`
	Auth       AuthConfig       `yaml:"auth"`
	Identity   IdentityConfig   `yaml:"identity"`
	Tasks      TasksConfig      `yaml:"tasks"`
	Downstream DownstreamConfig `yaml:"downstream"`
	Profile    ProfileConfig    `yaml:"profile"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" default:"0.0.0.0"`
	Port            int           `yaml:"port" default:"8081" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"30s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" default:"60s"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host" default:"localhost" validate:"required"`
	Port     int    `yaml:"port" default:"5432" validate:"min=1,max=65535"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password"`
	Database string `yaml:"database" default:"social_wallet" validate:"required"`
	SSLMode  string `yaml:"ssl_mode" default:"disable" validate:"oneof=disable require verify-ca verify-full"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// AuthConfig controls how caller identity is established.
// When JWKSURL is empty the raw X-Identity-ID header is trusted (development only).
type AuthConfig struct {
	JWKSURL  string `yaml:"jwks_url" validate:"omitempty,url"`
	Issuer   string `yaml:"issuer"`
	Audience string `yaml:"audience"`
}

// IdentityConfig contains the identity provider REST API settings
type IdentityConfig struct {
	BaseURL                  string        `yaml:"base_url" validate:"required,url"`
	AppID                    string        `yaml:"app_id" validate:"required"`
	AppSecret                string        `yaml:"app_secret" validate:"required"`
	Timeout                  time.Duration `yaml:"timeout" default:"10s"`
	EmbeddedWalletClientType string        `yaml:"embedded_wallet_client_type" default:"privy"`
}

// TasksConfig sizes the best-effort background task dispatcher
type TasksConfig struct {
	Workers   int           `yaml:"workers" default:"4" validate:"min=1"`
	QueueSize int           `yaml:"queue_size" default:"256" validate:"min=1"`
	Timeout   time.Duration `yaml:"timeout" default:"30s"`
}

// DownstreamConfig holds the webhooks triggered after a social wallet is linked.
// An empty URL disables that trigger.
type DownstreamConfig struct {
	ProfileRefreshURL  string        `yaml:"profile_refresh_url" validate:"omitempty,url"`
	RecommendationsURL string        `yaml:"recommendations_url" validate:"omitempty,url"`
	Timeout            time.Duration `yaml:"timeout" default:"10s"`
}

// ProfileConfig contains list query settings
type ProfileConfig struct {
	PageSize int `yaml:"page_size" default:"20" validate:"min=1,max=200"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled bool `yaml:"enabled" default:"true"`
}

// LoadAPIServer loads API server configuration from a YAML file.
// ${VAR} references in the file are expanded from the environment before parsing.
func LoadAPIServer(configPath string) (*APIServerConfig, error) {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseAPIServer(raw)
}

// ParseAPIServer parses, defaults and validates API server configuration.
func ParseAPIServer(raw []byte) (*APIServerConfig, error) {
	var cfg APIServerConfig
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to set config defaults: %w", err)
	}

	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(raw))), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
