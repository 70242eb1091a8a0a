// Package config loads GEOLOGY_* environment variables (and a .env file
// when present) into typed, validated configuration.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

/*
	Env vars are read using the GEOLOGY_ prefix. Keys are lowercased and the
	prefix removed; nesting uses "." so GEOLOGY_SERVER.PORT -> server.port ->
	Config.Server.Port.
*/

// EnvPrefix is the prefix every configuration variable must carry.
const EnvPrefix = "GEOLOGY_"

// ServiceName is the fixed service identifier used in logs and traces.
const ServiceName = "geology-api"

// Config is the root configuration object for the application.
//
// Observability, Storage and Cache are pointers because they are optional.
// If not provided, defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Auth          AuthConfig           `koanf:"auth" validate:"required"`
	Integration   IntegrationConfig    `koanf:"integration" validate:"required"`
	Email         EmailConfig          `koanf:"email" validate:"required"`
	Storage       *StorageConfig       `koanf:"storage"`
	Cache         *CacheConfig         `koanf:"cache"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are stored in seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`

	// RobotsTxt is served verbatim at /robots.txt.
	RobotsTxt string `koanf:"robots_txt"`

	// RateLimit is the number of public write requests (contact, orders)
	// allowed per second per client IP. Zero disables the limiter.
	RateLimit float64 `koanf:"rate_limit"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// RedisConfig contains Redis connection details.
// Address is typically "host:port".
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// AuthConfig stores authentication-related secrets.
//
// StaffRole is the Clerk organization role allowed to perform catalog writes.
type AuthConfig struct {
	SecretKey string `koanf:"secret_key" validate:"required"`
	StaffRole string `koanf:"staff_role"`
}

// IntegrationConfig holds API keys for third-party providers.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key" validate:"required"`
}

// EmailConfig describes sender identity and the site admin mailbox that
// receives order and contact notifications.
type EmailConfig struct {
	FromName     string `koanf:"from_name" validate:"required"`
	FromAddress  string `koanf:"from_address" validate:"required,email"`
	AdminAddress string `koanf:"admin_address" validate:"required,email"`
}

// StorageConfig selects where uploaded images live.
//
// Driver "local" writes below LocalRoot and serves files at MediaURL.
// Driver "s3" uploads to any S3-compatible bucket.
type StorageConfig struct {
	Driver    string `koanf:"driver" validate:"required,oneof=local s3"`
	LocalRoot string `koanf:"local_root"`
	MediaURL  string `koanf:"media_url"`

	Bucket        string `koanf:"bucket"`
	Region        string `koanf:"region"`
	Endpoint      string `koanf:"endpoint"`
	AccessKey     string `koanf:"access_key"`
	SecretKey     string `koanf:"secret_key"`
	UseSSL        bool   `koanf:"use_ssl"`
	UsePathStyle  bool   `koanf:"use_path_style"`
	PublicBaseURL string `koanf:"public_base_url"`
}

// CacheConfig controls the Redis-backed facet cache.
type CacheConfig struct {
	FacetTTL time.Duration `koanf:"facet_ttl"`
}

// DefaultStorageConfig stores media on local disk under ./media.
func DefaultStorageConfig() *StorageConfig {
	return &StorageConfig{
		Driver:    "local",
		LocalRoot: "media",
		MediaURL:  "/media",
	}
}

// DefaultCacheConfig keeps facet counts for one minute.
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{FacetTTL: time.Minute}
}

// Validate checks driver-specific storage requirements.
func (s *StorageConfig) Validate() error {
	switch s.Driver {
	case "local":
		if s.LocalRoot == "" {
			return fmt.Errorf("storage local_root is required for the local driver")
		}
		if !strings.HasPrefix(s.MediaURL, "/") {
			return fmt.Errorf("storage media_url must start with '/'")
		}
	case "s3":
		if s.Bucket == "" {
			return fmt.Errorf("storage bucket is required for the s3 driver")
		}
		if s.PublicBaseURL == "" {
			return fmt.Errorf("storage public_base_url is required for the s3 driver")
		}
	default:
		return fmt.Errorf("invalid storage driver: %s (must be one of: local, s3)", s.Driver)
	}
	return nil
}

// LoadConfig reads, validates and defaults the configuration. The service
// name and environment of the observability block are always overwritten.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load initial env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	// koanf hands comma separated env values over as a single string.
	mainConfig.Server.CORSAllowedOrigins = splitList(mainConfig.Server.CORSAllowedOrigins)

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}
	if mainConfig.Storage == nil {
		mainConfig.Storage = DefaultStorageConfig()
	}
	if mainConfig.Cache == nil {
		mainConfig.Cache = DefaultCacheConfig()
	}
	if mainConfig.Cache.FacetTTL <= 0 {
		mainConfig.Cache.FacetTTL = DefaultCacheConfig().FacetTTL
	}
	if mainConfig.Auth.StaffRole == "" {
		mainConfig.Auth.StaffRole = "org:admin"
	}
	if mainConfig.Server.RobotsTxt == "" {
		mainConfig.Server.RobotsTxt = "User-agent: *\nDisallow: /docs\nDisallow: /static/\n"
	}

	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}
	if err := mainConfig.Storage.Validate(); err != nil {
		return nil, fmt.Errorf("invalid storage config: %w", err)
	}

	return mainConfig, nil
}

func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
