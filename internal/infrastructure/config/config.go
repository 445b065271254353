package config

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageMongo  = "mongo"

	devSessionSecret = "dev-only-session-secret"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Backend BackendConfig
	Session SessionConfig
	Guard   GuardConfig
	Limits  LimitsConfig
	Redis   RedisConfig
	Mongo   MongoConfig

	// CORSOrigins must be explicit: the session cookie is credentialed.
	CORSOrigins    []string `env:"CORS_ORIGINS, default=http://localhost:3000"`
	// TrustedProxies lists CIDRs allowed to set X-Forwarded-For. Empty means
	// the client address is always the TCP peer.
	TrustedProxies []string `env:"TRUSTED_PROXIES"`
}

type BackendConfig struct {
	BaseURL string        `env:"BACKEND_BASE_URL, default=http://localhost:8008/"`
	Timeout time.Duration `env:"BACKEND_TIMEOUT,  default=15s"`
}

type SessionConfig struct {
	Secret       string        `env:"SESSION_SECRET"`
	CookieName   string        `env:"SESSION_COOKIE, default=sf_session"`
	TTL          time.Duration `env:"SESSION_TTL,    default=720h"`
	CookieSecure bool          `env:"COOKIE_SECURE,  default=false"`
	Storage      string        `env:"TOKEN_STORAGE,  default=memory"`
}

type GuardConfig struct {
	Wait          time.Duration `env:"GUARD_WAIT,     default=5s"`
	FallbackRoute string        `env:"FALLBACK_ROUTE, default=/products"`
}

type LimitsConfig struct {
	LoginRate  float64 `env:"LOGIN_RATE,  default=1"`
	LoginBurst int     `env:"LOGIN_BURST, default=5"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=storefront"`
}

// Load reads a .env file when present, then the environment.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom processes configuration from an arbitrary lookuper.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// ProxyNets parses TrustedProxies.
func (c *Config) ProxyNets() ([]*net.IPNet, error) {
	nets := make([]*net.IPNet, 0, len(c.TrustedProxies))
	for _, cidr := range c.TrustedProxies {
		_, n, err := net.ParseCIDR(strings.TrimSpace(cidr))
		if err != nil {
			return nil, fmt.Errorf("TRUSTED_PROXIES: %w", err)
		}
		nets = append(nets, n)
	}
	return nets, nil
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

func (c *Config) validate() error {
	if c.Session.Secret == "" {
		if !c.IsDevelopment() {
			return errors.New("SESSION_SECRET is required outside development")
		}
		c.Session.Secret = devSessionSecret
	}
	switch c.Session.Storage {
	case StorageMemory, StorageRedis, StorageMongo:
	default:
		return fmt.Errorf("unknown TOKEN_STORAGE %q", c.Session.Storage)
	}
	if c.Backend.BaseURL == "" {
		return errors.New("BACKEND_BASE_URL is required")
	}
	if !strings.HasPrefix(c.Guard.FallbackRoute, "/") {
		return fmt.Errorf("FALLBACK_ROUTE must be a path, got %q", c.Guard.FallbackRoute)
	}
	for _, o := range c.CORSOrigins {
		if strings.TrimSpace(o) == "*" {
			return errors.New("CORS_ORIGINS cannot be * with credentialed sessions")
		}
	}
	if _, err := c.ProxyNets(); err != nil {
		return err
	}
	return nil
}
