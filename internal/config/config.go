package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every variable read by Load.
const EnvPrefix = "STOREFRONT"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Sale owner policies.
const (
	OwnerPolicyFirstLine   = "first_line"
	OwnerPolicySingleOwner = "single_owner"
)

// Config is loaded once at process start and passed explicitly to whatever
// needs it. Nothing reads the environment after Load returns.
type Config struct {
	App     AppConfig
	Server  ServerConfig
	Spanner SpannerConfig
	Sales   SalesConfig
}

type AppConfig struct {
	Env       string `envconfig:"APP_ENV" default:"dev"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type ServerConfig struct {
	GRPCAddr        string        `envconfig:"GRPC_ADDR" default:":50051"`
	AdminAddr       string        `envconfig:"ADMIN_ADDR" default:":8081"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
}

type SpannerConfig struct {
	Database string `envconfig:"SPANNER_DATABASE" required:"true"`
	// MigrationsDir is read by cmd/migrate only.
	MigrationsDir string `envconfig:"MIGRATIONS_DIR" default:"migrations"`
}

type SalesConfig struct {
	OwnerPolicy string `envconfig:"SALE_OWNER_POLICY" default:"first_line"`
}

// Load reads the configuration from the environment. Each section is
// processed on its own so keys carry only EnvPrefix (STOREFRONT_GRPC_ADDR,
// STOREFRONT_SPANNER_DATABASE) and never the Go field name of the section.
func Load() (*Config, error) {
	var cfg Config
	for _, section := range []any{&cfg.App, &cfg.Server, &cfg.Spanner, &cfg.Sales} {
		if err := envconfig.Process(EnvPrefix, section); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Spanner.Database) == "" {
		return fmt.Errorf("config: spanner database is required")
	}
	switch c.Sales.OwnerPolicy {
	case OwnerPolicyFirstLine, OwnerPolicySingleOwner:
	default:
		return fmt.Errorf("config: unknown sale owner policy %q", c.Sales.OwnerPolicy)
	}
	switch strings.ToLower(c.App.LogFormat) {
	case "json", "console":
	default:
		return fmt.Errorf("config: unknown log format %q", c.App.LogFormat)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("config: shutdown timeout must be positive")
	}
	return nil
}
