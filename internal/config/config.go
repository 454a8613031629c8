// Package config loads the configuration of spendbin.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// environment variables. A .env file in the working directory is loaded into
// the environment first.
package config

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/shopspring/decimal"
	"github.com/subosito/gotenv"
)

// PathEnvVar is the environment variable that points to a YAML config file.
const PathEnvVar = "CONFIG_PATH"

// Config is the complete configuration.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Auth     AuthConfig     `koanf:"auth"`
	Ledger   LedgerConfig   `koanf:"ledger"`
	Logging  LoggingConfig  `koanf:"logging"`
}

type ServerConfig struct {
	APIURL          string        `koanf:"api_url" validate:"required,url"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"min=0"`
}

// DatabaseConfig selects the database. If Host is set, PostgreSQL is
// used, otherwise the SQLite database at Path.
type DatabaseConfig struct {
	Path     string `koanf:"path" validate:"required_without=Host"`
	Host     string `koanf:"host"`
	User     string `koanf:"user" validate:"required_with=Host"`
	Password string `koanf:"password"`
	Name     string `koanf:"name" validate:"required_with=Host"`
}

type AuthConfig struct {
	JWTSecret string        `koanf:"jwt_secret" validate:"required,min=32"`
	TokenTTL  time.Duration `koanf:"token_ttl" validate:"gt=0"`
}

type LedgerConfig struct {
	MaxAmount         int64         `koanf:"max_amount" validate:"gt=0"`
	ReconcileInterval time.Duration `koanf:"reconcile_interval" validate:"min=0"` // 0 disables periodic reconciliation
}

type LoggingConfig struct {
	Format string `koanf:"format" validate:"omitempty,oneof=human json"`
}

// Postgres reports if PostgreSQL is configured.
func (d DatabaseConfig) Postgres() bool {
	return d.Host != ""
}

// MaxAmountDecimal returns the largest accepted amount as decimal.
func (l LedgerConfig) MaxAmountDecimal() decimal.Decimal {
	return decimal.NewFromInt(l.MaxAmount)
}

// URL returns the parsed API URL.
func (s ServerConfig) URL() (*url.URL, error) {
	return url.Parse(s.APIURL)
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Path: "data/spendbin.db",
		},
		Auth: AuthConfig{
			TokenTTL: 24 * time.Hour,
		},
		Ledger: LedgerConfig{
			MaxAmount:         math.MaxInt32,
			ReconcileInterval: time.Hour,
		},
	}
}

// envMappings maps environment variables to their config path.
var envMappings = map[string]string{
	"API_URL":            "server.api_url",
	"PORT":               "server.port",
	"SHUTDOWN_TIMEOUT":   "server.shutdown_timeout",
	"DB_PATH":            "database.path",
	"DB_HOST":            "database.host",
	"DB_USER":            "database.user",
	"DB_PASSWORD":        "database.password",
	"DB_NAME":            "database.name",
	"JWT_SECRET":         "auth.jwt_secret",
	"TOKEN_TTL":          "auth.token_ttl",
	"MAX_AMOUNT":         "ledger.max_amount",
	"RECONCILE_INTERVAL": "ledger.reconcile_interval",
	"LOG_FORMAT":         "logging.format",
}

// envTransform returns the config path for an environment variable.
// Variables without a mapping are ignored.
func envTransform(key string) string {
	return envMappings[key]
}

// Load reads the configuration and validates it.
func Load() (*Config, error) {
	// A missing .env file is fine
	err := gotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := os.Getenv(PathEnvVar); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate verifies all values of the configuration.
func (c *Config) Validate() error {
	err := validator.New().Struct(c)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			messages = append(messages, fmt.Sprintf("%s failed on '%s'", e.Namespace(), e.Tag()))
		}

		return errors.New(strings.Join(messages, ", "))
	}

	if err != nil {
		return err
	}

	if _, err := c.Server.URL(); err != nil {
		return fmt.Errorf("API_URL is not a valid URL: %w", err)
	}

	return nil
}
