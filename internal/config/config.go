package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"remindtrack/internal/infrastructure/scheduler"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	DriverSQLite    = "sqlite"
	DriverPostgres  = "postgres"
	DriverFirestore = "firestore"

	// EnvPrefix prefixes every override, e.g. REMINDER_SERVER__PORT.
	EnvPrefix = "REMINDER_"
)

type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Time     TimeConfig     `koanf:"time"`
	Digest   DigestConfig   `koanf:"digest"`
	Line     LineConfig     `koanf:"line"`
	Log      LogConfig      `koanf:"log"`
}

type ServerConfig struct {
	Port int `koanf:"port"`
}

type DatabaseConfig struct {
	Driver           string `koanf:"driver"` // sqlite, postgres or firestore
	DSN              string `koanf:"dsn"`
	FirestoreProject string `koanf:"firestore_project"`
}

type TimeConfig struct {
	Timezone string `koanf:"timezone"` // IANA name used to read calendar dates
}

type DigestConfig struct {
	Enabled bool   `koanf:"enabled"`
	Cron    string `koanf:"cron"`
}

type LineConfig struct {
	ChannelSecret      string `koanf:"channel_secret"`
	ChannelAccessToken string `koanf:"channel_access_token"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

// Load reads defaults, then the optional YAML file at configPath, then
// REMINDER_* environment variables. PORT, CHANNEL_SECRET and
// CHANNEL_ACCESS_TOKEN are honoured when the prefixed keys are unset.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(NewDefaultProvider(), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load config file: %w", err)
			}
		}
	}

	applyFallbackEnv(k)

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	return &cfg, nil
}

// envKey maps REMINDER_DATABASE__FIRESTORE_PROJECT to database.firestore_project.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

func applyFallbackEnv(k *koanf.Koanf) {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			k.Set("server.port", p)
		}
	}
	if secret := os.Getenv("CHANNEL_SECRET"); secret != "" {
		k.Set("line.channel_secret", secret)
	}
	if token := os.Getenv("CHANNEL_ACCESS_TOKEN"); token != "" {
		k.Set("line.channel_access_token", token)
	}
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}

	switch c.Database.Driver {
	case DriverSQLite:
	case DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for %s", DriverPostgres)
		}
	case DriverFirestore:
		if c.Database.FirestoreProject == "" {
			return fmt.Errorf("database.firestore_project is required for %s", DriverFirestore)
		}
	default:
		return fmt.Errorf("unknown database driver: %s (supported: %s, %s, %s)",
			c.Database.Driver, DriverSQLite, DriverPostgres, DriverFirestore)
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	if c.Digest.Enabled {
		if err := scheduler.ValidateSpec(c.Digest.Cron); err != nil {
			return fmt.Errorf("digest.cron: %w", err)
		}
		if !c.LineEnabled() {
			return fmt.Errorf("digest requires line.channel_secret and line.channel_access_token")
		}
	}
	return nil
}

// Location resolves time.timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Time.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Time.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid time.timezone %q: %w", c.Time.Timezone, err)
	}
	return loc, nil
}

// LineEnabled reports whether both LINE credentials are present.
func (c *Config) LineEnabled() bool {
	return c.Line.ChannelSecret != "" && c.Line.ChannelAccessToken != ""
}
