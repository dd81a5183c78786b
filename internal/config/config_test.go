package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CHANNEL_SECRET", "")
	t.Setenv("CHANNEL_ACCESS_TOKEN", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 || cfg.Database.Driver != DriverSQLite || cfg.Digest.Cron != "0 0 8 * * *" {
		t.Fatalf("defaults = %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate defaults: %v", err)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CHANNEL_SECRET", "")
	t.Setenv("CHANNEL_ACCESS_TOKEN", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := strings.Join([]string{
		"server:",
		"  port: 9000",
		"database:",
		"  driver: Postgres",
		"  dsn: host=localhost user=app dbname=reminders",
		"time:",
		"  timezone: UTC",
	}, "\n")
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("REMINDER_SERVER__PORT", "9100")
	t.Setenv("REMINDER_LOG__LEVEL", "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Fatalf("port = %d, want env override 9100", cfg.Server.Port)
	}
	if cfg.Database.Driver != DriverPostgres || cfg.Database.DSN == "" {
		t.Fatalf("database = %+v", cfg.Database)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("log level = %q", cfg.Log.Level)
	}
}

func TestLoadFallbackEnv(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("CHANNEL_SECRET", "s")
	t.Setenv("CHANNEL_ACCESS_TOKEN", "t")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 3000 || !cfg.LineEnabled() {
		t.Fatalf("fallbacks not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: 8080},
			Database: DatabaseConfig{Driver: DriverSQLite},
			Time:     TimeConfig{Timezone: "UTC"},
			Digest:   DigestConfig{Cron: "0 0 8 * * *"},
		}
	}

	cases := map[string]func(c *Config){
		"unknown driver":       func(c *Config) { c.Database.Driver = "mysql" },
		"postgres without dsn": func(c *Config) { c.Database.Driver = DriverPostgres },
		"firestore no project": func(c *Config) { c.Database.Driver = DriverFirestore },
		"bad timezone":         func(c *Config) { c.Time.Timezone = "Mars/Olympus_Mons" },
		"bad port":             func(c *Config) { c.Server.Port = 0 },
		"bad cron": func(c *Config) {
			c.Digest.Enabled = true
			c.Digest.Cron = "every morning"
			c.Line = LineConfig{ChannelSecret: "s", ChannelAccessToken: "t"}
		},
		"digest without line": func(c *Config) { c.Digest.Enabled = true },
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
	for name, mutate := range cases {
		c := valid()
		mutate(c)
		if err := c.Validate(); err == nil {
			t.Fatalf("%s: Validate succeeded", name)
		}
	}
}

func TestEnvKey(t *testing.T) {
	t.Parallel()

	if got := envKey("REMINDER_DATABASE__FIRESTORE_PROJECT"); got != "database.firestore_project" {
		t.Fatalf("envKey = %q", got)
	}
}
