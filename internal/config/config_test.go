package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setDatabaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_USER", "testuser")
	t.Setenv("DATABASE_PASSWORD", "testpass")
	t.Setenv("DATABASE", "testdb")
}

func TestLoadConfigFromEnv(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(*testing.T)
		wantError bool
		validate  func(*testing.T, *Config)
	}{
		{
			name:      "all defaults",
			setup:     setDatabaseEnv,
			wantError: false,
			validate: func(t *testing.T, c *Config) {
				if c.Env != EnvDev {
					t.Errorf("expected Env %q, got %q", EnvDev, c.Env)
				}
				if c.HostOrigin != "http://localhost:8080" {
					t.Errorf("expected HostOrigin %q, got %q", "http://localhost:8080", c.HostOrigin)
				}
				if c.LogLevel.Level() != slog.LevelInfo {
					t.Errorf("expected LogLevel INFO, got %q", c.LogLevel)
				}
				if c.Server.Port != 8080 {
					t.Errorf("expected Server.Port 8080, got %d", c.Server.Port)
				}
				if c.Database.Port != 5432 {
					t.Errorf("expected Database.Port 5432, got %d", c.Database.Port)
				}
				if c.Database.Host != "localhost" {
					t.Errorf("expected Database.Host %q, got %q", "localhost", c.Database.Host)
				}
				if c.Database.User != "testuser" {
					t.Errorf("expected Database.User %q, got %q", "testuser", c.Database.User)
				}
				if c.Fileserver.Volume != "/data/files" {
					t.Errorf("expected Fileserver.Volume %q, got %q", "/data/files", c.Fileserver.Volume)
				}
				if c.Fileserver.URLPrefix != "/files" {
					t.Errorf("expected Fileserver.URLPrefix %q, got %q", "/files", c.Fileserver.URLPrefix)
				}
				if !c.Seed.IsEnabled() {
					t.Error("expected seeding to be enabled by default")
				}
				if c.Seed.Source != "" {
					t.Errorf("expected empty Seed.Source, got %q", c.Seed.Source)
				}
				if c.RateLimit.Requests != 0 {
					t.Errorf("expected RateLimit.Requests 0, got %d", c.RateLimit.Requests)
				}
				if c.Trending.Limit != 10 {
					t.Errorf("expected Trending.Limit 10, got %d", c.Trending.Limit)
				}
			},
		},
		{
			name: "custom environment values",
			setup: func(t *testing.T) {
				t.Setenv("ENV", "PROD")
				t.Setenv("HOST_ORIGIN", "https://example.com")
				t.Setenv("LOG_LEVEL", "DEBUG")
				t.Setenv("SERVER_PORT", "9090")
				t.Setenv("DATABASE_USER", "customuser")
				t.Setenv("DATABASE_PASSWORD", "custompass")
				t.Setenv("DATABASE", "customdb")
				t.Setenv("DATABASE_HOST", "db.example.com")
				t.Setenv("DATABASE_PORT", "5433")
				t.Setenv("FILESERVER_VOLUME", "/custom/files")
				t.Setenv("FILESERVER_URL_PREFIX", "/images")
				t.Setenv("SEED_ENABLED", "false")
				t.Setenv("SEED_SOURCE", "https://example.com/catalog.json")
				t.Setenv("RATE_LIMIT_REQUESTS", "30")
				t.Setenv("TRENDING_LIMIT", "25")
			},
			wantError: false,
			validate: func(t *testing.T, c *Config) {
				if c.Env != EnvProd {
					t.Errorf("expected Env %q, got %q", EnvProd, c.Env)
				}
				if c.LogLevel.Level() != slog.LevelDebug {
					t.Errorf("expected LogLevel DEBUG, got %q", c.LogLevel)
				}
				if c.Server.Port != 9090 {
					t.Errorf("expected Server.Port 9090, got %d", c.Server.Port)
				}
				if c.Database.Port != 5433 {
					t.Errorf("expected Database.Port 5433, got %d", c.Database.Port)
				}
				if c.Database.Host != "db.example.com" {
					t.Errorf("expected Database.Host %q, got %q", "db.example.com", c.Database.Host)
				}
				if c.Fileserver.URLPrefix != "/images" {
					t.Errorf("expected Fileserver.URLPrefix %q, got %q", "/images", c.Fileserver.URLPrefix)
				}
				if c.Seed.IsEnabled() {
					t.Error("expected seeding to be disabled")
				}
				if !c.Seed.Source.IsRemote() {
					t.Errorf("expected remote Seed.Source, got %q", c.Seed.Source)
				}
				if c.RateLimit.Requests != 30 {
					t.Errorf("expected RateLimit.Requests 30, got %d", c.RateLimit.Requests)
				}
				if c.Trending.Limit != 25 {
					t.Errorf("expected Trending.Limit 25, got %d", c.Trending.Limit)
				}
			},
		},
		{
			name: "invalid database port",
			setup: func(t *testing.T) {
				setDatabaseEnv(t)
				t.Setenv("DATABASE_PORT", "invalid")
			},
			wantError: true,
		},
		{
			name: "invalid server port",
			setup: func(t *testing.T) {
				setDatabaseEnv(t)
				t.Setenv("SERVER_PORT", "999999")
			},
			wantError: true,
		},
		{
			name: "partial database config",
			setup: func(t *testing.T) {
				t.Setenv("DATABASE_USER", "testuser")
			},
			wantError: true,
		},
		{
			name: "invalid environment",
			setup: func(t *testing.T) {
				setDatabaseEnv(t)
				t.Setenv("ENV", "STAGING")
			},
			wantError: true,
		},
		{
			name: "invalid log level",
			setup: func(t *testing.T) {
				setDatabaseEnv(t)
				t.Setenv("LOG_LEVEL", "LOUD")
			},
			wantError: true,
		},
		{
			name: "invalid seed flag",
			setup: func(t *testing.T) {
				setDatabaseEnv(t)
				t.Setenv("SEED_ENABLED", "sometimes")
			},
			wantError: true,
		},
		{
			name: "seed url without host",
			setup: func(t *testing.T) {
				setDatabaseEnv(t)
				t.Setenv("SEED_SOURCE", "https://")
			},
			wantError: true,
		},
		{
			name: "negative rate limit",
			setup: func(t *testing.T) {
				setDatabaseEnv(t)
				t.Setenv("RATE_LIMIT_REQUESTS", "-1")
			},
			wantError: true,
		},
		{
			name: "trending limit out of range",
			setup: func(t *testing.T) {
				setDatabaseEnv(t)
				t.Setenv("TRENDING_LIMIT", "500")
			},
			wantError: true,
		},
		{
			name: "url prefix must be absolute",
			setup: func(t *testing.T) {
				setDatabaseEnv(t)
				t.Setenv("FILESERVER_URL_PREFIX", "files")
			},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)

			config, err := loadConfigFromEnv()

			if tt.wantError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.validate != nil {
				tt.validate(t, &config)
			}
		})
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		wantError bool
		validate  func(*testing.T, *Config)
	}{
		{
			name: "complete config",
			yaml: `
env: PROD
host_origin: https://example.com
log_level: WARN
server:
  port: 9000
database:
  host: db.example.com
  port: 5433
  database: proddb
  user: produser
  password: prodpass
fileserver:
  volume: /data/production/files
  url_prefix: /images
seed:
  enabled: false
  source: /data/catalog.json
rate_limit:
  requests: 120
trending:
  limit: 5
`,
			wantError: false,
			validate: func(t *testing.T, c *Config) {
				if c.Env != EnvProd {
					t.Errorf("expected Env %q, got %q", EnvProd, c.Env)
				}
				if c.LogLevel.Level() != slog.LevelWarn {
					t.Errorf("expected LogLevel WARN, got %q", c.LogLevel)
				}
				if c.Server.Port != 9000 {
					t.Errorf("expected Server.Port 9000, got %d", c.Server.Port)
				}
				if c.Database.Port != 5433 {
					t.Errorf("expected Database.Port 5433, got %d", c.Database.Port)
				}
				if c.Seed.IsEnabled() {
					t.Error("expected seeding to be disabled")
				}
				if c.Seed.Source.IsRemote() {
					t.Errorf("expected local Seed.Source, got %q", c.Seed.Source)
				}
				if c.RateLimit.Requests != 120 {
					t.Errorf("expected RateLimit.Requests 120, got %d", c.RateLimit.Requests)
				}
				if c.Trending.Limit != 5 {
					t.Errorf("expected Trending.Limit 5, got %d", c.Trending.Limit)
				}
			},
		},
		{
			name: "minimal config with defaults",
			yaml: `
database:
  database: testdb
  user: testuser
  password: testpass
`,
			wantError: false,
			validate: func(t *testing.T, c *Config) {
				if c.Env != EnvDev {
					t.Errorf("expected default Env %q, got %q", EnvDev, c.Env)
				}
				if c.HostOrigin != "http://localhost:8080" {
					t.Errorf("expected default HostOrigin %q, got %q", "http://localhost:8080", c.HostOrigin)
				}
				if c.Server.Port != 8080 {
					t.Errorf("expected default Server.Port 8080, got %d", c.Server.Port)
				}
				if c.Database.Host != "localhost" {
					t.Errorf("expected default Database.Host %q, got %q", "localhost", c.Database.Host)
				}
				if c.Database.Port != 5432 {
					t.Errorf("expected default Database.Port 5432, got %d", c.Database.Port)
				}
				if c.Fileserver.URLPrefix != "/files" {
					t.Errorf("expected default Fileserver.URLPrefix %q, got %q", "/files", c.Fileserver.URLPrefix)
				}
				if !c.Seed.IsEnabled() {
					t.Error("expected seeding to be enabled by default")
				}
				if c.Trending.Limit != 10 {
					t.Errorf("expected default Trending.Limit 10, got %d", c.Trending.Limit)
				}
			},
		},
		{
			name: "incomplete database config",
			yaml: `
database:
  user: testuser
`,
			wantError: true,
		},
		{
			name:      "invalid yaml",
			yaml:      "database: [",
			wantError: true,
		},
		{
			name: "invalid host origin",
			yaml: `
host_origin: not a url
database:
  database: testdb
  user: testuser
  password: testpass
`,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(configPath, []byte(tt.yaml), 0o644); err != nil {
				t.Fatalf("failed to write test config file: %v", err)
			}

			config, err := loadConfigFromFile(configPath)

			if tt.wantError {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.validate != nil {
				tt.validate(t, &config)
			}
		})
	}
}

func TestLoadConfigFromFile_FileNotFound(t *testing.T) {
	_, err := loadConfigFromFile("/nonexistent/config.yaml")
	if err == nil {
		t.Error("expected error for nonexistent file, got nil")
	}
}

func TestLoadConfig_PrefersFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "recipematch.yaml")
	contents := `
server:
  port: 7000
database:
  database: filedb
  user: fileuser
  password: filepass
`
	if err := os.WriteFile(configPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write test config file: %v", err)
	}
	t.Setenv("CONFIG_FILE", configPath)
	t.Setenv("SERVER_PORT", "9999")

	c, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Server.Port != 7000 {
		t.Errorf("expected Server.Port 7000 from file, got %d", c.Server.Port)
	}
}

func TestFormatValidationError(t *testing.T) {
	err := validate(Config{
		Server:     Server{Port: 8080},
		Database:   Database{User: "only-user"},
		HostOrigin: "http://localhost:8080",
		Trending:   Trending{Limit: 10},
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "Database configuration is incomplete") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestDatabaseURL(t *testing.T) {
	d := Database{Host: "db", Port: 5432, Database: "recipes", User: "app", Password: "p@ss"}
	want := "postgresql://app:p%40ss@db:5432/recipes"
	if got := d.URL(); got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
}
