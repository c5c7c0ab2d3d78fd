package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsamuelsen11/kanban-pipeline/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
	if cfg.Database.Path != "kanban-local.db" {
		t.Errorf("Database.Path = %q, want \"kanban-local.db\"", cfg.Database.Path)
	}
	if cfg.Identity.Mode != config.IdentityModeHeader {
		t.Errorf("Identity.Mode = %q, want %q", cfg.Identity.Mode, config.IdentityModeHeader)
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want \"info\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Telemetry.Endpoint == "" {
		t.Error("Telemetry.Endpoint is empty, want non-empty for prod")
	}
	if cfg.Identity.Mode != config.IdentityModeRemote {
		t.Errorf("Identity.Mode = %q, want %q", cfg.Identity.Mode, config.IdentityModeRemote)
	}
	if cfg.Analytics.OverviewWorkers != 8 {
		t.Errorf("Analytics.OverviewWorkers = %d, want 8", cfg.Analytics.OverviewWorkers)
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want \"0.0.0.0\" (from base)", cfg.Server.Host)
	}
	if cfg.Client.Retry.MaxAttempts != 3 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 3 (from base)", cfg.Client.Retry.MaxAttempts)
	}
	if cfg.Client.CircuitBreaker.MaxFailures != 5 {
		t.Errorf("Client.CircuitBreaker.MaxFailures = %d, want 5 (from base)",
			cfg.Client.CircuitBreaker.MaxFailures)
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_PORT", "9090")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (env override)", cfg.Server.Port)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "15s")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := 15 * time.Second
	if cfg.Server.ReadTimeout != want {
		t.Errorf("Server.ReadTimeout = %v, want %v (env override)", cfg.Server.ReadTimeout, want)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_CLIENT_RETRY_MAX_ATTEMPTS", "7")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Client.Retry.MaxAttempts != 7 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 7 (env override)", cfg.Client.Retry.MaxAttempts)
	}
}

func TestLoad_EnvOverrideNewSections(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_DATABASE_BUSY_TIMEOUT", "750ms")
	t.Setenv("APP_CLIENT_RATE_LIMIT_REQUESTS_PER_SECOND", "12.5")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Database.BusyTimeout != 750*time.Millisecond {
		t.Errorf("Database.BusyTimeout = %v, want 750ms (env override)", cfg.Database.BusyTimeout)
	}
	if cfg.Client.RateLimit.RequestsPerSecond != 12.5 {
		t.Errorf("Client.RateLimit.RequestsPerSecond = %v, want 12.5 (env override)", cfg.Client.RateLimit.RequestsPerSecond)
	}
}

func TestLoad_DefaultsFillMissingKeys(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", "log:\n  level: warn\n")
	writeFile(t, dir, "ci.yaml", "server:\n  port: 9999\n")

	cfg, err := config.Load("ci", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want \"warn\"", cfg.Log.Level)
	}
	if cfg.Database.BusyTimeout != 5*time.Second {
		t.Errorf("Database.BusyTimeout = %v, want 5s (default)", cfg.Database.BusyTimeout)
	}
	if cfg.Analytics.OverviewWorkers != 4 {
		t.Errorf("Analytics.OverviewWorkers = %d, want 4 (default)", cfg.Analytics.OverviewWorkers)
	}
}

func TestLoad_OverridesWinOverEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", "database:\n  path: from-base.db\n")
	writeFile(t, dir, "ci.yaml", "log:\n  format: text\n")
	t.Setenv("APP_DATABASE_PATH", "from-env.db")

	cfg, err := config.Load("ci", config.WithConfigDir(dir),
		config.WithOverrides(map[string]any{"database.path": "from-flag.db"}))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Database.Path != "from-flag.db" {
		t.Errorf("Database.Path = %q, want \"from-flag.db\"", cfg.Database.Path)
	}
}

func TestLoad_EmptyOverrideIgnored(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", "database:\n  path: from-base.db\n")
	writeFile(t, dir, "ci.yaml", "log:\n  format: text\n")

	cfg, err := config.Load("ci", config.WithConfigDir(dir),
		config.WithOverrides(map[string]any{"database.path": ""}))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Database.Path != "from-base.db" {
		t.Errorf("Database.Path = %q, want \"from-base.db\"", cfg.Database.Path)
	}
}

func TestLoad_InvalidOverrideFailsValidation(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", "log:\n  level: info\n")
	writeFile(t, dir, "ci.yaml", "log:\n  format: text\n")

	_, err := config.Load("ci", config.WithConfigDir(dir),
		config.WithOverrides(map[string]any{"analytics.overview_workers": 0}))
	if err == nil {
		t.Fatal("Load with overview_workers=0 returned nil error, want validation error")
	}
}

func TestLoad_InvalidProfileName(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../etc", "a/b"} {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for port=0")
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for invalid log level")
	}
}

func TestValidate_OtlpWithoutEndpoint(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Exporter = "otlp"
	cfg.Telemetry.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for otlp without endpoint")
	}
}

func TestValidate_IdentityMode(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Identity.Mode = "oauth"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for unknown identity mode")
	}
}

func TestValidate_RateLimitBurst(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Client.RateLimit = config.RateLimitConfig{RequestsPerSecond: 10, BurstSize: 0}

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for zero burst")
	}
}

func TestValidate_OverviewWorkers(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Analytics.OverviewWorkers = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for zero workers")
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Database: config.DatabaseConfig{
			Path:        ":memory:",
			BusyTimeout: 5 * time.Second,
		},
		Identity: config.IdentityConfig{
			Mode:        config.IdentityModeHeader,
			RoleHeader:  "X-Principal-Role",
			ScopeHeader: "X-Principal-Scope",
		},
		Client: config.ClientConfig{
			BaseURL: "http://localhost:8081",
			Timeout: 30 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2.0,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
			RateLimit: config.RateLimitConfig{
				RequestsPerSecond: 50,
				BurstSize:         10,
			},
		},
		Analytics: config.AnalyticsConfig{
			OverviewWorkers: 4,
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}
