package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// Save original env and restore after test
	originalEnv := os.Environ()
	defer func() {
		os.Clearenv()
		for _, env := range originalEnv {
			// Parse and restore each env var
			for i, c := range env {
				if c == '=' {
					os.Setenv(env[:i], env[i+1:])
					break
				}
			}
		}
	}()

	// Clear env to test defaults
	os.Clearenv()

	cfg := Load()

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"Port", cfg.Port, 8080},
		{"LogLevel", cfg.LogLevel, "info"},
		{"OracleProvider", cfg.OracleProvider, "gemini"},
		{"OracleModel", cfg.OracleModel, "gemini-1.5-flash-latest"},
		{"OracleTimeout", cfg.OracleTimeout, 30},
		{"OracleMaxInFlight", cfg.OracleMaxInFlight, int64(8)},
		{"CacheProvider", cfg.CacheProvider, "none"},
		{"CacheTTL", cfg.CacheTTL, 300},
		{"EventsProvider", cfg.EventsProvider, "none"},
		{"MaxUploadSize", cfg.MaxUploadSize, int64(10485760)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("expected %s=%v, got %v", tt.name, tt.expected, tt.got)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	// Save and restore env
	originalPort := os.Getenv("PORT")
	originalLogLevel := os.Getenv("LOG_LEVEL")
	defer func() {
		os.Setenv("PORT", originalPort)
		os.Setenv("LOG_LEVEL", originalLogLevel)
	}()

	// Set test values
	os.Setenv("PORT", "9090")
	os.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.LogLevel)
	}
}

func TestLoadProviderOverrides(t *testing.T) {
	// Save and restore env
	originalOracle := os.Getenv("ORACLE_PROVIDER")
	defer func() {
		os.Setenv("ORACLE_PROVIDER", originalOracle)
	}()

	// Set test values
	os.Setenv("ORACLE_PROVIDER", "openai")

	cfg := Load()

	if cfg.OracleProvider != "openai" {
		t.Errorf("expected oracle provider 'openai', got %s", cfg.OracleProvider)
	}
}

func TestDurationHelpers(t *testing.T) {
	cfg := Config{OracleTimeout: 45, CacheTTL: 120}

	if cfg.OracleTimeoutDuration() != 45*time.Second {
		t.Errorf("expected 45s oracle timeout, got %v", cfg.OracleTimeoutDuration())
	}
	if cfg.CacheTTLDuration() != 120*time.Second {
		t.Errorf("expected 120s cache TTL, got %v", cfg.CacheTTLDuration())
	}
}
