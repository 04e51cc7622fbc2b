package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.LogLevel != LogInfo {
		t.Errorf("expected default log_level %q, got %q", LogInfo, cfg.LogLevel)
	}
	if cfg.OutputDir != "site" {
		t.Errorf("expected default output_dir %q, got %q", "site", cfg.OutputDir)
	}
	if cfg.CatalogSource() != "built-in" {
		t.Errorf("expected built-in catalog, got %q", cfg.CatalogSource())
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.pillars.yml")

	original := DefaultConfig()
	original.CatalogFile = "custom.yml"
	original.Port = 9090
	original.AllowAllOrigins = true
	original.OutputDir = "public"
	original.LogLevel = LogDebug

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.CatalogFile != original.CatalogFile {
		t.Errorf("catalog_file: got %q, want %q", loaded.CatalogFile, original.CatalogFile)
	}
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.AllowAllOrigins != original.AllowAllOrigins {
		t.Errorf("allow_all_origins: got %v, want %v", loaded.AllowAllOrigins, original.AllowAllOrigins)
	}
	if loaded.OutputDir != original.OutputDir {
		t.Errorf("output_dir: got %q, want %q", loaded.OutputDir, original.OutputDir)
	}
	if loaded.LogLevel != original.LogLevel {
		t.Errorf("log_level: got %q, want %q", loaded.LogLevel, original.LogLevel)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Override via env vars.
	t.Setenv("PILLARS_CATALOG_DIR", "content/pillars")
	t.Setenv("PILLARS_LOG_LEVEL", "warn")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.CatalogDir != "content/pillars" {
		t.Errorf("env override failed: got %q", loaded.CatalogDir)
	}
	if loaded.LogLevel != LogWarn {
		t.Errorf("env override failed: got %q, want %q", loaded.LogLevel, LogWarn)
	}
	if loaded.CatalogSource() != "dir:content/pillars" {
		t.Errorf("catalog source = %q", loaded.CatalogSource())
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	os.WriteFile(path, []byte("port: [unterminated"), 0o644)
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalidPort(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for out-of-range port")
	}
}

func TestValidateNegativeTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RequestTimeoutSeconds = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for negative request_timeout_seconds")
	}
}

func TestValidateNegativeSessionLimits(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSessions = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for negative max_sessions")
	}

	cfg = DefaultConfig()
	cfg.SessionIdleMinutes = -5
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for negative session_idle_minutes")
	}
}

func TestValidateEmptyOutputDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutputDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty output_dir")
	}
}

func TestValidateInvalidLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for invalid log_level")
	}
}

func TestValidatePort(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"8080", false},
		{"0", false},
		{"65536", true},
		{"-1", true},
		{"http", true},
	}
	for _, tt := range tests {
		err := validatePort(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("validatePort(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}
