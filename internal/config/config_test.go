package config

import (
	"os"
	"path/filepath"
	"testing"
)

// Helpers

func setupTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("APOD_CONFIG_DIR", filepath.Join(dir, "config"))
	t.Setenv("APOD_CACHE_DIR", filepath.Join(dir, "cache"))
	// Clear env override variables so tests aren't affected by the host
	// environment.
	t.Setenv("APOD_CACHE_FILE", "")
	t.Setenv("APOD_API_BASE_URL", "")
	t.Setenv(EnvAPIKey, "")
	// Reset global config so tests don't leak state.
	configMu.Lock()
	globalConfig = nil
	configMu.Unlock()
	return dir
}

func writeTestFile(t *testing.T, path string, content []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll(%s): %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
}

// DefaultConfig

func TestDefaultConfig_Values(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Fetch.Timeout != 30.0 {
		t.Errorf("Fetch.Timeout = %v, want 30.0", cfg.Fetch.Timeout)
	}
	if cfg.Display.WrapWidth != 0 {
		t.Errorf("Display.WrapWidth = %d, want 0 (terminal width)", cfg.Display.WrapWidth)
	}
	if !cfg.Display.ShowURLs {
		t.Error("Display.ShowURLs should default to true")
	}
	if cfg.Cache.File != "" {
		t.Errorf("Cache.File = %q, want empty (default location)", cfg.Cache.File)
	}
}

// Load

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	setupTempDir(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoad_ParsesTOML(t *testing.T) {
	setupTempDir(t)
	writeTestFile(t, ConfigFile(), []byte(`
[fetch]
timeout = 10.0

[display]
wrap_width = 72
show_urls = false

[cache]
file = "/tmp/other.csv"
`))

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Fetch.Timeout != 10.0 {
		t.Errorf("Fetch.Timeout = %v, want 10.0", cfg.Fetch.Timeout)
	}
	if cfg.Display.WrapWidth != 72 {
		t.Errorf("Display.WrapWidth = %d, want 72", cfg.Display.WrapWidth)
	}
	if cfg.Display.ShowURLs {
		t.Error("Display.ShowURLs = true, want false")
	}
	if cfg.Cache.File != "/tmp/other.csv" {
		t.Errorf("Cache.File = %q", cfg.Cache.File)
	}
}

func TestLoad_MalformedReturnsErrorAndDefaults(t *testing.T) {
	setupTempDir(t)
	writeTestFile(t, ConfigFile(), []byte("not [valid toml"))

	cfg, err := Load("")
	if err == nil {
		t.Error("Load with malformed file: err = nil, want parse error")
	}
	if cfg != DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults on parse failure", cfg)
	}
}

func TestLoad_EnvOverridesCacheFile(t *testing.T) {
	setupTempDir(t)
	t.Setenv("APOD_CACHE_FILE", "/tmp/env.csv")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Cache.File != "/tmp/env.csv" {
		t.Errorf("Cache.File = %q, want env override", cfg.Cache.File)
	}
}

func TestLoad_EnvOverridesBaseURL(t *testing.T) {
	setupTempDir(t)
	t.Setenv("APOD_API_BASE_URL", "http://127.0.0.1:9999")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Fetch.BaseURL != "http://127.0.0.1:9999" {
		t.Errorf("Fetch.BaseURL = %q, want env override", cfg.Fetch.BaseURL)
	}
}

// Save

func TestSaveLoad_RoundTrip(t *testing.T) {
	setupTempDir(t)

	want := DefaultConfig()
	want.Fetch.Timeout = 12.5
	want.Display.WrapWidth = 100

	if err := Save(want, ""); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("round-trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

// Paths

func TestConfig_CacheFileResolution(t *testing.T) {
	setupTempDir(t)

	cfg := DefaultConfig()
	if got, want := cfg.CacheFile(), DefaultCacheFile(); got != want {
		t.Errorf("CacheFile() = %q, want %q", got, want)
	}

	cfg.Cache.File = "/tmp/custom.csv"
	if got := cfg.CacheFile(); got != "/tmp/custom.csv" {
		t.Errorf("CacheFile() with override = %q", got)
	}
}

func TestPaths_EnvOverride(t *testing.T) {
	t.Setenv("APOD_CONFIG_DIR", "/tmp/apod-config")
	t.Setenv("APOD_CACHE_DIR", "/tmp/apod-cache")

	if got := ConfigDir(); got != "/tmp/apod-config" {
		t.Errorf("ConfigDir() = %q", got)
	}
	if got := CacheDir(); got != "/tmp/apod-cache" {
		t.Errorf("CacheDir() = %q", got)
	}
	if got := DefaultCacheFile(); got != filepath.Join("/tmp/apod-cache", "nasa_apod.csv") {
		t.Errorf("DefaultCacheFile() = %q", got)
	}
}
