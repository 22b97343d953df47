// Package config loads the TOML config file, resolves filesystem paths, and
// stores the API key credential.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

type DisplayConfig struct {
	// WrapWidth caps the explanation wrap width; 0 means use the
	// terminal width.
	WrapWidth int `toml:"wrap_width" json:"wrap_width"`
	// ShowURLs controls whether media URLs are printed under the entry.
	ShowURLs bool `toml:"show_urls" json:"show_urls"`
}

type FetchConfig struct {
	Timeout float64 `toml:"timeout" json:"timeout"`
	// BaseURL overrides the APOD API endpoint.
	BaseURL string `toml:"base_url,omitempty" json:"base_url,omitempty"`
}

type CacheConfig struct {
	// File overrides the CSV cache location.
	File string `toml:"file,omitempty" json:"file,omitempty"`
}

type Config struct {
	Display DisplayConfig `toml:"display" json:"display"`
	Fetch   FetchConfig   `toml:"fetch" json:"fetch"`
	Cache   CacheConfig   `toml:"cache" json:"cache"`
}

func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			WrapWidth: 0,
			ShowURLs:  true,
		},
		Fetch: FetchConfig{
			Timeout: 30.0,
		},
	}
}

// CacheFile resolves the CSV cache path: config override first, then the
// default location under the cache dir.
func (c Config) CacheFile() string {
	if c.Cache.File != "" {
		return c.Cache.File
	}
	return DefaultCacheFile()
}

var (
	globalConfig *Config
	configMu     sync.RWMutex
)

func Get() Config {
	configMu.RLock()
	if c := globalConfig; c != nil {
		configMu.RUnlock()
		return *c
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()
	if globalConfig != nil {
		return *globalConfig
	}
	c, _ := Load("")
	globalConfig = &c
	return c
}

// Init loads the config from disk into the global singleton, returning any
// parse error so callers can warn about a malformed file.
func Init() (Config, error) {
	configMu.Lock()
	defer configMu.Unlock()
	c, err := Load("")
	globalConfig = &c
	return c, err
}

// Load reads the config at path (ConfigFile() when empty). A missing file is
// not an error: defaults plus env overrides are returned. A malformed file
// returns defaults along with the parse error.
func Load(path string) (Config, error) {
	if path == "" {
		path = ConfigFile()
	}
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return applyEnvOverrides(cfg), nil
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return applyEnvOverrides(DefaultConfig()), fmt.Errorf("parsing config %s: %w", path, err)
	}

	return applyEnvOverrides(cfg), nil
}

// Save writes the config as TOML to path (ConfigFile() when empty).
func Save(cfg Config, path string) error {
	if path == "" {
		path = ConfigFile()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg Config) Config {
	if v := os.Getenv("APOD_CACHE_FILE"); v != "" {
		cfg.Cache.File = v
	}
	if v := os.Getenv("APOD_API_BASE_URL"); v != "" {
		cfg.Fetch.BaseURL = v
	}
	return cfg
}
