package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "apod"

const cacheFileName = "nasa_apod.csv"

func ConfigDir() string {
	if v := os.Getenv("APOD_CONFIG_DIR"); v != "" {
		return v
	}
	return filepath.Join(xdg.ConfigHome, appName)
}

func CacheDir() string {
	if v := os.Getenv("APOD_CACHE_DIR"); v != "" {
		return v
	}
	return filepath.Join(xdg.CacheHome, appName)
}

func ConfigFile() string     { return filepath.Join(ConfigDir(), "config.toml") }
func CredentialsDir() string { return filepath.Join(ConfigDir(), "credentials") }

// DefaultCacheFile is where the CSV history lives unless the config or
// APOD_CACHE_FILE points elsewhere.
func DefaultCacheFile() string { return filepath.Join(CacheDir(), cacheFileName) }
