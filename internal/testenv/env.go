// Package testenv isolates tests from the host machine's config, cache, and
// credentials.
package testenv

import "path/filepath"

// Dirs contains isolated directories for apod config/cache in tests.
type Dirs struct {
	Base   string
	Config string
	Cache  string
}

// ApodDirs returns conventional test directories rooted at base.
func ApodDirs(base string) Dirs {
	return Dirs{
		Base:   base,
		Config: filepath.Join(base, "config"),
		Cache:  filepath.Join(base, "cache"),
	}
}

// Apply sets APOD_* env vars to isolated test directories and clears the
// API key and cache-file overrides so the host environment can't leak in.
func Apply(setenv func(string, string), base string) Dirs {
	dirs := ApodDirs(base)
	setenv("APOD_CONFIG_DIR", dirs.Config)
	setenv("APOD_CACHE_DIR", dirs.Cache)
	setenv("APOD_CACHE_FILE", "")
	setenv("APOD_API_BASE_URL", "")
	setenv("APOD_NO_COLOR", "")
	setenv("NASA_API_KEY", "")
	return dirs
}
