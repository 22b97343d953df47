package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvAPIKey is the environment variable checked for the NASA API key.
// It always wins over the saved credential file.
const EnvAPIKey = "NASA_API_KEY"

// DemoKey is NASA's documented keyless fallback. It is heavily rate-limited
// but lets the tool work out of the box.
const DemoKey = "DEMO_KEY"

// Key sources reported by FindAPIKey.
const (
	KeySourceEnv  = "env"
	KeySourceFile = "file"
	KeySourceDemo = "demo"
)

func APIKeyPath() string {
	return filepath.Join(CredentialsDir(), "api_key.json")
}

type apiKeyFile struct {
	APIKey string `json:"api_key"`
}

// FindAPIKey resolves the API key: environment first, then the saved
// credential file, then the demo key. The returned source is one of the
// KeySource constants.
func FindAPIKey() (key, source string) {
	if v := strings.TrimSpace(os.Getenv(EnvAPIKey)); v != "" {
		return v, KeySourceEnv
	}
	if data, err := os.ReadFile(APIKeyPath()); err == nil {
		var f apiKeyFile
		if json.Unmarshal(data, &f) == nil && f.APIKey != "" {
			return f.APIKey, KeySourceFile
		}
	}
	return DemoKey, KeySourceDemo
}

// SaveAPIKey writes the key to the credential file with a temp+rename so a
// crash can't leave a half-written credential.
func SaveAPIKey(key string) error {
	data, err := json.Marshal(apiKeyFile{APIKey: key})
	if err != nil {
		return fmt.Errorf("saving api key: %w", err)
	}
	path := APIKeyPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("saving api key: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("saving api key: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("saving api key: %w", err)
	}
	return nil
}

// DeleteAPIKey removes the saved credential file. Returns false when no file
// existed.
func DeleteAPIKey() bool {
	return os.Remove(APIKeyPath()) == nil
}
