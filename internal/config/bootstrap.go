package config

import (
	"errors"
	"os"
	"path/filepath"
)

// DataDirEnv overrides where config.yml lives.
const DataDirEnv = "WAITLIST_DATA_DIR"

func DataDir() string {
	if d := os.Getenv(DataDirEnv); d != "" {
		return d
	}
	return "."
}

// EnsureUserConfig returns dataDir/config.yml, writing the embedded default first if it is missing.
func EnsureUserConfig(dataDir string) (string, error) {
	userPath := filepath.Join(dataDir, "config.yml")

	_, err := os.Stat(userPath)
	if err == nil {
		return userPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(userPath, defaultYAML, 0o600); err != nil {
		return "", err
	}
	return userPath, nil
}
