// config/overlay.go
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LocalPath maps config.yml to config.local.yml.
func LocalPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".local" + ext
}

// OverlayLocal applies keys present in the local override file on top of cfg.
func OverlayLocal(cfg *Config, path string) error {
	b, err := os.ReadFile(LocalPath(path))
	if err != nil {
		// Missing overlay should not kill startup
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(b, cfg)
}
