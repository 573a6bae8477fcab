package config

import (
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

func Validate(cfg Config) error {
	if errs := validationErrors(cfg); len(errs) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}

func validationErrors(cfg Config) []string {
	var errs []string

	if cfg.App.Port <= 0 || cfg.App.Port > 65535 {
		errs = append(errs, "app.port must be 1..65535")
	}

	u, err := url.Parse(cfg.Provider.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		errs = append(errs, "provider.base_url must be an absolute http(s) URL")
	}
	if cfg.Provider.TimeoutSeconds <= 0 {
		errs = append(errs, "provider.timeout_seconds must be > 0")
	}
	if cfg.Provider.RequestsPerSecond < 0 {
		errs = append(errs, "provider.requests_per_second must be >= 0")
	}
	if cfg.Provider.Burst < 1 {
		errs = append(errs, "provider.burst must be >= 1")
	}

	if cfg.Polling.Enabled && cfg.Polling.IntervalSeconds <= 0 {
		errs = append(errs, "polling.interval_seconds must be > 0 when polling.enabled=true")
	}

	if ep := cfg.Telemetry.OtlpHTTPEndpoint; ep != "" {
		u, err := url.Parse(ep)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			errs = append(errs, "telemetry.otlp_http_endpoint must be an absolute http(s) URL")
		}
	}
	return errs
}

// SaveAtomic validates cfg and replaces path, keeping the previous file as path.bak.
func SaveAtomic(path string, cfg Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	b, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	bak := path + ".bak"

	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}

	_ = os.Remove(bak)
	_ = os.Rename(path, bak)

	return os.Rename(tmp, path)
}
