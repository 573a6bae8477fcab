package config

import (
	_ "embed"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed default.yml
var defaultYAML []byte

type Config struct {
	App struct {
		Port int `yaml:"port" json:"port"`
	} `yaml:"app" json:"app"`

	Provider struct {
		BaseURL           string  `yaml:"base_url" json:"base_url"`
		TimeoutSeconds    int     `yaml:"timeout_seconds" json:"timeout_seconds"`
		RequestsPerSecond float64 `yaml:"requests_per_second" json:"requests_per_second"`
		Burst             int     `yaml:"burst" json:"burst"`
	} `yaml:"provider" json:"provider"`

	Account struct {
		Username       string `yaml:"username" json:"username"`
		KeyringAccount string `yaml:"keyring_account" json:"keyring_account"`
	} `yaml:"account" json:"account"`

	Polling struct {
		Enabled         bool `yaml:"enabled" json:"enabled"`
		IntervalSeconds int  `yaml:"interval_seconds" json:"interval_seconds"`
	} `yaml:"polling" json:"polling"`

	Telemetry struct {
		OtlpHTTPEndpoint string `yaml:"otlp_http_endpoint" json:"otlp_http_endpoint"`
		Stdout           bool   `yaml:"stdout" json:"stdout"`
	} `yaml:"telemetry" json:"telemetry"`
}

func (c Config) Timeout() time.Duration {
	return time.Duration(c.Provider.TimeoutSeconds) * time.Second
}

func (c Config) PollInterval() time.Duration {
	return time.Duration(c.Polling.IntervalSeconds) * time.Second
}

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		panic("config: embedded default.yml is invalid: " + err.Error())
	}
	return cfg
}

// Load reads path over the defaults, then applies the optional
// <name>.local.yml overlay next to it.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	if err := OverlayLocal(&cfg, path); err != nil {
		return cfg, err
	}
	return cfg, nil
}
