package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, Validate(cfg))
	require.Equal(t, "https://boinord.dk", cfg.Provider.BaseURL)
	require.Equal(t, 20*time.Second, cfg.Timeout())
	require.Equal(t, 15*time.Minute, cfg.PollInterval())
	require.True(t, cfg.Polling.Enabled)
	require.Empty(t, cfg.Telemetry.OtlpHTTPEndpoint)
	require.False(t, cfg.Telemetry.Stdout)
}

func TestEnsureUserConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	path, err := EnsureUserConfig(dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "config.yml"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, defaultYAML, b)

	// existing file is left alone
	require.NoError(t, os.WriteFile(path, []byte("app:\n  port: 9000\n"), 0o600))
	path2, err := EnsureUserConfig(dir)
	require.NoError(t, err)
	require.Equal(t, path, path2)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 9000, cfg.App.Port)
	// unspecified keys keep defaults
	require.Equal(t, "https://boinord.dk", cfg.Provider.BaseURL)
}

func TestLoadLocalOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("account:\n  username: a@example.com\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.local.yml"), []byte("account:\n  keyring_account: mine\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "a@example.com", cfg.Account.Username)
	require.Equal(t, "mine", cfg.Account.KeyringAccount)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("app: [\n"), 0o600))
	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.App.Port = 0
	cfg.Provider.BaseURL = "boinord.dk"
	cfg.Provider.TimeoutSeconds = 0
	cfg.Provider.RequestsPerSecond = -1
	cfg.Provider.Burst = 0
	cfg.Polling.IntervalSeconds = 0
	cfg.Telemetry.OtlpHTTPEndpoint = "localhost:4318"

	err := Validate(cfg)
	require.Error(t, err)
	for _, want := range []string{"app.port", "provider.base_url", "provider.timeout_seconds", "provider.requests_per_second", "provider.burst", "polling.interval_seconds", "telemetry.otlp_http_endpoint"} {
		require.Contains(t, err.Error(), want)
	}

	cfg = Default()
	cfg.Polling.Enabled = false
	cfg.Polling.IntervalSeconds = 0
	cfg.Telemetry.OtlpHTTPEndpoint = "http://localhost:4318/v1/traces"
	require.NoError(t, Validate(cfg))
}

func TestNormalizeAndValidate(t *testing.T) {
	cfg := Default()
	cfg.Provider.BaseURL = "  https://boinord.dk/ "
	cfg.Account.Username = " user@example.com "
	cfg.Polling.IntervalSeconds = 30

	out, vr := NormalizeAndValidate(cfg)
	require.True(t, vr.OK(), vr.Errors)
	require.Equal(t, "https://boinord.dk", out.Provider.BaseURL)
	require.Equal(t, "user@example.com", out.Account.Username)
	require.Len(t, vr.Warnings, 1)
	require.Contains(t, vr.Warnings[0], "interval_seconds")

	// input is not modified
	require.Equal(t, " user@example.com ", cfg.Account.Username)

	cfg = Default()
	cfg.App.Port = 70000
	_, vr = NormalizeAndValidate(cfg)
	require.False(t, vr.OK())
	require.NotEmpty(t, vr.Warnings) // empty username
}

func TestSaveAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	cfg := Default()
	cfg.Account.Username = "first@example.com"
	require.NoError(t, SaveAtomic(path, cfg))

	cfg.Account.Username = "second@example.com"
	require.NoError(t, SaveAtomic(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "second@example.com", got.Account.Username)

	bak, err := Load(path + ".bak")
	require.NoError(t, err)
	require.Equal(t, "first@example.com", bak.Account.Username)

	_, err = os.Stat(path + ".tmp")
	require.ErrorIs(t, err, os.ErrNotExist)

	cfg.App.Port = -1
	require.Error(t, SaveAtomic(path, cfg))
}
