package secrets

import (
	"testing"

	"waitlist-engine/internal/config"

	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestKeyringAccount(t *testing.T) {
	cfg := config.Default()
	cfg.Account.Username = "me@example.com"
	require.Equal(t, "boinord:me@example.com", KeyringAccount(cfg))

	cfg.Account.KeyringAccount = " custom "
	require.Equal(t, "custom", KeyringAccount(cfg))
}

func TestGetPasswordKeyringFirst(t *testing.T) {
	keyring.MockInit()
	t.Setenv(PasswordEnv, "from-env")

	require.NoError(t, keyring.Set(KeyringService, "boinord:me@example.com", "from-keyring"))

	pw, err := GetPassword("boinord:me@example.com")
	require.NoError(t, err)
	require.Equal(t, "from-keyring", pw)

	pw, err = GetPassword("boinord:other@example.com")
	require.NoError(t, err)
	require.Equal(t, "from-env", pw)
}

func TestGetPasswordMissing(t *testing.T) {
	keyring.MockInit()
	t.Setenv(PasswordEnv, "")

	_, err := GetPassword("boinord:nobody@example.com")
	require.ErrorIs(t, err, ErrNoPassword)
}

func TestCredentials(t *testing.T) {
	keyring.MockInit()
	t.Setenv(PasswordEnv, "")

	cfg := config.Default()
	_, err := Credentials(cfg)
	require.Error(t, err)

	cfg.Account.Username = "me@example.com"
	_, err = Credentials(cfg)
	require.ErrorIs(t, err, ErrNoPassword)

	require.NoError(t, keyring.Set(KeyringService, "boinord:me@example.com", "s3cret"))
	creds, err := Credentials(cfg)
	require.NoError(t, err)
	require.Equal(t, "me@example.com", creds.Username)
	require.Equal(t, "s3cret", creds.Password)
}
