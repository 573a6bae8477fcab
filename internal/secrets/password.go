package secrets

import (
	"errors"
	"os"
	"strings"

	"waitlist-engine/internal/boinord"
	"waitlist-engine/internal/config"

	"github.com/zalando/go-keyring"
)

const (
	// “Service” groups the app's secrets in the OS keychain.
	KeyringService = "boinord-waitlist"

	// PasswordEnv is consulted when the keychain has no entry.
	PasswordEnv = "WAITLIST_PASSWORD"
)

var ErrNoPassword = errors.New("password not found (store it in the keychain or set " + PasswordEnv + ")")

func GetPassword(keyringAccount string) (string, error) {
	// 1) Keyring first
	if strings.TrimSpace(keyringAccount) != "" {
		pw, err := keyring.Get(KeyringService, keyringAccount)
		if err == nil && strings.TrimSpace(pw) != "" {
			return pw, nil
		}
	}

	// 2) Env
	if pw := os.Getenv(PasswordEnv); strings.TrimSpace(pw) != "" {
		return pw, nil
	}

	return "", ErrNoPassword
}

func KeyringAccount(cfg config.Config) string {
	if a := strings.TrimSpace(cfg.Account.KeyringAccount); a != "" {
		return a
	}
	return "boinord:" + strings.TrimSpace(cfg.Account.Username)
}

// Credentials resolves the login for the configured account.
func Credentials(cfg config.Config) (boinord.Credentials, error) {
	user := strings.TrimSpace(cfg.Account.Username)
	if user == "" {
		return boinord.Credentials{}, errors.New("account.username is not configured")
	}
	pw, err := GetPassword(KeyringAccount(cfg))
	if err != nil {
		return boinord.Credentials{}, err
	}
	return boinord.Credentials{Username: user, Password: pw}, nil
}
