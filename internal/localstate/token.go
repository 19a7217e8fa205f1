package localstate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// TokenStore persists the single opaque bearer token, the only client-side
// state that survives the process. The session store is the sole writer;
// everything else reads through Token.
type TokenStore struct {
	path string
}

type storedCredentials struct {
	AccessToken string `json:"access_token"`
	SavedAt     string `json:"saved_at,omitempty"`
}

func NewTokenStore(path string) *TokenStore {
	return &TokenStore{path: path}
}

func (t *TokenStore) Path() string {
	return t.path
}

// DefaultTokenPath resolves the well-known credential location, preferring
// the user config dir and falling back to ~/.config.
func DefaultTokenPath() (string, error) {
	configRoot, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(configRoot) == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return "", homeErr
		}
		configRoot = filepath.Join(home, ".config")
	}
	return filepath.Join(configRoot, "stepify", "auth.json"), nil
}

// Token returns the persisted bearer token, or "" when not logged in.
// A missing file is the normal logged-out state, not an error.
func (t *TokenStore) Token() (string, error) {
	var creds storedCredentials
	if err := ReadJSON(t.path, &creds); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read credentials %s: %w", t.path, err)
	}
	return strings.TrimSpace(creds.AccessToken), nil
}

func (t *TokenStore) Save(token string) error {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return fmt.Errorf("token is required")
	}
	lock, err := AcquireFileLock(t.path)
	if err != nil {
		return err
	}
	defer func() {
		_ = lock.Release()
	}()

	creds := storedCredentials{
		AccessToken: trimmed,
		SavedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	if err := WriteJSON(t.path, creds, 0o600); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}
	return nil
}

// Clear removes the persisted token. Clearing an absent token is a no-op.
func (t *TokenStore) Clear() error {
	lock, err := AcquireFileLock(t.path)
	if err != nil {
		return err
	}
	defer func() {
		_ = lock.Release()
	}()

	if err := os.Remove(t.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear credentials %s: %w", t.path, err)
	}
	return nil
}
