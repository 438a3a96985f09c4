package client

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// TokenFile keeps the session token between CLI invocations.
type TokenFile struct {
	Path string
}

// Load returns the saved token, or "" when none is stored.
func (f TokenFile) Load() (string, error) {
	b, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func (f TokenFile) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(f.Path, []byte(token+"\n"), 0o600)
}

// Clear removes the saved token. Clearing an absent file is not an error.
func (f TokenFile) Clear() error {
	err := os.Remove(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
