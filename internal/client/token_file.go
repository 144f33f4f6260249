package client

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultTokenDir  = ".task-keeper"
	defaultTokenFile = "token"
)

// TokenFile persists the session token between client invocations.
// The file is readable by its owner only.
type TokenFile struct {
	path string
}

func NewTokenFile(path string) *TokenFile {
	return &TokenFile{path: path}
}

// DefaultTokenPath returns $HOME/.task-keeper/token, or a path relative to the
// working directory when the home directory is unknown.
func DefaultTokenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(defaultTokenDir, defaultTokenFile)
	}
	return filepath.Join(home, defaultTokenDir, defaultTokenFile)
}

func (f *TokenFile) Path() string {
	return f.path
}

// Load returns the stored token or ErrNotLoggedIn when there is none.
func (f *TokenFile) Load() (string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNotLoggedIn
	}
	if err != nil {
		return "", fmt.Errorf("read token file: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNotLoggedIn
	}
	return token, nil
}

func (f *TokenFile) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("create token directory: %w", err)
	}
	if err := os.WriteFile(f.path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}
	// WriteFile keeps the mode of an existing file.
	if err := os.Chmod(f.path, 0o600); err != nil {
		return fmt.Errorf("chmod token file: %w", err)
	}
	return nil
}

// Remove deletes the token file. A missing file is not an error.
func (f *TokenFile) Remove() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove token file: %w", err)
	}
	return nil
}
