// Package auth keeps the bearer token the REST client attaches to requests.
// The token is sealed at rest with XChaCha20-Poly1305 under a key derived
// from the app secret.
package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/crypto/chacha20poly1305"
)

var errCorruptToken = errors.New("token file is corrupt")

// TokenStore persists a single bearer token on disk.
type TokenStore struct {
	path string
	key  [chacha20poly1305.KeySize]byte
}

// NewTokenStore derives the sealing key from secret and stores the token at
// path. The secret must be non-empty.
func NewTokenStore(path, secret string) (*TokenStore, error) {
	if secret == "" {
		return nil, errors.New("token store secret is required")
	}
	s := &TokenStore{path: path}
	s.key = sha256.Sum256([]byte(secret))
	return s, nil
}

// Token returns the stored bearer token, or "" when none has been saved.
// Implements the api.TokenSource contract.
func (s *TokenStore) Token(_ context.Context) (string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read token: %w", err)
	}

	aead, err := chacha20poly1305.NewX(s.key[:])
	if err != nil {
		return "", err
	}
	if len(raw) < aead.NonceSize() {
		return "", errCorruptToken
	}
	nonce, sealed := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("unseal token: %w", err)
	}
	return string(plain), nil
}

// Save seals token and writes it atomically (temp file + rename).
func (s *TokenStore) Save(token string) error {
	aead, err := chacha20poly1305.NewX(s.key[:])
	if err != nil {
		return err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return fmt.Errorf("nonce: %w", err)
	}
	sealed := aead.Seal(nonce, nonce, []byte(token), nil)

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("token dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, sealed, 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return os.Rename(tmp, s.path)
}

// Clear removes the stored token. Removing an absent token is not an error.
func (s *TokenStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
