package auth

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestTokenStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.bin")
	s, err := NewTokenStore(path, "app-secret")
	if err != nil {
		t.Fatalf("NewTokenStore returned error: %v", err)
	}

	if err := s.Save("bearer-abc"); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	got, err := s.Token(context.Background())
	if err != nil {
		t.Fatalf("Token returned error: %v", err)
	}
	if got != "bearer-abc" {
		t.Fatalf("Token = %q, want %q", got, "bearer-abc")
	}

	// The on-disk form must not contain the plaintext.
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading token file: %v", err)
	}
	if string(raw) == "bearer-abc" {
		t.Fatal("token stored in plaintext")
	}
}

func TestTokenStore_MissingFileMeansNoToken(t *testing.T) {
	s, err := NewTokenStore(filepath.Join(t.TempDir(), "absent.bin"), "app-secret")
	if err != nil {
		t.Fatalf("NewTokenStore returned error: %v", err)
	}
	got, err := s.Token(context.Background())
	if err != nil {
		t.Fatalf("Token returned error: %v, want nil for missing file", err)
	}
	if got != "" {
		t.Fatalf("Token = %q, want empty", got)
	}
}

func TestTokenStore_ClearIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.bin")
	s, err := NewTokenStore(path, "app-secret")
	if err != nil {
		t.Fatalf("NewTokenStore returned error: %v", err)
	}

	if err := s.Save("tok"); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("second Clear returned error: %v, want nil", err)
	}
	got, err := s.Token(context.Background())
	if err != nil || got != "" {
		t.Fatalf("Token after clear = (%q, %v), want empty", got, err)
	}
}

func TestTokenStore_WrongSecretFailsToUnseal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.bin")
	s1, err := NewTokenStore(path, "secret-one")
	if err != nil {
		t.Fatalf("NewTokenStore returned error: %v", err)
	}
	if err := s1.Save("tok"); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	s2, err := NewTokenStore(path, "secret-two")
	if err != nil {
		t.Fatalf("NewTokenStore returned error: %v", err)
	}
	if _, err := s2.Token(context.Background()); err == nil {
		t.Fatal("Token with wrong secret succeeded, want unseal failure")
	}
}

func TestNewTokenStore_RequiresSecret(t *testing.T) {
	if _, err := NewTokenStore("x", ""); err == nil {
		t.Fatal("NewTokenStore with empty secret succeeded, want error")
	}
}
