package token

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveSigningKey_FromFile(t *testing.T) {
	raw := []byte("file-backed-signing-key-material")
	path := filepath.Join(t.TempDir(), "jwt_secret")
	if err := os.WriteFile(path, []byte(base64.StdEncoding.EncodeToString(raw)+"\n"), 0o600); err != nil {
		t.Fatalf("write secret file: %v", err)
	}

	key, err := ResolveSigningKey(path, "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if string(key) != string(raw) {
		t.Fatalf("key = %q, want %q", key, raw)
	}
}

func TestResolveSigningKey_FilePreferredOverFallback(t *testing.T) {
	raw := []byte("from-the-file")
	path := filepath.Join(t.TempDir(), "jwt_secret")
	if err := os.WriteFile(path, []byte(base64.StdEncoding.EncodeToString(raw)), 0o600); err != nil {
		t.Fatalf("write secret file: %v", err)
	}

	key, err := ResolveSigningKey(path, base64.StdEncoding.EncodeToString([]byte("from-the-env")))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if string(key) != string(raw) {
		t.Fatalf("expected file to win, got %q", key)
	}
}

func TestResolveSigningKey_FallbackWhenFileMissing(t *testing.T) {
	raw := []byte("fallback-signing-key")
	key, err := ResolveSigningKey(filepath.Join(t.TempDir(), "does-not-exist"), base64.StdEncoding.EncodeToString(raw))
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if string(key) != string(raw) {
		t.Fatalf("key = %q, want %q", key, raw)
	}
}

func TestResolveSigningKey_NoSourceFails(t *testing.T) {
	if _, err := ResolveSigningKey(filepath.Join(t.TempDir(), "missing"), "   "); err != ErrNoSigningKey {
		t.Fatalf("expected ErrNoSigningKey, got %v", err)
	}
}

func TestResolveSigningKey_BadBase64Fails(t *testing.T) {
	if _, err := ResolveSigningKey("", "%%not-base64%%"); err == nil {
		t.Fatalf("expected decode error")
	}
}
