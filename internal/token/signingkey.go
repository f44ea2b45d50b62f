// Package token holds the signing-key provider, the JWT codec and the
// password hashing used by both the gateway and the auth service.
package token

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNoSigningKey is returned when neither the secret file nor the fallback
// value yields a usable key. Callers treat it as fatal: the process must not
// start with an undefined signing key.
var ErrNoSigningKey = errors.New("token: signing key source unavailable")

// ResolveSigningKey loads the base64-encoded HMAC secret, preferring the
// mounted secret file over the fallback configuration value. The decoded key
// is held in memory for the process lifetime and must never be logged.
func ResolveSigningKey(secretFilePath, fallback string) ([]byte, error) {
	secret := ""
	if secretFilePath != "" {
		if raw, err := os.ReadFile(secretFilePath); err == nil {
			secret = strings.TrimSpace(string(raw))
		}
	}
	if secret == "" {
		secret = strings.TrimSpace(fallback)
	}
	if secret == "" {
		return nil, ErrNoSigningKey
	}

	key, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		return nil, fmt.Errorf("token: decode signing key: %w", err)
	}
	if len(key) == 0 {
		return nil, ErrNoSigningKey
	}
	return key, nil
}
