package impl

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"math/big"

	"kinoauth/internal/errors"
)

// Verifier sizes in raw bytes. 32 bytes encode to 43 url-safe characters
// and 96 bytes to 128, the bounds RFC 7636 allows for a code verifier.
const (
	verifierMinBytes = 32
	verifierMaxBytes = 96
)

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateCodeVerifier creates a random PKCE code verifier of random length
// within the allowed bounds.
func generateCodeVerifier() (string, error) {
	span, err := rand.Int(rand.Reader, big.NewInt(verifierMaxBytes-verifierMinBytes+1))
	if err != nil {
		return "", errors.Wrap(err, "failed to pick verifier length")
	}

	raw := make([]byte, verifierMinBytes+int(span.Int64()))
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Wrap(err, "failed to generate verifier bytes")
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// codeChallengeS256 derives the S256 code challenge for a verifier:
// the unpadded url-safe base64 of its SHA-256 digest.
func codeChallengeS256(verifier string) string {
	sum := sha256.Sum256([]byte(verifier))

	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// generatePassword produces a random password for accounts created through
// a provider. The owner never sees it, it only keeps the column non-empty
// until a password reset.
func generatePassword(length int) (string, error) {
	password := make([]byte, length)
	for i := range password {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(passwordAlphabet))))
		if err != nil {
			return "", errors.Wrap(err, "failed to generate password")
		}
		password[i] = passwordAlphabet[idx.Int64()]
	}

	return string(password), nil
}
