package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hash produces a salted bcrypt digest of the plaintext. bcrypt embeds a
// fresh random salt per call, so hashing the same plaintext twice yields
// different digests.
func Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored bcrypt hash. A
// malformed stored hash is treated as a mismatch, never as a failure the
// caller has to handle.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
