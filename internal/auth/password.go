package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// HashPassword returns the hex-encoded sha256 digest of the password.
//
// The digest is deliberately unsalted so it stays deterministic and matches
// the stored credential schema. That makes it vulnerable to precomputation
// attacks; see the security notes in the README before reusing this anywhere.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword checks a plaintext password against a stored digest.
func VerifyPassword(digest, password string) bool {
	candidate := HashPassword(password)
	return subtle.ConstantTimeCompare([]byte(digest), []byte(candidate)) == 1
}
