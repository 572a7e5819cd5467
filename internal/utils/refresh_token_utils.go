package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashRefreshToken generates a SHA-256 digest of a refresh token. Only the
// digest is persisted, so a leaked database dump does not yield usable refresh
// tokens, while the digest still works as a deterministic lookup key.
func HashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
