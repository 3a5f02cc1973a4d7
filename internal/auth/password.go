package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns hex(SHA-256(password || salt)) with a process-wide
// salt. This is a weak scheme (no per-user salt, no work factor) kept for
// compatibility with the stored hash format; upgrading it would invalidate
// every existing credential row.
func HashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}
