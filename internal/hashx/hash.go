// Package hashx implements the password digest used by the user registry:
// unsalted SHA-256, hex-encoded. The algorithm is pinned by the persisted
// record format — existing records carry these digests, so changing it would
// orphan every account.
package hashx

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Hash returns the hex-encoded SHA-256 digest of password. Deterministic and
// pure: the same input always yields the same digest.
func Hash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Verify reports whether password hashes to digest. The comparison is
// constant time.
func Verify(digest, password string) bool {
	return subtle.ConstantTimeCompare([]byte(Hash(password)), []byte(digest)) == 1
}
