// Package crypto exposes the minimal primitives used by credstore.
package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a short hex fingerprint of a secret.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes (20 hex chars), enough
// to tell entries apart without revealing the secret itself.
func Fingerprint(secret []byte) string {
	sum := blake2b.Sum256(secret)
	return hex.EncodeToString(sum[:10])
}
