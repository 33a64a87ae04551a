package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// KeyFingerprint returns a short stable identifier for a credential so logs
// can tell keys apart without recording them.
func KeyFingerprint(s string) string {
	if s == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])[:12]
}
