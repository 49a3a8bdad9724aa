package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sum256Hex computes the SHA-256 digest of data and returns it hex-encoded.
// Used to fingerprint written backup containers in the catalog so later
// on-disk corruption can be detected before a restore is attempted.
func Sum256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
