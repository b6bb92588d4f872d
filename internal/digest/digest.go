// Package digest computes stable content fingerprints for run artifacts.
//
// Fingerprints are 64-bit xxHash64 values rendered as fixed-width hex
// strings. They are used to verify that repeated seeded runs produce
// byte-identical figures and snapshots.
package digest

import (
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
)

// Bytes returns the fingerprint of the given byte slice.
func Bytes(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// File returns the fingerprint of the file at path.
//
// Returns:
//   - string: Hex fingerprint of the file contents
//   - error: Read error naming the path
func File(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("digest %s: %w", path, err)
	}

	return Bytes(data), nil
}
