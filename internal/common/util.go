package common

import (
	"crypto/rand"
	"regexp"
)

var sha256HexRe = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)

// GenerateRandByteArray returns n bytes read from crypto/rand.
// It panics if the system random source fails.
func GenerateRandByteArray(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// It is used to drop key material from memory after use.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}

// IsSHA256Hex reports whether s looks like a hex encoded SHA-256 digest.
func IsSHA256Hex(s string) bool {
	return sha256HexRe.MatchString(s)
}
