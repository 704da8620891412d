// Package cipher implements the reversible obfuscation applied to journal and
// user files.
//
// This is NOT encryption. A single fixed XOR key hides text from a casual look
// at the file and nothing more; anyone with the files can read them.
package cipher

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Key is XORed with every byte.
const Key = 42

// Transform XORs every byte of s with Key. It is its own inverse for any
// input, including text that is not valid UTF-8:
// Transform(Transform(s)) == s.
func Transform(s string) string {
	b := []byte(s)
	for i := range b {
		b[i] ^= Key
	}
	return string(b)
}

// Encode transforms s and armors the result so it can be stored as a single
// line. A bare Transform can produce line terminators (' '^Key is '\n').
func Encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(Transform(s)))
}

// Decode reverses Encode.
func Decode(line string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(line))
	if err != nil {
		return "", fmt.Errorf("cipher: decode: %w", err)
	}
	return Transform(string(raw)), nil
}
