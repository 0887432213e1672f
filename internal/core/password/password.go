// Package password wraps bcrypt for credential hashing.
package password

import "golang.org/x/crypto/bcrypt"

// Hash returns a salted one-way hash of plaintext. Two calls on the same
// input produce different outputs.
func Hash(plaintext string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plaintext matches hash. Any mismatch or malformed
// hash yields false, never an error.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
