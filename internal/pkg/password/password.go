// Package password wraps bcrypt for credential hashing. The cost factor is
// fixed at 10 so stored hashes stay comparable across deployments.
package password

import "golang.org/x/crypto/bcrypt"

const cost = 10

// MaxLength is the longest password Hash accepts, in bytes. bcrypt reads
// at most 72 bytes of input and errors on anything longer, so callers
// reject oversized passwords during validation instead.
const MaxLength = 72

// Hash returns the bcrypt hash of plaintext with a per-call random salt.
func Hash(plaintext string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plaintext matches hash. A mismatch is not an
// error condition; it simply returns false.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
