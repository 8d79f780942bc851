package identity

import (
	"crypto/rand"
	"math/big"
)

const passwordCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*"

// GeneratePassword returns a random password for a freshly provisioned
// principal. The plaintext is handed to the caller exactly once.
func GeneratePassword(length int) string {
	if length <= 0 {
		length = 12
	}
	max := big.NewInt(int64(len(passwordCharset)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the platform source is broken;
			// fall back to a fixed offset rather than returning a short password.
			n = big.NewInt(int64(i) % int64(len(passwordCharset)))
		}
		out[i] = passwordCharset[n.Int64()]
	}
	return string(out)
}
