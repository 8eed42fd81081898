package crypto

import (
	"crypto/rand"
	"encoding/hex"
)

const secretBytes = 32

// RandomSecret returns a cryptographically random signing secret. It exists
// so non-production runs without JWT_SECRET never fall back to a well-known
// constant; tokens signed with it die with the process.
func RandomSecret() string {
	buf := make([]byte, secretBytes)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform's entropy source is broken;
		// nothing sensible can run in that state.
		panic("crypto: reading random secret: " + err.Error())
	}
	return hex.EncodeToString(buf)
}
