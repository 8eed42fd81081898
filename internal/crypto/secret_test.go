package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomSecret(t *testing.T) {
	s1 := RandomSecret()
	s2 := RandomSecret()

	assert.Len(t, s1, secretBytes*2) // hex-encoded
	assert.NotEqual(t, s1, s2)
}
