package consts

import (
	"testing"

	"github.com/zeebo/assert"
)

func TestIV(t *testing.T) {
	assert.Equal(t, IV, [StateWords]uint32{
		0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
		0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
	})
}

func TestK(t *testing.T) {
	assert.Equal(t, len(K), Rounds)
	assert.Equal(t, K[0], uint32(0x428a2f98))
	assert.Equal(t, K[63], uint32(0xc67178f2))

	seen := make(map[uint32]bool)
	for _, k := range K {
		assert.That(t, !seen[k])
		seen[k] = true
	}
}

func TestSizes(t *testing.T) {
	assert.Equal(t, BlockBits, 512)
	assert.Equal(t, BlockWords, 16)
	assert.Equal(t, 4*StateWords, 32)
}
