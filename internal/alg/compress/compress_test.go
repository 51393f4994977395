package compress

import (
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/pcg"
)

func TestCompress(t *testing.T) {
	fns := []Func{Compress, Pure}

	for n := 0; n < 1000; n++ {
		var state [8]uint32
		var block [16]uint32
		for i := range &state {
			state[i] = pcg.Uint32()
		}
		for i := range &block {
			block[i] = pcg.Uint32()
		}

		var out [2][8]uint32
		for i, fn := range fns {
			out[i] = state
			fn(&out[i], &block)
		}

		assert.Equal(t, out[0], out[1])
		assert.That(t, out[0] != state)
	}
}
