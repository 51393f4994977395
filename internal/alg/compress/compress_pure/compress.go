package compress_pure

import (
	"math/bits"

	"github.com/jstripli/sha256/internal/alg/schedule"
	"github.com/jstripli/sha256/internal/consts"
)

func bigSigma0(a uint32) uint32 {
	return bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)
}

func bigSigma1(e uint32) uint32 {
	return bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)
}

func ch(e, f, g uint32) uint32 {
	return (e & f) ^ (^e & g)
}

func maj(a, b, c uint32) uint32 {
	return (a & b) ^ (a & c) ^ (b & c)
}

// Compress folds one block into the state using the plain 64 round loop.
func Compress(state *[8]uint32, block *[16]uint32) {
	var w [consts.Rounds]uint32
	schedule.Expand(block, &w)

	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]

	for i := 0; i < consts.Rounds; i++ {
		temp1 := h + bigSigma1(e) + ch(e, f, g) + consts.K[i] + w[i]
		temp2 := bigSigma0(a) + maj(a, b, c)

		h = g
		g = f
		f = e
		e = d + temp1
		d = c
		c = b
		b = a
		a = temp1 + temp2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}
