package compress_unrolled

import (
	"math/bits"

	"github.com/jstripli/sha256/internal/alg/schedule"
	"github.com/jstripli/sha256/internal/consts"
)

func s0(a uint32) uint32 {
	return bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)
}

func s1(e uint32) uint32 {
	return bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)
}

func ch(e, f, g uint32) uint32 { return g ^ (e & (f ^ g)) }

func maj(a, b, c uint32) uint32 { return (a & b) | (c & (a | b)) }

// Compress folds one block into the state. Each pass of the loop runs eight
// rounds, and instead of shifting every working variable down by one after
// a round, the roles of the variables rotate so only two are written.
func Compress(state *[8]uint32, block *[16]uint32) {
	var w [consts.Rounds]uint32
	schedule.Expand(block, &w)

	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]

	k := &consts.K
	for i := 0; i < consts.Rounds; i += 8 {
		h += s1(e) + ch(e, f, g) + k[i+0] + w[i+0]
		d += h
		h += s0(a) + maj(a, b, c)

		g += s1(d) + ch(d, e, f) + k[i+1] + w[i+1]
		c += g
		g += s0(h) + maj(h, a, b)

		f += s1(c) + ch(c, d, e) + k[i+2] + w[i+2]
		b += f
		f += s0(g) + maj(g, h, a)

		e += s1(b) + ch(b, c, d) + k[i+3] + w[i+3]
		a += e
		e += s0(f) + maj(f, g, h)

		d += s1(a) + ch(a, b, c) + k[i+4] + w[i+4]
		h += d
		d += s0(e) + maj(e, f, g)

		c += s1(h) + ch(h, a, b) + k[i+5] + w[i+5]
		g += c
		c += s0(d) + maj(d, e, f)

		b += s1(g) + ch(g, h, a) + k[i+6] + w[i+6]
		f += b
		b += s0(c) + maj(c, d, e)

		a += s1(f) + ch(f, g, h) + k[i+7] + w[i+7]
		e += a
		a += s0(b) + maj(b, c, d)
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
