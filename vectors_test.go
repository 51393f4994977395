package sha256

import (
	"encoding/hex"
	"strings"
)

type vector struct {
	in   string
	hash string // big-endian words separated by spaces
}

func (v vector) input() []byte { return []byte(v.in) }

func (v vector) words() (out [8]uint32) {
	for i, w := range strings.Fields(v.hash) {
		b, err := hex.DecodeString(w)
		if err != nil || len(b) != 4 {
			panic("bad vector word: " + w)
		}
		out[i] = uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
	}
	return out
}

var vectors = []vector{
	{
		in:   "",
		hash: "e3b0c442 98fc1c14 9afbf4c8 996fb924 27ae41e4 649b934c a495991b 7852b855",
	},
	{
		in:   "abc",
		hash: "ba7816bf 8f01cfea 414140de 5dae2223 b00361a3 96177a9c b410ff61 f20015ad",
	},
	{
		in:   "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
		hash: "248d6a61 d20638b8 e5c02693 0c3e6039 a33ce459 64ff2167 f6ecedd4 19db06c1",
	},
	{
		in: "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmn" +
			"hijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu",
		hash: "cf5b16a7 78af8380 036ce59e 7b049237 0b249b11 e8f07a51 afac4503 7afee9d1",
	},
}

// bigBlock hashed bigReps times back to back is the long message test.
const (
	bigBlock = "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmno"
	bigReps  = 16777216
	bigHash  = "50e72a0e 26442fe2 552dc393 8ac58658 228c0cbf b1d2ca87 2ae43526 6fcd055e"
)
