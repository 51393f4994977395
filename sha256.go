package sha256

import (
	"github.com/jstripli/sha256/internal/alg/compress"
	"github.com/jstripli/sha256/internal/alg/pad"
	"github.com/jstripli/sha256/internal/consts"
)

//
// digest driver
//

func digest(msg []byte, compressBlock compress.Func) [8]uint32 {
	state := consts.IV
	bits := uint64(len(msg)) * 8

	var block [16]uint32
	for n := pad.BlockCount(bits); n > 0; n-- {
		used := pad.Fill(msg, bits, &block)
		compressBlock(&state, &block)
		msg = msg[used:]
	}

	return state
}
