package pad

import (
	"encoding/binary"

	"github.com/jstripli/sha256/internal/consts"
	"github.com/jstripli/sha256/internal/utils"
)

// BlockCount returns ceil((bits + 1 + 64) / 512), the number of blocks a
// message of the given bit length pads out to. It does not overflow for
// any bit length.
func BlockCount(bits uint64) uint64 {
	const extra = 1 + 64 + consts.BlockBits - 1
	return bits/consts.BlockBits + (bits%consts.BlockBits+extra)/consts.BlockBits
}

// Fill builds the next block from msg, the not yet consumed part of the
// message, and returns how many bytes of msg it used. totalBits is the
// length of the whole original message. Callers keep the three in
// agreement; Fill does not check them.
//
// A block that takes all of its words from msg carries no padding. The
// first block that runs out of message bytes gets the 0x80 marker and, if
// at least two words remain, the length. Otherwise the length goes into a
// following block holding only zeros and the length.
func Fill(msg []byte, totalBits uint64, block *[16]uint32) (consumed int) {
	if len(msg) >= consts.BlockLen {
		utils.BytesToWords((*[consts.BlockLen]byte)(msg[:consts.BlockLen]), block)
		return consts.BlockLen
	}

	var n int // words written to block

	for n < consts.BlockWords && len(msg)-consumed >= 4 {
		block[n] = binary.BigEndian.Uint32(msg[consumed:])
		consumed += 4
		n++
	}
	if n == consts.BlockWords {
		return consumed
	}

	// fewer than four bytes are left, so they share a word with the marker
	tail := msg[consumed:]
	if consumed+len(tail) > 0 || totalBits%consts.BlockBits == 0 {
		var word uint32
		for _, b := range tail {
			word = word<<8 | uint32(b)
		}
		word = word<<8 | consts.Marker
		word <<= 8 * uint(3-len(tail))

		block[n] = word
		consumed += len(tail)
		n++
	}

	if consts.BlockWords-n < consts.LengthWords {
		for ; n < consts.BlockWords; n++ {
			block[n] = 0
		}
		return consumed
	}

	for ; n < consts.BlockWords-consts.LengthWords; n++ {
		block[n] = 0
	}
	block[14] = uint32(totalBits >> 32)
	block[15] = uint32(totalBits)

	return consumed
}
