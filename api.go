// Package sha256 computes SHA-256 digests as defined in FIPS 180-4.
//
// Digests are returned as the eight big-endian state words. Use Sum256 for
// the usual 32 byte form.
package sha256

import (
	"github.com/jstripli/sha256/internal/alg/pad"
	"github.com/jstripli/sha256/internal/consts"
	"github.com/jstripli/sha256/internal/utils"
)

// Size is the size of a SHA-256 digest in bytes.
const Size = 32

// BlockSize is the size of a SHA-256 block in bytes.
const BlockSize = consts.BlockLen

// Digest returns the SHA-256 digest of msg as eight state words.
func Digest(msg []byte) [8]uint32 {
	return Unrolled.Digest(msg)
}

// Sum256 returns the SHA-256 digest of msg as bytes.
func Sum256(msg []byte) (out [Size]byte) {
	words := Digest(msg)
	utils.WordsToBytes(&words, out[:])
	return out
}

// Equal reports whether two digests are identical.
func Equal(a, b [8]uint32) bool {
	return a == b
}

// InitialState returns the state every digest starts from. It is a copy;
// changing it has no effect on later digests.
func InitialState() [8]uint32 {
	return consts.IV
}

// BlockCount returns how many blocks a message of the given length in bits
// pads out to.
func BlockCount(bits uint64) uint64 {
	return pad.BlockCount(bits)
}

// FillBlock writes the next block of a message into block and returns how
// many bytes of msg it consumed. msg is the unconsumed remainder of the
// message and totalBits the length of the whole message. Calling it
// BlockCount(totalBits) times, advancing msg by the returned count each
// time, produces the padded message.
func FillBlock(msg []byte, totalBits uint64, block *[16]uint32) int {
	return pad.Fill(msg, totalBits, block)
}
