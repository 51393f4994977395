package compress

import (
	"github.com/jstripli/sha256/internal/alg/compress/compress_pure"
	"github.com/jstripli/sha256/internal/alg/compress/compress_unrolled"
)

// Func folds one block into a hash state in place.
type Func = func(state *[8]uint32, block *[16]uint32)

// Compress uses the unrolled form, which produces the same output as Pure
// for every input.
func Compress(state *[8]uint32, block *[16]uint32) {
	compress_unrolled.Compress(state, block)
}

// Pure uses the plain 64 round loop.
func Pure(state *[8]uint32, block *[16]uint32) {
	compress_pure.Compress(state, block)
}
