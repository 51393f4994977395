package sha256

import (
	"fmt"
	"strings"

	"github.com/jstripli/sha256/internal/alg/compress"
)

// Strategy selects the implementation of the block compression function.
// Every strategy produces identical digests.
type Strategy uint8

const (
	// Unrolled runs eight rounds per loop iteration and rotates the roles of
	// the working variables instead of moving them. It is the default.
	Unrolled Strategy = iota

	// Reference is the plain 64 round loop.
	Reference
)

var strategyNames = [...]string{
	Unrolled:  "unrolled",
	Reference: "reference",
}

// ParseStrategy returns the Strategy with the given name.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if strings.EqualFold(name, n) {
			return Strategy(s), nil
		}
	}
	return 0, fmt.Errorf("unknown strategy: %q", name)
}

func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

func (s Strategy) fn() compress.Func {
	switch s {
	case Reference:
		return compress.Pure
	default:
		return compress.Compress
	}
}

// Digest returns the SHA-256 digest of msg using the strategy.
func (s Strategy) Digest(msg []byte) [8]uint32 {
	return digest(msg, s.fn())
}

// Compress folds one block into state in place.
func (s Strategy) Compress(state *[8]uint32, block *[16]uint32) {
	s.fn()(state, block)
}
