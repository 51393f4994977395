package main

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jstripli/sha256"
	"github.com/jstripli/sha256/internal/consts"
)

const (
	// 64 bytes, one full block
	benchBlock = "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmno"
	benchReps  = 16777216

	// the bit length of the repeated message has to fit the 64-bit field
	maxBenchReps = uint64(math.MaxUint64) / uint64(8*len(benchBlock))
)

// digest of benchBlock repeated benchReps times
var benchHash = [8]uint32{
	0x50e72a0e, 0x26442fe2, 0x552dc393, 0x8ac58658, 0x228c0cbf, 0xb1d2ca87, 0x2ae43526, 0x6fcd055e,
}

type benchResult struct {
	strategy sha256.Strategy
	reps     uint64
	digest   [8]uint32
	elapsed  time.Duration
}

func (r benchResult) bytes() uint64 { return r.reps * uint64(len(benchBlock)) }

func (r benchResult) throughput() float64 {
	if r.elapsed <= 0 {
		return 0
	}
	return float64(r.bytes()) / r.elapsed.Seconds() / 1e6
}

func newBenchCmd() *cobra.Command {
	var reps uint64

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Hash one block repeated many times and report throughput",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if reps == 0 {
				return errors.New("reps must be positive")
			}
			if reps > maxBenchReps {
				return errors.Errorf("reps must be at most %d", maxBenchReps)
			}
			return reportBench(cmd.OutOrStdout(), runBench(strategy, reps))
		},
	}

	cmd.Flags().Uint64Var(&reps, "reps", benchReps, "number of times the block is repeated")

	return cmd
}

// runBench hashes benchBlock repeated reps times. The repeated block only
// has to be filled once, and the final call produces the padding and
// length block.
func runBench(s sha256.Strategy, reps uint64) benchResult {
	msg := []byte(benchBlock)
	bits := reps * uint64(len(msg)) * 8

	var block [16]uint32
	sha256.FillBlock(msg, bits, &block)

	start := time.Now()
	state := sha256.InitialState()
	for i := uint64(0); i < reps; i++ {
		s.Compress(&state, &block)
	}

	sha256.FillBlock(nil, bits, &block)
	s.Compress(&state, &block)

	res := benchResult{strategy: s, reps: reps, digest: state, elapsed: time.Since(start)}
	log.WithFields(logrus.Fields{
		"strategy": s,
		"blocks":   sha256.BlockCount(bits),
		"elapsed":  res.elapsed,
	}).Debug("bench finished")
	return res
}

func reportBench(out io.Writer, res benchResult) error {
	features := strings.Join(consts.Features(), " ")
	if features == "" {
		features = "none"
	}

	fmt.Fprintf(out, "strategy:   %s\n", res.strategy)
	fmt.Fprintf(out, "cpu:        %s\n", features)
	fmt.Fprintf(out, "hashed:     %s in %v\n", humanize.IBytes(res.bytes()), res.elapsed.Round(time.Millisecond))
	fmt.Fprintf(out, "throughput: %.1f MB/s\n", res.throughput())
	fmt.Fprintf(out, "digest:     %s\n", wordsDigest(res.digest))

	if res.reps != benchReps {
		return nil
	}
	if !sha256.Equal(res.digest, benchHash) {
		return errors.Errorf("digest mismatch: want %s", wordsDigest(benchHash))
	}
	fmt.Fprintln(out, "matches the known digest")
	return nil
}
