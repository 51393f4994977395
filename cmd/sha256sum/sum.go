package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jstripli/sha256"
)

type sumOptions struct {
	jobs  int
	words bool
}

func newSumCmd() *cobra.Command {
	var opts sumOptions

	cmd := &cobra.Command{
		Use:   "sum [files...]",
		Short: "Print the SHA-256 digest of each file (stdin when none or -)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"-"}
			}
			return runSum(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), args, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", runtime.NumCPU(), "number of files hashed concurrently")
	cmd.Flags().BoolVar(&opts.words, "words", false, "print the digest as 0x followed by eight words")

	return cmd
}

// runSum hashes every named file and prints the results in argument order.
// Files are independent messages, so they are hashed concurrently.
func runSum(ctx context.Context, stdin io.Reader, out io.Writer, names []string, opts sumOptions) error {
	if opts.jobs < 1 {
		return errors.Errorf("invalid job count: %d", opts.jobs)
	}

	digests := make([][8]uint32, len(names))

	// stdin can only be read once and not from several goroutines
	for i, name := range names {
		if name != "-" {
			continue
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return errors.Wrap(err, "reading stdin")
		}
		stdin = eofReader{}
		digests[i] = hashMessage(name, data)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.jobs)

	for i, name := range names {
		if name == "-" {
			continue
		}
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(name)
			if err != nil {
				return errors.Wrapf(err, "reading %s", name)
			}
			digests[i] = hashMessage(name, data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, name := range names {
		line := hexDigest(digests[i])
		if opts.words {
			line = wordsDigest(digests[i])
		}
		if _, err := fmt.Fprintf(out, "%s  %s\n", line, name); err != nil {
			return errors.Wrap(err, "writing output")
		}
	}
	return nil
}

func hashMessage(name string, data []byte) [8]uint32 {
	words := strategy.Digest(data)
	log.WithFields(logrus.Fields{
		"file":   name,
		"bytes":  len(data),
		"blocks": sha256.BlockCount(uint64(len(data)) * 8),
	}).Debug("hashed")
	return words
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }
