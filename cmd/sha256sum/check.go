package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type knownCase struct {
	msg  string
	hash [8]uint32
}

var knownCases = []knownCase{
	{
		msg:  "abc",
		hash: [8]uint32{0xba7816bf, 0x8f01cfea, 0x414140de, 0x5dae2223, 0xb00361a3, 0x96177a9c, 0xb410ff61, 0xf20015ad},
	},
	{
		msg:  "",
		hash: [8]uint32{0xe3b0c442, 0x98fc1c14, 0x9afbf4c8, 0x996fb924, 0x27ae41e4, 0x649b934c, 0xa495991b, 0x7852b855},
	},
	{
		msg:  "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
		hash: [8]uint32{0x248d6a61, 0xd20638b8, 0xe5c02693, 0x0c3e6039, 0xa33ce459, 0x64ff2167, 0xf6ecedd4, 0x19db06c1},
	},
	{
		msg: "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmn" +
			"hijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu",
		hash: [8]uint32{0xcf5b16a7, 0x78af8380, 0x036ce59e, 0x7b049237, 0x0b249b11, 0xe8f07a51, 0xafac4503, 0x7afee9d1},
	},
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Hash the known test messages and compare against their digests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.OutOrStdout(), knownCases)
		},
	}
}

func runCheck(out io.Writer, cases []knownCase) error {
	pass := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed, color.Bold).SprintFunc()

	var failed int
	for _, c := range cases {
		got := hashMessage("<known>", []byte(c.msg))
		if got == c.hash {
			fmt.Fprintf(out, "%s   %q\n", pass("ok"), c.msg)
			continue
		}
		failed++
		fmt.Fprintf(out, "%s %q\n", fail("FAIL"), c.msg)
		fmt.Fprintf(out, "     got  %s\n", wordsDigest(got))
		fmt.Fprintf(out, "     want %s\n", wordsDigest(c.hash))
	}

	if failed > 0 {
		return errors.Errorf("%d of %d known cases failed with strategy %s", failed, len(cases), strategy)
	}
	return nil
}
