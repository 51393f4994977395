package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sha256sum",
		Short:         "Compute and check SHA-256 digests",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupGlobals(cmd)
		},
	}

	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().Bool("verbose", false, "log diagnostics to stderr")
	root.PersistentFlags().String("strategy", "unrolled", "compression strategy (unrolled|reference)")

	root.AddCommand(newSumCmd())
	root.AddCommand(newStringCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newBenchCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
