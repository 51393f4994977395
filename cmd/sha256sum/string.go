package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

const defaultMessage = "Hello World"

func newStringCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "string [text...]",
		Short: "Print a message and its SHA-256 digest words",
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := defaultMessage
			if len(args) > 0 {
				msg = strings.Join(args, " ")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, msg)
			fmt.Fprintln(out, wordsDigest(hashMessage("<string>", []byte(msg))))
			return nil
		},
	}
}
