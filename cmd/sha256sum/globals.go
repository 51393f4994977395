package main

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jstripli/sha256"
)

var (
	log      = newLogger()
	strategy = sha256.Unrolled
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return l
}

// setupGlobals applies the persistent flags shared by every subcommand.
func setupGlobals(cmd *cobra.Command) error {
	flags := cmd.Flags()

	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return err
	}
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	name, err := flags.GetString("strategy")
	if err != nil {
		return err
	}
	if strategy, err = sha256.ParseStrategy(name); err != nil {
		return err
	}

	mode, err := flags.GetString("color")
	if err != nil {
		return err
	}
	switch strings.ToLower(mode) {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		f, ok := cmd.OutOrStdout().(*os.File)
		color.NoColor = !ok || !isTerminal(f)
	default:
		return errors.Errorf("unsupported color mode %q (must be auto, on or off)", mode)
	}

	log.WithField("strategy", strategy).Debug("configured")
	return nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
