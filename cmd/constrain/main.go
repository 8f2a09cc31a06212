// SPDX-License-Identifier: Unlicense OR MIT

// Command constrain explains and checks layout documents: YAML files
// that declare a view tree and, per view, a layout format string as
// accepted by layout.Format.
//
// Usage:
//
//	constrain explain [-v] [--color=auto|always|never] file.yaml
//	constrain check [-v] [--color=auto|always|never] file.yaml
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
	color   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "constrain: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := new(rootFlags)
	root := &cobra.Command{
		Use:           "constrain",
		Short:         "Explain and check layout constraint documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log every activated constraint")
	root.PersistentFlags().StringVar(&flags.color, "color", "auto", "color output: auto, always or never")
	root.AddCommand(newExplainCmd(flags), newCheckCmd(flags))
	return root
}

func newExplainCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "explain file.yaml",
		Short: "Print the constraints a layout document activates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			color, err := useColor(flags.color, out)
			if err != nil {
				return err
			}
			t, err := buildFile(args[0], newLogger(cmd.ErrOrStderr(), flags.verbose, color))
			if t != nil {
				writeConstraints(out, t, color)
			}
			return err
		},
	}
}

func newCheckCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check file.yaml",
		Short: "Report the constraints of a layout document that fail to activate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stderr := cmd.ErrOrStderr()
			color, err := useColor(flags.color, stderr)
			if err != nil {
				return err
			}
			log := newLogger(stderr, flags.verbose, color)
			t, err := buildFile(args[0], log)
			var failures []error
			if err != nil {
				if t == nil {
					return err
				}
				failures = unwrapJoined(err)
			}
			for _, f := range failures {
				log.Error().Err(f).Msg("constraint failed")
			}
			if n := len(failures); n > 0 {
				return fmt.Errorf("%s: %d failed constraint calls", args[0], n)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d views, %d constraints\n", len(t.views), len(t.engine.Active()))
			return nil
		},
	}
}

func buildFile(path string, log *zerolog.Logger) (*tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := loadDocument(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc.build(log)
}

func newLogger(w io.Writer, verbose, color bool) *zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: !color, PartsExclude: []string{zerolog.TimestampFieldName}}).
		Level(level)
	return &log
}

// useColor decides whether to color output written to w.
func useColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		f, ok := w.(*os.File)
		if !ok {
			return false, nil
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	default:
		return false, fmt.Errorf("invalid --color %q", mode)
	}
}

// unwrapJoined splits an error created by errors.Join.
func unwrapJoined(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}
