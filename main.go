// Package main provides the nanofetch command-line tool for displaying system
// information next to an ASCII logo of the detected operating system family.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"nanofetch/ascii"
	"nanofetch/display"
	"nanofetch/sysinfo"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

var errorColor = color.New(color.FgRed).SprintFunc()

// options holds the command-line flags.
type options struct {
	format    string
	compact   bool
	gap       int
	noColor   bool
	keepGoing bool
	debug     bool
}

func main() {
	cmd := newRootCmd(sysinfo.Local(), os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errorColor("Error:"), err)
		os.Exit(1)
	}
}

func newRootCmd(src sysinfo.Source, stdout, stderr io.Writer) *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:   "nanofetch",
		Short: "Show a summary of this machine next to an ASCII logo",
		Long: `nanofetch prints the user and host, OS name, kernel, shell, desktop
session, uptime, memory and root filesystem usage of the current machine.

Set NANOFETCH_DEBUG=1 for the same effect as --debug, and NO_COLOR to
disable colors.`,
		Example: `  nanofetch
  nanofetch --compact --gap 2
  nanofetch --format json`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), src, opts, stdout, stderr)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.format, "format", string(display.FormatText), "output format (text, json, yaml)")
	f.BoolVar(&opts.compact, "compact", false, "use the compact ASCII logo")
	f.IntVar(&opts.gap, "gap", display.DefaultGap, "number of spaces between logo and info")
	f.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	f.BoolVar(&opts.keepGoing, "keep-going", false, `show "Unknown" for facts that cannot be gathered instead of failing`)
	f.BoolVar(&opts.debug, "debug", false, "log each probe result to stderr")

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

func run(ctx context.Context, src sysinfo.Source, opts options, stdout, stderr io.Writer) error {
	format, err := display.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	debugEnv, _ := src.LookupEnv("NANOFETCH_DEBUG")
	log := newLogger(stderr, opts.debug || cast.ToBool(debugEnv))

	facts, err := sysinfo.Collect(ctx, src, sysinfo.CollectOptions{
		KeepGoing: opts.keepGoing,
		Logger:    log,
	})
	if err != nil && !opts.keepGoing {
		return fmt.Errorf("failed to gather system facts: %w", err)
	}

	if format != display.FormatText {
		return display.Serialize(stdout, facts, format)
	}

	noColorEnv, _ := src.LookupEnv("NO_COLOR")
	style := display.NewStyle(!opts.noColor && noColorEnv == "" && isTerminal(stdout))
	logo := ascii.GetLogo(facts.Family, opts.compact)

	return display.Render(stdout, logo, facts, display.Options{Gap: opts.gap, Style: style})
}

// newLogger returns a text logger on w at warn level, or debug level when
// debug is set.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
