package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/seyuna/seyuna"
	"github.com/seyuna/seyuna/internal/term"
	"github.com/spf13/cobra"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Seyuna UI",
	Long: `Compile seyuna.json into <outputDir>/seyuna-global.css.

With --watch the stylesheet is regenerated every time seyuna.json is saved.`,
	Example: `  seyuna ui --compile
  seyuna ui --compile --watch
  seyuna ui -c --reset --include "styles/src/**/*.css"`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadSettings(cmd)
	},
	RunE: runUI,
}

func init() {
	f := uiCmd.Flags()
	f.BoolP("compile", "c", false, "Compile Seyuna UI styles")
	f.BoolP("watch", "w", false, "Watch seyuna.json and recompile on change")
	f.Int("target-chrome", 80, "Oldest Chrome version the stylesheet must support (0 = evergreen)")
	f.StringSlice("include", nil, "Glob patterns for extra CSS files appended to the output")
	f.Bool("reset", false, "Prepend the built-in reset sheet")
	f.String("output-name", seyuna.DefaultOutputName, "Output file name inside ui.outputDir")
}

func runUI(cmd *cobra.Command, _ []string) error {
	compile, _ := cmd.Flags().GetBool("compile")
	watchMode, _ := cmd.Flags().GetBool("watch")
	if !compile && !watchMode {
		return cmd.Help()
	}

	opts := buildOptions(cmd.OutOrStdout())

	if !watchMode {
		_, err := seyuna.Compile(opts)
		return err
	}

	src, err := seyuna.NewFileSource(opts.ConfigPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reporter := newReporter(cmd.OutOrStdout())
	reporter.Info("Watching %s for changes (Ctrl+C to stop)", opts.ConfigPath)

	err = seyuna.Watch(ctx, seyuna.WatchOptions{
		Options: opts,
		OnError: warnOnError(reporter),
	}, src)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// warnOnError reports notifier failures, which already carry ErrWatch.
func warnOnError(r *term.Reporter) func(error) {
	return func(err error) { r.Warn(err) }
}
