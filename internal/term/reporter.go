package term

import (
	"fmt"
	"io"
)

// Reporter writes pipeline progress as status lines.
type Reporter struct {
	w         io.Writer
	useColors bool
	verbose   bool
	quiet     bool
}

// ReporterOptions configures NewReporter.
type ReporterOptions struct {
	Verbose bool // also print intermediate progress
	Quiet   bool // print errors only
	Color   bool // force colors
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, opts ReporterOptions) *Reporter {
	return &Reporter{
		w:         w,
		useColors: ShouldUseColors(w, opts.Color),
		verbose:   opts.Verbose,
		quiet:     opts.Quiet,
	}
}

// Discard returns a reporter that prints nothing.
func Discard() *Reporter {
	return &Reporter{w: io.Discard, quiet: true}
}

// UseColors returns whether colors are enabled.
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// Start announces a step.
func (r *Reporter) Start(msg string) {
	if r.quiet {
		return
	}
	fmt.Fprintf(r.w, "%s %s...\n", RenderStyle(StyleGray, "•", r.useColors), msg)
}

// Progress reports an intermediate step; shown only in verbose mode.
func (r *Reporter) Progress(format string, args ...any) {
	if r.quiet || !r.verbose {
		return
	}
	fmt.Fprintf(r.w, "  %s\n", RenderStyle(StyleGray, fmt.Sprintf(format, args...), r.useColors))
}

// Done reports a finished step with a checkmark.
func (r *Reporter) Done(msg string) {
	if r.quiet {
		return
	}
	fmt.Fprintf(r.w, "%s %s\n", Primary("✔", r.useColors), Primary(msg, r.useColors))
}

// Info prints a plain line.
func (r *Reporter) Info(format string, args ...any) {
	if r.quiet {
		return
	}
	fmt.Fprintf(r.w, format+"\n", args...)
}

// Warn prints a non-fatal problem.
func (r *Reporter) Warn(err error) {
	if r.quiet {
		return
	}
	fmt.Fprintf(r.w, "%s %v\n", RenderStyle(StyleYellow, "Warning:", r.useColors), err)
}

// ErrorText formats an error the way the CLI prints fatal failures.
func ErrorText(err error, useColors bool) string {
	label := Secondary("Error:", useColors)
	if useColors {
		label = StyleBold.Render(label)
	}
	return fmt.Sprintf("%s %v", label, err)
}
