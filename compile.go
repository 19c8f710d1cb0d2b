package seyuna

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/seyuna/seyuna/internal/config"
	"github.com/seyuna/seyuna/internal/style"
)

// DefaultOutputName is the file written inside the configured output directory.
const DefaultOutputName = "seyuna-global.css"

// Config is a seyuna.json document.
type Config = config.Config

// Reporter receives progress messages from the pipeline.
type Reporter interface {
	Start(msg string)
	Progress(format string, args ...any)
	Done(msg string)
}

// Options controls a compile pass.
type Options struct {
	// ConfigPath is the seyuna.json to load (default "seyuna.json").
	// Relative output directories and include patterns resolve against its directory.
	ConfigPath string
	// TargetChrome is the oldest Chrome major the stylesheet must work in.
	// Zero selects the default baseline; negative means evergreen.
	TargetChrome int
	// Include lists extra stylesheet globs appended after the generated rules.
	Include []string
	// Reset prepends the built-in reset sheet.
	Reset bool
	// OutputName overrides DefaultOutputName.
	OutputName string
	// Reporter receives progress; nil discards it.
	Reporter Reporter
}

// Result describes a written stylesheet.
type Result struct {
	OutputPath string
	Rules      int
	Bytes      int
}

// LoadConfig reads path and merges it over the defaults.
func LoadConfig(path string) (Config, error) {
	return config.Load(path)
}

// OutputPath joins the output directory and file name, rejecting empty parts.
func OutputPath(outputDir, fileName string) (string, error) {
	if fileName == "" {
		return "", fmt.Errorf("%w: output file name is empty", ErrIO)
	}
	if outputDir == "" {
		return "", fmt.Errorf("%w: output directory is empty", ErrIO)
	}
	return filepath.Join(outputDir, fileName), nil
}

// Compile loads the configuration and writes the stylesheet.
func Compile(opts Options) (*Result, error) {
	cfg, err := LoadConfig(opts.configPath())
	if err != nil {
		return nil, err
	}
	return CompileConfig(cfg, opts)
}

// CompileConfig writes the stylesheet for an already merged configuration.
// Nothing is written unless every step succeeds.
func CompileConfig(cfg Config, opts Options) (*Result, error) {
	r := opts.reporter()
	r.Start("Compiling CSS")

	if cfg.UI == nil {
		return nil, fmt.Errorf("%w: cannot generate variables", ErrMissingUISection)
	}
	if cfg.UI.Breakpoints == nil {
		return nil, fmt.Errorf("%w: no breakpoints configured", ErrMissingBreakpoint)
	}

	root := filepath.Dir(opts.configPath())

	var fragments []string
	if opts.Reset {
		fragments = append(fragments, style.Reset())
	}
	fragments = append(fragments, style.Variables(*cfg.UI))

	upscale, err := style.Upscale(config.XL2, config.XL4, cfg.UI.Breakpoints.Viewport)
	if err != nil {
		return nil, fmt.Errorf("generate font scale: %w", err)
	}
	fragments = append(fragments, upscale)

	if len(opts.Include) > 0 {
		files, err := style.IncludeFiles(root, opts.Include)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIO, err)
		}
		for _, f := range files {
			r.Progress("Including %s", f)
		}
		extra, err := style.ReadFragments(files)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIO, err)
		}
		fragments = append(fragments, extra...)
	}

	sheet, err := style.Assemble(fragments, style.AssembleOptions{Targets: opts.targets()})
	if err != nil {
		return nil, err
	}
	r.Progress("Assembled %d rules from %d bytes", sheet.Rules, sheet.Bytes)

	outputDir := cfg.UI.OutputDir
	if outputDir != "" && !filepath.IsAbs(outputDir) {
		outputDir = filepath.Join(root, outputDir)
	}
	path, err := OutputPath(outputDir, opts.outputName())
	if err != nil {
		return nil, err
	}

	r.Progress("Saving %s", path)
	if err := writeFile(path, sheet.CSS); err != nil {
		return nil, err
	}
	r.Done("Successfully compiled")

	return &Result{OutputPath: path, Rules: sheet.Rules, Bytes: len(sheet.CSS)}, nil
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: create directory %s: %v", ErrIO, filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrIO, path, err)
	}
	return nil
}

func (o Options) configPath() string {
	if o.ConfigPath == "" {
		return config.FileName
	}
	return o.ConfigPath
}

func (o Options) outputName() string {
	if o.OutputName == "" {
		return DefaultOutputName
	}
	return o.OutputName
}

func (o Options) targets() style.Targets {
	switch {
	case o.TargetChrome < 0:
		return style.Targets{}
	case o.TargetChrome == 0:
		return style.DefaultTargets
	}
	return style.Targets{Chrome: o.TargetChrome}
}

func (o Options) reporter() Reporter {
	if o.Reporter == nil {
		return nopReporter{}
	}
	return o.Reporter
}

type nopReporter struct{}

func (nopReporter) Start(string)            {}
func (nopReporter) Progress(string, ...any) {}
func (nopReporter) Done(string)             {}

// IsConfigError reports whether err means the configuration itself needs fixing.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrConfigNotFound) ||
		errors.Is(err, ErrConfigParse) ||
		errors.Is(err, ErrMissingUISection) ||
		errors.Is(err, ErrMissingBreakpoint) ||
		errors.Is(err, ErrInvalidNumber) ||
		errors.Is(err, ErrInvalidBreakpoint)
}
