// Package seyuna turns a seyuna.json design-token configuration into a single
// minified stylesheet.
//
// The configuration is merged over the built-in defaults, rendered to custom
// properties and responsive font-size rules, then assembled and written to
// <outputDir>/seyuna-global.css:
//
//	result, err := seyuna.Compile(seyuna.Options{
//		ConfigPath: "seyuna.json",
//	})
//
// Watch runs the same pipeline again every time the configuration file changes:
//
//	src, err := seyuna.NewFileSource("seyuna.json")
//	err = seyuna.Watch(ctx, seyuna.WatchOptions{Options: opts}, src)
//
// # CLI Tool
//
// seyuna also provides a CLI tool. Install with:
//
//	go install github.com/seyuna/seyuna/cmd/seyuna@latest
package seyuna

// Public API:
// - LoadConfig(path string) (Config, error)
// - Compile(opts Options) (*Result, error)
// - CompileConfig(cfg Config, opts Options) (*Result, error)
// - OutputPath(outputDir, fileName string) (string, error)
// - NewFileSource(path string) (Source, error)
// - Watch(ctx context.Context, opts WatchOptions, src Source) error
