package seyuna

import (
	"context"

	"github.com/seyuna/seyuna/internal/watch"
)

// Source delivers file-change events to Watch.
type Source = watch.Source

// WatchEvent is a single file-change notification.
type WatchEvent = watch.Event

// NewFileSource watches a single configuration file.
func NewFileSource(path string) (Source, error) {
	src, err := watch.NewFSNotifySource(path)
	if err != nil {
		return nil, err
	}
	return src, nil
}

// WatchOptions tunes Watch beyond the compile options.
type WatchOptions struct {
	Options

	// OnError receives non-fatal notifier errors.
	OnError func(error)
	// OnRebuild is called after each successful pass.
	OnRebuild func(*Result)
}

// Watch compiles once, then recompiles each time src reports a modification of
// the configuration file. It returns when src closes (nil), ctx is cancelled or a
// pass fails. src is closed on return.
func Watch(ctx context.Context, opts WatchOptions, src Source) error {
	defer src.Close()

	rebuild := func(context.Context) error {
		res, err := Compile(opts.Options)
		if err != nil {
			return err
		}
		if opts.OnRebuild != nil {
			opts.OnRebuild(res)
		}
		return nil
	}

	if err := rebuild(ctx); err != nil {
		return err
	}

	loop := &watch.Loop{
		Path:    opts.configPath(),
		Rebuild: rebuild,
		OnError: opts.OnError,
	}
	return loop.Run(ctx, src)
}
