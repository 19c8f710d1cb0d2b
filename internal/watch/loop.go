package watch

import (
	"context"
	"path/filepath"
	"time"
)

// Default timings.
const (
	DefaultQuiescence = 100 * time.Millisecond
	DefaultSettle     = 500 * time.Millisecond
)

// State is where the loop is in its Idle → Debouncing → Reloading cycle.
type State uint8

// Loop states.
const (
	StateIdle State = iota
	StateDebouncing
	StateReloading
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDebouncing:
		return "debouncing"
	case StateReloading:
		return "reloading"
	}
	return "unknown"
}

// Loop rebuilds whenever the watched file is modified, one event at a time.
type Loop struct {
	// Path is the configuration file; modify events for other paths are ignored.
	Path string
	// Rebuild reloads the configuration and regenerates the stylesheet.
	// An error stops the loop.
	Rebuild func(ctx context.Context) error

	// Quiescence drops events closer than this to the last accepted one.
	Quiescence time.Duration
	// Settle is waited after an accepted event before rebuilding.
	Settle time.Duration

	// OnError receives notifier errors; the loop keeps running.
	OnError func(error)
	// OnState observes state transitions.
	OnState func(State)
	// Now defaults to time.Now; events without a timestamp are stamped with it.
	Now func() time.Time

	lastAccepted time.Time
}

// Run consumes src until its event channel closes (nil), ctx is cancelled (ctx.Err())
// or a rebuild fails (that error).
func (l *Loop) Run(ctx context.Context, src Source) error {
	now := l.Now
	if now == nil {
		now = time.Now
	}
	quiescence := l.Quiescence
	if quiescence <= 0 {
		quiescence = DefaultQuiescence
	}
	settle := l.Settle
	if settle < 0 {
		settle = 0
	}
	target := cleanPath(l.Path)

	l.lastAccepted = now()
	l.setState(StateIdle)

	errs := src.Errors()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			if l.OnError != nil {
				l.OnError(err)
			}

		case ev, ok := <-src.Events():
			if !ok {
				return nil
			}
			if ev.Kind != KindModify || cleanPath(ev.Path) != target {
				continue
			}
			at := ev.Time
			if at.IsZero() {
				at = now()
			}
			if at.Sub(l.lastAccepted) < quiescence {
				continue
			}
			l.lastAccepted = at

			l.setState(StateDebouncing)
			if err := sleep(ctx, settle); err != nil {
				return err
			}

			l.setState(StateReloading)
			err := l.Rebuild(ctx)
			l.setState(StateIdle)
			if err != nil {
				return err
			}
		}
	}
}

func (l *Loop) setState(s State) {
	if l.OnState != nil {
		l.OnState(s)
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d == 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func cleanPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}
