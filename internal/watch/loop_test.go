package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	events chan Event
	errors chan error
}

func newFakeSource(events ...Event) *fakeSource {
	s := &fakeSource{
		events: make(chan Event, len(events)),
		errors: make(chan error, 4),
	}
	for _, ev := range events {
		s.events <- ev
	}
	close(s.events)
	return s
}

func (s *fakeSource) Events() <-chan Event { return s.events }
func (s *fakeSource) Errors() <-chan error { return s.errors }
func (s *fakeSource) Close() error         { return nil }

var t0 = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func newLoop(path string, rebuilds *int) *Loop {
	return &Loop{
		Path:   path,
		Settle: time.Millisecond,
		Now:    func() time.Time { return t0 },
		Rebuild: func(context.Context) error {
			*rebuilds++
			return nil
		},
	}
}

func TestLoopDebounce(t *testing.T) {
	path := "seyuna.json"
	tests := []struct {
		name     string
		events   []Event
		rebuilds int
	}{
		{
			name: "two modifies 50ms apart rebuild once",
			events: []Event{
				{Kind: KindModify, Path: path, Time: t0.Add(time.Second)},
				{Kind: KindModify, Path: path, Time: t0.Add(time.Second + 50*time.Millisecond)},
			},
			rebuilds: 1,
		},
		{
			name: "two modifies 200ms apart rebuild twice",
			events: []Event{
				{Kind: KindModify, Path: path, Time: t0.Add(time.Second)},
				{Kind: KindModify, Path: path, Time: t0.Add(time.Second + 200*time.Millisecond)},
			},
			rebuilds: 2,
		},
		{
			name: "burst collapses to the first event",
			events: []Event{
				{Kind: KindModify, Path: path, Time: t0.Add(time.Second)},
				{Kind: KindModify, Path: path, Time: t0.Add(time.Second + 30*time.Millisecond)},
				{Kind: KindModify, Path: path, Time: t0.Add(time.Second + 60*time.Millisecond)},
				{Kind: KindModify, Path: path, Time: t0.Add(time.Second + 90*time.Millisecond)},
				{Kind: KindModify, Path: path, Time: t0.Add(time.Second + 300*time.Millisecond)},
			},
			rebuilds: 2,
		},
		{
			name: "event right after start is dropped",
			events: []Event{
				{Kind: KindModify, Path: path, Time: t0.Add(20 * time.Millisecond)},
			},
			rebuilds: 0,
		},
		{
			name: "other kinds are ignored",
			events: []Event{
				{Kind: KindCreate, Path: path, Time: t0.Add(time.Second)},
				{Kind: KindChmod, Path: path, Time: t0.Add(2 * time.Second)},
				{Kind: KindRemove, Path: path, Time: t0.Add(3 * time.Second)},
			},
			rebuilds: 0,
		},
		{
			name: "other paths are ignored",
			events: []Event{
				{Kind: KindModify, Path: "other.json", Time: t0.Add(time.Second)},
			},
			rebuilds: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rebuilds := 0
			loop := newLoop(path, &rebuilds)

			err := loop.Run(context.Background(), newFakeSource(tt.events...))
			require.NoError(t, err)
			assert.Equal(t, tt.rebuilds, rebuilds)
		})
	}
}

func TestLoopRebuildErrorStops(t *testing.T) {
	boom := errors.New("bad config")
	calls := 0
	loop := &Loop{
		Path:   "seyuna.json",
		Settle: time.Millisecond,
		Now:    func() time.Time { return t0 },
		Rebuild: func(context.Context) error {
			calls++
			return boom
		},
	}

	err := loop.Run(context.Background(), newFakeSource(
		Event{Kind: KindModify, Path: "seyuna.json", Time: t0.Add(time.Second)},
		Event{Kind: KindModify, Path: "seyuna.json", Time: t0.Add(2 * time.Second)},
	))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestLoopFailedRebuildStillUpdatesTimestamp(t *testing.T) {
	loop := &Loop{
		Path:    "seyuna.json",
		Now:     func() time.Time { return t0 },
		Rebuild: func(context.Context) error { return errors.New("fail") },
	}
	accepted := t0.Add(time.Second)

	_ = loop.Run(context.Background(), newFakeSource(Event{Kind: KindModify, Path: "seyuna.json", Time: accepted}))
	assert.Equal(t, accepted, loop.lastAccepted)
}

func TestLoopReportsNotifierErrors(t *testing.T) {
	src := &fakeSource{events: make(chan Event), errors: make(chan error, 1)}
	src.errors <- errors.New("inotify overflow")

	var reported []error
	ctx, cancel := context.WithCancel(context.Background())
	loop := &Loop{
		Path:    "seyuna.json",
		Rebuild: func(context.Context) error { return nil },
		OnError: func(err error) {
			reported = append(reported, err)
			cancel()
		},
	}

	err := loop.Run(ctx, src)
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, reported, 1)
	assert.EqualError(t, reported[0], "inotify overflow")
}

func TestLoopStateTransitions(t *testing.T) {
	var states []State
	rebuilds := 0
	loop := newLoop("seyuna.json", &rebuilds)
	loop.OnState = func(s State) { states = append(states, s) }

	require.NoError(t, loop.Run(context.Background(), newFakeSource(
		Event{Kind: KindModify, Path: "seyuna.json", Time: t0.Add(time.Second)},
	)))
	assert.Equal(t, []State{StateIdle, StateDebouncing, StateReloading, StateIdle}, states)
}

func TestFSNotifySourceReportsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seyuna.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

	src, err := NewFSNotifySource(path)
	require.NoError(t, err)
	defer src.Close()

	require.NoError(t, os.WriteFile(path, []byte(`{"license":"MIT"}`), 0644))

	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev := <-src.Events():
			if ev.Kind != KindModify {
				continue
			}
			assert.Equal(t, src.Path(), ev.Path)
			assert.False(t, ev.Time.IsZero())
			return
		case <-timeout:
			t.Fatal("no modify event received")
		}
	}
}

func TestFSNotifySourceMissingFile(t *testing.T) {
	_, err := NewFSNotifySource(filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, ErrWatch)
}
