package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FSNotifySource watches a single file with fsnotify, non-recursively.
type FSNotifySource struct {
	watcher *fsnotify.Watcher
	path    string

	events chan Event
	errors chan error

	closeOnce sync.Once
	closeCh   chan struct{}
	closedWg  sync.WaitGroup
}

// NewFSNotifySource starts watching path.
func NewFSNotifySource(path string) (*FSNotifySource, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve %s: %v", ErrWatch, path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWatch, err)
	}
	if err := fsw.Add(absPath); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("%w: watch %s: %v", ErrWatch, path, err)
	}

	s := &FSNotifySource{
		watcher: fsw,
		path:    absPath,
		events:  make(chan Event, 1),
		errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	s.closedWg.Add(1)
	go s.processLoop()
	return s, nil
}

// Path is the absolute path being watched.
func (s *FSNotifySource) Path() string { return s.path }

// Events returns the event channel.
func (s *FSNotifySource) Events() <-chan Event { return s.events }

// Errors returns the error channel.
func (s *FSNotifySource) Errors() <-chan error { return s.errors }

// Close stops the watcher and closes both channels.
func (s *FSNotifySource) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.closeCh)
		err = s.watcher.Close()
		s.closedWg.Wait()
	})
	return err
}

func (s *FSNotifySource) processLoop() {
	defer s.closedWg.Done()
	defer close(s.events)
	defer close(s.errors)

	for {
		select {
		case <-s.closeCh:
			return

		case fsEvent, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			kind := convertOp(fsEvent.Op)
			if kind == 0 {
				continue
			}
			ev := Event{Kind: kind, Path: fsEvent.Name, Time: time.Now()}
			select {
			case s.events <- ev:
			case <-s.closeCh:
				return
			}

		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			select {
			case s.errors <- fmt.Errorf("%w: %v", ErrWatch, err):
			case <-s.closeCh:
				return
			}
		}
	}
}

// convertOp picks the most significant kind; writes win over metadata changes.
func convertOp(op fsnotify.Op) Kind {
	switch {
	case op.Has(fsnotify.Write):
		return KindModify
	case op.Has(fsnotify.Create):
		return KindCreate
	case op.Has(fsnotify.Remove):
		return KindRemove
	case op.Has(fsnotify.Rename):
		return KindRename
	case op.Has(fsnotify.Chmod):
		return KindChmod
	}
	return 0
}
