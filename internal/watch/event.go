// Package watch turns file-system notifications about the configuration file into
// debounced rebuilds.
package watch

import (
	"errors"
	"time"
)

// Kind is the kind of change a notifier reported.
type Kind uint8

// Event kinds. Only KindModify triggers a rebuild.
const (
	KindCreate Kind = iota + 1
	KindModify
	KindRemove
	KindRename
	KindChmod
)

func (k Kind) String() string {
	switch k {
	case KindCreate:
		return "create"
	case KindModify:
		return "modify"
	case KindRemove:
		return "remove"
	case KindRename:
		return "rename"
	case KindChmod:
		return "chmod"
	}
	return "unknown"
}

// Event is a single change notification.
type Event struct {
	Kind Kind
	Path string
	Time time.Time
}

// Source delivers events for one watched path. Events is closed when the source stops.
type Source interface {
	Events() <-chan Event
	Errors() <-chan error
	Close() error
}

// ErrWatch wraps failures of the underlying notifier.
var ErrWatch = errors.New("watch error")
