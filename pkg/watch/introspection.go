package watch

import (
	"fmt"

	"github.com/aretw0/introspection"
)

// WatcherState exposes internal state for observability.
type WatcherState struct {
	Path            string `json:"path"`
	Pattern         string `json:"pattern,omitempty"`
	Status          string `json:"status"`
	EventBufferSize int    `json:"event_buffer_size"`
	DebounceMillis  int64  `json:"debounce_ms"`
}

// State implements introspection.Introspectable. It shadows the
// embedded worker State; use BaseWorker.State for the raw worker view.
func (w *Watcher) State() any {
	return WatcherState{
		Path:            w.path,
		Pattern:         w.pattern,
		Status:          fmt.Sprintf("%s", w.BaseWorker.State().Status),
		EventBufferSize: cap(w.events),
		DebounceMillis:  w.debounce.Milliseconds(),
	}
}

// ComponentType implements introspection.Component.
func (w *Watcher) ComponentType() string {
	return "document-watcher"
}

var _ introspection.Introspectable = (*Watcher)(nil)
var _ introspection.Component = (*Watcher)(nil)
