// Package watch observes a document file and emits field-level change
// events: decode on change, diff the old and new value trees, report
// one event per changed field path.
package watch

import (
	"fmt"

	"github.com/aretw0/strata/pkg/model"
)

// EventType represents the kind of change to a field.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Change is one field-level difference between two document trees.
type Change struct {
	Type EventType
	Path model.FieldPath
}

// Event is a Change observed by a Watcher at a point in time.
type Event struct {
	Change
	Timestamp int64 // Unix timestamp
}

// String implements the lifecycle event contract and gives the event a
// readable log form.
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Path)
}
