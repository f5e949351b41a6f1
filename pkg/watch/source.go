package watch

import (
	"context"

	"github.com/aretw0/lifecycle"
)

type eventSource struct {
	events <-chan Event
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits field change events.
// It bridges the typed event channel to the generic lifecycle Event
// interface so a watcher can participate in a lifecycle-managed app.
func NewSource(events <-chan Event) lifecycle.Source {
	return &eventSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *eventSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *eventSource) Start(ctx context.Context) error {
	// Uses lifecycle.Go so the bridge goroutine itself is tracked.
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				// Event implements lifecycle.Event (has String())
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
