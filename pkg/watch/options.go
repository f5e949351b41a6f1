package watch

import (
	"log/slog"
	"time"
)

// options holds the internal configuration for a Watcher.
type options struct {
	logger   *slog.Logger
	pattern  string
	debounce time.Duration
	buffer   int
}

// Option defines a functional option for configuring a Watcher.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		pattern:  "",
		debounce: 50 * time.Millisecond,
		buffer:   16,
	}
}

// WithLogger sets the logger. Without one the watcher stays silent.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithPattern restricts emitted events to field paths whose
// slash-joined form matches a doublestar glob (e.g. "user/**").
func WithPattern(pattern string) Option {
	return func(o *options) {
		o.pattern = pattern
	}
}

// WithDebounce sets the coalescing window for filesystem events.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		o.debounce = d
	}
}

// WithEventBuffer sets the capacity of the event channel.
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.buffer = size
	}
}
