package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/strata/pkg/codec"
	"github.com/aretw0/strata/pkg/model"
)

// Watcher observes one document file and emits an Event per changed
// field. It runs as a lifecycle worker: Start spawns the event loop,
// Stop cancels it and waits for shutdown.
type Watcher struct {
	*worker.BaseWorker

	path      string
	codec     codec.Codec
	pattern   string
	debounce  time.Duration
	logger    *slog.Logger
	events    chan Event
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	cancel    context.CancelFunc
	current   *model.ObjectValue
}

// New creates a Watcher for the given document file. The format is
// chosen by file extension. The file may not exist yet; it is treated
// as an empty document until it appears.
func New(path string, opts ...Option) (*Watcher, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	c, err := codec.ForExtension(filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	if o.pattern != "" && !doublestar.ValidatePattern(o.pattern) {
		return nil, fmt.Errorf("invalid pattern %q", o.pattern)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	return &Watcher{
		BaseWorker: worker.NewBaseWorker("document-watcher"),
		path:       abs,
		codec:      c,
		pattern:    o.pattern,
		debounce:   o.debounce,
		logger:     o.logger,
		events:     make(chan Event, o.buffer),
	}, nil
}

// Events returns the channel the watcher emits on. It is closed when
// the watcher shuts down.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Start loads the current document state and spawns the event loop.
func (w *Watcher) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.BaseWorker.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	current, err := w.load()
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the directory, not the file: editors and atomic saves
	// replace the inode, which silently detaches a file-level watch.
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}

	w.watcher = watcher
	w.debouncer = newDebouncer(w.debounce)
	w.current = current

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

// Stop requests shutdown and waits for the event loop to finish.
func (w *Watcher) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}
	return w.BaseWorker.Stop(ctx)
}

func (w *Watcher) run(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			panicErr := fmt.Errorf("watcher panic: %v", recovered)
			if w.logger != nil && w.logger.Enabled(ctx, slog.LevelDebug) {
				w.logger.Error("watcher panic", "error", panicErr, "stack", string(debug.Stack()))
			} else if w.logger != nil {
				w.logger.Error("watcher panic", "error", panicErr)
			}
			err = panicErr
		}
	}()
	defer close(w.events)
	defer w.watcher.Close()

	err = w.mainEventLoop(ctx)

	// Wait for in-flight debounce timers before the events channel is
	// closed above (deferred close runs after this).
	w.debouncer.stopAndWait(5 * time.Second)
	return err
}

func (w *Watcher) mainEventLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.processFilesystemEvent(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			if w.logger != nil {
				w.logger.Error("fsnotify error", "error", wErr)
			}
		}
	}
}

func (w *Watcher) processFilesystemEvent(ctx context.Context, event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	if w.logger != nil {
		w.logger.Debug("event received", "name", event.Name, "op", event.Op.String())
	}

	w.debouncer.add(w.path, func() {
		w.reload(ctx)
	})
}

// reload re-decodes the document, diffs it against the previous state
// and emits the changes.
func (w *Watcher) reload(ctx context.Context) {
	next, err := w.load()
	if err != nil {
		if w.logger != nil {
			w.logger.Error("reload failed", "path", w.path, "error", err)
		}
		return
	}

	changes := Diff(w.current, next)
	w.current = next

	now := time.Now().Unix()
	for _, c := range changes {
		if !w.matches(c.Path) {
			continue
		}
		w.sendEvent(ctx, Event{Change: c, Timestamp: now})
	}
}

func (w *Watcher) sendEvent(ctx context.Context, event Event) {
	defer func() {
		// The events channel closes during shutdown; a late timer send
		// must not crash the process.
		_ = recover()
	}()
	select {
	case w.events <- event:
	case <-ctx.Done():
	}
}

func (w *Watcher) matches(path model.FieldPath) bool {
	if w.pattern == "" {
		return true
	}
	ok, err := doublestar.Match(w.pattern, strings.Join(path, "/"))
	return err == nil && ok
}

// load decodes the watched file; a missing file is an empty document.
func (w *Watcher) load() (*model.ObjectValue, error) {
	data, err := os.ReadFile(w.path)
	if os.IsNotExist(err) {
		return model.NewObjectValue(), nil
	}
	if err != nil {
		return nil, err
	}
	return w.codec.Decode(data)
}
