package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/strata/pkg/model"
)

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := New("doc.txt")
	assert.Error(t, err)
}

func TestNewRejectsInvalidPattern(t *testing.T) {
	_, err := New("doc.yaml", WithPattern("a["))
	assert.Error(t, err)
}

func TestWatcherMatches(t *testing.T) {
	w := &Watcher{pattern: "user/**"}
	assert.True(t, w.matches(model.NewFieldPath("user", "name")))
	assert.False(t, w.matches(model.NewFieldPath("meta", "id")))

	unfiltered := &Watcher{}
	assert.True(t, unfiltered.matches(model.NewFieldPath("anything")))
}

func TestWatcherState(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "doc.yaml")

	w, err := New(file,
		WithPattern("user/**"),
		WithDebounce(75*time.Millisecond),
		WithEventBuffer(4),
	)
	require.NoError(t, err)

	state, ok := w.State().(WatcherState)
	require.True(t, ok, "State() must return a WatcherState")

	abs, err := filepath.Abs(file)
	require.NoError(t, err)
	assert.Equal(t, abs, state.Path)
	assert.Equal(t, "user/**", state.Pattern)
	assert.Equal(t, 4, state.EventBufferSize)
	assert.Equal(t, int64(75), state.DebounceMillis)
	assert.NotEmpty(t, state.Status)

	assert.Equal(t, "document-watcher", w.ComponentType())
}

// collectEvents drains the channel until n events arrived or the
// timeout elapsed.
func collectEvents(t *testing.T, events <-chan Event, n int, timeout time.Duration) []Event {
	t.Helper()
	deadline := time.After(timeout)
	var out []Event
	for len(out) < n {
		select {
		case e, ok := <-events:
			if !ok {
				t.Fatalf("events channel closed after %d of %d events", len(out), n)
			}
			out = append(out, e)
		case <-deadline:
			t.Fatalf("timed out after %d of %d events", len(out), n)
		}
	}
	return out
}

func TestWatcherEmitsFieldLevelEvents(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "doc.yaml")
	require.NoError(t, os.WriteFile(file, []byte("a: 1\n"), 0644))

	w, err := New(file, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop(context.Background())

	// Wait a bit to ensure the watcher is ready (naive)
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(file, []byte("a: 2\nb: x\n"), 0644))

	got := collectEvents(t, w.Events(), 2, 5*time.Second)

	byPath := map[string]EventType{}
	for _, e := range got {
		byPath[e.Path.String()] = e.Type
	}
	assert.Equal(t, EventModify, byPath["a"])
	assert.Equal(t, EventCreate, byPath["b"])
}

func TestWatcherPatternFiltersEvents(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "doc.yaml")
	require.NoError(t, os.WriteFile(file, []byte("user:\n  name: ada\nmeta:\n  id: 1\n"), 0644))

	w, err := New(file, WithDebounce(20*time.Millisecond), WithPattern("user/**"))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, w.Start(ctx))
	defer w.Stop(context.Background())

	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(file, []byte("user:\n  name: grace\nmeta:\n  id: 2\n"), 0644))

	got := collectEvents(t, w.Events(), 1, 5*time.Second)
	assert.True(t, got[0].Path.Equal(model.NewFieldPath("user", "name")), "got %s", got[0])

	// The filtered-out meta.id change must not arrive.
	select {
	case e := <-w.Events():
		t.Fatalf("unexpected event %s", e)
	case <-time.After(200 * time.Millisecond):
	}
}
