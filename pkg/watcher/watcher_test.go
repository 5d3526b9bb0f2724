package watcher

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func newPollingWatcher(t *testing.T, path string, opts ...WatcherOption) *Watcher {
	t.Helper()
	opts = append([]WatcherOption{
		WithForcePoll(true),
		WithPollInterval(20 * time.Millisecond),
		WithDebounceDuration(10 * time.Millisecond),
	}, opts...)
	w, err := NewWatcher(path, opts...)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	t.Cleanup(w.Stop)
	return w
}

func TestWatcher_PollingDetectsChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edugram.db")
	writeFile(t, path, "v1")

	var changes atomic.Int32
	w := newPollingWatcher(t, path, WithOnChange(func() { changes.Add(1) }))

	if err := w.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if !w.IsPolling() {
		t.Fatal("forced poll mode should report polling")
	}

	// Size change guarantees detection even on coarse mtime filesystems.
	writeFile(t, path, "v2 with more bytes")

	deadline := time.After(2 * time.Second)
	select {
	case <-w.Changed():
	case <-deadline:
		t.Fatal("timed out waiting for change notification")
	}
	if changes.Load() == 0 {
		t.Fatal("onChange callback should have fired")
	}
}

func TestWatcher_PollingReportsRemoval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edugram.db")
	writeFile(t, path, "v1")

	errCh := make(chan error, 1)
	w := newPollingWatcher(t, path, WithOnError(func(err error) {
		select {
		case errCh <- err:
		default:
		}
	}))

	if err := w.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}

	select {
	case err := <-errCh:
		if err != ErrFileRemoved {
			t.Fatalf("err = %v, want ErrFileRemoved", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for removal error")
	}
}

func TestWatcher_StartTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edugram.db")
	writeFile(t, path, "v1")

	w := newPollingWatcher(t, path)
	if err := w.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := w.Start(); err != ErrAlreadyStarted {
		t.Fatalf("second start err = %v, want ErrAlreadyStarted", err)
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edugram.db")
	writeFile(t, path, "v1")

	w := newPollingWatcher(t, path)
	if err := w.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	w.Stop()
	w.Stop()
	if w.IsStarted() {
		t.Fatal("watcher should report stopped")
	}
}

func TestWatcher_MissingFileAtStart(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "not-yet.db")

	w := newPollingWatcher(t, path)
	if err := w.Start(); err != nil {
		t.Fatalf("start on a missing file should succeed: %v", err)
	}

	// Creating the file later counts as a change.
	writeFile(t, path, "v1")
	select {
	case <-w.Changed():
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for creation to register")
	}
}

func TestWatcher_ForcePollEnv(t *testing.T) {
	t.Setenv("EDUGRAM_FORCE_POLL", "1")

	path := filepath.Join(t.TempDir(), "edugram.db")
	writeFile(t, path, "v1")

	w, err := NewWatcher(path, WithPollInterval(20*time.Millisecond))
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	t.Cleanup(w.Stop)

	if err := w.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if !w.IsPolling() {
		t.Fatal("EDUGRAM_FORCE_POLL=1 should force polling mode")
	}
}
