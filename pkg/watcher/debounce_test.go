package watcher

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_CoalescesRapidTriggers(t *testing.T) {
	db := NewDebouncer(50 * time.Millisecond)
	var calls atomic.Int32

	for i := 0; i < 10; i++ {
		db.Trigger(func() { calls.Add(1) })
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Fatalf("ten rapid triggers fired %d callbacks, want 1", got)
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	db := NewDebouncer(50 * time.Millisecond)
	var calls atomic.Int32

	db.Trigger(func() { calls.Add(1) })
	db.Cancel()

	time.Sleep(150 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Fatalf("cancelled trigger fired %d callbacks, want 0", got)
	}
}

func TestDebouncer_SeparateBurstsFireSeparately(t *testing.T) {
	db := NewDebouncer(30 * time.Millisecond)
	var calls atomic.Int32

	db.Trigger(func() { calls.Add(1) })
	time.Sleep(100 * time.Millisecond)
	db.Trigger(func() { calls.Add(1) })
	time.Sleep(100 * time.Millisecond)

	if got := calls.Load(); got != 2 {
		t.Fatalf("two separated triggers fired %d callbacks, want 2", got)
	}
}

func TestDebouncer_DefaultDuration(t *testing.T) {
	if d := NewDebouncer(0); d.Duration() != DefaultDebounceDuration {
		t.Fatalf("zero duration should fall back to default, got %v", d.Duration())
	}
	if d := NewDebouncer(-time.Second); d.Duration() != DefaultDebounceDuration {
		t.Fatalf("negative duration should fall back to default, got %v", d.Duration())
	}
	if d := NewDebouncer(time.Second); d.Duration() != time.Second {
		t.Fatalf("explicit duration not kept, got %v", d.Duration())
	}
}
