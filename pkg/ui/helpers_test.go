package ui

import (
	"strings"
	"testing"
	"time"
)

func TestFormatTimeRel(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name string
		t    time.Time
		want string
	}{
		{"zero", time.Time{}, "unknown"},
		{"future", now.Add(time.Hour), "now"},
		{"seconds", now.Add(-30 * time.Second), "now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-2 * time.Hour), "2h ago"},
		{"days", now.Add(-3 * 24 * time.Hour), "3d ago"},
		{"weeks", now.Add(-14 * 24 * time.Hour), "2w ago"},
		{"months", now.Add(-65 * 24 * time.Hour), "2mo ago"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatTimeRel(tc.t); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("hello", 10); got != "hello" {
		t.Fatalf("short strings pass through, got %q", got)
	}
	if got := truncate("hello world", 8); got != "hello w…" {
		t.Fatalf("got %q", got)
	}
	if got := truncate("hello", 0); got != "" {
		t.Fatalf("zero width should yield empty, got %q", got)
	}
	// Wide runes count as two cells.
	if got := truncate("日本語テスト", 5); got != "日本…" {
		t.Fatalf("wide rune truncation got %q", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Fatalf("got %q", got)
	}
	if got := padRight("abcdef", 3); got != "abcdef" {
		t.Fatalf("over-long input passes through, got %q", got)
	}
}

func TestFormatCount(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.0k"},
		{15847, "15.8k"},
	}
	for _, tc := range cases {
		if got := formatCount(tc.n); got != tc.want {
			t.Errorf("formatCount(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestProgressBar(t *testing.T) {
	if got := progressBar(0, 4); got != "░░░░" {
		t.Fatalf("empty bar got %q", got)
	}
	if got := progressBar(1, 4); got != "████" {
		t.Fatalf("full bar got %q", got)
	}
	if got := progressBar(0.5, 4); got != "██░░" {
		t.Fatalf("half bar got %q", got)
	}
	if got := progressBar(2.0, 3); got != "███" {
		t.Fatalf("over-full ratio should clamp, got %q", got)
	}
	if got := progressBar(0.5, 0); got != "" {
		t.Fatalf("zero width should yield empty, got %q", got)
	}
	if w := strings.Count(progressBar(0.3, 10), "█") + strings.Count(progressBar(0.3, 10), "░"); w != 10 {
		t.Fatalf("bar width = %d, want 10", w)
	}
}
