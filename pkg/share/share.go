// Package share implements the reel share action as a fallback chain:
// a native share hook when one is wired, the system clipboard
// otherwise, and a manual-copy notice as the tier of last resort. The
// chain as a whole cannot fail; a tier that errors simply yields to the
// next one.
package share

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/vanderheijden86/edugram/pkg/debug"
)

// Payload is the content being shared.
type Payload struct {
	Title string
	Text  string
	URL   string
}

// String renders the payload as the single string handed to the
// clipboard and manual tiers.
func (p Payload) String() string {
	return fmt.Sprintf("%s\n%s\n%s", p.Title, p.Text, p.URL)
}

// Method identifies which tier handled a share.
type Method int

const (
	// MethodNative means the native share hook accepted the payload.
	MethodNative Method = iota
	// MethodClipboard means the payload was copied to the clipboard.
	MethodClipboard
	// MethodManual means both tiers failed; the caller must display
	// the payload for manual copying.
	MethodManual
)

// String returns a human-readable tier name.
func (m Method) String() string {
	switch m {
	case MethodNative:
		return "native"
	case MethodClipboard:
		return "clipboard"
	default:
		return "manual"
	}
}

// Outcome reports how a share was handled.
type Outcome struct {
	Method Method
	// Text is the payload text, for the manual tier's notice.
	Text string
}

// NativeSharer is the OS share integration. It is nil on headless
// boxes and in tests.
type NativeSharer interface {
	Share(p Payload) error
}

// NativeShareFunc adapts a function to NativeSharer.
type NativeShareFunc func(p Payload) error

// Share implements NativeSharer.
func (f NativeShareFunc) Share(p Payload) error { return f(p) }

// ClipboardWriter writes a string to the system clipboard. The default
// uses atotto/clipboard; tests substitute their own.
type ClipboardWriter func(text string) error

// Sharer runs the share fallback chain.
type Sharer struct {
	native    NativeSharer
	clipboard ClipboardWriter
}

// Option configures a Sharer.
type Option func(*Sharer)

// WithNative wires a native share integration as the first tier.
func WithNative(n NativeSharer) Option {
	return func(s *Sharer) { s.native = n }
}

// WithClipboard overrides the clipboard writer.
func WithClipboard(w ClipboardWriter) Option {
	return func(s *Sharer) { s.clipboard = w }
}

// NewSharer creates a sharer with the system clipboard as the second
// tier and no native tier unless one is wired in.
func NewSharer(opts ...Option) *Sharer {
	s := &Sharer{clipboard: clipboard.WriteAll}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Share runs the payload through the chain and reports which tier
// handled it. Tier failures are logged and absorbed; the returned
// error is always nil today but kept in the signature so callers treat
// sharing as a fallible action.
func (s *Sharer) Share(p Payload) (Outcome, error) {
	if s.native != nil {
		if err := s.native.Share(p); err == nil {
			return Outcome{Method: MethodNative, Text: p.String()}, nil
		} else {
			debug.Log("share: native tier failed: %v", err)
		}
	}

	if s.clipboard != nil {
		if err := s.clipboard(p.String()); err == nil {
			return Outcome{Method: MethodClipboard, Text: p.String()}, nil
		} else {
			debug.Log("share: clipboard tier failed: %v", err)
		}
	}

	return Outcome{Method: MethodManual, Text: p.String()}, nil
}
