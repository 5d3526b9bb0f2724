// Package feed implements the reel feed: a linear cursor over the
// session's reels plus the per-reel playback, mute, like and bookmark
// flags. Cursor movement is modeled as an explicit two-state machine
// (idle / transitioning) instead of a fixed cooldown timer: a move is
// accepted only while idle, and the navigator stays transitioning until
// the playback subsystem reports completion.
package feed

import (
	"time"

	"github.com/vanderheijden86/edugram/pkg/debug"
	"github.com/vanderheijden86/edugram/pkg/model"
)

// Input thresholds, matching the app's gesture handling: wheel deltas
// below WheelThreshold and swipes shorter than SwipeThreshold are
// ignored as noise.
const (
	WheelThreshold = 30
	SwipeThreshold = 50
)

// DefaultTransitionTimeout bounds how long the navigator may stay in
// the transitioning state without a completion event. It is a watchdog
// against a lost completion, not a pacing mechanism.
const DefaultTransitionTimeout = 500 * time.Millisecond

// State is the navigator's cursor state.
type State int

const (
	// StateIdle accepts advance/retreat input.
	StateIdle State = iota
	// StateTransitioning rejects cursor input until the in-flight
	// transition completes.
	StateTransitioning
)

// Navigator owns the feed cursor and all per-reel flags. It is not
// safe for concurrent use; like the rest of the UI state it lives on
// the event loop.
type Navigator struct {
	reels   []model.Reel
	index   int
	state   State
	players PlayerSource

	muted   map[string]bool
	playing map[string]bool

	onView func(reelID string)
}

// NavigatorOption configures a Navigator.
type NavigatorOption func(*Navigator)

// WithOnView sets the callback invoked exactly once per activation of
// a reel (the "viewed" signal).
func WithOnView(fn func(reelID string)) NavigatorOption {
	return func(n *Navigator) { n.onView = fn }
}

// NewNavigator creates a feed navigator over the given reels. The
// first reel, if any, is activated immediately.
func NewNavigator(reels []model.Reel, players PlayerSource, opts ...NavigatorOption) *Navigator {
	n := &Navigator{
		reels:   reels,
		players: players,
		muted:   make(map[string]bool),
		playing: make(map[string]bool),
		onView:  func(string) {},
	}
	for _, opt := range opts {
		opt(n)
	}
	if len(n.reels) > 0 {
		n.activate(n.reels[0].ID)
	}
	return n
}

// Len returns the number of loaded reels.
func (n *Navigator) Len() int { return len(n.reels) }

// Index returns the cursor position.
func (n *Navigator) Index() int { return n.index }

// State returns the current cursor state.
func (n *Navigator) State() State { return n.state }

// Transitioning reports whether a cursor move is in flight.
func (n *Navigator) Transitioning() bool { return n.state == StateTransitioning }

// Current returns the active reel, or nil when the feed is empty.
func (n *Navigator) Current() *model.Reel {
	if len(n.reels) == 0 {
		return nil
	}
	return &n.reels[n.index]
}

// Reels exposes the underlying slice for rendering.
func (n *Navigator) Reels() []model.Reel { return n.reels }

// Advance moves the cursor forward one reel. It reports whether a
// transition started: false at the last index, while transitioning, or
// on an empty feed.
func (n *Navigator) Advance() bool { return n.move(1) }

// Retreat moves the cursor back one reel under the same rules.
func (n *Navigator) Retreat() bool { return n.move(-1) }

// HandleWheel maps a scroll-wheel delta to a cursor move. Positive
// deltas advance, negative retreat; magnitudes below WheelThreshold are
// ignored.
func (n *Navigator) HandleWheel(delta float64) bool {
	switch {
	case delta > WheelThreshold:
		return n.Advance()
	case delta < -WheelThreshold:
		return n.Retreat()
	}
	return false
}

// HandleSwipe maps a vertical swipe (start and end positions) to a
// cursor move. Swiping up advances, down retreats; swipes shorter than
// SwipeThreshold are ignored.
func (n *Navigator) HandleSwipe(startY, endY float64) bool {
	diff := startY - endY
	if diff > SwipeThreshold {
		return n.Advance()
	}
	if diff < -SwipeThreshold {
		return n.Retreat()
	}
	return false
}

// CompleteTransition returns the navigator to idle. The playback or
// animation subsystem calls this when the transition has visually
// settled; calling it while idle is a no-op.
func (n *Navigator) CompleteTransition() {
	n.state = StateIdle
}

func (n *Navigator) move(delta int) bool {
	if n.state == StateTransitioning {
		return false
	}
	next := n.index + delta
	if next < 0 || next >= len(n.reels) {
		return false
	}

	prev := n.reels[n.index]
	n.deactivate(prev.ID)

	n.index = next
	n.state = StateTransitioning
	n.activate(n.reels[n.index].ID)
	return true
}

// activate rewinds and starts the reel's player, falling back to a
// muted retry when unmuted autoplay is rejected, and emits the viewed
// signal exactly once for this activation.
func (n *Navigator) activate(id string) {
	p := n.players.PlayerFor(id)
	if p != nil {
		p.Rewind()
		p.SetMuted(n.muted[id])
		if err := p.Play(); err != nil {
			debug.Log("feed: autoplay failed for %s: %v", id, err)
			n.muted[id] = true
			p.SetMuted(true)
			if err := p.Play(); err != nil {
				debug.Log("feed: muted autoplay also failed for %s: %v", id, err)
			}
		}
		n.playing[id] = true
	}
	n.onView(id)
}

func (n *Navigator) deactivate(id string) {
	if p := n.players.PlayerFor(id); p != nil {
		if err := p.Pause(); err != nil {
			debug.Log("feed: pause failed for %s: %v", id, err)
		}
	}
	n.playing[id] = false
}

// ToggleLike flips the liked flag of the reel with the given id and
// moves its like count by exactly one in the matching direction.
func (n *Navigator) ToggleLike(id string) {
	for i := range n.reels {
		if n.reels[i].ID != id {
			continue
		}
		if n.reels[i].Liked {
			n.reels[i].Liked = false
			n.reels[i].Likes--
		} else {
			n.reels[i].Liked = true
			n.reels[i].Likes++
		}
		return
	}
}

// ToggleBookmark flips the bookmarked flag only.
func (n *Navigator) ToggleBookmark(id string) {
	for i := range n.reels {
		if n.reels[i].ID == id {
			n.reels[i].Bookmarked = !n.reels[i].Bookmarked
			return
		}
	}
}

// ToggleMute flips the per-reel mute flag and mirrors it onto the
// player.
func (n *Navigator) ToggleMute(id string) {
	n.muted[id] = !n.muted[id]
	if p := n.players.PlayerFor(id); p != nil {
		p.SetMuted(n.muted[id])
	}
}

// TogglePlayback flips the playback flag and performs the matching
// media action. Failures are logged, never surfaced.
func (n *Navigator) TogglePlayback(id string) {
	p := n.players.PlayerFor(id)
	if n.playing[id] {
		if p != nil {
			if err := p.Pause(); err != nil {
				debug.Log("feed: pause failed for %s: %v", id, err)
			}
		}
		n.playing[id] = false
		return
	}
	if p != nil {
		if err := p.Play(); err != nil {
			debug.Log("feed: play failed for %s: %v", id, err)
		}
	}
	n.playing[id] = true
}

// Muted reports the per-reel mute flag.
func (n *Navigator) Muted(id string) bool { return n.muted[id] }

// Playing reports the per-reel playback flag.
func (n *Navigator) Playing(id string) bool { return n.playing[id] }

// Append adds extra reels to the end of the feed (the "load more"
// action). The cursor and state are unaffected.
func (n *Navigator) Append(more []model.Reel) {
	n.reels = append(n.reels, more...)
}

// SetReels replaces the feed contents and rewinds the cursor. Used when
// the profile changes and content is regenerated.
func (n *Navigator) SetReels(reels []model.Reel) {
	n.reels = reels
	n.index = 0
	n.state = StateIdle
	n.muted = make(map[string]bool)
	n.playing = make(map[string]bool)
	if len(n.reels) > 0 {
		n.activate(n.reels[0].ID)
	}
}
