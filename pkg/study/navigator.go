// Package study implements the flashcard study session: a linear
// cursor over the session's cards, per-card flip state, and attempt
// bookkeeping. Grading is only meaningful while a card shows its
// answer face, and always moves on to the next card.
package study

import (
	"errors"
	"time"

	"github.com/vanderheijden86/edugram/pkg/model"
)

// ErrNotFlipped is returned by Grade when the current card still shows
// its question face.
var ErrNotFlipped = errors.New("study: current card is not flipped to its answer")

// ErrNoCard is returned by Grade on an empty session.
var ErrNoCard = errors.New("study: no current card")

// GradeSink receives the result of every graded card. The dashboard's
// score accumulator hangs off this.
type GradeSink func(cardID string, correct bool)

// Navigator owns the study cursor, flip set and attempt counters. Not
// safe for concurrent use.
type Navigator struct {
	cards   []model.Flashcard
	index   int
	flipped map[string]bool
	now     func() time.Time
	onGrade GradeSink
}

// NavigatorOption configures a Navigator.
type NavigatorOption func(*Navigator)

// WithClock sets the clock used to stamp attempts.
func WithClock(now func() time.Time) NavigatorOption {
	return func(n *Navigator) { n.now = now }
}

// WithGradeSink sets the callback notified after every grade.
func WithGradeSink(sink GradeSink) NavigatorOption {
	return func(n *Navigator) { n.onGrade = sink }
}

// NewNavigator creates a study navigator over the given cards.
func NewNavigator(cards []model.Flashcard, opts ...NavigatorOption) *Navigator {
	n := &Navigator{
		cards:   cards,
		flipped: make(map[string]bool),
		now:     time.Now,
		onGrade: func(string, bool) {},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Len returns the number of cards in the session.
func (n *Navigator) Len() int { return len(n.cards) }

// Index returns the cursor position.
func (n *Navigator) Index() int { return n.index }

// Cards exposes the underlying slice for rendering.
func (n *Navigator) Cards() []model.Flashcard { return n.cards }

// Current returns the active card, or nil on an empty session.
func (n *Navigator) Current() *model.Flashcard {
	if len(n.cards) == 0 {
		return nil
	}
	return &n.cards[n.index]
}

// Advance moves to the next card; a no-op at the last index.
func (n *Navigator) Advance() bool {
	if n.index >= len(n.cards)-1 {
		return false
	}
	n.index++
	return true
}

// Retreat moves to the previous card; a no-op at index 0.
func (n *Navigator) Retreat() bool {
	if n.index <= 0 {
		return false
	}
	n.index--
	return true
}

// Flip toggles the current card between its question and answer face.
func (n *Navigator) Flip() {
	c := n.Current()
	if c == nil {
		return
	}
	n.flipped[c.ID] = !n.flipped[c.ID]
}

// Flipped reports whether the card with the given id shows its answer.
func (n *Navigator) Flipped(id string) bool { return n.flipped[id] }

// CurrentFlipped reports whether the active card shows its answer.
func (n *Navigator) CurrentFlipped() bool {
	c := n.Current()
	return c != nil && n.flipped[c.ID]
}

// Grade records an attempt on the current card. It is only valid while
// the card is flipped to its answer face: the attempt counter always
// increments, the correct counter only on a correct answer, the
// attempt time is stamped, the sink is notified, and the cursor
// advances implicitly.
func (n *Navigator) Grade(correct bool) error {
	c := n.Current()
	if c == nil {
		return ErrNoCard
	}
	if !n.flipped[c.ID] {
		return ErrNotFlipped
	}

	c.Attempts++
	if correct {
		c.CorrectAttempts++
	}
	c.LastAttempted = n.now()
	n.onGrade(c.ID, correct)
	n.Advance()
	return nil
}

// ToggleBookmark flips the bookmarked flag of the card with the given
// id.
func (n *Navigator) ToggleBookmark(id string) {
	for i := range n.cards {
		if n.cards[i].ID == id {
			n.cards[i].Bookmarked = !n.cards[i].Bookmarked
			return
		}
	}
}

// Reset clears all flip state and rewinds the cursor. When fresh is
// non-nil it also swaps in a new batch from the generator.
func (n *Navigator) Reset(fresh []model.Flashcard) {
	if fresh != nil {
		n.cards = fresh
	}
	n.flipped = make(map[string]bool)
	n.index = 0
}
