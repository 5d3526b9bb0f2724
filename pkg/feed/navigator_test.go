package feed

import (
	"errors"
	"testing"

	"pgregory.net/rapid"

	"github.com/vanderheijden86/edugram/pkg/model"
)

// fakePool hands out recording players so tests can assert playback
// side effects.
type fakePool struct {
	players map[string]*fakePlayer
}

type fakePlayer struct {
	rewinds  int
	plays    int
	pauses   int
	muted    bool
	playErr  error
	failOnce bool
}

func (p *fakePlayer) Rewind() { p.rewinds++ }

func (p *fakePlayer) Play() error {
	p.plays++
	if p.playErr != nil {
		err := p.playErr
		if p.failOnce {
			p.playErr = nil
		}
		return err
	}
	return nil
}

func (p *fakePlayer) Pause() error { p.pauses++; return nil }

func (p *fakePlayer) SetMuted(m bool) { p.muted = m }

func newFakePool() *fakePool {
	return &fakePool{players: make(map[string]*fakePlayer)}
}

func (f *fakePool) PlayerFor(id string) Player {
	p, ok := f.players[id]
	if !ok {
		p = &fakePlayer{}
		f.players[id] = p
	}
	return p
}

func testReels(n int) []model.Reel {
	reels := make([]model.Reel, n)
	for i := range reels {
		reels[i] = model.Reel{ID: string(rune('a' + i)), Title: "reel"}
	}
	return reels
}

func TestNavigator_AdvanceRequiresCompletion(t *testing.T) {
	n := NewNavigator(testReels(3), newFakePool())

	if !n.Advance() {
		t.Fatal("first advance should start a transition")
	}
	if n.Index() != 1 {
		t.Fatalf("index = %d, want 1", n.Index())
	}
	if !n.Transitioning() {
		t.Fatal("navigator should be transitioning after a move")
	}

	// Input is rejected until completion.
	if n.Advance() {
		t.Fatal("advance should be rejected while transitioning")
	}
	if n.Retreat() {
		t.Fatal("retreat should be rejected while transitioning")
	}
	if n.Index() != 1 {
		t.Fatalf("rejected moves must not move the cursor, index = %d", n.Index())
	}

	n.CompleteTransition()
	if n.Transitioning() {
		t.Fatal("CompleteTransition should return to idle")
	}
	if !n.Advance() {
		t.Fatal("advance should be accepted after completion")
	}
}

func TestNavigator_BoundaryNoOps(t *testing.T) {
	n := NewNavigator(testReels(2), newFakePool())

	if n.Retreat() {
		t.Fatal("retreat at index 0 should be a no-op")
	}
	if n.State() != StateIdle {
		t.Fatal("rejected move must not change state")
	}

	n.Advance()
	n.CompleteTransition()
	if n.Advance() {
		t.Fatal("advance at the last index should be a no-op")
	}

	empty := NewNavigator(nil, newFakePool())
	if empty.Advance() || empty.Retreat() {
		t.Fatal("moves on an empty feed should be no-ops")
	}
	if empty.Current() != nil {
		t.Fatal("Current on an empty feed should be nil")
	}
}

func TestNavigator_AdvanceRetreatInverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		size := rapid.IntRange(2, 10).Draw(t, "size")
		n := NewNavigator(testReels(size), newFakePool())

		steps := rapid.IntRange(1, size-1).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			if !n.Advance() {
				t.Fatalf("advance %d rejected", i)
			}
			n.CompleteTransition()
		}
		for i := 0; i < steps; i++ {
			if !n.Retreat() {
				t.Fatalf("retreat %d rejected", i)
			}
			n.CompleteTransition()
		}
		if n.Index() != 0 {
			t.Fatalf("advance^n then retreat^n should return to 0, got %d", n.Index())
		}
	})
}

func TestNavigator_WheelAndSwipeThresholds(t *testing.T) {
	cases := []struct {
		name  string
		input func(n *Navigator) bool
		moved bool
	}{
		{"wheel below threshold", func(n *Navigator) bool { return n.HandleWheel(WheelThreshold) }, false},
		{"wheel above threshold", func(n *Navigator) bool { return n.HandleWheel(WheelThreshold + 1) }, true},
		{"wheel negative above threshold", func(n *Navigator) bool { return n.HandleWheel(-(WheelThreshold + 1)) }, false}, // at index 0
		{"swipe short", func(n *Navigator) bool { return n.HandleSwipe(100, 60) }, false},
		{"swipe up long", func(n *Navigator) bool { return n.HandleSwipe(200, 100) }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := NewNavigator(testReels(3), newFakePool())
			if got := tc.input(n); got != tc.moved {
				t.Fatalf("moved = %v, want %v", got, tc.moved)
			}
		})
	}
}

func TestNavigator_LikeInvolution(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := NewNavigator(testReels(1), newFakePool())
		id := n.Current().ID
		baseLikes := n.Current().Likes

		toggles := rapid.IntRange(0, 20).Draw(t, "toggles")
		for i := 0; i < toggles; i++ {
			n.ToggleLike(id)
		}

		r := n.Current()
		wantLiked := toggles%2 == 1
		if r.Liked != wantLiked {
			t.Fatalf("after %d toggles liked = %v", toggles, r.Liked)
		}
		wantLikes := baseLikes
		if wantLiked {
			wantLikes++
		}
		if r.Likes != wantLikes {
			t.Fatalf("after %d toggles likes = %d, want %d", toggles, r.Likes, wantLikes)
		}
	})
}

func TestNavigator_BookmarkDoesNotTouchLikes(t *testing.T) {
	n := NewNavigator(testReels(1), newFakePool())
	id := n.Current().ID

	n.ToggleBookmark(id)
	if !n.Current().Bookmarked {
		t.Fatal("bookmark should be set")
	}
	if n.Current().Likes != 0 || n.Current().Liked {
		t.Fatal("bookmark must not affect likes")
	}
	n.ToggleBookmark(id)
	if n.Current().Bookmarked {
		t.Fatal("second toggle should clear the bookmark")
	}
}

func TestNavigator_ActivationDrivesPlayback(t *testing.T) {
	pool := newFakePool()
	var viewed []string
	n := NewNavigator(testReels(2), pool, WithOnView(func(id string) { viewed = append(viewed, id) }))

	first := pool.players["a"]
	if first.rewinds != 1 || first.plays != 1 {
		t.Fatalf("first reel should be rewound and played once, got rewinds=%d plays=%d", first.rewinds, first.plays)
	}
	if !n.Playing("a") {
		t.Fatal("first reel should be marked playing")
	}

	n.Advance()
	if first.pauses != 1 {
		t.Fatalf("previous reel should be paused on advance, pauses=%d", first.pauses)
	}
	if n.Playing("a") {
		t.Fatal("previous reel should not be marked playing")
	}
	second := pool.players["b"]
	if second.plays != 1 {
		t.Fatalf("next reel should autoplay, plays=%d", second.plays)
	}

	if len(viewed) != 2 || viewed[0] != "a" || viewed[1] != "b" {
		t.Fatalf("viewed = %v, want [a b]", viewed)
	}
}

func TestNavigator_AutoplayFallsBackToMuted(t *testing.T) {
	pool := newFakePool()
	blocked := &fakePlayer{playErr: errors.New("autoplay rejected"), failOnce: true}
	pool.players["a"] = blocked

	n := NewNavigator(testReels(1), pool)

	if blocked.plays != 2 {
		t.Fatalf("expected unmuted attempt then muted retry, plays=%d", blocked.plays)
	}
	if !blocked.muted {
		t.Fatal("player should be muted after the fallback")
	}
	if !n.Muted("a") {
		t.Fatal("navigator should record the mute flag")
	}
}

func TestNavigator_ToggleMuteMirrorsPlayer(t *testing.T) {
	pool := newFakePool()
	n := NewNavigator(testReels(1), pool)

	n.ToggleMute("a")
	if !n.Muted("a") || !pool.players["a"].muted {
		t.Fatal("mute should be set on both navigator and player")
	}
	n.ToggleMute("a")
	if n.Muted("a") || pool.players["a"].muted {
		t.Fatal("second toggle should clear the mute")
	}
}

func TestNavigator_AppendKeepsCursor(t *testing.T) {
	n := NewNavigator(testReels(2), newFakePool())
	n.Advance()
	n.CompleteTransition()

	n.Append([]model.Reel{{ID: "x"}, {ID: "y"}})
	if n.Len() != 4 {
		t.Fatalf("len = %d, want 4", n.Len())
	}
	if n.Index() != 1 {
		t.Fatalf("append must not move the cursor, index = %d", n.Index())
	}
	if !n.Advance() {
		t.Fatal("advance into the appended region should work")
	}
}

func TestNavigator_SetReelsResets(t *testing.T) {
	n := NewNavigator(testReels(3), newFakePool())
	n.Advance()
	n.ToggleMute("b")

	n.SetReels(testReels(2))
	if n.Index() != 0 {
		t.Fatalf("index = %d, want 0 after SetReels", n.Index())
	}
	if n.Transitioning() {
		t.Fatal("SetReels should leave the navigator idle")
	}
	if n.Muted("b") {
		t.Fatal("per-reel flags should be cleared by SetReels")
	}
}
