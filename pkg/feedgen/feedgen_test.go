package feedgen

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/vanderheijden86/edugram/pkg/model"
)

func profileWithTags(skills, interests []string) model.Profile {
	return model.Profile{ID: "user-1", Name: "Test", Skills: skills, Interests: interests}
}

func fixedGenerator() *Generator {
	return New(
		WithRand(rand.New(rand.NewSource(1))),
		WithClock(func() time.Time { return time.Unix(1700000000, 0) }),
	)
}

func TestGenerateReels_TwoCategories(t *testing.T) {
	g := fixedGenerator()
	reels := g.GenerateReels([]string{"Go"}, []string{"Music"})

	// 2 categories x 8 templates = 16 reels, under the cap.
	if len(reels) != 16 {
		t.Fatalf("expected 16 reels, got %d", len(reels))
	}

	for i, r := range reels {
		want := "Go"
		if i >= 8 {
			want = "Music"
		}
		if r.Category != want {
			t.Errorf("reel %d: category = %q, want %q", i, r.Category, want)
		}
		lower := strings.ToLower(want)
		if len(r.Tags) != 3 || r.Tags[0] != lower || r.Tags[1] != "education" || r.Tags[2] != "learning" {
			t.Errorf("reel %d: tags = %v", i, r.Tags)
		}
		if !strings.Contains(r.Description, "#"+lower) {
			t.Errorf("reel %d: description %q missing #%s", i, r.Description, lower)
		}
	}

	// Consecutive reels draw distinct videos from the pool.
	if reels[0].VideoURL == reels[1].VideoURL {
		t.Errorf("consecutive reels share a video URL: %s", reels[0].VideoURL)
	}
}

func TestGenerateReels_EmptyTagsYieldEmptyBatch(t *testing.T) {
	g := fixedGenerator()
	if reels := g.GenerateReels(nil, nil); len(reels) != 0 {
		t.Fatalf("expected no reels for empty tag set, got %d", len(reels))
	}
	if cards := g.GenerateFlashcards(nil, nil); len(cards) != 0 {
		t.Fatalf("expected no cards for empty tag set, got %d", len(cards))
	}
}

func TestGenerateReels_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tag := rapid.StringMatching(`[A-Za-z]{1,12}`)
		skills := rapid.SliceOfN(tag, 0, 5).Draw(t, "skills")
		interests := rapid.SliceOfN(tag, 0, 5).Draw(t, "interests")

		g := fixedGenerator()
		reels := g.GenerateReels(skills, interests)

		if len(reels) > MaxReels {
			t.Fatalf("batch size %d exceeds cap %d", len(reels), MaxReels)
		}

		valid := make(map[string]bool)
		for _, s := range skills {
			valid[s] = true
		}
		for _, s := range interests {
			valid[s] = true
		}

		seen := make(map[string]bool, len(reels))
		for _, r := range reels {
			if seen[r.ID] {
				t.Fatalf("duplicate reel id %q", r.ID)
			}
			seen[r.ID] = true
			if !valid[r.Category] {
				t.Fatalf("reel category %q not in the profile tag set", r.Category)
			}
		}
	})
}

func TestGenerateFlashcards_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tag := rapid.StringMatching(`[A-Za-z]{1,12}`)
		skills := rapid.SliceOfN(tag, 0, 5).Draw(t, "skills")
		interests := rapid.SliceOfN(tag, 0, 5).Draw(t, "interests")

		g := fixedGenerator()
		cards := g.GenerateFlashcards(skills, interests)

		if len(cards) > MaxFlashcards {
			t.Fatalf("batch size %d exceeds cap %d", len(cards), MaxFlashcards)
		}
		seen := make(map[string]bool, len(cards))
		for _, c := range cards {
			if seen[c.ID] {
				t.Fatalf("duplicate card id %q", c.ID)
			}
			seen[c.ID] = true
			if !c.Difficulty.Valid() {
				t.Fatalf("invalid difficulty %q", c.Difficulty)
			}
			if !strings.HasSuffix(c.Question, c.Category+"?") {
				t.Fatalf("question %q does not end with category", c.Question)
			}
		}
	})
}

func TestGenerateFlashcards_Cap(t *testing.T) {
	g := fixedGenerator()
	// 5 categories x 5 templates = 25, truncated to the cap.
	cards := g.GenerateFlashcards([]string{"a", "b", "c"}, []string{"d", "e"})
	if len(cards) != MaxFlashcards {
		t.Fatalf("expected %d cards, got %d", MaxFlashcards, len(cards))
	}
}

func TestGenerateMore_DistinctFromEarlierBatches(t *testing.T) {
	g := fixedGenerator()
	p := profileWithTags([]string{"Go"}, []string{"Music"})

	first := g.GenerateReels(p.Skills, p.Interests)
	more := g.GenerateMore(p, 6)

	if len(more) != 6 {
		t.Fatalf("expected 6 extra reels, got %d", len(more))
	}

	seen := make(map[string]bool)
	for _, r := range first {
		seen[r.ID] = true
	}
	for _, r := range more {
		if seen[r.ID] {
			t.Errorf("load-more reel id %q collides with an earlier batch", r.ID)
		}
		if !strings.Contains(r.ID, "-more-") {
			t.Errorf("load-more id %q missing batch marker", r.ID)
		}
	}
}

func TestSeedComments_NamespacedByReel(t *testing.T) {
	a := SeedComments("reel-0001")
	b := SeedComments("reel-0002")

	if len(a) != 3 || len(b) != 3 {
		t.Fatalf("expected 3 seeded comments per thread, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID == b[i].ID {
			t.Errorf("comment %d shares id across reels: %s", i, a[i].ID)
		}
		if !strings.HasPrefix(a[i].ID, "reel-0001-comment-") {
			t.Errorf("comment id %q not namespaced by reel", a[i].ID)
		}
	}

	// Mutating one thread must not leak into a fresh seed.
	a[0].Likes = 999
	if again := SeedComments("reel-0001"); again[0].Likes == 999 {
		t.Error("seeded comments share state across calls")
	}
}

func TestNextID_Monotonic(t *testing.T) {
	g := fixedGenerator()
	prev := ""
	for i := 0; i < 50; i++ {
		id := g.nextID("reel")
		if id <= prev {
			t.Fatalf("ids not strictly increasing: %q then %q", prev, id)
		}
		if want := fmt.Sprintf("reel-%04d", i+1); id != want {
			t.Fatalf("id = %q, want %q", id, want)
		}
		prev = id
	}
}
