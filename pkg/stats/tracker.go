// Package stats accumulates the session's learning progress: watched
// reels, studied cards, joined groups, a running score and the derived
// achievement set shown on the profile tab.
package stats

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/vanderheijden86/edugram/pkg/model"
)

// Scoring constants from the dashboard: everyone starts at 1500 and
// each correct answer is worth 50 points.
const (
	BaseScore        = 1500
	CorrectScoreGain = 50
)

// Achievement thresholds for the profile badges.
const (
	StudyStreakDays      = 7
	ContentConsumerReels = 50
	CommunityBuilderMin  = 3
	KnowledgeSeekerCards = 100
)

// Achievement is a badge earned by crossing a usage threshold.
type Achievement struct {
	ID          string
	Title       string
	Description string
	Earned      bool
}

// cardRecord tracks per-card attempt totals for accuracy aggregation.
type cardRecord struct {
	attempts int
	correct  int
}

// Tracker accumulates progress counters. Not safe for concurrent use.
type Tracker struct {
	score        int
	watched      map[string]bool
	studied      map[string]cardRecord
	joinedGroups int
	streakDays   int
	now          func() time.Time
	lastStudyDay time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock sets the clock used for streak bookkeeping.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// NewTracker creates a tracker seeded with the base score.
func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{
		score:   BaseScore,
		watched: make(map[string]bool),
		studied: make(map[string]cardRecord),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Score returns the current score.
func (t *Tracker) Score() int { return t.score }

// ReelWatched records that the reel with the given id was viewed.
// Repeat views of the same reel do not inflate the count.
func (t *Tracker) ReelWatched(id string) {
	t.watched[id] = true
}

// ReelsWatched returns the number of distinct reels viewed.
func (t *Tracker) ReelsWatched() int { return len(t.watched) }

// CardGraded records a grade on the card with the given id. Correct
// answers add to the score; every grade counts toward the study streak.
func (t *Tracker) CardGraded(id string, correct bool) {
	rec := t.studied[id]
	rec.attempts++
	if correct {
		rec.correct++
		t.score += CorrectScoreGain
	}
	t.studied[id] = rec
	t.bumpStreak()
}

// bumpStreak extends the streak when study activity lands on a new
// calendar day, and resets it after a gap of more than one day. Days
// are bucketed by the clock's own location, not UTC, so a session just
// after local midnight starts a new day.
func (t *Tracker) bumpStreak() {
	now := t.now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch {
	case t.lastStudyDay.IsZero():
		t.streakDays = 1
	case day.Equal(t.lastStudyDay):
		return
	case day.Equal(t.lastStudyDay.AddDate(0, 0, 1)):
		t.streakDays++
	default:
		t.streakDays = 1
	}
	t.lastStudyDay = day
}

// CardsStudied returns the number of distinct cards graded.
func (t *Tracker) CardsStudied() int { return len(t.studied) }

// StreakDays returns the current consecutive-day study streak.
func (t *Tracker) StreakDays() int { return t.streakDays }

// SetJoinedGroups records the size of the joined-group set.
func (t *Tracker) SetJoinedGroups(n int) { t.joinedGroups = n }

// JoinedGroups returns the recorded joined-group count.
func (t *Tracker) JoinedGroups() int { return t.joinedGroups }

// Accuracy returns the mean per-card correctness ratio in [0, 1], or 0
// before any card has been graded.
func (t *Tracker) Accuracy() float64 {
	if len(t.studied) == 0 {
		return 0
	}
	ratios := make([]float64, 0, len(t.studied))
	for _, rec := range t.studied {
		ratios = append(ratios, float64(rec.correct)/float64(rec.attempts))
	}
	return stat.Mean(ratios, nil)
}

// CategoryAccuracy returns mean accuracy per category, computed over
// the cards in the given set that have been graded. Categories with no
// graded cards are omitted. Results are sorted by category name for
// stable rendering.
func (t *Tracker) CategoryAccuracy(cards []model.Flashcard) []CategoryScore {
	byCategory := make(map[string][]float64)
	for _, c := range cards {
		rec, ok := t.studied[c.ID]
		if !ok || rec.attempts == 0 {
			continue
		}
		byCategory[c.Category] = append(byCategory[c.Category], float64(rec.correct)/float64(rec.attempts))
	}

	out := make([]CategoryScore, 0, len(byCategory))
	for cat, ratios := range byCategory {
		out = append(out, CategoryScore{Category: cat, Accuracy: stat.Mean(ratios, nil)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// CategoryScore pairs a category with its mean accuracy.
type CategoryScore struct {
	Category string
	Accuracy float64
}

// Achievements derives the badge set from the current counters.
func (t *Tracker) Achievements() []Achievement {
	return []Achievement{
		{
			ID:          "study-streak",
			Title:       "Study Streak",
			Description: "Studied 7 days in a row",
			Earned:      t.streakDays >= StudyStreakDays,
		},
		{
			ID:          "content-consumer",
			Title:       "Content Consumer",
			Description: "Watched 50 educational reels",
			Earned:      len(t.watched) >= ContentConsumerReels,
		},
		{
			ID:          "community-builder",
			Title:       "Community Builder",
			Description: "Joined 3 study groups",
			Earned:      t.joinedGroups >= CommunityBuilderMin,
		},
		{
			ID:          "knowledge-seeker",
			Title:       "Knowledge Seeker",
			Description: "Completed 100 flashcards",
			Earned:      len(t.studied) >= KnowledgeSeekerCards,
		},
	}
}
