// Package model defines the core domain types shared across edugram:
// the persisted user profile, generated feed and study content, and the
// static community listings.
package model

import "time"

// Difficulty classifies how hard a flashcard is expected to be.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists all valid difficulty levels, in ascending order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// Valid reports whether d is one of the known difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Profile is the user record created at signup. It is the only entity
// persisted across sessions; everything else is regenerated from its
// skill and interest tags.
type Profile struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	College   string   `json:"college"`
	Branch    string   `json:"branch"`
	Year      string   `json:"year"`
	Skills    []string `json:"skills"`
	Interests []string `json:"interests"`
	Bio       string   `json:"bio,omitempty"`
	Email     string   `json:"email,omitempty"`
}

// Categories returns the profile's skills followed by its interests.
// This ordering drives content generation and is part of the observable
// behavior (the first categories win when a batch is truncated).
func (p Profile) Categories() []string {
	cats := make([]string, 0, len(p.Skills)+len(p.Interests))
	cats = append(cats, p.Skills...)
	cats = append(cats, p.Interests...)
	return cats
}

// Reel is one short-video feed item. Reels are generated per session
// and mutated in memory only.
type Reel struct {
	ID          string
	Title       string
	Description string
	VideoURL    string
	Thumbnail   string
	Category    string
	Tags        []string
	Likes       int
	Liked       bool
	Bookmarked  bool
	Comments    int
}

// Flashcard is one study item. Like reels, flashcards live only for the
// session; attempt counters survive until the batch is replaced.
type Flashcard struct {
	ID              string
	Question        string
	Answer          string
	Category        string
	Tags            []string
	Difficulty      Difficulty
	Bookmarked      bool
	Attempts        int
	CorrectAttempts int
	LastAttempted   time.Time
}

// Comment belongs to a single reel's thread. Threads are held only by
// the view that opens them and are never persisted.
type Comment struct {
	ID        string
	Author    string
	Text      string
	Likes     int
	Liked     bool
	Timestamp string
}

// Group is a community listing: either a college group or the
// distinguished global community.
type Group struct {
	ID       string
	Name     string
	Location string
	Members  int
	Type     string
}
