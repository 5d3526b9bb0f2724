// Package feedgen turns a profile's skill and interest tags into the
// session's feed and study content. Generation is pure template
// expansion over the tag set; nothing is fetched and nothing persists.
package feedgen

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vanderheijden86/edugram/pkg/model"
)

// MaxReels and MaxFlashcards cap the size of a generated batch.
const (
	MaxReels      = 20
	MaxFlashcards = 20
)

// videoPool is the repeating set of sample video URLs consumed round-robin
// by a running counter, so consecutive reels never share a video.
var videoPool = []string{
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerEscapes.mp4",
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerFun.mp4",
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerJoyrides.mp4",
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/Sintel.mp4",
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/SubaruOutbackOnStreetAndDirt.mp4",
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/TearsOfSteel.mp4",
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/VolkswagenGTIReview.mp4",
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/WeAreGoingOnBullrun.mp4",
	"https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/WhatCarCanYouGetForAGrand.mp4",
	"https://www.w3schools.com/html/mov_bbb.mp4",
	"https://sample-videos.com/zip/10/mp4/SampleVideo_1280x720_1mb.mp4",
	"https://file-examples.com/storage/fe68c1f7d8c2c2b4c4b4b4b/2017/10/file_example_MP4_480_1_5MG.mp4",
}

type reelTemplate struct {
	title string
	desc  string
}

var reelTemplates = []reelTemplate{
	{"POV: You finally understand", "That moment when it all clicks"},
	{"Things they don't teach you about", "Real-world insights you need to know"},
	{"Me explaining", "Breaking it down for you"},
	{"Plot twist:", "This will change everything you know"},
	{"Tell me you study", "without telling me you study"},
	{"This is your sign to learn", "Start your journey today 🚀"},
	{"Nobody talks about", "The hidden secrets revealed 🔥"},
	{"When you realize", "Mind = blown 🤯"},
}

type cardTemplate struct {
	q string
	a string
}

var cardTemplates = []cardTemplate{
	{"What is the main concept of", "The main concept involves understanding the fundamental principles and applications"},
	{"How do you implement", "Implementation requires following best practices and considering scalability"},
	{"What are the benefits of", "Key benefits include improved efficiency, better performance, and enhanced user experience"},
	{"Common challenges in", "Common challenges include complexity management, resource optimization, and maintaining quality"},
	{"Best practices for", "Best practices involve thorough planning, continuous learning, and staying updated with trends"},
}

// Generator produces reel and flashcard batches. The random source and
// clock are injected so tests can pin them; the id sequence is owned by
// the generator, which makes batch ids unique by construction even when
// two tags normalize to the same string.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
	seq int
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the random source used for flashcard difficulty.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) { g.rng = r }
}

// WithClock sets the clock used to seed thumbnail URLs.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// New returns a Generator seeded from the wall clock unless overridden.
func New(opts ...Option) *Generator {
	g := &Generator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateReels expands every category (skills then interests) against
// the reel templates, truncated to MaxReels. An empty tag set yields an
// empty batch, not an error.
func (g *Generator) GenerateReels(skills, interests []string) []model.Reel {
	categories := append(append([]string{}, skills...), interests...)
	if len(categories) == 0 {
		return nil
	}

	reels := make([]model.Reel, 0, min(len(categories)*len(reelTemplates), MaxReels))
	counter := 0
	for _, category := range categories {
		lower := strings.ToLower(category)
		for _, tpl := range reelTemplates {
			if len(reels) == MaxReels {
				return reels
			}
			reels = append(reels, model.Reel{
				ID:          g.nextID("reel"),
				Title:       fmt.Sprintf("%s %s", tpl.title, lower),
				Description: fmt.Sprintf("%s #%s #education #learning", tpl.desc, lower),
				VideoURL:    videoPool[counter%len(videoPool)],
				Thumbnail:   fmt.Sprintf("https://picsum.photos/400/600?random=%d", int64(counter)+g.now().UnixMilli()),
				Category:    category,
				Tags:        []string{lower, "education", "learning"},
			})
			counter++
		}
	}
	return reels
}

// GenerateFlashcards expands every category against the question
// templates, truncated to MaxFlashcards. Difficulty is drawn uniformly
// from the three levels.
func (g *Generator) GenerateFlashcards(skills, interests []string) []model.Flashcard {
	categories := append(append([]string{}, skills...), interests...)
	if len(categories) == 0 {
		return nil
	}

	cards := make([]model.Flashcard, 0, min(len(categories)*len(cardTemplates), MaxFlashcards))
	for _, category := range categories {
		for _, tpl := range cardTemplates {
			if len(cards) == MaxFlashcards {
				return cards
			}
			cards = append(cards, model.Flashcard{
				ID:         g.nextID("card"),
				Question:   fmt.Sprintf("%s %s?", tpl.q, category),
				Answer:     fmt.Sprintf("%s in %s.", tpl.a, category),
				Category:   category,
				Tags:       []string{strings.ToLower(category)},
				Difficulty: model.Difficulties[g.rng.Intn(len(model.Difficulties))],
			})
		}
	}
	return cards
}

// GenerateMore returns up to n extra reels for the "load more" action.
// The batch nonce in the id keeps appended reels distinct from every
// earlier batch.
func (g *Generator) GenerateMore(p model.Profile, n int) []model.Reel {
	more := g.GenerateReels(p.Skills, p.Interests)
	if len(more) > n {
		more = more[:n]
	}
	nonce := g.now().UnixMilli()
	for i := range more {
		more[i].ID = fmt.Sprintf("%s-more-%d-%d", more[i].ID, nonce, i)
	}
	return more
}

func (g *Generator) nextID(kind string) string {
	g.seq++
	return fmt.Sprintf("%s-%04d", kind, g.seq)
}

var seedComments = []model.Comment{
	{Author: "student_sarah", Text: "This is so helpful! Thanks for sharing 🙏", Likes: 12, Timestamp: "2h ago"},
	{Author: "techie_raj", Text: "Finally someone explains this properly", Likes: 8, Timestamp: "4h ago"},
	{Author: "learner_priya", Text: "Saving this for my exam prep 📚", Likes: 5, Timestamp: "6h ago"},
}

// SeedComments returns the starter thread shown when a reel's comments
// are opened for the first time. Ids are namespaced by reel so likes on
// one thread never bleed into another.
func SeedComments(reelID string) []model.Comment {
	out := make([]model.Comment, len(seedComments))
	for i, c := range seedComments {
		c.ID = fmt.Sprintf("%s-comment-%d", reelID, i+1)
		out[i] = c
	}
	return out
}
