// Package groups implements the community directory: substring search
// over the static listings and the join flow. Joining a college group
// is gated by a client-side verification heuristic (string containment
// over user-entered fields). It is deliberately cosmetic and must never
// be treated as a trust boundary.
package groups

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vanderheijden86/edugram/pkg/model"
)

// ErrUnknownGroup is returned when joining an id that is not listed.
var ErrUnknownGroup = errors.New("groups: unknown group")

// ErrVerificationFailed is returned when any of the four verification
// checks fails. Callers surface it as a blocking notice and discard the
// attempt; nothing is committed.
var ErrVerificationFailed = errors.New("groups: verification failed")

// Verification carries the user-entered fields checked before joining a
// college group.
type Verification struct {
	FullName    string // as on the ID card
	StudentID   string
	CollegeName string // as on the ID card
	IDCardFile  string // attached file reference, empty means none
}

// Directory holds the static listings plus the runtime joined set. The
// joined set resets each session except for pre-joined defaults.
type Directory struct {
	global   model.Group
	listings []model.Group
	featured int
	joined   map[string]bool
	profile  model.Profile
}

// NewDirectory builds a directory for the given profile. preJoined ids
// are marked joined from the start (the app seeds the global
// community).
func NewDirectory(global model.Group, listings []model.Group, featured int, profile model.Profile, preJoined ...string) *Directory {
	d := &Directory{
		global:   global,
		listings: listings,
		featured: featured,
		joined:   make(map[string]bool),
		profile:  profile,
	}
	for _, id := range preJoined {
		d.joined[id] = true
	}
	return d
}

// Global returns the distinguished global community listing.
func (d *Directory) Global() model.Group { return d.global }

// Search returns listings whose name, location or type contains term,
// case-insensitively. An empty term returns the featured top-N subset
// rather than the full set.
func (d *Directory) Search(term string) []model.Group {
	term = strings.TrimSpace(term)
	if term == "" {
		n := d.featured
		if n > len(d.listings) {
			n = len(d.listings)
		}
		return append([]model.Group{}, d.listings[:n]...)
	}

	lower := strings.ToLower(term)
	var out []model.Group
	for _, g := range d.listings {
		if strings.Contains(strings.ToLower(g.Name), lower) ||
			strings.Contains(strings.ToLower(g.Location), lower) ||
			strings.Contains(strings.ToLower(g.Type), lower) {
			out = append(out, g)
		}
	}
	return out
}

// Find returns the listing with the given id, or nil. The global
// community is included.
func (d *Directory) Find(id string) *model.Group {
	if id == d.global.ID {
		g := d.global
		return &g
	}
	for i := range d.listings {
		if d.listings[i].ID == id {
			return &d.listings[i]
		}
	}
	return nil
}

// Join adds the listing to the joined set. The global community joins
// unconditionally; any other listing requires all four verification
// checks to pass. Joining an already-joined listing is a no-op.
func (d *Directory) Join(id string, v Verification) error {
	g := d.Find(id)
	if g == nil {
		return ErrUnknownGroup
	}
	if d.joined[id] {
		return nil
	}
	if id != d.global.ID {
		if err := d.verify(*g, v); err != nil {
			return err
		}
	}
	d.joined[id] = true
	return nil
}

// verify applies the four containment/presence checks. All must hold.
func (d *Directory) verify(g model.Group, v Verification) error {
	nameMatch := strings.Contains(strings.ToLower(v.FullName), strings.ToLower(d.profile.Name))
	collegeMatch := strings.Contains(strings.ToLower(v.CollegeName), strings.ToLower(g.Name))

	switch {
	case !nameMatch:
		return fmt.Errorf("%w: name does not match profile", ErrVerificationFailed)
	case !collegeMatch:
		return fmt.Errorf("%w: college name does not match group", ErrVerificationFailed)
	case strings.TrimSpace(v.StudentID) == "":
		return fmt.Errorf("%w: student id missing", ErrVerificationFailed)
	case v.IDCardFile == "":
		return fmt.Errorf("%w: id card not attached", ErrVerificationFailed)
	}
	return nil
}

// Joined reports whether the listing with the given id is joined.
func (d *Directory) Joined(id string) bool { return d.joined[id] }

// JoinedCount returns the number of joined listings.
func (d *Directory) JoinedCount() int { return len(d.joined) }

// JoinedIDs returns the ids of all joined listings.
func (d *Directory) JoinedIDs() []string {
	out := make([]string, 0, len(d.joined))
	for id := range d.joined {
		out = append(out, id)
	}
	return out
}
