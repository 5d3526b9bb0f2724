package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/edugram/pkg/feedgen"
	"github.com/vanderheijden86/edugram/pkg/share"
)

func (m Model) updateFeed(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	nav := m.feedNav
	if nav == nil {
		return m, nil
	}

	switch keyMsg.String() {
	case "j", "down":
		if nav.Advance() {
			return m.startTransition()
		}
		return m, nil

	case "k", "up":
		if nav.Retreat() {
			return m.startTransition()
		}
		return m, nil

	case "l":
		if r := nav.Current(); r != nil {
			nav.ToggleLike(r.ID)
		}
		return m, nil

	case "b":
		if r := nav.Current(); r != nil {
			nav.ToggleBookmark(r.ID)
			if nav.Current().Bookmarked {
				return m.withNotice("Saved to bookmarks", false)
			}
			return m.withNotice("Removed from bookmarks", false)
		}
		return m, nil

	case "m":
		if r := nav.Current(); r != nil {
			nav.ToggleMute(r.ID)
		}
		return m, nil

	case " ":
		if r := nav.Current(); r != nil {
			nav.TogglePlayback(r.ID)
		}
		return m, nil

	case "c":
		if r := nav.Current(); r != nil {
			m.openComments(r.ID)
		}
		return m, nil

	case "s":
		if r := nav.Current(); r != nil {
			payload := share.Payload{
				Title: r.Title,
				Text:  "Check out this educational reel on EduGram!",
				URL:   r.VideoURL,
			}
			shr := m.shr
			return m, func() tea.Msg {
				out, _ := shr.Share(payload)
				return shareDoneMsg{outcome: out}
			}
		}
		return m, nil

	case "L":
		more := m.gen.GenerateMore(m.profile, m.cfg.Feed.LoadMoreCount)
		nav.Append(more)
		m.allReels = append(m.allReels, more...)
		return m.withNotice(fmt.Sprintf("Loaded %d more reels", len(more)), false)
	}

	return m, nil
}

// startTransition stamps a new transition sequence and schedules its
// completion tick plus the recovery watchdog.
func (m Model) startTransition() (tea.Model, tea.Cmd) {
	m.transitionSeq++
	return m, transitionCmds(m.transitionSeq)
}

func (m Model) viewFeed() string {
	t := m.theme
	nav := m.feedNav
	r := nav.Current()
	if r == nil {
		return t.Card.Render("No reels yet. Add skills or interests to your profile.")
	}

	// Progress rail: position within the feed.
	rail := t.MutedText.Render(fmt.Sprintf("reel %d/%d", nav.Index()+1, nav.Len()))
	if nav.Transitioning() {
		rail += t.AccentBold.Render("  ▸▸")
	}

	var status []string
	if nav.Playing(r.ID) {
		status = append(status, "▶ playing")
	} else {
		status = append(status, "⏸ paused")
	}
	if nav.Muted(r.ID) {
		status = append(status, "🔇 muted")
	}
	statusLine := t.MutedText.Render(joinDot(status))

	like := "♡"
	likeStyle := t.MutedText
	if r.Liked {
		like = "♥"
		likeStyle = t.Renderer.NewStyle().Foreground(t.Like).Bold(true)
	}
	book := "⚑"
	bookStyle := t.MutedText
	if r.Bookmarked {
		bookStyle = t.Renderer.NewStyle().Foreground(t.Bookmark).Bold(true)
	}
	actions := fmt.Sprintf("%s %d   %s   💬 %d",
		likeStyle.Render(like), r.Likes,
		bookStyle.Render(book),
		r.Comments+len(m.comments[r.ID]),
	)

	body := lipgloss.JoinVertical(lipgloss.Left,
		t.PrimaryBold.Render(truncate(r.Title, m.width-10)),
		t.SecondaryText.Render(truncate(r.Description, m.width-10)),
		"",
		t.MutedText.Render("🎬 "+truncate(r.VideoURL, m.width-14)),
		t.MutedText.Render("category: ")+t.AccentBold.Render(r.Category),
		"",
		statusLine,
		actions,
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		rail,
		t.Card.Width(min(m.width-4, 76)).Render(body),
	)
}

func joinDot(parts []string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += " • "
		}
		out += p
	}
	return out
}

// openComments seeds the thread on first open.
func (m *Model) openComments(reelID string) {
	if _, ok := m.comments[reelID]; !ok {
		m.comments[reelID] = feedgen.SeedComments(reelID)
	}
	m.commentsReel = reelID
	m.commentIndex = 0
	m.commentInput.SetValue("")
	m.commentInput.Focus()
	m.focus = focusComments
	m.refreshCommentsVP()
}
