package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/edugram/pkg/model"
)

func (m Model) updateComments(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		var cmd tea.Cmd
		m.commentInput, cmd = m.commentInput.Update(msg)
		return m, cmd
	}

	thread := m.comments[m.commentsReel]

	switch keyMsg.String() {
	case "esc":
		m.focus = focusMain
		m.commentInput.Blur()
		return m, nil

	case "enter":
		text := strings.TrimSpace(m.commentInput.Value())
		if text == "" {
			return m, nil
		}
		// New comments are prepended, newest first.
		c := model.Comment{
			ID:        fmt.Sprintf("%s-comment-%d", m.commentsReel, time.Now().UnixNano()),
			Author:    m.profile.Name,
			Text:      text,
			Timestamp: "now",
		}
		m.comments[m.commentsReel] = append([]model.Comment{c}, thread...)
		m.commentIndex = 0
		m.commentInput.SetValue("")
		m.refreshCommentsVP()
		return m, nil

	case "ctrl+j", "down":
		if m.commentIndex < len(thread)-1 {
			m.commentIndex++
			m.refreshCommentsVP()
		}
		return m, nil

	case "ctrl+k", "up":
		if m.commentIndex > 0 {
			m.commentIndex--
			m.refreshCommentsVP()
		}
		return m, nil

	case "ctrl+l":
		// Like toggle with the same involution rule as reels.
		if m.commentIndex < len(thread) {
			c := &m.comments[m.commentsReel][m.commentIndex]
			if c.Liked {
				c.Liked = false
				c.Likes--
			} else {
				c.Liked = true
				c.Likes++
			}
			m.refreshCommentsVP()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.commentInput, cmd = m.commentInput.Update(msg)
	return m, cmd
}

func (m *Model) refreshCommentsVP() {
	t := m.theme
	thread := m.comments[m.commentsReel]
	width := m.commentsVP.Width
	if width <= 0 {
		width = 60
	}

	var b strings.Builder
	for i, c := range thread {
		cursor := "  "
		if i == m.commentIndex {
			cursor = t.PrimaryBold.Render("▸ ")
		}
		like := "♡"
		likeStyle := t.MutedText
		if c.Liked {
			like = "♥"
			likeStyle = t.Renderer.NewStyle().Foreground(t.Like)
		}
		b.WriteString(cursor + t.AccentBold.Render("@"+c.Author) + " " + t.MutedText.Render(c.Timestamp) + "\n")
		b.WriteString("  " + t.Base.Render(truncate(c.Text, width-4)) + "\n")
		b.WriteString("  " + likeStyle.Render(fmt.Sprintf("%s %d", like, c.Likes)) + "\n\n")
	}
	m.commentsVP.SetContent(b.String())
}

func (m Model) viewComments() string {
	t := m.theme
	title := t.PrimaryBold.Render(fmt.Sprintf("Comments (%d)", len(m.comments[m.commentsReel])))
	hint := t.MutedText.Render("enter post • ctrl+j/k move • ctrl+l like • esc close")
	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		m.commentsVP.View(),
		m.commentInput.View(),
		hint,
	)
	return t.Overlay.Render(body)
}
