package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/edugram/pkg/study"
)

func (m Model) updateStudy(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	nav := m.studyNav
	if nav == nil {
		return m, nil
	}

	switch keyMsg.String() {
	case "j", "down", "right":
		nav.Advance()
		return m, nil

	case "k", "up", "left":
		nav.Retreat()
		return m, nil

	case "enter", " ":
		nav.Flip()
		return m, nil

	case "y":
		return m.grade(true)

	case "n":
		return m.grade(false)

	case "B":
		if c := nav.Current(); c != nil {
			nav.ToggleBookmark(c.ID)
		}
		return m, nil

	case "r":
		m.syncBack()
		nav.Reset(nil)
		return m.withNotice("Session reset", false)
	}

	return m, nil
}

func (m Model) grade(correct bool) (tea.Model, tea.Cmd) {
	err := m.studyNav.Grade(correct)
	switch {
	case errors.Is(err, study.ErrNotFlipped):
		return m.withNotice("Flip the card before grading", true)
	case errors.Is(err, study.ErrNoCard):
		return m, nil
	case err != nil:
		return m.withNotice(err.Error(), true)
	}
	if correct {
		return m.withNotice("Correct! +50", false)
	}
	return m.withNotice("Keep practicing", false)
}

func (m Model) viewStudy() string {
	t := m.theme
	nav := m.studyNav
	c := nav.Current()
	if c == nil {
		return t.Card.Render("No flashcards yet. Add skills or interests to your profile.")
	}

	rail := t.MutedText.Render(fmt.Sprintf("card %d/%d", nav.Index()+1, nav.Len()))

	diff := t.Renderer.NewStyle().
		Foreground(t.DifficultyColor(string(c.Difficulty))).
		Render(string(c.Difficulty))

	header := t.AccentBold.Render(c.Category) + "  " + diff
	if c.Bookmarked {
		header += "  " + t.Renderer.NewStyle().Foreground(t.Bookmark).Render("⚑")
	}

	var face, faceLabel string
	if nav.CurrentFlipped() {
		faceLabel = t.MutedText.Render("answer")
		face = t.Base.Render(c.Answer)
	} else {
		faceLabel = t.MutedText.Render("question")
		face = t.PrimaryBold.Render(c.Question)
	}

	attempts := t.MutedText.Render(fmt.Sprintf("attempts %d • correct %d", c.Attempts, c.CorrectAttempts))
	if c.Attempts > 0 {
		attempts += "  " + progressBar(float64(c.CorrectAttempts)/float64(c.Attempts), 12)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		faceLabel,
		face,
		"",
		attempts,
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		rail,
		t.Card.Width(min(m.width-4, 76)).Render(body),
	)
}
