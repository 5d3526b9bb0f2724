package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/edugram/pkg/debug"
	"github.com/vanderheijden86/edugram/pkg/export"
	"github.com/vanderheijden86/edugram/pkg/share"
)

func (m Model) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "s":
		payload := share.Payload{
			Title: m.profile.Name + " on EduGram",
			Text:  fmt.Sprintf("Score %d • %d reels watched • %d cards studied", m.tracker.Score(), m.tracker.ReelsWatched(), m.tracker.CardsStudied()),
			URL:   "https://edugram.app/u/" + m.profile.ID,
		}
		shr := m.shr
		return m, func() tea.Msg {
			out, _ := shr.Share(payload)
			return shareDoneMsg{outcome: out}
		}

	case "x":
		m.syncBack()
		summary := export.Summary{
			ProfileName:  m.profile.Name,
			Score:        m.tracker.Score(),
			ReelsWatched: m.tracker.ReelsWatched(),
			CardsStudied: m.tracker.CardsStudied(),
			Accuracy:     m.tracker.Accuracy(),
			Categories:   m.tracker.CategoryAccuracy(m.allCards),
		}
		return m, exportChartsCmd(m.exportDir(), summary)

	case "e":
		prior := m.profile
		m.setupForm = m.buildSetupForm(&prior)
		m.editing = true
		m.focus = focusEditForm
		return m, m.setupForm.Init()

	case "o":
		if err := m.st.ClearProfile(); err != nil {
			debug.Log("ui: sign out failed: %v", err)
			return m.withNotice("Sign out failed: "+err.Error(), true)
		}
		m.authForm = m.buildAuthForm()
		m.focus = focusAuth
		return m, m.authForm.Init()
	}

	return m, nil
}

func (m Model) viewProfile() string {
	t := m.theme
	p := m.profile

	var b strings.Builder
	b.WriteString(t.PrimaryBold.Render(p.Name) + "\n")
	b.WriteString(t.SecondaryText.Render(fmt.Sprintf("%s • %s • %s", p.College, p.Branch, p.Year)) + "\n")
	if p.Bio != "" {
		b.WriteString(t.MutedText.Render(truncate(p.Bio, m.width-10)) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(t.AccentBold.Render("Skills") + "  " + t.Base.Render(strings.Join(p.Skills, ", ")) + "\n")
	b.WriteString(t.AccentBold.Render("Interests") + "  " + t.Base.Render(strings.Join(p.Interests, ", ")) + "\n\n")

	// Activity summary
	acc := m.tracker.Accuracy()
	b.WriteString(t.PrimaryBold.Render("Activity") + "\n")
	b.WriteString(fmt.Sprintf("  score        %d\n", m.tracker.Score()))
	b.WriteString(fmt.Sprintf("  reels        %d watched\n", m.tracker.ReelsWatched()))
	b.WriteString(fmt.Sprintf("  flashcards   %d studied\n", m.tracker.CardsStudied()))
	b.WriteString(fmt.Sprintf("  groups       %d joined\n", m.tracker.JoinedGroups()))
	b.WriteString(fmt.Sprintf("  accuracy     %3.0f%% %s\n", acc*100, progressBar(acc, 16)))
	b.WriteString(fmt.Sprintf("  streak       %d day(s)\n\n", m.tracker.StreakDays()))

	b.WriteString(t.PrimaryBold.Render("Achievements") + "\n")
	for _, a := range m.tracker.Achievements() {
		mark := t.MutedText.Render("○")
		title := t.MutedText.Render(a.Title)
		if a.Earned {
			mark = t.Notice.Render("●")
			title = t.Base.Bold(true).Render(a.Title)
		}
		b.WriteString(fmt.Sprintf("  %s %s %s\n", mark, title, t.MutedText.Render("· "+a.Description)))
	}

	if m.lastExportDir != "" {
		b.WriteString("\n" + t.MutedText.Render("last export: "+m.lastExportDir) + "\n")
	}

	return t.Card.Width(min(m.width-4, 76)).Render(b.String())
}
