package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/edugram/pkg/debug"
	"github.com/vanderheijden86/edugram/pkg/version"
)

const helpMarkdown = `# EduGram ` + "`%s`" + `

Short-form learning in your terminal: a reel feed, flashcard drills,
college study groups and a running score.

## Tabs

| Key | Tab |
|-----|-----|
| 1 / 2 / 3 / 4 | Home, Study, Groups, Profile |
| tab / shift+tab | Cycle tabs |

## Home (reels)

- **j / k** next and previous reel
- **l** like, **b** bookmark, **m** mute, **space** pause
- **c** comments, **s** share, **L** load more reels
- **f** cycle the category filter

## Study (flashcards)

- **enter** flip between question and answer
- **y / n** grade yourself correct or wrong (only while flipped)
- **B** bookmark, **r** reset the session

## Groups

- **/** search by name, location or type
- **enter** join the selected group (college groups ask for
  student verification; the global community is open to all)

## Profile

- **s** share your profile, **x** export progress charts
- **e** edit profile, **o** sign out

Press **esc** or **?** to close this help.
`

func (m *Model) openHelp() {
	width := m.helpVP.Width
	if width <= 0 {
		width = 72
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	content := fmt.Sprintf(helpMarkdown, version.Version)
	if err == nil {
		if out, rerr := renderer.Render(content); rerr == nil {
			content = out
		} else {
			debug.Log("ui: help render failed: %v", rerr)
		}
	} else {
		debug.Log("ui: glamour renderer unavailable: %v", err)
	}

	m.helpVP.SetContent(content)
	m.helpVP.GotoTop()
	m.focus = focusHelp
}

func (m Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "?", "q":
			m.focus = focusMain
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.helpVP, cmd = m.helpVP.Update(msg)
	return m, cmd
}

func (m Model) viewHelp() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.helpVP.View(),
		m.theme.MutedText.Render("↑/↓ scroll • esc close"),
	)
	card := m.theme.Overlay.Render(body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}
