package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// GroupDelegate renders community listings in the groups list.
type GroupDelegate struct {
	Theme Theme
}

func (d GroupDelegate) Height() int {
	return 1
}

func (d GroupDelegate) Spacing() int {
	return 0
}

func (d GroupDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

func (d GroupDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(GroupItem)
	if !ok {
		return
	}

	t := d.Theme
	width := m.Width()
	if width <= 0 {
		width = 80
	}
	// Reduce width by 1 to prevent terminal wrapping on the exact edge
	width = width - 1

	isSelected := index == m.Index()

	// Layout: [sel] [name] [joined-badge] ... [location] [members]
	var joinedBadge string
	if i.Joined {
		joinedBadge = t.Notice.Render(" ✓ joined")
	}

	members := t.MutedText.Render(fmt.Sprintf("%7s", formatCount(i.Group.Members)))

	var location string
	if width > 60 {
		location = t.SecondaryText.Render(padRight(truncate(i.Group.Location, 16), 16))
	}

	rightWidth := lipgloss.Width(members) + lipgloss.Width(location) + 2
	nameWidth := width - rightWidth - lipgloss.Width(joinedBadge) - 3
	if nameWidth < 10 {
		nameWidth = 10
	}
	name := padRight(truncate(i.Group.Name, nameWidth), nameWidth)

	var line string
	if isSelected {
		line = t.PrimaryBold.Render("▸ ") + t.Base.Bold(true).Render(name)
	} else {
		line = "  " + t.Base.Render(name)
	}
	line += joinedBadge + " " + location + " " + members

	fmt.Fprint(w, line)
}
