package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/edugram/pkg/groups"
)

// joinValues backs the group verification form.
type joinValues struct {
	name      string
	studentID string
	college   string
	file      string
}

// refreshGroupItems rebuilds the list from the current search term.
// The global community is pinned to the top.
func (m *Model) refreshGroupItems() {
	results := m.dir.Search(m.searchInput.Value())

	items := make([]list.Item, 0, len(results)+1)
	global := m.dir.Global()
	items = append(items, GroupItem{Group: global, Joined: m.dir.Joined(global.ID)})
	for _, g := range results {
		items = append(items, GroupItem{Group: g, Joined: m.dir.Joined(g.ID)})
	}
	m.groupsList.SetItems(items)
}

func (m Model) updateGroups(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)

	if m.searching {
		if isKey {
			switch keyMsg.String() {
			case "esc":
				m.searching = false
				m.searchInput.Blur()
				return m, nil
			case "enter", "down":
				m.searching = false
				m.searchInput.Blur()
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.refreshGroupItems()
		return m, cmd
	}

	if isKey {
		switch keyMsg.String() {
		case "/":
			m.searching = true
			m.searchInput.Focus()
			return m, nil
		case "enter":
			return m.requestJoin()
		}
	}

	var cmd tea.Cmd
	m.groupsList, cmd = m.groupsList.Update(msg)
	return m, cmd
}

// requestJoin starts the join flow for the selected listing. The
// global community joins directly; everything else goes through the
// verification form.
func (m Model) requestJoin() (tea.Model, tea.Cmd) {
	item, ok := m.groupsList.SelectedItem().(GroupItem)
	if !ok {
		return m, nil
	}
	if m.dir.Joined(item.Group.ID) {
		return m.withNotice("Already a member of "+item.Group.Name, false)
	}

	if item.Group.ID == m.dir.Global().ID {
		if err := m.dir.Join(item.Group.ID, groups.Verification{}); err != nil {
			return m.withNotice(err.Error(), true)
		}
		m.tracker.SetJoinedGroups(m.dir.JoinedCount())
		m.refreshGroupItems()
		return m.withNotice("Joined "+item.Group.Name+"!", false)
	}

	m.joinTargetID = item.Group.ID
	m.joinForm = m.buildJoinForm(item.Group.Name)
	m.focus = focusJoinForm
	return m, m.joinForm.Init()
}

func (m *Model) buildJoinForm(groupName string) *huh.Form {
	vals := &joinValues{}
	m.joinVals = vals

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Full name").
				Description("As printed on your student ID for "+groupName).
				Value(&vals.name),
			huh.NewInput().
				Title("Student ID").
				Value(&vals.studentID),
			huh.NewInput().
				Title("College name").
				Description("As printed on your student ID").
				Value(&vals.college),
			huh.NewFilePicker().
				Title("ID card").
				Description("Attach a photo of your student ID").
				AllowedTypes([]string{".png", ".jpg", ".jpeg", ".pdf"}).
				Value(&vals.file),
		),
	).WithWidth(56)
}

func (m Model) updateJoin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.joinForm == nil {
		m.focus = focusMain
		return m, nil
	}

	f, cmd := m.joinForm.Update(msg)
	if jf, ok := f.(*huh.Form); ok {
		m.joinForm = jf
	}

	switch m.joinForm.State {
	case huh.StateCompleted:
		vals := m.joinVals
		err := m.dir.Join(m.joinTargetID, groups.Verification{
			FullName:    vals.name,
			StudentID:   vals.studentID,
			CollegeName: vals.college,
			IDCardFile:  vals.file,
		})
		m.focus = focusMain
		if err != nil {
			if errors.Is(err, groups.ErrVerificationFailed) {
				return m.withNotice("Verification failed: "+err.Error(), true)
			}
			return m.withNotice(err.Error(), true)
		}
		m.tracker.SetJoinedGroups(m.dir.JoinedCount())
		m.refreshGroupItems()
		if g := m.dir.Find(m.joinTargetID); g != nil {
			return m.withNotice("Joined "+g.Name+"!", false)
		}
		return m, nil

	case huh.StateAborted:
		m.focus = focusMain
		return m, nil
	}
	return m, cmd
}

func (m Model) viewJoin() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.PrimaryBold.Render("Verify your student status"),
		"",
		m.joinForm.View(),
	)
	card := m.theme.Overlay.Render(body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

func (m Model) viewGroups() string {
	t := m.theme

	search := m.searchInput.View()
	if !m.searching && m.searchInput.Value() == "" {
		search = t.MutedText.Render("press / to search")
	}

	joined := t.MutedText.Render(fmt.Sprintf("joined: %d", m.dir.JoinedCount()))

	return lipgloss.JoinVertical(lipgloss.Left,
		search,
		joined,
		m.groupsList.View(),
	)
}
