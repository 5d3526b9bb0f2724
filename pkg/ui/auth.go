package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/edugram/pkg/catalog"
	"github.com/vanderheijden86/edugram/pkg/debug"
	"github.com/vanderheijden86/edugram/pkg/model"
)

// authValues backs the login/signup form.
type authValues struct {
	signup  bool
	email   string
	pass    string
	confirm string
}

// setupValues backs the profile setup and edit forms.
type setupValues struct {
	name      string
	college   string
	branch    string
	year      string
	bio       string
	skills    []string
	interests []string
	email     string
}

// buildAuthForm creates the login/signup form. Credentials are not
// checked against anything; the gate only requires well-formed input.
func (m *Model) buildAuthForm() *huh.Form {
	vals := &authValues{}
	m.authVals = vals

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[bool]().
				Title("Welcome to EduGram").
				Description("Learn. Share. Grow.").
				Options(
					huh.NewOption("Log in", false),
					huh.NewOption("Sign up", true),
				).
				Value(&vals.signup),
			huh.NewInput().
				Title("Email").
				Placeholder("you@college.edu").
				Value(&vals.email).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("email is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&vals.pass).
				Validate(func(s string) error {
					if s == "" {
						return errors.New("password is required")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Confirm password").
				EchoMode(huh.EchoModePassword).
				Value(&vals.confirm).
				Validate(func(s string) error {
					if s != vals.pass {
						return errors.New("passwords do not match")
					}
					return nil
				}),
		).WithHideFunc(func() bool { return !vals.signup }),
	).WithWidth(48)
}

func (m Model) updateAuth(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.authForm == nil {
		return m, nil
	}

	f, cmd := m.authForm.Update(msg)
	if af, ok := f.(*huh.Form); ok {
		m.authForm = af
	}

	switch m.authForm.State {
	case huh.StateCompleted:
		debug.Log("ui: auth accepted (signup=%v)", m.authVals.signup)
		m.setupForm = m.buildSetupForm(nil)
		m.setupVals.email = m.authVals.email
		m.editing = false
		m.focus = focusSetup
		return m, m.setupForm.Init()
	case huh.StateAborted:
		// Stay on the auth screen; a fresh form resets its state.
		m.authForm = m.buildAuthForm()
		return m, m.authForm.Init()
	}
	return m, cmd
}

func (m Model) viewAuth() string {
	card := m.theme.Overlay.Render(m.authForm.View())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

func collegeNames() []string {
	names := make([]string, len(catalog.Colleges))
	for i, c := range catalog.Colleges {
		names[i] = c.Name
	}
	return names
}

func branchNames() []string {
	names := make([]string, len(catalog.Branches))
	for i, b := range catalog.Branches {
		names[i] = b.Name
	}
	return names
}

// buildSetupForm creates the profile setup form, pre-filled from prior
// when editing an existing profile.
func (m *Model) buildSetupForm(prior *model.Profile) *huh.Form {
	vals := &setupValues{}
	if prior != nil {
		vals.name = prior.Name
		vals.college = prior.College
		vals.branch = prior.Branch
		vals.year = prior.Year
		vals.bio = prior.Bio
		vals.skills = append([]string{}, prior.Skills...)
		vals.interests = append([]string{}, prior.Interests...)
		vals.email = prior.Email
	}
	m.setupVals = vals

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Full name").
				Value(&vals.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("College").
				Options(huh.NewOptions(collegeNames()...)...).
				Value(&vals.college),
			huh.NewSelect[string]().
				Title("Branch").
				Options(huh.NewOptions(branchNames()...)...).
				Value(&vals.branch),
			huh.NewSelect[string]().
				Title("Year").
				Options(huh.NewOptions(catalog.Years...)...).
				Value(&vals.year),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Skills").
				Description("Content is generated from these tags").
				Options(huh.NewOptions(catalog.Skills...)...).
				Value(&vals.skills).
				Validate(func(ts []string) error {
					if len(ts) == 0 {
						return errors.New("pick at least one skill")
					}
					return nil
				}),
			huh.NewMultiSelect[string]().
				Title("Interests").
				Options(huh.NewOptions(catalog.Interests...)...).
				Value(&vals.interests).
				Validate(func(ts []string) error {
					if len(ts) == 0 {
						return errors.New("pick at least one interest")
					}
					return nil
				}),
			huh.NewInput().
				Title("Bio").
				Placeholder("Tell other students about yourself (optional)").
				Value(&vals.bio),
		),
	).WithWidth(56)
}

func (m Model) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.setupForm == nil {
		return m, nil
	}

	f, cmd := m.setupForm.Update(msg)
	if sf, ok := f.(*huh.Form); ok {
		m.setupForm = sf
	}

	switch m.setupForm.State {
	case huh.StateCompleted:
		return m.commitProfile()
	case huh.StateAborted:
		if m.editing {
			// Edits are buffered in the form; abandoning keeps the
			// committed profile untouched.
			m.editing = false
			m.focus = focusMain
			return m, nil
		}
		m.authForm = m.buildAuthForm()
		m.focus = focusAuth
		return m, m.authForm.Init()
	}
	return m, cmd
}

// commitProfile turns the setup form values into a saved profile and
// (re)enters the session.
func (m Model) commitProfile() (tea.Model, tea.Cmd) {
	vals := m.setupVals

	id := m.profile.ID
	if !m.editing || id == "" {
		id = fmt.Sprintf("user-%d", time.Now().UnixNano())
	}

	p := model.Profile{
		ID:        id,
		Name:      strings.TrimSpace(vals.name),
		College:   vals.college,
		Branch:    vals.branch,
		Year:      vals.year,
		Skills:    vals.skills,
		Interests: vals.interests,
		Bio:       strings.TrimSpace(vals.bio),
		Email:     strings.TrimSpace(vals.email),
	}

	if err := m.st.SaveProfile(p); err != nil {
		debug.Log("ui: profile save failed: %v", err)
		m.enterSession(p)
		return m.withNotice("Profile not saved: "+err.Error(), true)
	}

	m.editing = false
	m.enterSession(p)
	return m.withNotice("Welcome, "+p.Name+"!", false)
}

func (m Model) viewSetup() string {
	title := "Set up your profile"
	if m.editing {
		title = "Edit profile"
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.PrimaryBold.Render(title),
		"",
		m.setupForm.View(),
	)
	card := m.theme.Overlay.Render(body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}
