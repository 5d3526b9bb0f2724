// Package ui implements the edugram terminal interface: a Bubble Tea
// model with four tabs (home feed, study, groups, profile), auth and
// profile-setup forms, and transient overlays for comments and help.
package ui

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/edugram/internal/store"
	"github.com/vanderheijden86/edugram/pkg/catalog"
	"github.com/vanderheijden86/edugram/pkg/config"
	"github.com/vanderheijden86/edugram/pkg/debug"
	"github.com/vanderheijden86/edugram/pkg/feed"
	"github.com/vanderheijden86/edugram/pkg/feedgen"
	"github.com/vanderheijden86/edugram/pkg/groups"
	"github.com/vanderheijden86/edugram/pkg/model"
	"github.com/vanderheijden86/edugram/pkg/share"
	"github.com/vanderheijden86/edugram/pkg/stats"
	"github.com/vanderheijden86/edugram/pkg/study"
	"github.com/vanderheijden86/edugram/pkg/watcher"
)

// tab identifies one of the bottom-nav destinations.
type tab int

const (
	tabHome tab = iota
	tabStudy
	tabGroups
	tabProfile
	numTabs
)

// String returns the tab's display label.
func (t tab) String() string {
	switch t {
	case tabHome:
		return "Home"
	case tabStudy:
		return "Study"
	case tabGroups:
		return "Groups"
	case tabProfile:
		return "Profile"
	default:
		return "?"
	}
}

// focus represents which UI surface has keyboard input.
type focus int

const (
	focusAuth focus = iota
	focusSetup
	focusMain
	focusComments
	focusJoinForm
	focusEditForm
	focusHelp
)

// playerPool hands out one simulated player per reel id.
type playerPool struct {
	players map[string]*feed.NopPlayer
}

func newPlayerPool() *playerPool {
	return &playerPool{players: make(map[string]*feed.NopPlayer)}
}

// PlayerFor implements feed.PlayerSource.
func (p *playerPool) PlayerFor(id string) feed.Player {
	np, ok := p.players[id]
	if !ok {
		np = &feed.NopPlayer{}
		p.players[id] = np
	}
	return np
}

// Model is the root Bubble Tea model.
type Model struct {
	theme Theme
	cfg   config.Config
	st    *store.Store
	gen   *feedgen.Generator
	shr   *share.Sharer
	fw    *watcher.Watcher

	width  int
	height int

	activeTab tab
	focus     focus

	profile model.Profile

	allReels []model.Reel
	feedNav  *feed.Navigator
	players  *playerPool

	allCards []model.Flashcard
	studyNav *study.Navigator

	dir         *groups.Directory
	groupsList  list.Model
	searchInput textinput.Model
	searching   bool

	tracker *stats.Tracker

	// categoryFilter narrows feed and study content to one category;
	// empty means everything.
	categoryFilter string

	comments     map[string][]model.Comment
	commentsReel string
	commentIndex int
	commentInput textinput.Model
	commentsVP   viewport.Model

	// Form value targets live behind pointers so huh keeps writing to
	// the same storage across Bubble Tea's model copies.
	authForm *huh.Form
	authVals *authValues

	setupForm *huh.Form
	setupVals *setupValues
	editing   bool

	joinForm     *huh.Form
	joinVals     *joinValues
	joinTargetID string

	helpVP viewport.Model

	notice    string
	noticeErr bool
	noticeSeq int

	transitionSeq int

	lastExportDir string
	quitting      bool
}

// NewModel builds the root model. When the store holds a profile the
// app opens signed in; otherwise it opens on the auth screen.
func NewModel(cfg config.Config, st *store.Store) Model {
	m := Model{
		theme:    DefaultTheme(lipgloss.DefaultRenderer()),
		cfg:      cfg,
		st:       st,
		gen:      feedgen.New(),
		shr:      share.NewSharer(),
		comments: make(map[string][]model.Comment),
		focus:    focusAuth,
	}

	m.commentInput = textinput.New()
	m.commentInput.Placeholder = "Add a comment..."
	m.commentInput.CharLimit = 280

	m.searchInput = textinput.New()
	m.searchInput.Placeholder = "Search groups, colleges, locations..."
	m.searchInput.CharLimit = 64

	if fw, err := watcher.NewWatcher(st.Path()); err == nil {
		m.fw = fw
		if err := fw.Start(); err != nil {
			debug.Log("ui: store watcher failed to start: %v", err)
			m.fw = nil
		}
	} else {
		debug.Log("ui: store watcher unavailable: %v", err)
	}

	if p, ok, err := st.LoadProfile(); err == nil && ok {
		m.enterSession(p)
	} else {
		if err != nil {
			debug.Log("ui: profile load failed, starting signed out: %v", err)
		}
		m.authForm = m.buildAuthForm()
	}

	return m
}

// Stop releases background resources. Called by main on the way out.
func (m *Model) Stop() {
	if m.fw != nil {
		m.fw.Stop()
	}
}

// enterSession installs a profile and regenerates all session content.
func (m *Model) enterSession(p model.Profile) {
	m.profile = p
	m.tracker = stats.NewTracker()
	m.players = newPlayerPool()
	m.categoryFilter = ""

	tracker := m.tracker
	m.allReels = m.gen.GenerateReels(p.Skills, p.Interests)
	m.feedNav = feed.NewNavigator(m.allReels, m.players,
		feed.WithOnView(func(id string) { tracker.ReelWatched(id) }))

	m.allCards = m.gen.GenerateFlashcards(p.Skills, p.Interests)
	m.studyNav = study.NewNavigator(m.allCards,
		study.WithGradeSink(func(id string, correct bool) { tracker.CardGraded(id, correct) }))

	m.dir = groups.NewDirectory(catalog.GlobalGroup, catalog.Groups, catalog.FeaturedGroupCount, p,
		catalog.GlobalGroupID)
	m.tracker.SetJoinedGroups(m.dir.JoinedCount())

	m.groupsList = list.New(nil, GroupDelegate{Theme: m.theme}, 0, 0)
	m.groupsList.SetShowTitle(false)
	m.groupsList.SetShowStatusBar(false)
	m.groupsList.SetShowHelp(false)
	m.groupsList.SetFilteringEnabled(false)
	m.refreshGroupItems()

	m.comments = make(map[string][]model.Comment)
	m.focus = focusMain
	m.activeTab = startTab(m.cfg.UI.StartTab)
	m.layout()
}

func startTab(name string) tab {
	switch name {
	case "study":
		return tabStudy
	case "groups":
		return tabGroups
	case "profile":
		return tabProfile
	default:
		return tabHome
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.watchCmd()}
	if m.authForm != nil {
		cmds = append(cmds, m.authForm.Init())
	}
	return tea.Batch(cmds...)
}

// watchCmd blocks on the store watcher's change channel.
func (m *Model) watchCmd() tea.Cmd {
	if m.fw == nil {
		return nil
	}
	ch := m.fw.Changed()
	return func() tea.Msg {
		<-ch
		return FileChangedMsg{}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case transitionDoneMsg:
		if m.feedNav != nil && msg.seq == m.transitionSeq {
			m.feedNav.CompleteTransition()
		}
		return m, nil

	case transitionWatchdogMsg:
		if m.feedNav != nil && msg.seq == m.transitionSeq && m.feedNav.Transitioning() {
			debug.Log("ui: transition completion lost, watchdog recovered")
			m.feedNav.CompleteTransition()
		}
		return m, nil

	case FileChangedMsg:
		return m.reloadProfile()

	case watcherErrMsg:
		debug.Log("ui: store watcher: %v", msg.err)
		return m, nil

	case shareDoneMsg:
		switch msg.outcome.Method {
		case share.MethodNative:
			return m.withNotice("Shared!", false)
		case share.MethodClipboard:
			return m.withNotice("Link copied to clipboard!", false)
		default:
			return m.withNotice("Copy manually: "+truncate(msg.outcome.Text, 60), false)
		}

	case exportDoneMsg:
		if msg.err != nil {
			return m.withNotice("Export failed: "+msg.err.Error(), true)
		}
		m.lastExportDir = msg.dir
		return m.withNotice("Progress charts written to "+msg.dir, false)

	case noticeExpireMsg:
		if msg.id == m.noticeSeq {
			m.notice = ""
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
	}

	switch m.focus {
	case focusAuth:
		return m.updateAuth(msg)
	case focusSetup, focusEditForm:
		return m.updateSetup(msg)
	case focusJoinForm:
		return m.updateJoin(msg)
	case focusComments:
		return m.updateComments(msg)
	case focusHelp:
		return m.updateHelp(msg)
	default:
		return m.updateMain(msg)
	}
}

// reloadProfile re-reads the store after an external change.
func (m Model) reloadProfile() (tea.Model, tea.Cmd) {
	rearm := m.watchCmd()

	p, ok, err := m.st.LoadProfile()
	if err != nil {
		debug.Log("ui: reload after store change failed: %v", err)
		return m, rearm
	}
	if !ok {
		if m.focus != focusAuth {
			// Signed out from another process.
			m.focus = focusAuth
			m.authForm = m.buildAuthForm()
			var cmd tea.Cmd
			if m.authForm != nil {
				cmd = m.authForm.Init()
			}
			return m, tea.Batch(rearm, cmd)
		}
		return m, rearm
	}
	if profilesEqual(p, m.profile) {
		return m, rearm
	}

	m.enterSession(p)
	next, cmd := m.withNotice("Profile reloaded from disk", false)
	return next, tea.Batch(rearm, cmd)
}

func profilesEqual(a, b model.Profile) bool {
	if a.ID != b.ID || a.Name != b.Name || a.College != b.College ||
		a.Branch != b.Branch || a.Year != b.Year || a.Bio != b.Bio || a.Email != b.Email {
		return false
	}
	return stringSlicesEqual(a.Skills, b.Skills) && stringSlicesEqual(a.Interests, b.Interests)
}

func stringSlicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// updateMain handles keys while no overlay is active.
func (m Model) updateMain(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateTab(msg)
	}

	// The groups search input swallows printable keys while focused.
	if m.activeTab == tabGroups && m.searching {
		return m.updateGroups(msg)
	}

	switch keyMsg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "?":
		m.openHelp()
		return m, nil
	case "1":
		m.activeTab = tabHome
		return m, nil
	case "2":
		m.activeTab = tabStudy
		return m, nil
	case "3":
		m.activeTab = tabGroups
		return m, nil
	case "4":
		m.activeTab = tabProfile
		return m, nil
	case "tab":
		m.activeTab = (m.activeTab + 1) % numTabs
		return m, nil
	case "shift+tab":
		m.activeTab = (m.activeTab + numTabs - 1) % numTabs
		return m, nil
	case "f":
		if m.activeTab == tabHome || m.activeTab == tabStudy {
			m.cycleCategoryFilter()
			return m, nil
		}
	}

	return m.updateTab(msg)
}

func (m Model) updateTab(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.activeTab {
	case tabHome:
		return m.updateFeed(msg)
	case tabStudy:
		return m.updateStudy(msg)
	case tabGroups:
		return m.updateGroups(msg)
	default:
		return m.updateProfile(msg)
	}
}

// cycleCategoryFilter steps all -> cat1 -> cat2 -> ... -> all.
func (m *Model) cycleCategoryFilter() {
	cats := m.profile.Categories()
	if len(cats) == 0 {
		return
	}
	next := ""
	if m.categoryFilter == "" {
		next = cats[0]
	} else {
		for i, c := range cats {
			if c == m.categoryFilter && i+1 < len(cats) {
				next = cats[i+1]
				break
			}
		}
	}
	m.setCategoryFilter(next)
}

// setCategoryFilter re-slices feed and study content, preserving the
// per-item flags and counters accumulated so far.
func (m *Model) setCategoryFilter(cat string) {
	m.syncBack()
	m.categoryFilter = cat

	reels := m.allReels
	cards := m.allCards
	if cat != "" {
		reels = nil
		for _, r := range m.allReels {
			if r.Category == cat {
				reels = append(reels, r)
			}
		}
		cards = nil
		for _, c := range m.allCards {
			if c.Category == cat {
				cards = append(cards, c)
			}
		}
	}

	m.feedNav.SetReels(reels)
	m.studyNav.Reset(cards)
}

// syncBack folds the navigators' working slices back into the
// canonical all-content slices before they are re-sliced.
func (m *Model) syncBack() {
	byReel := make(map[string]model.Reel, m.feedNav.Len())
	for _, r := range m.feedNav.Reels() {
		byReel[r.ID] = r
	}
	for i, r := range m.allReels {
		if cur, ok := byReel[r.ID]; ok {
			m.allReels[i] = cur
		}
	}

	byCard := make(map[string]model.Flashcard, m.studyNav.Len())
	for _, c := range m.studyNav.Cards() {
		byCard[c.ID] = c
	}
	for i, c := range m.allCards {
		if cur, ok := byCard[c.ID]; ok {
			m.allCards[i] = cur
		}
	}
}

// withNotice sets the transient status line and schedules its expiry.
func (m Model) withNotice(text string, isErr bool) (Model, tea.Cmd) {
	m.notice = text
	m.noticeErr = isErr
	m.noticeSeq++
	id := m.noticeSeq
	return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg { return noticeExpireMsg{id: id} })
}

// layout recomputes child component sizes after a resize.
func (m *Model) layout() {
	if m.width == 0 {
		return
	}
	contentHeight := m.height - 6 // header + tabs + footer
	if contentHeight < 4 {
		contentHeight = 4
	}
	if m.feedNav != nil {
		m.groupsList.SetSize(m.width-4, contentHeight-3)
	}
	m.commentsVP.Width = min(m.width-8, 70)
	m.commentsVP.Height = max(contentHeight-8, 4)
	m.helpVP.Width = min(m.width-8, 78)
	m.helpVP.Height = max(contentHeight-2, 4)
	m.commentInput.Width = m.commentsVP.Width - 4
	m.searchInput.Width = min(m.width-10, 50)
}

// exportDir returns the directory progress charts are written to.
func (m Model) exportDir() string {
	base := config.DataDir()
	if base == "" {
		return "edugram-export"
	}
	return filepath.Join(base, "exports")
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "loading..."
	}

	switch m.focus {
	case focusAuth:
		return m.viewAuth()
	case focusSetup, focusEditForm:
		return m.viewSetup()
	case focusJoinForm:
		return m.viewJoin()
	case focusHelp:
		return m.viewHelp()
	}

	var content string
	switch m.activeTab {
	case tabHome:
		content = m.viewFeed()
	case tabStudy:
		content = m.viewStudy()
	case tabGroups:
		content = m.viewGroups()
	default:
		content = m.viewProfile()
	}

	page := lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		m.viewTabs(),
		content,
		m.viewFooter(),
	)

	if m.focus == focusComments {
		return m.overlayOn(page, m.viewComments())
	}
	return page
}

func (m Model) viewHeader() string {
	t := m.theme
	left := t.Header.Render("EduGram")
	right := t.MutedText.Render(fmt.Sprintf("%s • score %d", m.profile.Name, m.tracker.Score()))
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + lipgloss.NewStyle().Width(gap).Render("") + right
}

func (m Model) viewTabs() string {
	t := m.theme
	parts := make([]string, 0, numTabs)
	for i := tab(0); i < numTabs; i++ {
		label := fmt.Sprintf("%d %s", i+1, i)
		if i == m.activeTab {
			parts = append(parts, t.TabActive.Render(label))
		} else {
			parts = append(parts, t.TabIdle.Render(label))
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Bottom, parts...)
	if m.categoryFilter != "" {
		row += "  " + t.AccentBold.Render("filter: "+m.categoryFilter)
	}
	return row
}

func (m Model) viewFooter() string {
	t := m.theme
	if m.notice != "" {
		if m.noticeErr {
			return t.ErrNotice.Render(m.notice)
		}
		return t.Notice.Render(m.notice)
	}
	return t.MutedText.Render(m.footerHint())
}

func (m Model) footerHint() string {
	switch m.activeTab {
	case tabHome:
		return "j/k next/prev • l like • b save • m mute • space pause • c comments • s share • L more • f filter • ? help • q quit"
	case tabStudy:
		return "j/k next/prev • enter flip • y/n grade • B save • r reset • f filter • ? help • q quit"
	case tabGroups:
		return "/ search • j/k move • enter join • ? help • q quit"
	default:
		return "s share profile • x export charts • e edit • o sign out • ? help • q quit"
	}
}

// overlayOn centers overlay content on top of the page background.
func (m Model) overlayOn(page, overlay string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
}
