package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/edugram/pkg/export"
	"github.com/vanderheijden86/edugram/pkg/share"
)

// transitionDoneMsg reports that the feed transition animation has
// settled and the cursor may accept input again. The seq ties the
// message to the transition that scheduled it.
type transitionDoneMsg struct{ seq int }

// transitionWatchdogMsg fires if a transition completion went missing.
// Carries the same seq so a watchdog left over from an earlier
// transition cannot end a later one.
type transitionWatchdogMsg struct{ seq int }

// FileChangedMsg is sent when the profile store changes on disk.
type FileChangedMsg struct{}

// watcherErrMsg carries a store-watcher error.
type watcherErrMsg struct{ err error }

// shareDoneMsg carries the outcome of a share action.
type shareDoneMsg struct{ outcome share.Outcome }

// exportDoneMsg reports the result of a chart export.
type exportDoneMsg struct {
	dir string
	err error
}

// noticeExpireMsg clears the transient status notice.
type noticeExpireMsg struct{ id int }

// transitionDelay is the simulated duration of the feed's slide
// animation. Completion is reported through transitionDoneMsg; the
// watchdog at feed.DefaultTransitionTimeout only covers a lost event.
const transitionDelay = 150 * time.Millisecond

func transitionCmds(seq int) tea.Cmd {
	return tea.Batch(
		tea.Tick(transitionDelay, func(time.Time) tea.Msg { return transitionDoneMsg{seq: seq} }),
		watchdogCmd(seq),
	)
}

func watchdogCmd(seq int) tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg { return transitionWatchdogMsg{seq: seq} })
}

func exportChartsCmd(dir string, s export.Summary) tea.Cmd {
	return func() tea.Msg {
		return exportDoneMsg{dir: dir, err: export.WriteProgressCharts(dir, s)}
	}
}
