package ui

import (
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"
)

// TermProfile holds the detected terminal color profile. Computed once at
// package init so every style helper can branch without re-detecting.
var TermProfile colorprofile.Profile

func init() {
	TermProfile = colorprofile.Detect(os.Stdout, os.Environ())
}

// ThemeFg returns the given hex color for ANSI256+ terminals and a safe
// ANSI white (color 7) for 16-color or lower terminals.
func ThemeFg(hex string) lipgloss.TerminalColor {
	if TermProfile < colorprofile.ANSI256 {
		return lipgloss.ANSIColor(7)
	}
	return lipgloss.Color(hex)
}

// Theme bundles edugram's adaptive colors and pre-computed styles.
// Styles are created once at startup instead of per-frame.
type Theme struct {
	Renderer *lipgloss.Renderer

	// Colors
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor

	// Semantic
	Like     lipgloss.AdaptiveColor
	Bookmark lipgloss.AdaptiveColor
	Correct  lipgloss.AdaptiveColor
	Wrong    lipgloss.AdaptiveColor
	Easy     lipgloss.AdaptiveColor
	Medium   lipgloss.AdaptiveColor
	Hard     lipgloss.AdaptiveColor

	// UI Elements
	Border    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor

	// Styles
	Base      lipgloss.Style
	Selected  lipgloss.Style
	Header    lipgloss.Style
	TabActive lipgloss.Style
	TabIdle   lipgloss.Style
	Card      lipgloss.Style
	Overlay   lipgloss.Style
	Notice    lipgloss.Style
	ErrNotice lipgloss.Style

	MutedText     lipgloss.Style
	SecondaryText lipgloss.Style
	PrimaryBold   lipgloss.Style
	AccentBold    lipgloss.Style
}

// DefaultTheme returns the standard purple-accented theme (adaptive).
func DefaultTheme(r *lipgloss.Renderer) Theme {
	t := Theme{
		Renderer: r,

		Primary:   lipgloss.AdaptiveColor{Light: "#6B47D9", Dark: "#BD93F9"},
		Secondary: lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"},
		Subtext:   lipgloss.AdaptiveColor{Light: "#666666", Dark: "#BFBFBF"},
		Accent:    lipgloss.AdaptiveColor{Light: "#B0186E", Dark: "#FF79C6"},

		Like:     lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"},
		Bookmark: lipgloss.AdaptiveColor{Light: "#B06800", Dark: "#FFB86C"},
		Correct:  lipgloss.AdaptiveColor{Light: "#007700", Dark: "#50FA7B"},
		Wrong:    lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"},
		Easy:     lipgloss.AdaptiveColor{Light: "#007700", Dark: "#50FA7B"},
		Medium:   lipgloss.AdaptiveColor{Light: "#B06800", Dark: "#FFB86C"},
		Hard:     lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"},

		Border:    lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#44475A"},
		Highlight: lipgloss.AdaptiveColor{Light: "#E0E0E0", Dark: "#44475A"},
		Muted:     lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"},
	}

	t.Base = r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#F8F8F2"})

	t.Selected = r.NewStyle().
		Background(t.Highlight).
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(t.Primary).
		PaddingLeft(1).
		Bold(true)

	t.Header = r.NewStyle().
		Background(t.Primary).
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#282A36"}).
		Bold(true).
		Padding(0, 1)

	t.TabActive = r.NewStyle().
		Foreground(t.Primary).
		Bold(true).
		Padding(0, 1).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(t.Primary)

	t.TabIdle = r.NewStyle().
		Foreground(t.Muted).
		Padding(0, 1)

	t.Card = r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	t.Overlay = r.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2)

	t.Notice = r.NewStyle().Foreground(t.Correct)
	t.ErrNotice = r.NewStyle().Foreground(t.Wrong).Bold(true)

	t.MutedText = r.NewStyle().Foreground(t.Muted)
	t.SecondaryText = r.NewStyle().Foreground(t.Secondary)
	t.PrimaryBold = r.NewStyle().Foreground(t.Primary).Bold(true)
	t.AccentBold = r.NewStyle().Foreground(t.Accent).Bold(true)

	return t
}

// DifficultyColor maps a flashcard difficulty to its theme color.
func (t Theme) DifficultyColor(d string) lipgloss.AdaptiveColor {
	switch d {
	case "easy":
		return t.Easy
	case "medium":
		return t.Medium
	case "hard":
		return t.Hard
	default:
		return t.Muted
	}
}
