package tui

import (
	"strings"

	"github.com/PolarWolf314/cloudsafe/internal/theme"

	"github.com/charmbracelet/lipgloss"
)

// styles are rebuilt from the palette on every render so a theme toggle
// shows up immediately.
type styles struct {
	title   lipgloss.Style
	text    lipgloss.Style
	muted   lipgloss.Style
	accent  lipgloss.Style
	success lipgloss.Style
	danger  lipgloss.Style
	box     lipgloss.Style
	palette theme.Palette
}

func newStyles(p theme.Palette) styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		text:    lipgloss.NewStyle().Foreground(p.Text),
		muted:   lipgloss.NewStyle().Foreground(p.Muted),
		accent:  lipgloss.NewStyle().Foreground(p.Accent),
		success: lipgloss.NewStyle().Bold(true).Foreground(p.Success),
		danger:  lipgloss.NewStyle().Bold(true).Foreground(p.Danger),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		palette: p,
	}
}

// bar renders a horizontal bar of width cells with filled cells in fg.
func (s styles) bar(width, filled int, fg lipgloss.Color) string {
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	on := lipgloss.NewStyle().Foreground(fg).Render(strings.Repeat("█", filled))
	off := lipgloss.NewStyle().Foreground(s.palette.Empty).Render(strings.Repeat("░", width-filled))
	return on + off
}

const helpSeparator = " • "

func helpLine(s styles, keys ...string) string {
	return s.muted.Render(strings.Join(keys, helpSeparator))
}
