package tui

import (
	"fmt"
	"strings"

	"github.com/PolarWolf314/cloudsafe/internal/content"
	"github.com/PolarWolf314/cloudsafe/internal/strength"
	"github.com/PolarWolf314/cloudsafe/internal/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const meterSegmentWidth = 6

// StrengthModel is the live password strength meter.
type StrengthModel struct {
	input    textinput.Model
	text     content.Password
	theme    *theme.State
	revealed bool
	done     bool
}

// NewStrengthModel builds the meter with the password field focused and
// masked.
func NewStrengthModel(text content.Password, th *theme.State) StrengthModel {
	ti := textinput.New()
	ti.Placeholder = text.Placeholder
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.CharLimit = 128
	ti.Width = 40
	ti.Focus()

	return StrengthModel{input: ti, text: text, theme: th}
}

func (m StrengthModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m StrengthModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc", "enter":
			m.done = true
			return m, tea.Quit
		case "ctrl+s":
			m.revealed = !m.revealed
			if m.revealed {
				m.input.EchoMode = textinput.EchoNormal
			} else {
				m.input.EchoMode = textinput.EchoPassword
			}
			return m, nil
		case "ctrl+t":
			m.theme.Toggle()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Password is the current content of the field.
func (m StrengthModel) Password() string {
	return m.input.Value()
}

// Revealed reports whether the field shows plain text.
func (m StrengthModel) Revealed() bool {
	return m.revealed
}

func (m StrengthModel) View() string {
	s := newStyles(m.theme.Palette())
	pw := m.input.Value()
	score := strength.Score(pw)
	level := strength.Label(score)

	var b strings.Builder
	b.WriteString(s.title.Render("Cek Kekuatan Password"))
	b.WriteString("\n")
	b.WriteString(s.muted.Width(60).Render(m.text.Intro))
	b.WriteString("\n\n")
	b.WriteString(s.box.Render(m.input.View()))
	b.WriteString("\n")

	lit := lipgloss.Color(level.Color)
	segments := make([]string, 0, strength.MaxScore)
	for _, on := range strength.Meter(score, pw != "") {
		filled := 0
		if on {
			filled = meterSegmentWidth
		}
		segments = append(segments, s.bar(meterSegmentWidth, filled, lit))
	}
	b.WriteString(strings.Join(segments, " "))
	b.WriteString("\n")

	if pw == "" {
		b.WriteString(s.muted.Render(strength.IdleCaption))
	} else {
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lit).Render(level.Text))
	}
	b.WriteString("\n\n")

	checks := strength.Checks(pw)
	passed := []bool{checks.Length, checks.Uppercase, checks.Digit, checks.Symbol}
	for i, tip := range m.text.Tips {
		if i < len(passed) && passed[i] {
			b.WriteString(s.success.Render("✓ "))
			b.WriteString(s.text.Render(tip))
		} else {
			b.WriteString(s.muted.Render("• " + tip))
		}
		b.WriteString("\n")
	}

	visibility := "ctrl+s tampilkan"
	if m.revealed {
		visibility = "ctrl+s sembunyikan"
	}
	b.WriteString("\n")
	b.WriteString(helpLine(s, visibility, fmt.Sprintf("ctrl+t tema (%s)", m.theme.Mode()), "enter/esc selesai"))
	b.WriteString("\n")
	return b.String()
}
