package tui

import (
	"fmt"
	"strings"

	"github.com/PolarWolf314/cloudsafe/internal/quiz"
	"github.com/PolarWolf314/cloudsafe/internal/theme"

	tea "github.com/charmbracelet/bubbletea"
)

const progressWidth = 30

// QuizModel walks a quiz.Session with the keyboard.
type QuizModel struct {
	session *quiz.Session
	theme   *theme.State
	cursor  int
}

func NewQuizModel(session *quiz.Session, th *theme.State) QuizModel {
	return QuizModel{session: session, theme: th}
}

func (m QuizModel) Init() tea.Cmd {
	return nil
}

// Session exposes the underlying session, mostly for the final score.
func (m QuizModel) Session() *quiz.Session {
	return m.session
}

func (m QuizModel) Cursor() int {
	return m.cursor
}

func (m QuizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		return m, tea.Quit
	case "ctrl+t":
		m.theme.Toggle()
		return m, nil
	}

	if m.session.Finished() {
		if key.String() == "r" {
			m.session.Restart()
			m.cursor = 0
		}
		return m, nil
	}

	options := len(m.session.Current().Options)
	switch key.String() {
	case "up", "k":
		if !m.session.Locked() && m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if !m.session.Locked() && m.cursor < options-1 {
			m.cursor++
		}
	case "1", "2", "3", "4":
		i := int(key.Runes[0] - '1')
		if m.session.SelectOption(i) {
			m.cursor = i
		}
	case "enter", " ":
		if !m.session.Locked() {
			m.session.SelectOption(m.cursor)
			return m, nil
		}
		if m.session.Advance() {
			m.cursor = 0
		}
	}
	return m, nil
}

func (m QuizModel) View() string {
	s := newStyles(m.theme.Palette())
	var b strings.Builder

	if m.session.Finished() {
		b.WriteString(s.title.Render("Kuis Selesai!"))
		b.WriteString("\n\n")
		b.WriteString(s.text.Render(fmt.Sprintf("Skor kamu: %d / %d", m.session.Score(), m.session.Total())))
		b.WriteString("\n")
		b.WriteString(s.accent.Render(m.session.Verdict()))
		b.WriteString("\n\n")
		b.WriteString(helpLine(s, "r "+quiz.RestartCaption, "q keluar"))
		b.WriteString("\n")
		return b.String()
	}

	q := m.session.Current()
	filled := int(m.session.Progress() * progressWidth)
	b.WriteString(s.muted.Render(fmt.Sprintf("Pertanyaan %d dari %d", m.session.Index()+1, m.session.Total())))
	b.WriteString("\n")
	b.WriteString(s.bar(progressWidth, filled, s.palette.Accent))
	b.WriteString("\n\n")
	b.WriteString(s.title.Render(q.Text))
	b.WriteString("\n\n")

	selected, hasSelection := m.session.Selected()
	for i, opt := range q.Options {
		line := fmt.Sprintf("%d. %s", i+1, opt)
		switch {
		case m.session.Locked() && i == q.CorrectAnswer:
			b.WriteString(s.success.Render("✓ " + line))
		case m.session.Locked() && hasSelection && i == selected:
			b.WriteString(s.danger.Render("✗ " + line))
		case m.session.Locked():
			b.WriteString(s.muted.Render("  " + line))
		case i == m.cursor:
			b.WriteString(s.accent.Render("> " + line))
		default:
			b.WriteString(s.text.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if m.session.Locked() {
		b.WriteString("\n")
		if m.session.AnsweredCorrectly() {
			b.WriteString(s.success.Render(m.session.Feedback()))
		} else {
			b.WriteString(s.danger.Render(m.session.Feedback()))
		}
		b.WriteString("\n")
		b.WriteString(s.box.Width(60).Render(s.text.Render(q.Explanation)))
		b.WriteString("\n\n")
		b.WriteString(helpLine(s, "enter "+m.session.AdvanceCaption(), "q keluar"))
	} else {
		b.WriteString("\n")
		b.WriteString(helpLine(s, "↑/↓ pilih", "1-4 jawab", "enter kunci jawaban", "ctrl+t tema", "q keluar"))
	}
	b.WriteString("\n")
	return b.String()
}
