package tui

import (
	"testing"

	"github.com/PolarWolf314/cloudsafe/internal/quiz"
	"github.com/PolarWolf314/cloudsafe/internal/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(m tea.Model, keys ...tea.KeyMsg) tea.Model {
	for _, k := range keys {
		m, _ = m.Update(k)
	}
	return m
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
)

func digit(d rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{d}}
}

func TestQuizModel_CursorStaysInRange(t *testing.T) {
	var m tea.Model = NewQuizModel(quiz.NewSession(), &theme.State{})

	m = press(m, keyUp)
	assert.Equal(t, 0, m.(QuizModel).Cursor())

	m = press(m, keyDown, keyDown, keyDown, keyDown, keyDown)
	assert.Equal(t, 3, m.(QuizModel).Cursor())
}

func TestQuizModel_EnterLocksThenAdvances(t *testing.T) {
	session := quiz.NewSession()
	var m tea.Model = NewQuizModel(session, &theme.State{})

	// First question's correct answer is the second option.
	m = press(m, keyDown, keyEnter)
	require.True(t, session.Locked())
	assert.Equal(t, 1, session.Score())
	assert.Contains(t, m.View(), quiz.CorrectCaption)
	assert.Contains(t, m.View(), quiz.NextCaption)

	m = press(m, keyEnter)
	assert.Equal(t, 1, session.Index())
	assert.False(t, session.Locked())
	assert.Equal(t, 0, m.(QuizModel).Cursor())
}

func TestQuizModel_DigitsAnswerDirectly(t *testing.T) {
	session := quiz.NewSession()
	var m tea.Model = NewQuizModel(session, &theme.State{})

	m = press(m, digit('1'))
	require.True(t, session.Locked())
	assert.Equal(t, 0, session.Score())
	assert.Contains(t, m.View(), quiz.IncorrectCaption)

	// A locked question ignores further picks.
	m = press(m, digit('2'))
	assert.Equal(t, 0, session.Score())
	assert.Equal(t, 0, m.(QuizModel).Cursor())
}

func TestQuizModel_FullRunAndRestart(t *testing.T) {
	session := quiz.NewSession()
	var m tea.Model = NewQuizModel(session, &theme.State{})

	for _, q := range quiz.Questions() {
		m = press(m, digit(rune('1'+q.CorrectAnswer)), keyEnter)
	}
	require.True(t, session.Finished())
	assert.Equal(t, session.Total(), session.Score())
	assert.Contains(t, m.View(), session.Verdict())

	m = press(m, digit('r'))
	assert.False(t, session.Finished())
	assert.Equal(t, 0, session.Index())
	assert.Equal(t, 0, session.Score())
}

func TestQuizModel_Quit(t *testing.T) {
	m := NewQuizModel(quiz.NewSession(), &theme.State{})
	_, cmd := m.Update(digit('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
