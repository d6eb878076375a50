package quiz

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type state struct {
	Index    int
	Score    int
	Selected int
	Locked   bool
	Finished bool
}

func stateOf(s *Session) state {
	sel, _ := s.Selected()
	return state{
		Index:    s.Index(),
		Score:    s.Score(),
		Selected: sel,
		Locked:   s.Locked(),
		Finished: s.Finished(),
	}
}

func TestQuestionsFixture(t *testing.T) {
	qs := Questions()
	require.Len(t, qs, 5)

	for i, q := range qs {
		assert.Equal(t, i+1, q.ID)
		assert.GreaterOrEqual(t, q.CorrectAnswer, 0)
		assert.Less(t, q.CorrectAnswer, len(q.Options))
		assert.NotEmpty(t, q.Explanation)
	}

	qs[0].Text = "mutated"
	assert.NotEqual(t, "mutated", Questions()[0].Text, "Questions must return a copy")
}

func TestAllCorrectScoresFive(t *testing.T) {
	s := NewSession()
	for _, q := range Questions() {
		require.True(t, s.SelectOption(q.CorrectAnswer))
		require.True(t, s.Advance())
	}

	assert.True(t, s.Finished())
	assert.Equal(t, 5, s.Score())
	assert.Contains(t, s.Verdict(), "Cloud Security Expert")
}

func TestFirstQuestionCorrectOption(t *testing.T) {
	s := NewSession()
	q := s.Current()
	require.Equal(t, "Agar file tidak bisa dibaca oleh orang yang tidak berhak", q.Options[1])

	require.True(t, s.SelectOption(1))

	want := state{Index: 0, Score: 1, Selected: 1, Locked: true}
	if diff := cmp.Diff(want, stateOf(s)); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, s.AnsweredCorrectly())
	assert.Equal(t, CorrectCaption, s.Feedback())
}

func TestAdvanceBeforeSelectIsNoop(t *testing.T) {
	s := NewSession()
	before := stateOf(s)

	assert.False(t, s.Advance())
	if diff := cmp.Diff(before, stateOf(s)); diff != "" {
		t.Errorf("Advance changed state (-want +got):\n%s", diff)
	}
}

func TestLockedQuestionCannotBeReanswered(t *testing.T) {
	s := NewSession()
	require.True(t, s.SelectOption(0))
	assert.False(t, s.SelectOption(1))

	sel, ok := s.Selected()
	assert.True(t, ok)
	assert.Equal(t, 0, sel)
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, IncorrectCaption, s.Feedback())
}

func TestInvalidOptionRejected(t *testing.T) {
	s := NewSession()
	assert.False(t, s.SelectOption(-1))
	assert.False(t, s.SelectOption(4))
	assert.False(t, s.Locked())
	_, ok := s.Selected()
	assert.False(t, ok)
}

func TestRestartAfterFinish(t *testing.T) {
	s := NewSession()
	for range Questions() {
		s.SelectOption(0)
		s.Advance()
	}
	require.True(t, s.Finished())
	assert.Equal(t, 0, s.Score())
	assert.Contains(t, s.Verdict(), "Tetap pelajari")

	assert.False(t, s.SelectOption(1), "finished session accepts no answers")

	s.Restart()
	want := state{Index: 0, Score: 0, Selected: -1}
	if diff := cmp.Diff(want, stateOf(s)); diff != "" {
		t.Errorf("state after restart (-want +got):\n%s", diff)
	}
}

func TestCaptionsAndProgress(t *testing.T) {
	s := NewSession()
	assert.Equal(t, NextCaption, s.AdvanceCaption())
	assert.InDelta(t, 0.2, s.Progress(), 1e-9)
	assert.Empty(t, s.Feedback())

	for i := 0; i < 4; i++ {
		s.SelectOption(0)
		s.Advance()
	}
	assert.True(t, s.IsLast())
	assert.Equal(t, FinishCaption, s.AdvanceCaption())
	assert.InDelta(t, 1.0, s.Progress(), 1e-9)
}

func TestScoreIncreasesOncePerQuestion(t *testing.T) {
	s := NewSession()
	q := s.Current()
	s.SelectOption(q.CorrectAnswer)
	s.SelectOption(q.CorrectAnswer)
	s.SelectOption(q.CorrectAnswer)
	assert.Equal(t, 1, s.Score())
}
