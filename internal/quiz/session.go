// Package quiz runs the multiple-choice comprehension quiz.
//
// A session moves through each question in order. Picking an option locks
// the question; the score goes up by one only when the first and only pick
// is the correct option. Advancing is allowed only once the question is
// locked, and advancing past the last question finishes the session.
package quiz

// Feedback and navigation captions.
const (
	CorrectCaption   = "Jawaban Benar!"
	IncorrectCaption = "Kurang Tepat."
	NextCaption      = "Pertanyaan Selanjutnya"
	FinishCaption    = "Lihat Skor"
	RestartCaption   = "Coba Lagi"

	perfectVerdict = "Luar biasa! Kamu siap jadi Cloud Security Expert. 🛡️"
	partialVerdict = "Bagus! Tetap pelajari cara menjaga data tetap aman. 📚"
)

// Session is one run through the quiz.
type Session struct {
	questions []Question
	index     int
	score     int
	selected  int
	locked    bool
	finished  bool
}

// NewSession starts a session over the fixed question set.
func NewSession() *Session {
	return NewSessionWith(Questions())
}

// NewSessionWith starts a session over qs, which must not be empty.
func NewSessionWith(qs []Question) *Session {
	s := &Session{questions: qs}
	s.Restart()
	return s
}

// SelectOption records the answer for the current question and locks it.
// It returns false without side effects when the question is already
// locked, the session is finished, or index is not a valid option.
func (s *Session) SelectOption(index int) bool {
	if s.locked || s.finished {
		return false
	}
	q := s.questions[s.index]
	if index < 0 || index >= len(q.Options) {
		return false
	}

	s.selected = index
	s.locked = true
	if index == q.CorrectAnswer {
		s.score++
	}
	return true
}

// Advance moves past a locked question. On the last question it finishes
// the session instead. It returns false when the current question is not
// locked yet.
func (s *Session) Advance() bool {
	if !s.locked || s.finished {
		return false
	}

	s.selected = -1
	s.locked = false
	if s.index+1 < len(s.questions) {
		s.index++
	} else {
		s.finished = true
	}
	return true
}

// Restart returns to the first question with a zero score.
func (s *Session) Restart() {
	s.index = 0
	s.score = 0
	s.selected = -1
	s.locked = false
	s.finished = false
}

func (s *Session) Index() int     { return s.index }
func (s *Session) Score() int     { return s.score }
func (s *Session) Total() int     { return len(s.questions) }
func (s *Session) Locked() bool   { return s.locked }
func (s *Session) Finished() bool { return s.finished }

// Current returns the question being answered.
func (s *Session) Current() Question {
	return s.questions[s.index]
}

// Selected returns the chosen option for the current question, if any.
func (s *Session) Selected() (int, bool) {
	return s.selected, s.selected >= 0
}

// AnsweredCorrectly reports whether the locked answer is correct.
func (s *Session) AnsweredCorrectly() bool {
	return s.locked && s.selected == s.questions[s.index].CorrectAnswer
}

// Progress is the fraction of questions reached, counting the current one.
func (s *Session) Progress() float64 {
	return float64(s.index+1) / float64(len(s.questions))
}

// IsLast reports whether the current question is the final one.
func (s *Session) IsLast() bool {
	return s.index == len(s.questions)-1
}

// Feedback is the caption shown once the current question is locked.
func (s *Session) Feedback() string {
	if !s.locked {
		return ""
	}
	if s.AnsweredCorrectly() {
		return CorrectCaption
	}
	return IncorrectCaption
}

// AdvanceCaption is the label for the button that moves on.
func (s *Session) AdvanceCaption() string {
	if s.IsLast() {
		return FinishCaption
	}
	return NextCaption
}

// Verdict is the closing message for a finished session.
func (s *Session) Verdict() string {
	if s.score == len(s.questions) {
		return perfectVerdict
	}
	return partialVerdict
}
