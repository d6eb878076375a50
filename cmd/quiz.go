package cmd

import (
	"errors"
	"fmt"

	kerrors "github.com/PolarWolf314/cloudsafe/internal/errors"
	"github.com/PolarWolf314/cloudsafe/internal/quiz"
	"github.com/PolarWolf314/cloudsafe/internal/theme"
	"github.com/PolarWolf314/cloudsafe/internal/tui"
	"github.com/PolarWolf314/cloudsafe/internal/ui"
	"github.com/PolarWolf314/cloudsafe/internal/utils"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var quizAnswers string

func init() {
	quizCmd.Flags().StringVar(&quizAnswers, "answers", "", "comma-separated option numbers (1-4), one per question")
}

func resetQuizCommandState() {
	quizAnswers = ""
	if f := quizCmd.Flags().Lookup("answers"); f != nil {
		f.Changed = false
	}
}

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Answer five questions about cloud security",
	Long: `Asks five multiple-choice questions. Each question locks after the first
answer and shows an explanation; the score counts first answers only.

Examples:
  # Play interactively
  cloudsafe quiz

  # Answer every question up front
  cloudsafe quiz --answers 2,3,3,3,4`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting quiz command")
		session := quiz.NewSession()

		if !cmd.Flags().Changed("answers") {
			Logger.Debugf("Opening interactive quiz")
			final, err := tea.NewProgram(tui.NewQuizModel(session, theme.Current)).Run()
			if err != nil {
				return Logger.ErrorfAndReturn("Quiz failed: %v", err)
			}
			if m, ok := final.(tui.QuizModel); ok {
				Logger.Infof("Quiz closed at question %d with score %d", m.Session().Index()+1, m.Session().Score())
			}
			return nil
		}

		answers, err := utils.ParseAnswers(quizAnswers, len(session.Current().Options))
		if err != nil {
			Logger.Errorf("Invalid answers %q: %v", quizAnswers, err)
			fmt.Println(answersErrorMessage(err, session.Total()))
			return nil
		}
		if len(answers) != session.Total() {
			fmt.Println(answersErrorMessage(kerrors.ErrInvalidAnswer, session.Total()))
			return nil
		}

		runScriptedQuiz(session, answers)
		return nil
	},
}

// runScriptedQuiz plays one answer per question and prints the feedback.
func runScriptedQuiz(session *quiz.Session, answers []int) {
	for _, answer := range answers {
		q := session.Current()
		session.SelectOption(answer)
		Logger.Debugf("Question %d: picked %d, correct %d", q.ID, answer, q.CorrectAnswer)

		fmt.Printf("%s %s\n", ui.Muted.Sprintf("%d/%d", session.Index()+1, session.Total()), q.Text)
		if session.AnsweredCorrectly() {
			fmt.Println("  " + ui.Success.Sprint("✓") + " " + session.Feedback() + " " + ui.Highlight.Sprint(q.Options[answer]))
		} else {
			fmt.Println("  " + ui.Error.Sprint("✗") + " " + session.Feedback() + " " +
				ui.Highlight.Sprint(q.Options[answer]) + " → " + ui.Success.Sprint(q.Options[q.CorrectAnswer]))
		}
		fmt.Println("  " + q.Explanation)
		fmt.Println()
		session.Advance()
	}

	fmt.Printf("Skor: %s\n", ui.Highlight.Sprintf("%d/%d", session.Score(), session.Total()))
	fmt.Println(session.Verdict())
}

func answersErrorMessage(err error, total int) string {
	msg := ui.Error.Sprint("✗") + " Invalid answers"
	if !errors.Is(err, kerrors.ErrInvalidAnswer) {
		msg += ": " + err.Error()
	}
	return msg + "\n" +
		ui.Info.Sprint("→") + fmt.Sprintf(" Give exactly %d numbers from 1 to 4, like ", total) + ui.Code.Sprint("--answers 2,3,3,3,4")
}
