package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PolarWolf314/cloudsafe/internal/content"
	"github.com/PolarWolf314/cloudsafe/internal/strength"
	"github.com/PolarWolf314/cloudsafe/internal/theme"
	"github.com/PolarWolf314/cloudsafe/internal/tui"
	"github.com/PolarWolf314/cloudsafe/internal/ui"
	"github.com/PolarWolf314/cloudsafe/internal/utils"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var strengthJSON bool

func init() {
	strengthCmd.Flags().BoolVar(&strengthJSON, "json", false, "output in JSON format")
}

func resetStrengthCommandState() {
	strengthJSON = false
}

// strengthReport is the --json shape.
type strengthReport struct {
	Score  int             `json:"score"`
	Label  string          `json:"label"`
	Color  string          `json:"color"`
	Meter  [4]bool         `json:"meter"`
	Checks strength.Result `json:"checks"`
}

var strengthCmd = &cobra.Command{
	Use:   "strength [password]",
	Short: "Grade a password with the strength meter",
	Long: `Scores a password from 0 to 4: one point each for more than 7 characters,
an uppercase letter, a digit and a symbol.

Without an argument the password is read from piped stdin, or typed into an
interactive meter when stdin is a terminal. When only stdin is a terminal
the password is read without echo. Don't use your real password.

Examples:
  # Open the interactive meter
  cloudsafe strength

  # Grade a single password
  cloudsafe strength 'Rahasia123!'

  # Grade the first line of stdin as JSON
  echo 'Rahasia123!' | cloudsafe strength --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting strength command")

		text, err := content.Load()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to load narrative text: %v", err)
		}

		var password string
		switch {
		case len(args) == 1:
			Logger.Debugf("Reading password from argument")
			password = args[0]
		case !utils.IsTerminal():
			Logger.Debugf("Reading password from stdin")
			data, err := utils.ReadStdin()
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to read stdin: %v", err)
			}
			password = utils.FirstLine(data)
		case !utils.IsStdoutTerminal():
			Logger.Debugf("Stdout is not a terminal, reading password without echo")
			password, err = utils.ReadPassword(text.Password.Placeholder + " ")
			if err != nil {
				return Logger.ErrorfAndReturn("Failed to read password: %v", err)
			}
		default:
			Logger.Debugf("Opening interactive strength meter")
			return runInteractiveStrength(text.Password)
		}

		if strengthJSON {
			return printStrengthJSON(password)
		}
		printStrengthText(text.Password, password)
		return nil
	},
}

func runInteractiveStrength(text content.Password) error {
	model := tui.NewStrengthModel(text, theme.Current)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return Logger.ErrorfAndReturn("Strength meter failed: %v", err)
	}
	if m, ok := final.(tui.StrengthModel); ok {
		Logger.Infof("Final score: %d", strength.Score(m.Password()))
	}
	return nil
}

func printStrengthJSON(password string) error {
	score := strength.Score(password)
	level := strength.Label(score)
	report := strengthReport{
		Score:  score,
		Label:  level.Text,
		Color:  level.Color,
		Meter:  strength.Meter(score, password != ""),
		Checks: strength.Checks(password),
	}
	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return Logger.ErrorfAndReturn("Failed to marshal report to JSON: %v", err)
	}
	fmt.Println(string(output))
	return nil
}

func printStrengthText(text content.Password, password string) {
	score := strength.Score(password)

	var bars strings.Builder
	for _, lit := range strength.Meter(score, password != "") {
		if lit {
			bars.WriteString("■")
		} else {
			bars.WriteString("□")
		}
	}

	caption := strength.Caption(password)
	if password != "" {
		caption = levelFormatter(score).Sprint(caption)
	}
	fmt.Printf("%s %s %s\n", bars.String(), caption, ui.Muted.Sprintf("%d/%d", score, strength.MaxScore))

	checks := strength.Checks(password)
	passed := []bool{checks.Length, checks.Uppercase, checks.Digit, checks.Symbol}
	for i, tip := range text.Tips {
		if i < len(passed) && passed[i] {
			fmt.Println("  " + ui.Success.Sprint("✓") + " " + tip)
		} else {
			fmt.Println("  " + ui.Error.Sprint("✗") + " " + tip)
		}
	}
}

func levelFormatter(score int) ui.Formatter {
	switch {
	case score >= 4:
		return ui.Success
	case score == 3:
		return ui.Info
	case score == 2:
		return ui.Warning
	case score == 1:
		return ui.Error
	}
	return ui.Muted
}
