package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Formatter renders one kind of output. Without colors it falls back to
// plain decorations around the text.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

func (f Formatter) Sprint(a ...any) string {
	return f.render(fmt.Sprint(a...))
}

func (f Formatter) Sprintf(format string, a ...any) string {
	return f.render(fmt.Sprintf(format, a...))
}

func (f Formatter) render(text string) string {
	if colorDisabled() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// EnsureNewline appends a newline unless s already ends with one.
// Spinner final messages go through it.
func EnsureNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

// colorDisabled honours NO_COLOR (https://no-color.org/) and fatih/color's
// own terminal detection.
func colorDisabled() bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return true
	}
	return color.NoColor
}

var (
	// Code is a command to run, e.g. `cloudsafe simulate <file>`.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Path is the picked file, the download directory or a saved copy.
	Path = Formatter{color: color.New(color.FgYellow)}

	// Flag is a command-line flag such as --stop-at-stored.
	Flag = Formatter{color: color.New(color.FgYellow)}

	// Success marks a finished phase or a correct answer.
	Success = Formatter{color: color.New(color.FgGreen)}

	// Error marks a failed run or a wrong answer.
	Error = Formatter{color: color.New(color.FgRed)}

	// Warning marks a cancelled run or a config file left alone.
	Warning = Formatter{color: color.New(color.FgYellow)}

	// Info marks the "→" next-step hints.
	Info = Formatter{color: color.New(color.FgCyan)}

	// Highlight is a value the user gave: a file name, a picked option, a score.
	Highlight = Formatter{color.New(color.FgCyan), "'", "'"}

	// Key is the SHA-256 key shown once the file is stored.
	Key = Formatter{color: color.New(color.FgMagenta, color.Bold)}

	// Active is the process step explaining the running phase.
	Active = Formatter{color.New(color.FgCyan, color.Bold), "> ", ""}

	// Muted is secondary text: sizes, MIME types, progress counters.
	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)
