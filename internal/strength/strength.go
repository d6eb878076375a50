package strength

import (
	"regexp"
	"unicode/utf8"
)

// MaxScore is the highest possible score.
const MaxScore = 4

// minLength is exclusive: a password must be longer than this.
const minLength = 7

var (
	upperRegex  = regexp.MustCompile(`[A-Z]`)
	digitRegex  = regexp.MustCompile(`[0-9]`)
	symbolRegex = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// Result holds the outcome of each individual check.
type Result struct {
	Length    bool `json:"length"`
	Uppercase bool `json:"uppercase"`
	Digit     bool `json:"digit"`
	Symbol    bool `json:"symbol"`
}

// Score counts the satisfied checks.
func (r Result) Score() int {
	score := 0
	for _, ok := range []bool{r.Length, r.Uppercase, r.Digit, r.Symbol} {
		if ok {
			score++
		}
	}
	return score
}

// Checks runs the four checks against password.
func Checks(password string) Result {
	if password == "" {
		return Result{}
	}
	return Result{
		Length:    utf8.RuneCountInString(password) > minLength,
		Uppercase: upperRegex.MatchString(password),
		Digit:     digitRegex.MatchString(password),
		Symbol:    symbolRegex.MatchString(password),
	}
}

// Score returns the strength of password in the range 0..MaxScore.
func Score(password string) int {
	return Checks(password).Score()
}

// Meter reports which of the four meter bars are lit. Bar n (1-based) is lit
// when there is input and the score reaches n.
func Meter(score int, hasInput bool) [MaxScore]bool {
	var bars [MaxScore]bool
	if !hasInput {
		return bars
	}
	for i := range bars {
		bars[i] = score >= i+1
	}
	return bars
}
