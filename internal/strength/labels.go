package strength

// IdleCaption is shown instead of a label while the field is empty.
const IdleCaption = "Menunggu input..."

// Level is the display label for a score.
type Level struct {
	Text  string
	Color string // hex RGB
}

var levels = map[int]Level{
	0: {Text: "Sangat Lemah", Color: "#94a3b8"},
	1: {Text: "Lemah", Color: "#ef4444"},
	2: {Text: "Sedang", Color: "#eab308"},
	3: {Text: "Kuat", Color: "#3b82f6"},
	4: {Text: "Sangat Kuat", Color: "#22c55e"},
}

// unknownLevel is returned for scores outside 0..MaxScore.
var unknownLevel = Level{Text: "", Color: "#e2e8f0"}

// Label maps a score to its severity label and color.
func Label(score int) Level {
	if l, ok := levels[score]; ok {
		return l
	}
	return unknownLevel
}

// Caption is the text shown under the meter for the given input.
func Caption(password string) string {
	if password == "" {
		return IdleCaption
	}
	return Label(Score(password)).Text
}
