package cmd

import (
	"strings"
	"testing"

	"github.com/PolarWolf314/cloudsafe/internal/quiz"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuiz_PerfectScore(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCLI(t, "quiz", "--answers", "2,3,3,3,4")
	require.NoError(t, err)

	assert.Equal(t, 5, strings.Count(output, quiz.CorrectCaption))
	assert.Contains(t, output, "5/5")
	assert.Contains(t, output, "Luar biasa!")
}

func TestQuiz_PartialScore(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCLI(t, "quiz", "--answers", "1,1,1,1,1")
	require.NoError(t, err)

	assert.Equal(t, 5, strings.Count(output, quiz.IncorrectCaption))
	assert.Contains(t, output, "0/5")
	assert.Contains(t, output, "Bagus!")
}

func TestQuiz_InvalidAnswers(t *testing.T) {
	tests := []struct {
		name    string
		answers string
	}{
		{"out of range", "2,3,3,3,5"},
		{"not a number", "2,x,3,3,4"},
		{"too few", "2,3"},
		{"too many", "2,3,3,3,4,1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestEnvironment(t)

			output, err := runCLI(t, "quiz", "--answers", tt.answers)
			require.NoError(t, err)
			assert.Contains(t, output, "Invalid answers")
			assert.NotContains(t, output, "Skor:")
		})
	}
}
