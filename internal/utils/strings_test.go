package utils

import (
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/cloudsafe/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "0 B", FormatSize(0))
	assert.Equal(t, "0 B", FormatSize(-5))
	assert.Equal(t, "1.5 kB", FormatSize(1500))
	assert.Equal(t, "2.0 MB", FormatSize(2_000_000))
}

func TestGroupKey(t *testing.T) {
	assert.Equal(t, "", GroupKey(""))
	assert.Equal(t, "abcd", GroupKey("abcd"))
	assert.Equal(t, "01234567 89abcdef 0f", GroupKey("0123456789abcdef0f"))
}

func TestParseAnswers(t *testing.T) {
	got, err := ParseAnswers(" 2, 3,3 ,3,4 ", 4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 2, 2, 3}, got)

	got, err = ParseAnswers("", 4)
	require.NoError(t, err)
	assert.Nil(t, got)

	for _, bad := range []string{"0", "5", "a", "1,,2", "-1"} {
		_, err := ParseAnswers(bad, 4)
		assert.ErrorIs(t, err, kerrors.ErrInvalidAnswer, bad)
	}
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "Abcdefg1!", FirstLine([]byte("Abcdefg1!\r\nsecond")))
	assert.Equal(t, "solo", FirstLine([]byte("solo")))
	assert.Equal(t, "", FirstLine(nil))
}

func TestWaitForEnter(t *testing.T) {
	assert.NoError(t, WaitForEnter(strings.NewReader("\n")))
	assert.NoError(t, WaitForEnter(strings.NewReader("")))
}
