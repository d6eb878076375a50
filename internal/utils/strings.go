package utils

import (
	"fmt"
	"strconv"
	"strings"

	kerrors "github.com/PolarWolf314/cloudsafe/internal/errors"

	"github.com/dustin/go-humanize"
)

// keyBlock is the width of each group in GroupKey.
const keyBlock = 8

// FormatSize renders a byte count like "1.2 MB".
func FormatSize(size int64) string {
	if size < 0 {
		size = 0
	}
	return humanize.Bytes(uint64(size))
}

// GroupKey splits a hex key into space-separated blocks of eight.
func GroupKey(key string) string {
	if len(key) <= keyBlock {
		return key
	}
	var b strings.Builder
	for i := 0; i < len(key); i += keyBlock {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := min(i+keyBlock, len(key))
		b.WriteString(key[i:end])
	}
	return b.String()
}

// ParseAnswers parses comma-separated 1-based option numbers into 0-based
// indexes. Each number must lie in 1..options.
func ParseAnswers(s string, options int) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	answers := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 1 || n > options {
			return nil, fmt.Errorf("%q: %w", strings.TrimSpace(p), kerrors.ErrInvalidAnswer)
		}
		answers = append(answers, n-1)
	}
	return answers, nil
}
