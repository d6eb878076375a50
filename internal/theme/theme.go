// Package theme holds the light/dark presentation flag.
//
// The flag is process-wide but explicit: it is read once from a marker with
// Init and only changes through Toggle. Nothing is persisted.
package theme

import (
	"fmt"
	"strings"
	"sync"

	kerrors "github.com/PolarWolf314/cloudsafe/internal/errors"

	"github.com/charmbracelet/lipgloss"
)

// EnvMarker is the environment variable consulted when no flag is given.
const EnvMarker = "CLOUDSAFE_THEME"

type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ParseMode accepts "light" or "dark" in any case.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	}
	return "", fmt.Errorf("%q: %w", s, kerrors.ErrInvalidTheme)
}

// Resolve picks the first non-empty marker. Dark is the fallback.
func Resolve(markers ...string) (Mode, error) {
	for _, m := range markers {
		if strings.TrimSpace(m) != "" {
			return ParseMode(m)
		}
	}
	return Dark, nil
}

// State is a theme flag.
type State struct {
	mu          sync.RWMutex
	dark        bool
	initialized bool
}

// Current is the theme of this process. The root command initializes it.
var Current = &State{dark: true}

// Init sets the mode the first time it is called and reports whether it did.
func (s *State) Init(m Mode) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return false
	}
	s.dark = m == Dark
	s.initialized = true
	return true
}

// Toggle flips the mode and returns the new one.
func (s *State) Toggle() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dark = !s.dark
	return s.modeLocked()
}

func (s *State) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.modeLocked()
}

func (s *State) IsDark() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dark
}

func (s *State) modeLocked() Mode {
	if s.dark {
		return Dark
	}
	return Light
}

// Palette returns the colors for the current mode.
func (s *State) Palette() Palette {
	if s.IsDark() {
		return DarkPalette()
	}
	return LightPalette()
}

// Palette is the set of colors the interactive views draw with.
type Palette struct {
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Accent  lipgloss.Color
	Border  lipgloss.Color
	Empty   lipgloss.Color
	Success lipgloss.Color
	Danger  lipgloss.Color
}

func LightPalette() Palette {
	return Palette{
		Text:    lipgloss.Color("#0f172a"),
		Muted:   lipgloss.Color("#64748b"),
		Accent:  lipgloss.Color("#0891b2"),
		Border:  lipgloss.Color("#cbd5e1"),
		Empty:   lipgloss.Color("#e2e8f0"),
		Success: lipgloss.Color("#16a34a"),
		Danger:  lipgloss.Color("#dc2626"),
	}
}

func DarkPalette() Palette {
	return Palette{
		Text:    lipgloss.Color("#e2e8f0"),
		Muted:   lipgloss.Color("#94a3b8"),
		Accent:  lipgloss.Color("#22d3ee"),
		Border:  lipgloss.Color("#475569"),
		Empty:   lipgloss.Color("#334155"),
		Success: lipgloss.Color("#4ade80"),
		Danger:  lipgloss.Color("#f87171"),
	}
}
