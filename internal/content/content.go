// Package content holds the fixed narrative text of the presentation.
//
// The text lives in content.toml, embedded in the binary and decoded once.
// It is static configuration, never computed or mutated at runtime.
package content

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"github.com/PolarWolf314/cloudsafe/internal/simulation"

	"github.com/BurntSushi/toml"
)

//go:embed content.toml
var raw string

// Panel is one page of the narrative tour.
type Panel struct {
	Title   string `toml:"title"`
	Body    string `toml:"body"`
	Command string `toml:"command"`
}

// Step explains what happens during one or more simulation phases.
type Step struct {
	ID          string   `toml:"id"`
	Title       string   `toml:"title"`
	Phases      []string `toml:"phases"`
	Description string   `toml:"description"`
}

// ActiveIn reports whether the step is highlighted during phase p.
func (s Step) ActiveIn(p simulation.Phase) bool {
	return slices.Contains(s.Phases, p.String())
}

// FAQ is one question of the FAQ accordion.
type FAQ struct {
	Question string `toml:"question"`
	Answer   string `toml:"answer"`
}

type Status struct {
	Idle       string `toml:"idle"`
	Uploading  string `toml:"uploading"`
	Encrypting string `toml:"encrypting"`
	Stored     string `toml:"stored"`
	Decrypting string `toml:"decrypting"`
	Complete   string `toml:"complete"`
	Failed     string `toml:"failed"`
}

type Actions struct {
	Encrypt    string `toml:"encrypt"`
	Decrypt    string `toml:"decrypt"`
	Reset      string `toml:"reset"`
	TryAnother string `toml:"try_another"`
}

type Password struct {
	Intro       string   `toml:"intro"`
	Placeholder string   `toml:"placeholder"`
	Tips        []string `toml:"tips"`
}

// Content is the whole narrative.
type Content struct {
	UploadPrompt string   `toml:"upload_prompt"`
	UploadHint   string   `toml:"upload_hint"`
	ActiveFile   string   `toml:"active_file"`
	KeyCaption   string   `toml:"key_caption"`
	Status       Status   `toml:"status"`
	Actions      Actions  `toml:"actions"`
	Steps        []Step   `toml:"steps"`
	Panels       []Panel  `toml:"panels"`
	Password     Password `toml:"password"`
	FAQ          []FAQ    `toml:"faq"`
}

var (
	loadOnce sync.Once
	loaded   *Content
	loadErr  error
)

// Load decodes the embedded narrative. Later calls return the same value.
func Load() (*Content, error) {
	loadOnce.Do(func() {
		loaded, loadErr = Parse(raw)
	})
	return loaded, loadErr
}

// MustLoad is Load for callers that treat broken embedded data as a bug.
func MustLoad() *Content {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes narrative TOML.
func Parse(data string) (*Content, error) {
	var c Content
	md, err := toml.Decode(data, &c)
	if err != nil {
		return nil, fmt.Errorf("decoding content: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown content keys: %v", undecoded)
	}
	for _, step := range c.Steps {
		for _, name := range step.Phases {
			if _, ok := simulation.ParsePhase(name); !ok {
				return nil, fmt.Errorf("step %q: unknown phase %q", step.ID, name)
			}
		}
	}
	return &c, nil
}

// StatusMessage is the one-line status shown for phase p.
func (c *Content) StatusMessage(p simulation.Phase, fileName string) string {
	switch p {
	case simulation.Idle:
		return c.Status.Idle
	case simulation.Uploading:
		return fmt.Sprintf(c.Status.Uploading, fileName)
	case simulation.Encrypting:
		return c.Status.Encrypting
	case simulation.Stored:
		return c.Status.Stored
	case simulation.Decrypting:
		return c.Status.Decrypting
	case simulation.Complete:
		return c.Status.Complete
	case simulation.Failed:
		return c.Status.Failed
	}
	return ""
}

// ActiveStep returns the explanation step highlighted in phase p.
func (c *Content) ActiveStep(p simulation.Phase) (Step, bool) {
	for _, s := range c.Steps {
		if s.ActiveIn(p) {
			return s, true
		}
	}
	return Step{}, false
}

// ResetCaption labels the reset action, which reads differently once done.
func (c *Content) ResetCaption(p simulation.Phase) string {
	if p == simulation.Complete {
		return c.Actions.TryAnother
	}
	return c.Actions.Reset
}
