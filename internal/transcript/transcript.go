package transcript

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"

	"github.com/PolarWolf314/cloudsafe/internal/simulation"
)

const timestampFormat = "2006-01-02T15:04:05.000000Z"

// Entry is a single transcript line.
type Entry struct {
	Timestamp string `json:"ts"`
	RunID     string `json:"run,omitempty"`
	From      string `json:"from"`
	To        string `json:"to"`
	File      string `json:"file,omitempty"`
	Size      int64  `json:"size,omitempty"`
	Key       string `json:"key,omitempty"`
}

// FromEvent converts a simulation transition.
func FromEvent(ev simulation.Event) Entry {
	ts := ev.At
	if ts.IsZero() {
		ts = time.Now()
	}
	return Entry{
		Timestamp: ts.UTC().Format(timestampFormat),
		RunID:     ev.RunID,
		From:      ev.From.String(),
		To:        ev.To.String(),
		File:      ev.File,
		Size:      ev.Size,
		Key:       ev.Key,
	}
}

// Recorder appends entries to a writer.
type Recorder struct {
	mu     sync.Mutex
	w      io.Writer
	closer io.Closer
	err    error
}

// NewRecorder writes to w. Close does not close w.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{w: w}
}

// Open appends to the transcript file at path, creating it if needed.
func Open(path string) (*Recorder, error) {
	// #nosec G304 -- the path is supplied by the user on the command line.
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &Recorder{w: f, closer: f}, nil
}

// Observe is a simulation.Observer.
func (r *Recorder) Observe(ev simulation.Event) {
	r.Log(FromEvent(ev))
}

// Log appends one entry.
func (r *Recorder) Log(entry Entry) {
	data, err := json.Marshal(entry)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return
	}
	if err != nil {
		r.err = err
		return
	}
	if _, err := r.w.Write(append(data, '\n')); err != nil {
		r.err = err
	}
}

// Close releases the file and returns the first write error, if any.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closer != nil {
		if err := r.closer.Close(); err != nil && r.err == nil {
			r.err = err
		}
		r.closer = nil
	}
	return r.err
}

// ReadEntries reads all entries of the transcript at path.
func ReadEntries(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data. Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
