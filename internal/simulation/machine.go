package simulation

import (
	"context"
	"fmt"
	"sync"
	"time"

	kerrors "github.com/PolarWolf314/cloudsafe/internal/errors"

	"github.com/google/uuid"
)

// Delays are the narrative pauses held in each timed phase.
type Delays struct {
	Upload  time.Duration
	Encrypt time.Duration
	Decrypt time.Duration
}

// DefaultDelays returns the pacing used by the presentation.
func DefaultDelays() Delays {
	return Delays{
		Upload:  2000 * time.Millisecond,
		Encrypt: 2500 * time.Millisecond,
		Decrypt: 2500 * time.Millisecond,
	}
}

// Pacer waits for d or until ctx is done.
type Pacer func(ctx context.Context, d time.Duration) error

// Sleep is the default Pacer.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Event describes one phase transition.
type Event struct {
	RunID string
	From  Phase
	To    Phase
	File  string
	Size  int64
	Key   string
	At    time.Time
}

// Observer is told about every transition, in order. Observers run with the
// machine locked and must not call back into it.
type Observer func(Event)

// Options configures a Machine.
type Options struct {
	Delays       Delays
	Pacer        Pacer
	Downloader   Downloader
	FallbackName string
	Observers    []Observer
}

// Snapshot is a copy of the simulation context.
type Snapshot struct {
	Phase    Phase
	RunID    string
	HasFile  bool
	FileName string
	FileSize int64
	MIME     string
	Key      string
	Handle   string
	Download string
	Err      error
}

// Machine owns one simulation: the selected file, its handle and the key.
type Machine struct {
	mu    sync.Mutex
	opts  Options
	files *handleTable

	phase      Phase
	file       *File
	handle     string
	key        string
	download   string
	err        error
	runID      string
	generation uint64
	cancel     context.CancelFunc
}

// New returns an idle machine.
func New(opts Options) *Machine {
	if opts.Pacer == nil {
		opts.Pacer = Sleep
	}
	if opts.Downloader == nil {
		opts.Downloader = DirDownloader{Dir: "."}
	}
	if opts.FallbackName == "" {
		opts.FallbackName = DefaultFallbackName
	}
	return &Machine{opts: opts, files: newHandleTable(), phase: Idle}
}

// SelectFile replaces the current file. It is ignored unless the machine is
// Idle or Complete, and reports whether the file was taken.
func (m *Machine) SelectFile(f File) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.phase.AcceptsFile() {
		return false
	}
	m.clearLocked()
	m.file = &f
	m.handle = m.files.create(f)
	return true
}

// StartEncryption runs Uploading and Encrypting and stops at Stored.
//
// It returns ErrInvalidPhase outside Idle and ErrNoFileSelected without a
// file; neither changes any state. A read or digest error moves the machine
// to Failed and returns ErrDigestFailed. If the machine is reset while the
// run is paused, or ctx ends, the run returns ErrSimulationReset.
func (m *Machine) StartEncryption(ctx context.Context) error {
	m.mu.Lock()
	if m.phase != Idle {
		m.mu.Unlock()
		return kerrors.ErrInvalidPhase
	}
	if m.file == nil {
		m.mu.Unlock()
		return kerrors.ErrNoFileSelected
	}
	m.runID = uuid.NewString()
	runCtx, gen := m.beginLocked(ctx)
	m.transitionLocked(Uploading)
	file := *m.file
	m.mu.Unlock()
	defer m.end(gen)

	if err := m.pause(runCtx, gen, m.opts.Delays.Upload); err != nil {
		return err
	}

	if err := m.advance(gen, Encrypting); err != nil {
		return err
	}

	key, digestErr := Digest(runCtx, file)
	if digestErr != nil {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.generation != gen {
			return kerrors.ErrSimulationReset
		}
		if ctxErr := runCtx.Err(); ctxErr != nil {
			return m.abortLocked(ctxErr)
		}
		return m.failLocked(fmt.Errorf("%w: %w", kerrors.ErrDigestFailed, digestErr))
	}

	if err := m.pause(runCtx, gen, m.opts.Delays.Encrypt); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.generation != gen {
		return kerrors.ErrSimulationReset
	}
	m.key = key
	m.transitionLocked(Stored)
	return nil
}

// StartDecryption runs Decrypting, downloads the original bytes and stops
// at Complete. It returns ErrInvalidPhase outside Stored.
func (m *Machine) StartDecryption(ctx context.Context) error {
	m.mu.Lock()
	if m.phase != Stored {
		m.mu.Unlock()
		return kerrors.ErrInvalidPhase
	}
	runCtx, gen := m.beginLocked(ctx)
	m.transitionLocked(Decrypting)
	handle := m.handle
	name := m.file.Name
	m.mu.Unlock()
	defer m.end(gen)

	if err := m.pause(runCtx, gen, m.opts.Delays.Decrypt); err != nil {
		return err
	}

	if name == "" {
		name = m.opts.FallbackName
	}
	path, dlErr := m.fetch(runCtx, handle, name)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.generation != gen {
		return kerrors.ErrSimulationReset
	}
	if ctxErr := runCtx.Err(); dlErr != nil && ctxErr != nil {
		return m.abortLocked(ctxErr)
	}
	if dlErr != nil {
		return m.failLocked(fmt.Errorf("%w: %w", kerrors.ErrDownloadFailed, dlErr))
	}
	m.download = path
	m.transitionLocked(Complete)
	return nil
}

// Reset abandons any run in flight, releases the file handle and returns
// to Idle. It is valid in every phase.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.generation++
	m.clearLocked()
}

// Snapshot returns a copy of the current context.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// Phase returns the active phase.
func (m *Machine) Phase() Phase {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.phase
}

// Key returns the derived key, empty until Stored.
func (m *Machine) Key() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.key
}

func (m *Machine) fetch(ctx context.Context, handle, name string) (string, error) {
	f, err := m.files.resolve(handle)
	if err != nil {
		return "", err
	}
	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()
	return m.opts.Downloader.Download(ctx, name, rc)
}

// beginLocked starts a new generation for one half of a run. The run id is
// set by StartEncryption and kept through decryption.
func (m *Machine) beginLocked(ctx context.Context) (context.Context, uint64) {
	runCtx, cancel := context.WithCancel(ctx)
	m.generation++
	m.cancel = cancel
	return runCtx, m.generation
}

// end releases the run context if the run is still the current one.
func (m *Machine) end(gen uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.generation == gen && m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// pause waits for d. An external cancellation resets the machine, so the
// caller always sees ErrSimulationReset once the run can no longer continue.
func (m *Machine) pause(ctx context.Context, gen uint64, d time.Duration) error {
	err := m.opts.Pacer(ctx, d)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.generation != gen {
		return kerrors.ErrSimulationReset
	}
	if err != nil {
		return m.abortLocked(err)
	}
	return nil
}

// abortLocked resets the machine after the caller's context ended.
func (m *Machine) abortLocked(cause error) error {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.generation++
	m.clearLocked()
	return fmt.Errorf("%w: %w", kerrors.ErrSimulationReset, cause)
}

func (m *Machine) advance(gen uint64, to Phase) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.generation != gen {
		return kerrors.ErrSimulationReset
	}
	m.transitionLocked(to)
	return nil
}

func (m *Machine) failLocked(err error) error {
	m.err = err
	m.transitionLocked(Failed)
	return err
}

// clearLocked drops the file, key and handle and moves to Idle.
func (m *Machine) clearLocked() {
	m.files.revoke(m.handle)
	m.handle = ""
	m.file = nil
	m.key = ""
	m.download = ""
	m.err = nil
	m.transitionLocked(Idle)
	m.runID = ""
}

func (m *Machine) transitionLocked(to Phase) {
	from := m.phase
	if from == to {
		return
	}
	m.phase = to

	ev := Event{RunID: m.runID, From: from, To: to, Key: m.key, At: time.Now()}
	if m.file != nil {
		ev.File = m.file.Name
		ev.Size = m.file.Size
	}
	for _, obs := range m.opts.Observers {
		obs(ev)
	}
}

func (m *Machine) snapshotLocked() Snapshot {
	s := Snapshot{
		Phase:    m.phase,
		RunID:    m.runID,
		Key:      m.key,
		Handle:   m.handle,
		Download: m.download,
		Err:      m.err,
	}
	if m.file != nil {
		s.HasFile = true
		s.FileName = m.file.Name
		s.FileSize = m.file.Size
		s.MIME = m.file.MIME
	}
	return s
}
