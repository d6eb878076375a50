package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/cloudsafe/internal/simulation"
	"github.com/PolarWolf314/cloudsafe/internal/transcript"
)

// SimulateOptions configures the simulate workflow.
type SimulateOptions struct {
	// File is the file to walk through the simulation.
	File simulation.File

	Delays simulation.Delays

	// OutputDir receives the restored copy.
	OutputDir string

	// FallbackName names the copy when the file has no name.
	FallbackName string

	// StopAtStored ends the run once the file is stored.
	StopAtStored bool

	// TranscriptPath, when set, gets one JSON line per phase transition.
	TranscriptPath string

	// Observers are told about every transition, after the transcript.
	Observers []simulation.Observer

	// Pacer overrides the pause between phases. Tests use it.
	Pacer simulation.Pacer
}

// SimulateResult contains the outcome of a run.
type SimulateResult struct {
	RunID string

	// Key is the derived encryption key.
	Key string

	// Download is where the restored copy was saved. Empty with StopAtStored.
	Download string

	// Phase is the last phase reached before the machine was reset.
	Phase simulation.Phase
}

// Simulate runs the file through upload and encryption and, unless
// StopAtStored is set, through decryption and download. The machine is
// always reset before returning, which revokes the file handle.
//
// Returns ErrSimulationReset if ctx ends mid-run, ErrDigestFailed if the
// file cannot be hashed and ErrDownloadFailed if the copy cannot be saved.
func Simulate(ctx context.Context, opts SimulateOptions) (result *SimulateResult, err error) {
	machineOpts := simulation.Options{
		Delays:       opts.Delays,
		Pacer:        opts.Pacer,
		Downloader:   simulation.DirDownloader{Dir: opts.OutputDir},
		FallbackName: opts.FallbackName,
	}

	if opts.TranscriptPath != "" {
		rec, err := transcript.Open(opts.TranscriptPath)
		if err != nil {
			return nil, fmt.Errorf("opening transcript: %w", err)
		}
		defer func() {
			if closeErr := rec.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("writing transcript: %w", closeErr)
			}
		}()
		machineOpts.Observers = append(machineOpts.Observers, rec.Observe)
	}
	machineOpts.Observers = append(machineOpts.Observers, opts.Observers...)

	machine := simulation.New(machineOpts)
	defer machine.Reset()
	machine.SelectFile(opts.File)

	if err := machine.StartEncryption(ctx); err != nil {
		return nil, err
	}

	if !opts.StopAtStored {
		if err := machine.StartDecryption(ctx); err != nil {
			return nil, err
		}
	}

	snap := machine.Snapshot()
	return &SimulateResult{
		RunID:    snap.RunID,
		Key:      snap.Key,
		Download: snap.Download,
		Phase:    snap.Phase,
	}, nil
}
