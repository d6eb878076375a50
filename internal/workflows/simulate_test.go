package workflows

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	kerrors "github.com/PolarWolf314/cloudsafe/internal/errors"
	"github.com/PolarWolf314/cloudsafe/internal/simulation"
	"github.com/PolarWolf314/cloudsafe/internal/transcript"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func noPause(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

func TestSimulate_FullRun(t *testing.T) {
	out := t.TempDir()
	log := filepath.Join(t.TempDir(), "run.jsonl")

	var seen []simulation.Phase
	result, err := Simulate(context.Background(), SimulateOptions{
		File:           simulation.NewFile("tugas.txt", []byte("abc")),
		OutputDir:      out,
		TranscriptPath: log,
		Pacer:          noPause,
		Observers: []simulation.Observer{func(ev simulation.Event) {
			seen = append(seen, ev.To)
		}},
	})
	require.NoError(t, err)

	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", result.Key)
	assert.Equal(t, simulation.Complete, result.Phase)
	assert.Equal(t, filepath.Join(out, "tugas.txt"), result.Download)
	assert.NotEmpty(t, result.RunID)

	data, err := os.ReadFile(result.Download)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(data))

	assert.Equal(t, []simulation.Phase{
		simulation.Uploading, simulation.Encrypting, simulation.Stored,
		simulation.Decrypting, simulation.Complete, simulation.Idle,
	}, seen)

	entries, err := transcript.ReadEntries(log)
	require.NoError(t, err)
	assert.Len(t, entries, len(seen))
	for _, e := range entries {
		assert.Equal(t, result.RunID, e.RunID, "%s -> %s", e.From, e.To)
	}
}

func TestSimulate_StopAtStored(t *testing.T) {
	out := t.TempDir()

	result, err := Simulate(context.Background(), SimulateOptions{
		File:         simulation.NewFile("tugas.txt", []byte("abc")),
		OutputDir:    out,
		StopAtStored: true,
		Pacer:        noPause,
	})
	require.NoError(t, err)
	assert.Equal(t, simulation.Stored, result.Phase)
	assert.Empty(t, result.Download)

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSimulate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pacer := func(ctx context.Context, _ time.Duration) error {
		cancel()
		return ctx.Err()
	}

	result, err := Simulate(ctx, SimulateOptions{
		File:      simulation.NewFile("tugas.txt", []byte("abc")),
		OutputDir: t.TempDir(),
		Pacer:     pacer,
	})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, kerrors.ErrSimulationReset)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSimulate_BadTranscriptPath(t *testing.T) {
	_, err := Simulate(context.Background(), SimulateOptions{
		File:           simulation.NewFile("tugas.txt", []byte("abc")),
		OutputDir:      t.TempDir(),
		TranscriptPath: filepath.Join(t.TempDir(), "missing", "run.jsonl"),
		Pacer:          noPause,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening transcript")
}
