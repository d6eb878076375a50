package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/cloudsafe/internal/transcript"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSample(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestSimulate_FullRun(t *testing.T) {
	downloads := setupTestEnvironment(t)
	src := writeSample(t, "laporan.txt", "hello cloud\n")
	log := filepath.Join(t.TempDir(), "run.jsonl")

	output, err := runCLI(t, "simulate", src, "--no-delay", "--transcript", log)
	require.NoError(t, err)

	assert.Contains(t, output, "laporan.txt")
	assert.Contains(t, output, "1. Secure Channel")
	assert.Contains(t, output, "4. Otentikasi & Dekripsi")
	assert.Contains(t, output, "Kunci Enkripsi (SHA-256)")
	assert.Contains(t, output, "1a31f208 b4e0b775 9528b7af 8580d7be b300ba84 92599871 13d8b8d7 718ff4a5")
	assert.Contains(t, output, "✓")

	restored, err := os.ReadFile(filepath.Join(downloads, "laporan.txt"))
	require.NoError(t, err, "restored file should be in the downloads directory")
	assert.Equal(t, "hello cloud\n", string(restored))

	entries, err := transcript.ReadEntries(log)
	require.NoError(t, err)
	var steps []string
	for _, e := range entries {
		steps = append(steps, e.From+">"+e.To)
	}
	assert.Equal(t, []string{
		"idle>uploading",
		"uploading>encrypting",
		"encrypting>stored",
		"stored>decrypting",
		"decrypting>complete",
		"complete>idle",
	}, steps)

	for _, e := range entries {
		assert.Equal(t, entries[0].RunID, e.RunID)
	}
	assert.Empty(t, entries[1].Key, "no key before Stored")
	assert.Len(t, entries[2].Key, 64)
}

func TestSimulate_KeyIsGroupedDigest(t *testing.T) {
	setupTestEnvironment(t)
	src := writeSample(t, "kosong.txt", "")

	output, err := runCLI(t, "simulate", src, "--no-delay", "--stop-at-stored")
	require.NoError(t, err)

	// sha256 of the empty input, in blocks of eight
	assert.Contains(t, output, "e3b0c442 98fc1c14 9afbf4c8 996fb924 27ae41e4 649b934c a495991b 7852b855")
}

func TestSimulate_StopAtStoredDownloadsNothing(t *testing.T) {
	downloads := setupTestEnvironment(t)
	src := writeSample(t, "foto.png", "not really a png")

	output, err := runCLI(t, "simulate", src, "--no-delay", "--stop-at-stored")
	require.NoError(t, err)
	assert.Contains(t, output, "--stop-at-stored")

	entries, err := os.ReadDir(downloads)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSimulate_OutFlagAndDuplicates(t *testing.T) {
	setupTestEnvironment(t)
	src := writeSample(t, "catatan.txt", "isi")
	out := t.TempDir()

	for i := 0; i < 2; i++ {
		ResetGlobalState()
		_, err := runCLI(t, "simulate", src, "--no-delay", "--out", out)
		require.NoError(t, err)
	}

	assert.FileExists(t, filepath.Join(out, "catatan.txt"))
	assert.FileExists(t, filepath.Join(out, "catatan (1).txt"))
}

func TestSimulate_MissingFile(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCLI(t, "simulate", filepath.Join(t.TempDir(), "hilang.pdf"), "--no-delay")
	require.NoError(t, err)
	assert.Contains(t, output, "✗")
	assert.Contains(t, output, "does not exist")
}

func TestSimulate_Directory(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCLI(t, "simulate", t.TempDir(), "--no-delay")
	require.NoError(t, err)
	assert.Contains(t, output, "is not a regular file")
}

func TestSimulate_RequiresOneArgument(t *testing.T) {
	setupTestEnvironment(t)

	_, err := runCLI(t, "simulate")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "accepts 1 arg"))
}
