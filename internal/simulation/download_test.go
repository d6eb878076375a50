package simulation

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	kerrors "github.com/PolarWolf314/cloudsafe/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirDownloaderNeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	d := DirDownloader{Dir: dir}
	ctx := context.Background()

	first, err := d.Download(ctx, "report.txt", bytes.NewReader([]byte("one")))
	require.NoError(t, err)
	second, err := d.Download(ctx, "report.txt", bytes.NewReader([]byte("two")))
	require.NoError(t, err)
	third, err := d.Download(ctx, "report.txt", bytes.NewReader([]byte("three")))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "report.txt"), first)
	assert.Equal(t, filepath.Join(dir, "report (1).txt"), second)
	assert.Equal(t, filepath.Join(dir, "report (2).txt"), third)

	got, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "one", string(got))
}

func TestDirDownloaderStripsDirectories(t *testing.T) {
	dir := t.TempDir()
	path, err := DirDownloader{Dir: dir}.Download(context.Background(), "../../etc/passwd", bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "passwd"), path)
}

func TestOpenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0644))

	f, err := OpenFile(path)
	require.NoError(t, err)
	assert.Equal(t, "notes.txt", f.Name)
	assert.Equal(t, int64(11), f.Size)
	assert.Contains(t, f.MIME, "text/plain")

	key, err := Digest(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, sha256Hex([]byte("hello world")), key)

	_, err = OpenFile(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, kerrors.ErrFileNotFound)

	_, err = OpenFile(dir)
	assert.ErrorIs(t, err, kerrors.ErrNotRegularFile)
}

func TestDigestHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Digest(ctx, NewFile("a", []byte("abc")))
	assert.ErrorIs(t, err, context.Canceled)
}
