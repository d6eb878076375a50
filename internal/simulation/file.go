package simulation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	kerrors "github.com/PolarWolf314/cloudsafe/internal/errors"

	"github.com/gabriel-vasile/mimetype"
)

// File is a selected file: an opaque blob plus its name and size.
type File struct {
	Name string
	Size int64
	MIME string

	open func() (io.ReadCloser, error)
}

// NewFile wraps in-memory content.
func NewFile(name string, data []byte) File {
	return File{
		Name: name,
		Size: int64(len(data)),
		MIME: mimetype.Detect(data).String(),
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

// OpenFile selects the file at path. The content is read lazily, each time
// the file is opened, and Open fails with ErrFileChanged once the size or
// modification time differs from what was seen here.
func OpenFile(path string) (File, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return File{}, fmt.Errorf("%s: %w", path, kerrors.ErrFileNotFound)
	}
	if err != nil {
		return File{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return File{}, fmt.Errorf("%s: %w", path, kerrors.ErrNotRegularFile)
	}

	mime := "application/octet-stream"
	if m, err := mimetype.DetectFile(path); err == nil {
		mime = m.String()
	}

	return File{
		Name: filepath.Base(path),
		Size: info.Size(),
		MIME: mime,
		open: func() (io.ReadCloser, error) {
			return openUnchanged(path, info)
		},
	}, nil
}

func openUnchanged(path string, selected fs.FileInfo) (io.ReadCloser, error) {
	// #nosec G304 -- the path is the file the user picked.
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, kerrors.ErrFileChanged)
	}
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() != selected.Size() || !info.ModTime().Equal(selected.ModTime()) {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, kerrors.ErrFileChanged)
	}
	return f, nil
}

// Open returns a reader over the file content.
func (f File) Open() (io.ReadCloser, error) {
	if f.open == nil {
		return nil, fmt.Errorf("%s: %w", f.Name, kerrors.ErrFileNotFound)
	}
	return f.open()
}
