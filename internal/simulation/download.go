package simulation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFallbackName names the download when the original has no name.
const DefaultFallbackName = "decrypted-file"

// maxDuplicates bounds the "name (n).ext" search.
const maxDuplicates = 1000

// Downloader hands the original bytes back to the user.
type Downloader interface {
	// Download stores r under name and returns where it ended up.
	Download(ctx context.Context, name string, r io.Reader) (string, error)
}

// DirDownloader saves downloads into a directory the way a browser does:
// an existing file is never overwritten, the new one becomes "name (1).ext".
type DirDownloader struct {
	Dir string
}

func (d DirDownloader) Download(ctx context.Context, name string, r io.Reader) (string, error) {
	dir := d.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating download directory: %w", err)
	}

	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) {
		name = DefaultFallbackName
	}

	out, path, err := createUnique(dir, name)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(out, &ctxReader{ctx: ctx, r: r}); err != nil {
		out.Close()
		os.Remove(path)
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}
	return path, nil
}

func createUnique(dir, name string) (*os.File, string, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for i := 0; i < maxDuplicates; i++ {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", stem, i, ext)
		}
		path := filepath.Join(dir, candidate)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return nil, "", fmt.Errorf("creating %s: %w", path, err)
		}
		return f, path, nil
	}
	return nil, "", fmt.Errorf("too many copies of %s in %s", name, dir)
}
