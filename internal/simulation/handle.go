package simulation

import (
	"sync"

	kerrors "github.com/PolarWolf314/cloudsafe/internal/errors"

	"github.com/google/uuid"
)

const handlePrefix = "blob:cloudsafe/"

// handleTable hands out revocable references to selected files.
type handleTable struct {
	mu    sync.Mutex
	files map[string]File
}

func newHandleTable() *handleTable {
	return &handleTable{files: make(map[string]File)}
}

func (t *handleTable) create(f File) string {
	id := handlePrefix + uuid.NewString()
	t.mu.Lock()
	t.files[id] = f
	t.mu.Unlock()
	return id
}

func (t *handleTable) revoke(id string) {
	if id == "" {
		return
	}
	t.mu.Lock()
	delete(t.files, id)
	t.mu.Unlock()
}

func (t *handleTable) resolve(id string) (File, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	f, ok := t.files[id]
	if !ok {
		return File{}, kerrors.ErrHandleRevoked
	}
	return f, nil
}

func (t *handleTable) len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.files)
}
