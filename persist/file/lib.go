package file

import (
	"context"
	"os"
	"path/filepath"
)

// Persist stores and loads serialized trees as files in a directory,
// satisfying the vectree.Persist interface.
type Persist struct {
	basepath string
}

// NewPersistForPath returns a Persist that keeps snapshots as files in
// the directory at the given path.
//
//	p := NewPersistForPath("/var/db/outlines")
//	blob, err := p.Load(ctx, "SjO0Zc3W5isBS1OTxcXBBzICWZ_a9c3bl0emgTGDGYA")
func NewPersistForPath(path string) Persist {
	return Persist{path}
}

// Load loads the bytes persisted in the named file.
func (p Persist) Load(ctx context.Context, name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(p.basepath, name))
}

// Store persists the given bytes in a file of the given name. Names are
// content-derived, so an already-existing file is left alone.
func (p Persist) Store(ctx context.Context, name string, data []byte) error {
	path := filepath.Join(p.basepath, name)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return os.WriteFile(path, data, 0o644)
}
