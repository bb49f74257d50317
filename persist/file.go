package persist

import (
	"context"
	"os"
	"path/filepath"
)

// FileStore implements Store by storing each blob as a file named
// after its key in a single directory.
type FileStore struct {
	basePath string
}

// NewFileStore returns a Store that loads and stores blobs as files
// under dir.
//
//	s := NewFileStore("/var/lib/fragmap")
func NewFileStore(dir string) FileStore {
	return FileStore{basePath: dir}
}

func (s FileStore) Load(ctx context.Context, name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.basePath, name))
}

func (s FileStore) Store(ctx context.Context, name string, b []byte) error {
	path := filepath.Join(s.basePath, name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.WriteFile(path, b, 0o644)
	}
	return nil
}
