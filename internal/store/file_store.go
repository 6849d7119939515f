package store

import (
	"bytes"
	"os"

	"github.com/natefinch/atomic"
)

// FileStore persists a snapshot as a single file, written with
// natefinch/atomic so a crash mid-write never leaves a half-written,
// unreadable snapshot behind. Used by the CLI, where a LevelDB instance
// would be overkill for a single blob.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore that reads and writes path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) SaveIndex(data []byte) error {
	return atomic.WriteFile(s.path, bytes.NewReader(data))
}

func (s *FileStore) LoadIndex() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *FileStore) DeleteIndex() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *FileStore) Close() error {
	return nil
}
