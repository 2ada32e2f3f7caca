// Package store persists each collection as a single JSON array file under a
// base directory. Writes replace the whole file through a temp-file rename so
// a crash mid-write never corrupts the previous snapshot.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

type FileStore struct {
	base string
}

// NewFileStore creates the base directory if absent.
func NewFileStore(base string) (*FileStore, error) {
	if base == "" {
		base = "./data"
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{base: base}, nil
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.base, filepath.Clean(name)+".json")
}

// Load unmarshals the named collection into out. A missing file is an empty
// collection, not an error.
func (s *FileStore) Load(name string, out any) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, out)
}

// Save marshals v and atomically replaces the named collection file.
func (s *FileStore) Save(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	dst := s.path(name)
	tmp := dst + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, dst); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
