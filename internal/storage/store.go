package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store is a JSON snapshot file holding one full mapping.
//
// Load and Save always move the whole snapshot: callers read, modify in
// memory, then write back. There is no locking, so two processes sharing one
// file can lose updates (last writer wins). Single-session use only.
type Store struct {
	path string
}

// NewStore creates a store handle for the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file location.
func (s *Store) Path() string {
	return s.path
}

// Ensure initializes the backing file with an empty snapshot if it is absent.
func (s *Store) Ensure() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat store: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create store dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, []byte("{}\n"), 0o600); err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	return nil
}

// Load decodes the snapshot into v. A missing file is an empty store, not an
// error; v is left untouched in that case.
func (s *Store) Load(v any) error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read store: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode store %s: %w", filepath.Base(s.path), err)
	}
	return nil
}

// Save rewrites the whole snapshot.
func (s *Store) Save(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	return nil
}
