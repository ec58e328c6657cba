// Package localstate stores per-machine panel state that is not synced.
package localstate

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"

	"github.com/bnema/toolip/internal/application/port"
	"github.com/bnema/toolip/internal/domain/entity"
)

const (
	// FileName is the state file created under the state directory.
	FileName = "panel-state.json"

	dirPerm  = 0o750
	filePerm = 0o600
)

// FileStore keeps local panel state in a small JSON object.
type FileStore struct {
	fs   afero.Fs
	path string

	mu sync.Mutex
}

// NewFileStore creates a store for the file at path on fs.
func NewFileStore(fs afero.Fs, path string) *FileStore {
	return &FileStore{fs: fs, path: path}
}

// Path returns the state file location.
func (s *FileStore) Path() string { return s.path }

// LoadCurrentURL implements port.PanelStateStore.
func (s *FileStore) LoadCurrentURL(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.readLocked()
	if err != nil {
		return "", err
	}
	url, _ := state[entity.CurrentURLKey].(string)
	return url, nil
}

// SaveCurrentURL implements port.PanelStateStore.
// Unrelated keys already in the file are preserved.
func (s *FileStore) SaveCurrentURL(_ context.Context, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.readLocked()
	if err != nil {
		// a corrupt file is replaced rather than blocking navigation
		state = map[string]any{}
	}
	state[entity.CurrentURLKey] = url
	return s.writeLocked(state)
}

func (s *FileStore) readLocked() (map[string]any, error) {
	exists, err := afero.Exists(s.fs, s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat panel state: %w", err)
	}
	if !exists {
		return map[string]any{}, nil
	}

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read panel state: %w", err)
	}
	state := map[string]any{}
	if len(data) == 0 {
		return state, nil
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to decode panel state: %w", err)
	}
	return state, nil
}

func (s *FileStore) writeLocked(state map[string]any) error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode panel state: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, filePerm); err != nil {
		return fmt.Errorf("failed to write panel state: %w", err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace panel state: %w", err)
	}
	return nil
}

var _ port.PanelStateStore = (*FileStore)(nil)
