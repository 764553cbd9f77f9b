package prefs

// Package prefs persists UI display preferences across sessions.

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Store is the preference store used by the broker list.
// A page size of zero means no preference has been stored.
type Store interface {
	BrokerListPageSize() int
	SetBrokerListPageSize(size int) error
}

// Preferences is the persisted document.
type Preferences struct {
	BrokerList BrokerListSettings `yaml:"brokerList"`
}

// BrokerListSettings holds the broker list display preferences.
type BrokerListSettings struct {
	PageSize int `yaml:"pageSize,omitempty"`
}

// DefaultPath returns the preferences file under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config dir: %w", err)
	}
	return filepath.Join(dir, "brokerview", "preferences.yaml"), nil
}

// FileStore keeps preferences in a YAML file. Every change is written through.
type FileStore struct {
	path string

	mu    sync.Mutex
	prefs Preferences
}

// Open loads the preferences at path. A missing file yields empty preferences.
func Open(path string) (*FileStore, error) {
	s := &FileStore{path: path}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}
	if err := yaml.Unmarshal(data, &s.prefs); err != nil {
		return nil, fmt.Errorf("failed to parse preferences %s: %w", path, err)
	}
	return s, nil
}

// BrokerListPageSize implements Store.
func (s *FileStore) BrokerListPageSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs.BrokerList.PageSize
}

// SetBrokerListPageSize implements Store. The in-memory value changes even if
// writing the file fails.
func (s *FileStore) SetBrokerListPageSize(size int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs.BrokerList.PageSize = size
	return s.save()
}

func (s *FileStore) save() error {
	data, err := yaml.Marshal(&s.prefs)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create preferences dir: %w", err)
	}

	// Write then rename so a crash never leaves a truncated file
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace preferences: %w", err)
	}
	return nil
}

// MemoryStore keeps preferences for the lifetime of the process only.
type MemoryStore struct {
	mu       sync.Mutex
	pageSize int
}

// BrokerListPageSize implements Store.
func (m *MemoryStore) BrokerListPageSize() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pageSize
}

// SetBrokerListPageSize implements Store.
func (m *MemoryStore) SetBrokerListPageSize(size int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pageSize = size
	return nil
}
