package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Store persists the chosen theme. Load returns "" when nothing was saved.
type Store interface {
	Load() (string, error)
	Save(theme string) error
}

// MemoryStore keeps the theme in memory.
type MemoryStore struct {
	mu    sync.Mutex
	theme string
}

// NewMemoryStore returns a store seeded with theme.
func NewMemoryStore(theme string) *MemoryStore {
	return &MemoryStore{theme: theme}
}

// Load implements Store.
func (s *MemoryStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme, nil
}

// Save implements Store.
func (s *MemoryStore) Save(theme string) error {
	s.mu.Lock()
	s.theme = theme
	s.mu.Unlock()
	return nil
}

// stateFile is the on-disk layout of a FileStore.
type stateFile struct {
	Version   string    `json:"version"`
	Theme     string    `json:"theme"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FileStore persists the theme as JSON, replacing the file atomically.
type FileStore struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// NewFileStore creates the parent directory of path if needed.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create theme state directory: %w", err)
	}
	return &FileStore{path: path, now: time.Now}, nil
}

// Path returns the state file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load implements Store. A missing file is not an error.
func (s *FileStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}

	var file stateFile
	if err := json.Unmarshal(data, &file); err != nil {
		return "", fmt.Errorf("failed to parse theme state %s: %w", s.path, err)
	}
	return file.Theme, nil
}

// Save implements Store.
func (s *FileStore) Save(theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(stateFile{Version: "1", Theme: theme, UpdatedAt: s.now().UTC()}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal theme state: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}
