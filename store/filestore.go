package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileStore stores each key as an individual JSON file on disk.
//
// Keys map to {key}.json in the configured base directory (typically
// ~/.statements/). Suitable for CLI applications and single-user
// deployments where the collection persists across process restarts.
//
// All operations are guarded by a read-write mutex. Concurrent writers
// across processes are last-write-wins, which matches the engine's
// replace-collection model.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

var _ Store = &FileStore{}

// NewFileStore creates a file-backed store rooted at baseDir. A leading ~
// expands to the home directory; the directory is created if missing.
func NewFileStore(baseDir string) (*FileStore, error) {
	if strings.HasPrefix(baseDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		baseDir = filepath.Join(home, baseDir[2:])
	}
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.baseDir, key+".json")
}

// Load reads the JSON stored under key into v. A missing file leaves v
// unchanged.
func (s *FileStore) Load(key string, v any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error reading %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("error decoding %s: %w", key, err)
	}
	return nil
}

// Save writes v as indented JSON under key. The write is atomic: the value
// lands in a temp file first and is renamed into place, so a crash cannot
// leave a half-written collection.
func (s *FileStore) Save(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", key, err)
	}

	tmp, err := os.CreateTemp(s.baseDir, key+"-*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path(key))
}
