// Package cache is a file-backed JSON key-value store. It serves
// reads when the database is unavailable and holds records that are
// still waiting to be synced.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrMiss is returned when a key is not in the snapshot
var ErrMiss = errors.New("cache miss")

// Well-known snapshot keys
const (
	KeyCurrentUser = "currentUser"
	KeyStudents    = "students"
)

// ProgressKey returns the snapshot key for a student's progress record
func ProgressKey(userID string) string {
	return "progress:" + userID
}

// Store is a snapshot persisted as a single JSON file. Every write
// rewrites the file atomically via a temp file rename.
type Store struct {
	path string

	mu      sync.RWMutex
	entries map[string]json.RawMessage
}

// Open loads the snapshot at path, starting empty if the file does
// not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{
		path:    path,
		entries: make(map[string]json.RawMessage),
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}
	if len(data) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, &s.entries); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	return s, nil
}

// Put stores a value under key and persists the snapshot
func (s *Store) Put(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = data
	return s.flushLocked()
}

// Get decodes the value stored under key into out
func (s *Store) Get(key string, out interface{}) error {
	s.mu.RLock()
	data, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrMiss, key)
	}
	return json.Unmarshal(data, out)
}

// Delete removes key from the snapshot. Deleting an absent key is a
// no-op.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[key]; !ok {
		return nil
	}
	delete(s.entries, key)
	return s.flushLocked()
}

// flushLocked writes the snapshot to disk. Caller holds the write lock.
func (s *Store) flushLocked() error {
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}
