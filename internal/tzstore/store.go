// Package tzstore persists per-user home timezone preferences in a
// small JSON file so they survive server restarts.
package tzstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/calsched/calsched/internal/schedule"
)

// Store maps user IDs to IANA timezone names, backed by a JSON file.
// Reads tolerate a missing or corrupt file and fall back to an empty
// mapping; only writes can fail.
type Store struct {
	path string

	mu    sync.Mutex
	zones map[string]string
}

// New creates a store backed by the file at path. The file is loaded
// lazily on first access.
func New(path string) *Store {
	return &Store{path: path}
}

// Get returns the stored timezone for userID, or false if none is set.
func (s *Store) Get(userID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	zone, ok := s.zones[userID]
	return zone, ok
}

// Set validates zone as an IANA timezone name and persists the mapping.
func (s *Store) Set(userID, zone string) error {
	if _, err := time.LoadLocation(zone); err != nil {
		return &schedule.TimezoneError{Zone: zone, Err: err}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	s.zones[userID] = zone
	return s.save()
}

// load populates s.zones from disk if it has not been loaded yet. Any
// read or decode failure leaves the store with an empty mapping.
func (s *Store) load() {
	if s.zones != nil {
		return
	}
	s.zones = make(map[string]string)
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var zones map[string]string
	if err := json.Unmarshal(data, &zones); err != nil {
		return
	}
	s.zones = zones
}

func (s *Store) save() error {
	data, err := json.Marshal(s.zones)
	if err != nil {
		return &schedule.PersistenceError{Path: s.path, Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return &schedule.PersistenceError{Path: s.path, Err: err}
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return &schedule.PersistenceError{Path: s.path, Err: err}
	}
	return nil
}
