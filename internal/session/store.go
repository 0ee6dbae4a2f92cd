package session

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Store is a small persistent key-value store backing the auth session, the
// moral equivalent of the browser localStorage the previous frontend used.
// All values live in one JSON file; writes go through a temp file + rename.
type Store struct {
	dir  string
	file string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir, file: filepath.Join(dir, "auth.json")}
}

func (s *Store) load() map[string]string {
	b, err := os.ReadFile(s.file)
	if err != nil {
		return map[string]string{}
	}
	var m map[string]string
	if err := json.Unmarshal(b, &m); err != nil || m == nil {
		return map[string]string{}
	}
	return m
}

func (s *Store) save(m map[string]string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.file + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.file)
}

// Get returns the value under the first present key, empty string otherwise.
func (s *Store) Get(keys ...string) string {
	m := s.load()
	for _, k := range keys {
		if v, ok := m[k]; ok && v != "" {
			return v
		}
	}
	return ""
}

func (s *Store) Set(key, value string) error {
	m := s.load()
	m[key] = value
	return s.save(m)
}

// Remove drops the given keys. Missing keys are not an error.
func (s *Store) Remove(keys ...string) error {
	m := s.load()
	changed := false
	for _, k := range keys {
		if _, ok := m[k]; ok {
			delete(m, k)
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.save(m)
}
