// Package userstore holds the user records the login chain validates against.
package userstore

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// User is a stored user record.
type User struct {
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

// userFile is the on-disk schema.
type userFile struct {
	Users map[string]User `yaml:"users"`
}

// Store is a thread-safe username to User mapping.
type Store struct {
	mu    sync.RWMutex
	users map[string]User
}

// New creates an empty store.
func New() *Store {
	return &Store{users: make(map[string]User)}
}

// Demo returns a store seeded with the reference demo users.
func Demo() *Store {
	s := New()
	s.Replace(map[string]User{
		"alice": {Password: "1234", Role: "admin"},
		"bob":   {Password: "abcd", Role: "user"},
	})
	return s
}

// Lookup returns the user record for name.
func (s *Store) Lookup(name string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[name]
	return u, ok
}

// Replace swaps the entire user set.
func (s *Store) Replace(users map[string]User) {
	copied := make(map[string]User, len(users))
	for k, v := range users {
		copied[k] = v
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = copied
}

// Len returns the number of stored users.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// LoadFile replaces the user set from a YAML file. The existing set is kept
// when the file cannot be read or parsed.
func (s *Store) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading user file %s: %w", path, err)
	}

	var f userFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parsing user file %s: %w", path, err)
	}

	s.Replace(f.Users)
	return nil
}
