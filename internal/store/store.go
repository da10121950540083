// SPDX-FileCopyrightText: 2026 routelens
// SPDX-License-Identifier: FSL-1.1-MIT

// Package store provides the session store for previously entered values.
package store

import "sync"

// Key identifies one remembered value. Prefix is the value category
// (e.g. "pathParam", "formField"), Workspace scopes it to a project, and
// Name is the parameter or field identifier within it.
type Key struct {
	Prefix    string
	Workspace string
	Name      string
}

// String renders the key in prefix:workspace:name form.
func (k Key) String() string {
	return k.Prefix + ":" + k.Workspace + ":" + k.Name
}

// Store remembers previously entered values. Implementations are injected by
// the hosting session; the analysis core only defines the key shape.
type Store interface {
	// Get returns the remembered value for the key.
	Get(key Key) (string, bool)

	// Set remembers a value for the key.
	Set(key Key, value string)
}

// MemoryStore is an in-memory Store whose lifetime is the hosting session.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		values: make(map[string]string),
	}
}

// Get returns the remembered value for the key.
func (s *MemoryStore) Get(key Key) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key.String()]
	return value, ok
}

// Set remembers a value for the key.
func (s *MemoryStore) Set(key Key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key.String()] = value
}

// Len returns the number of remembered values.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.values)
}
