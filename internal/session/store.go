// Package session persists the logged-in-user record behind the store
// interface the route guards and handlers depend on.
package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/ptit-dev/qldsv-api/internal/models"
)

// Store is the session-provider contract. Get returns (nil, nil) when no
// usable record exists for the key: absence and a malformed stored blob are
// indistinguishable on purpose, both read as "logged out".
type Store interface {
	Get(ctx context.Context, key string) (*models.Session, error)
	Set(ctx context.Context, key string, record *models.Session) error
	Clear(ctx context.Context, key string) error
}

// decode parses a stored blob. A record that does not parse yields nil so
// guards fail toward the login page and never toward a dashboard; role
// membership is checked separately by the guard.
func decode(raw []byte) *models.Session {
	if len(raw) == 0 {
		return nil
	}
	var record models.Session
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil
	}
	return &record
}

// MemoryStore keeps session blobs in process memory. It is the default
// backend and the substitution point for tests.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

// Get returns the decoded record for key, or nil when absent or malformed.
func (s *MemoryStore) Get(ctx context.Context, key string) (*models.Session, error) {
	s.mu.RLock()
	raw, ok := s.records[key]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return decode(raw), nil
}

// Set stores the record under key.
func (s *MemoryStore) Set(ctx context.Context, key string, record *models.Session) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.records[key] = raw
	s.mu.Unlock()
	return nil
}

// Clear removes the record for key. Clearing an unknown key is a no-op.
func (s *MemoryStore) Clear(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.records, key)
	s.mu.Unlock()
	return nil
}

// SetRaw stores a pre-encoded blob under key, bypassing the JSON encoder.
// Tests use it to simulate corrupted records.
func (s *MemoryStore) SetRaw(key string, raw []byte) {
	s.mu.Lock()
	s.records[key] = raw
	s.mu.Unlock()
}
