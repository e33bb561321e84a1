package store

import (
	"context"
	"fmt"
	"sync"

	"panel/internal/daemonkey/models"
	"panel/pkg/platform/sentinel"
)

type keyID struct {
	serverID int64
	userID   int64
}

// InMemory is a map-backed daemon key store for tests and local development.
type InMemory struct {
	mu   sync.RWMutex
	keys map[keyID]models.DaemonKey
}

func NewInMemory() *InMemory {
	return &InMemory{keys: make(map[keyID]models.DaemonKey)}
}

func (s *InMemory) Find(_ context.Context, serverID, userID int64) (*models.DaemonKey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	key, ok := s.keys[keyID{serverID, userID}]
	if !ok {
		return nil, fmt.Errorf("daemon key %d/%d: %w", serverID, userID, sentinel.ErrNotFound)
	}
	return &key, nil
}

func (s *InMemory) Create(_ context.Context, key *models.DaemonKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys[keyID{key.ServerID, key.UserID}] = *key
	return nil
}

func (s *InMemory) Update(_ context.Context, key *models.DaemonKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := keyID{key.ServerID, key.UserID}
	if _, ok := s.keys[id]; !ok {
		return fmt.Errorf("daemon key %d/%d: %w", key.ServerID, key.UserID, sentinel.ErrNotFound)
	}
	s.keys[id] = *key
	return nil
}
