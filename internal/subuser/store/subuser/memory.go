package subuser

import (
	"context"
	"fmt"
	"sync"

	servermodels "panel/internal/server/models"
	"panel/internal/subuser/models"
	"panel/pkg/platform/sentinel"
)

// ServerFinder resolves the server a subuser belongs to.
type ServerFinder interface {
	FindByID(ctx context.Context, id int64) (*servermodels.Server, error)
}

// InMemory keeps subusers in a map and joins servers through a ServerFinder.
type InMemory struct {
	mu       sync.RWMutex
	subusers map[int64]models.Subuser
	servers  ServerFinder
}

func NewInMemory(servers ServerFinder) *InMemory {
	return &InMemory{
		subusers: make(map[int64]models.Subuser),
		servers:  servers,
	}
}

func (s *InMemory) Add(sub models.Subuser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub.Server = nil
	s.subusers[sub.ID] = sub
}

func (s *InMemory) GetWithServer(ctx context.Context, id int64) (*models.Subuser, error) {
	s.mu.RLock()
	sub, ok := s.subusers[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("subuser %d: %w", id, sentinel.ErrNotFound)
	}

	server, err := s.servers.FindByID(ctx, sub.ServerID)
	if err != nil {
		return nil, fmt.Errorf("get subuser with server: %w", err)
	}
	sub.Server = server
	return &sub, nil
}
