package store

import (
	"context"
	"fmt"
	"sync"

	"panel/internal/server/models"
	"panel/pkg/platform/sentinel"
)

// InMemory holds servers and nodes for tests and local development.
type InMemory struct {
	mu      sync.RWMutex
	servers map[int64]models.Server
	nodes   map[int64]models.Node
}

func NewInMemory() *InMemory {
	return &InMemory{
		servers: make(map[int64]models.Server),
		nodes:   make(map[int64]models.Node),
	}
}

func (s *InMemory) AddServer(server models.Server) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.servers[server.ID] = server
}

func (s *InMemory) AddNode(node models.Node) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nodes[node.ID] = node
}

func (s *InMemory) FindByID(_ context.Context, id int64) (*models.Server, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	server, ok := s.servers[id]
	if !ok {
		return nil, fmt.Errorf("server %d: %w", id, sentinel.ErrNotFound)
	}
	return &server, nil
}

func (s *InMemory) FindNode(_ context.Context, id int64) (*models.Node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	node, ok := s.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node %d: %w", id, sentinel.ErrNotFound)
	}
	return &node, nil
}
