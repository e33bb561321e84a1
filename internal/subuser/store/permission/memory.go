package permission

import (
	"context"
	"sort"
	"sync"
)

// InMemory keeps permissions per subuser. It supports Snapshot/Restore so an
// in-memory transaction manager can undo a failed unit of work.
type InMemory struct {
	mu    sync.RWMutex
	perms map[int64][]string
}

func NewInMemory() *InMemory {
	return &InMemory{perms: make(map[int64][]string)}
}

func (s *InMemory) DeleteBySubuser(_ context.Context, subuserID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.perms, subuserID)
	return nil
}

func (s *InMemory) InsertMany(_ context.Context, subuserID int64, names []string) error {
	if len(names) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.perms[subuserID] = append(s.perms[subuserID], names...)
	return nil
}

func (s *InMemory) ListBySubuser(_ context.Context, subuserID int64) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := append([]string{}, s.perms[subuserID]...)
	sort.Strings(names)
	return names, nil
}

// Snapshot captures the current state for a later Restore.
func (s *InMemory) Snapshot() func() {
	s.mu.RLock()
	saved := make(map[int64][]string, len(s.perms))
	for id, names := range s.perms {
		saved[id] = append([]string(nil), names...)
	}
	s.mu.RUnlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.perms = saved
	}
}
