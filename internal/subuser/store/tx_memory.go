package store

import (
	"context"
	"errors"
	"sync"
)

// Snapshotter is implemented by in-memory stores that can roll back to an
// earlier state.
type Snapshotter interface {
	Snapshot() (restore func())
}

var errNoMemoryTx = errors.New("no in-memory transaction in context")

type memTxKey struct{}

type memTx struct {
	restores []func()
	once     sync.Once
}

// MemoryTx is a coarse-lock transaction manager for in-memory stores. Only
// one unit of work runs at a time; Rollback restores every registered store to
// its state at Begin.
type MemoryTx struct {
	mu     sync.Mutex
	stores []Snapshotter
}

func NewMemoryTx(stores ...Snapshotter) *MemoryTx {
	return &MemoryTx{stores: stores}
}

func (m *MemoryTx) Begin(ctx context.Context) (context.Context, error) {
	if err := ctx.Err(); err != nil {
		return ctx, err
	}
	m.mu.Lock()
	tx := &memTx{restores: make([]func(), 0, len(m.stores))}
	for _, s := range m.stores {
		tx.restores = append(tx.restores, s.Snapshot())
	}
	return context.WithValue(ctx, memTxKey{}, tx), nil
}

func (m *MemoryTx) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(memTxKey{}).(*memTx)
	if !ok {
		return errNoMemoryTx
	}
	tx.once.Do(m.mu.Unlock)
	return nil
}

func (m *MemoryTx) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(memTxKey{}).(*memTx)
	if !ok {
		return errNoMemoryTx
	}
	tx.once.Do(func() {
		for _, restore := range tx.restores {
			restore()
		}
		m.mu.Unlock()
	})
	return nil
}
