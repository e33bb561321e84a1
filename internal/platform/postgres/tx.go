package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	txcontext "panel/pkg/platform/tx"
)

// ErrNoTransaction is returned by Commit and Rollback when ctx carries no transaction.
var ErrNoTransaction = errors.New("no transaction in context")

// TxManager opens database transactions and carries them on the context so
// stores pick them up through txcontext.Conn.
type TxManager struct {
	db   *sql.DB
	opts *sql.TxOptions
}

// NewTxManager constructs a TxManager using the driver's default isolation.
func NewTxManager(db *sql.DB) *TxManager {
	return &TxManager{db: db}
}

// Begin starts a transaction. The transaction stays bound to ctx: if ctx is
// cancelled before Commit, database/sql rolls it back.
func (m *TxManager) Begin(ctx context.Context) (context.Context, error) {
	if err := ctx.Err(); err != nil {
		return ctx, fmt.Errorf("transaction aborted: %w", err)
	}
	tx, err := m.db.BeginTx(ctx, m.opts)
	if err != nil {
		return ctx, fmt.Errorf("begin transaction: %w", err)
	}
	return txcontext.WithTx(ctx, tx), nil
}

func (m *TxManager) Commit(ctx context.Context) error {
	tx, ok := txcontext.From(ctx)
	if !ok {
		return ErrNoTransaction
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Rollback aborts the transaction. Rolling back an already finished
// transaction is not an error.
func (m *TxManager) Rollback(ctx context.Context) error {
	tx, ok := txcontext.From(ctx)
	if !ok {
		return ErrNoTransaction
	}
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("rollback transaction: %w", err)
	}
	return nil
}
