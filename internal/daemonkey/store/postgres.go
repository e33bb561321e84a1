package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"panel/internal/daemonkey/models"
	"panel/pkg/platform/sentinel"
	txcontext "panel/pkg/platform/tx"
)

// PostgresStore persists daemon access keys in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed daemon key store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Find(ctx context.Context, serverID, userID int64) (*models.DaemonKey, error) {
	var key models.DaemonKey
	err := txcontext.Conn(ctx, s.db).QueryRowContext(ctx, `
		SELECT server_id, user_id, secret, expires_at, created_at, updated_at
		FROM daemon_keys
		WHERE server_id = $1 AND user_id = $2
	`, serverID, userID).Scan(&key.ServerID, &key.UserID, &key.Secret, &key.ExpiresAt, &key.CreatedAt, &key.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("daemon key %d/%d: %w", serverID, userID, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find daemon key: %w", err)
	}
	return &key, nil
}

func (s *PostgresStore) Create(ctx context.Context, key *models.DaemonKey) error {
	_, err := txcontext.Conn(ctx, s.db).ExecContext(ctx, `
		INSERT INTO daemon_keys (server_id, user_id, secret, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, key.ServerID, key.UserID, key.Secret, key.ExpiresAt, key.CreatedAt, key.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create daemon key: %w", err)
	}
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, key *models.DaemonKey) error {
	res, err := txcontext.Conn(ctx, s.db).ExecContext(ctx, `
		UPDATE daemon_keys SET secret = $3, expires_at = $4, updated_at = $5
		WHERE server_id = $1 AND user_id = $2
	`, key.ServerID, key.UserID, key.Secret, key.ExpiresAt, key.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update daemon key: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update daemon key: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("daemon key %d/%d: %w", key.ServerID, key.UserID, sentinel.ErrNotFound)
	}
	return nil
}
