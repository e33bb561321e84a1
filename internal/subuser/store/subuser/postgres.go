package subuser

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	servermodels "panel/internal/server/models"
	"panel/internal/subuser/models"
	"panel/pkg/platform/sentinel"
	txcontext "panel/pkg/platform/tx"
)

// PostgresStore persists subusers in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed subuser store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// GetWithServer loads a subuser and eagerly attaches its server.
func (s *PostgresStore) GetWithServer(ctx context.Context, id int64) (*models.Subuser, error) {
	query := `
		SELECT s.id, s.user_id, s.server_id, s.created_at, s.updated_at,
		       sv.id, sv.uuid, sv.owner_id, sv.node_id, sv.name
		FROM subusers s
		JOIN servers sv ON sv.id = s.server_id
		WHERE s.id = $1
	`
	sub := &models.Subuser{Server: &servermodels.Server{}}
	err := txcontext.Conn(ctx, s.db).QueryRowContext(ctx, query, id).Scan(
		&sub.ID, &sub.UserID, &sub.ServerID, &sub.CreatedAt, &sub.UpdatedAt,
		&sub.Server.ID, &sub.Server.UUID, &sub.Server.OwnerID, &sub.Server.NodeID, &sub.Server.Name,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("subuser %d: %w", id, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("get subuser with server: %w", err)
	}
	return sub, nil
}
