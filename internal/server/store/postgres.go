package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"panel/internal/server/models"
	"panel/pkg/platform/sentinel"
	txcontext "panel/pkg/platform/tx"
)

// PostgresStore reads servers and nodes from PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed server store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByID(ctx context.Context, id int64) (*models.Server, error) {
	var server models.Server
	err := txcontext.Conn(ctx, s.db).QueryRowContext(ctx,
		`SELECT id, uuid, owner_id, node_id, name FROM servers WHERE id = $1`, id,
	).Scan(&server.ID, &server.UUID, &server.OwnerID, &server.NodeID, &server.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("server %d: %w", id, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find server: %w", err)
	}
	return &server, nil
}

func (s *PostgresStore) FindNode(ctx context.Context, id int64) (*models.Node, error) {
	var node models.Node
	err := txcontext.Conn(ctx, s.db).QueryRowContext(ctx,
		`SELECT id, name, scheme, fqdn, daemon_listen, daemon_secret, behind_proxy FROM nodes WHERE id = $1`, id,
	).Scan(&node.ID, &node.Name, &node.Scheme, &node.FQDN, &node.DaemonListen, &node.DaemonSecret, &node.BehindProxy)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("node %d: %w", id, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find node: %w", err)
	}
	return &node, nil
}
