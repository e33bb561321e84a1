package permission

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"panel/pkg/platform/sentinel"
	txcontext "panel/pkg/platform/tx"
)

const pgForeignKeyViolation = "23503"

// PostgresStore persists subuser permissions in PostgreSQL. All methods run
// inside the caller's transaction when one is bound to ctx.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed permission store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// DeleteBySubuser removes every permission row of the subuser.
func (s *PostgresStore) DeleteBySubuser(ctx context.Context, subuserID int64) error {
	_, err := txcontext.Conn(ctx, s.db).ExecContext(ctx,
		`DELETE FROM permissions WHERE subuser_id = $1`, subuserID)
	if err != nil {
		return fmt.Errorf("delete permissions: %w", err)
	}
	return nil
}

// InsertMany inserts one row per name in a single statement.
func (s *PostgresStore) InsertMany(ctx context.Context, subuserID int64, names []string) error {
	if len(names) == 0 {
		return nil
	}
	query := `
		INSERT INTO permissions (subuser_id, permission)
		SELECT $1, unnest($2::text[])
	`
	_, err := txcontext.Conn(ctx, s.db).ExecContext(ctx, query, subuserID, pq.Array(names))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return fmt.Errorf("subuser %d: %w", subuserID, sentinel.ErrNotFound)
		}
		return fmt.Errorf("insert permissions: %w", err)
	}
	return nil
}

// ListBySubuser returns permission names sorted alphabetically.
func (s *PostgresStore) ListBySubuser(ctx context.Context, subuserID int64) ([]string, error) {
	var names pq.StringArray
	err := txcontext.Conn(ctx, s.db).QueryRowContext(ctx,
		`SELECT COALESCE(array_agg(permission ORDER BY permission), '{}') FROM permissions WHERE subuser_id = $1`,
		subuserID,
	).Scan(&names)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	return []string(names), nil
}
