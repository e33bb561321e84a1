//go:build integration

package containers

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"panel/internal/platform/config"
	"panel/internal/platform/postgres"
)

// PostgresContainer is a migrated PostgreSQL instance for store tests.
type PostgresContainer struct {
	Container testcontainers.Container
	URL       string
	DB        *sql.DB
}

// NewPostgresContainer starts PostgreSQL, applies the panel migrations and
// terminates the container when t ends.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("panel"),
		tcpostgres.WithUsername("panel"),
		tcpostgres.WithPassword("panel"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get postgres connection string: %v", err)
	}
	db, err := postgres.Open(ctx, config.DatabaseConfig{
		URL:             url,
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
	})
	if err != nil {
		t.Fatalf("failed to open postgres: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if _, err := postgres.Migrate(ctx, db); err != nil {
		t.Fatalf("failed to migrate postgres: %v", err)
	}
	return &PostgresContainer{Container: container, URL: url, DB: db}
}

// Truncate empties every panel table between tests.
func (p *PostgresContainer) Truncate(ctx context.Context) error {
	_, err := p.DB.ExecContext(ctx,
		`TRUNCATE daemon_keys, permissions, subusers, servers, nodes RESTART IDENTITY CASCADE`)
	return err
}

// Fixture is one node with one server owned by OwnerID and one subuser.
type Fixture struct {
	NodeID    int64
	ServerID  int64
	OwnerID   int64
	SubuserID int64
	UserID    int64
}

// SeedFixture inserts a node, a server owned by user 1 and a subuser for user 2.
func (p *PostgresContainer) SeedFixture(ctx context.Context) (Fixture, error) {
	f := Fixture{OwnerID: 1, UserID: 2}
	err := p.DB.QueryRowContext(ctx,
		`INSERT INTO nodes (name, scheme, fqdn, daemon_listen, daemon_secret)
		 VALUES ('node-1', 'http', 'localhost', 8080, 'node-secret') RETURNING id`,
	).Scan(&f.NodeID)
	if err != nil {
		return f, err
	}
	err = p.DB.QueryRowContext(ctx,
		`INSERT INTO servers (uuid, owner_id, node_id, name)
		 VALUES (gen_random_uuid(), $1, $2, 'survival') RETURNING id`,
		f.OwnerID, f.NodeID,
	).Scan(&f.ServerID)
	if err != nil {
		return f, err
	}
	err = p.DB.QueryRowContext(ctx,
		`INSERT INTO subusers (user_id, server_id) VALUES ($1, $2) RETURNING id`,
		f.UserID, f.ServerID,
	).Scan(&f.SubuserID)
	return f, err
}
