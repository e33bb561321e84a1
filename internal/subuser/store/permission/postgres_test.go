//go:build integration

package permission

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"panel/internal/platform/postgres"
	"panel/pkg/platform/sentinel"
	"panel/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	pg      *containers.PostgresContainer
	store   *PostgresStore
	tx      *postgres.TxManager
	fixture containers.Fixture
}

func TestPostgresStoreSuite(t *testing.T) {
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.pg = containers.NewPostgresContainer(s.T())
	s.store = NewPostgres(s.pg.DB)
	s.tx = postgres.NewTxManager(s.pg.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	ctx := context.Background()
	s.Require().NoError(s.pg.Truncate(ctx))
	f, err := s.pg.SeedFixture(ctx)
	s.Require().NoError(err)
	s.fixture = f
}

func (s *PostgresStoreSuite) TestReplacePermissions() {
	ctx := context.Background()
	id := s.fixture.SubuserID

	s.Require().NoError(s.store.InsertMany(ctx, id, []string{"file.read", "control.start"}))
	names, err := s.store.ListBySubuser(ctx, id)
	s.Require().NoError(err)
	s.Equal([]string{"control.start", "file.read"}, names)

	s.Require().NoError(s.store.DeleteBySubuser(ctx, id))
	names, err = s.store.ListBySubuser(ctx, id)
	s.Require().NoError(err)
	s.Empty(names)
}

func (s *PostgresStoreSuite) TestInsertManyEmptyIsNoop() {
	s.NoError(s.store.InsertMany(context.Background(), s.fixture.SubuserID, nil))
}

func (s *PostgresStoreSuite) TestInsertManyUnknownSubuser() {
	err := s.store.InsertMany(context.Background(), 9999, []string{"file.read"})
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestRollbackRestoresPermissions() {
	ctx := context.Background()
	id := s.fixture.SubuserID
	s.Require().NoError(s.store.InsertMany(ctx, id, []string{"file.read"}))

	txCtx, err := s.tx.Begin(ctx)
	s.Require().NoError(err)
	s.Require().NoError(s.store.DeleteBySubuser(txCtx, id))
	s.Require().NoError(s.store.InsertMany(txCtx, id, []string{"control.console"}))

	inside, err := s.store.ListBySubuser(txCtx, id)
	s.Require().NoError(err)
	s.Equal([]string{"control.console"}, inside)

	s.Require().NoError(s.tx.Rollback(txCtx))
	s.NoError(s.tx.Rollback(txCtx), "second rollback is a no-op")

	after, err := s.store.ListBySubuser(ctx, id)
	s.Require().NoError(err)
	s.Equal([]string{"file.read"}, after)
}

func (s *PostgresStoreSuite) TestCommitPersistsPermissions() {
	ctx := context.Background()
	id := s.fixture.SubuserID

	txCtx, err := s.tx.Begin(ctx)
	s.Require().NoError(err)
	s.Require().NoError(s.store.InsertMany(txCtx, id, []string{"backup.create"}))
	s.Require().NoError(s.tx.Commit(txCtx))

	names, err := s.store.ListBySubuser(ctx, id)
	s.Require().NoError(err)
	s.Equal([]string{"backup.create"}, names)
}
