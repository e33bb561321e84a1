package service

//go:generate mockgen -source=provider.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"panel/internal/daemonkey/models"
	"panel/internal/daemonkey/service/mocks"
	keystore "panel/internal/daemonkey/store"
	servermodels "panel/internal/server/models"
	serverstore "panel/internal/server/store"
	"panel/pkg/platform/sentinel"
	"panel/pkg/requestcontext"
)

type ProviderSuite struct {
	suite.Suite
	keys     *keystore.InMemory
	servers  *serverstore.InMemory
	provider *Provider
	now      time.Time
	ctx      context.Context
	issued   int
}

func TestProviderSuite(t *testing.T) {
	suite.Run(t, new(ProviderSuite))
}

func (s *ProviderSuite) SetupTest() {
	s.keys = keystore.NewInMemory()
	s.servers = serverstore.NewInMemory()
	s.servers.AddServer(servermodels.Server{ID: 10, OwnerID: 1, NodeID: 3})
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
	s.issued = 0

	var err error
	s.provider, err = New(s.keys, s.servers,
		WithTTL(5*time.Minute),
		WithSecretGenerator(func() (string, error) {
			s.issued++
			return "i_secret" + strings.Repeat("x", s.issued), nil
		}),
	)
	s.Require().NoError(err)
}

func (s *ProviderSuite) TestHandle() {
	s.Run("creates a key when none exists", func() {
		secret, err := s.provider.Handle(s.ctx, 10, 2, false)
		s.Require().NoError(err)
		s.Equal("i_secretx", secret)

		stored, err := s.keys.Find(s.ctx, 10, 2)
		s.Require().NoError(err)
		s.Equal(secret, stored.Secret)
		s.Equal(s.now.Add(5*time.Minute), stored.ExpiresAt)
	})

	s.Run("returns a live key unchanged", func() {
		s.Require().NoError(s.keys.Create(s.ctx, &models.DaemonKey{
			ServerID: 10, UserID: 4, Secret: "i_live", ExpiresAt: s.now.Add(time.Minute),
		}))
		issuedBefore := s.issued

		secret, err := s.provider.Handle(s.ctx, 10, 4, false)
		s.Require().NoError(err)
		s.Equal("i_live", secret)
		s.Equal(issuedBefore, s.issued)
	})

	s.Run("rotates an expired key", func() {
		s.Require().NoError(s.keys.Create(s.ctx, &models.DaemonKey{
			ServerID: 10, UserID: 5, Secret: "i_old", ExpiresAt: s.now,
		}))

		secret, err := s.provider.Handle(s.ctx, 10, 5, false)
		s.Require().NoError(err)
		s.NotEqual("i_old", secret)

		stored, err := s.keys.Find(s.ctx, 10, 5)
		s.Require().NoError(err)
		s.Equal(secret, stored.Secret)
		s.Equal(s.now.Add(5*time.Minute), stored.ExpiresAt)
	})

	s.Run("admin requests use the server owner's key", func() {
		s.Require().NoError(s.keys.Create(s.ctx, &models.DaemonKey{
			ServerID: 10, UserID: 1, Secret: "i_owner", ExpiresAt: s.now.Add(time.Hour),
		}))

		secret, err := s.provider.Handle(s.ctx, 10, 99, true)
		s.Require().NoError(err)
		s.Equal("i_owner", secret)

		_, err = s.keys.Find(s.ctx, 10, 99)
		s.ErrorIs(err, sentinel.ErrNotFound, "no key is issued to the admin")
	})

	s.Run("admin request for unknown server fails", func() {
		_, err := s.provider.Handle(s.ctx, 404, 99, true)
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *ProviderSuite) TestStoreFailures() {
	ctrl := gomock.NewController(s.T())
	keys := mocks.NewMockKeyStore(ctrl)
	servers := mocks.NewMockServerFinder(ctrl)
	provider, err := New(keys, servers, WithSecretGenerator(func() (string, error) { return "i_new", nil }))
	s.Require().NoError(err)
	boom := errors.New("connection reset")

	s.Run("lookup error propagates", func() {
		keys.EXPECT().Find(gomock.Any(), int64(10), int64(2)).Return(nil, boom)

		_, err := provider.Handle(s.ctx, 10, 2, false)
		s.ErrorIs(err, boom)
	})

	s.Run("create error propagates", func() {
		keys.EXPECT().Find(gomock.Any(), int64(10), int64(2)).Return(nil, sentinel.ErrNotFound)
		keys.EXPECT().Create(gomock.Any(), gomock.Any()).Return(boom)

		_, err := provider.Handle(s.ctx, 10, 2, false)
		s.ErrorIs(err, boom)
	})

	s.Run("rotation error propagates", func() {
		keys.EXPECT().Find(gomock.Any(), int64(10), int64(2)).
			Return(&models.DaemonKey{ServerID: 10, UserID: 2, Secret: "i_old", ExpiresAt: s.now.Add(-time.Second)}, nil)
		keys.EXPECT().Update(gomock.Any(), gomock.Any()).Return(boom)

		_, err := provider.Handle(s.ctx, 10, 2, false)
		s.ErrorIs(err, boom)
	})

	s.Run("secret generation error propagates", func() {
		failing, err := New(keys, servers, WithSecretGenerator(func() (string, error) { return "", boom }))
		s.Require().NoError(err)
		keys.EXPECT().Find(gomock.Any(), int64(10), int64(2)).Return(nil, sentinel.ErrNotFound)

		_, err = failing.Handle(s.ctx, 10, 2, false)
		s.ErrorIs(err, boom)
	})
}

func TestNewRequiresCollaborators(t *testing.T) {
	_, err := New(nil, serverstore.NewInMemory())
	assert.EqualError(t, err, "key store is required")

	_, err = New(keystore.NewInMemory(), nil)
	assert.EqualError(t, err, "server finder is required")
}

func TestGenerateSecret(t *testing.T) {
	a, err := GenerateSecret()
	assert.NoError(t, err)
	b, err := GenerateSecret()
	assert.NoError(t, err)

	assert.True(t, strings.HasPrefix(a, models.SecretPrefix))
	assert.Len(t, a, len(models.SecretPrefix)+40)
	assert.NotEqual(t, a, b)
}
