package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"panel/internal/daemonkey/models"
	servermodels "panel/internal/server/models"
	"panel/pkg/platform/sentinel"
	"panel/pkg/requestcontext"
)

// DefaultKeyTTL is how long a daemon access key stays valid after issue or rotation.
const DefaultKeyTTL = 10 * time.Minute

type KeyStore interface {
	Find(ctx context.Context, serverID, userID int64) (*models.DaemonKey, error)
	Create(ctx context.Context, key *models.DaemonKey) error
	Update(ctx context.Context, key *models.DaemonKey) error
}

type ServerFinder interface {
	FindByID(ctx context.Context, id int64) (*servermodels.Server, error)
}

// Provider hands out daemon access keys for (server, user) pairs. A missing
// key is created, an expired key is rotated, and a live key is returned as is.
type Provider struct {
	keys     KeyStore
	servers  ServerFinder
	ttl      time.Duration
	generate func() (string, error)
	logger   *slog.Logger
}

type Option func(*Provider)

func WithTTL(ttl time.Duration) Option {
	return func(p *Provider) {
		if ttl > 0 {
			p.ttl = ttl
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Provider) {
		p.logger = logger
	}
}

// WithSecretGenerator replaces the random secret source. Tests use it to get
// predictable secrets.
func WithSecretGenerator(fn func() (string, error)) Option {
	return func(p *Provider) {
		if fn != nil {
			p.generate = fn
		}
	}
}

// New constructs a Provider.
func New(keys KeyStore, servers ServerFinder, opts ...Option) (*Provider, error) {
	if keys == nil {
		return nil, errors.New("key store is required")
	}
	if servers == nil {
		return nil, errors.New("server finder is required")
	}
	p := &Provider{
		keys:     keys,
		servers:  servers,
		ttl:      DefaultKeyTTL,
		generate: GenerateSecret,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Handle returns the access key for userID on serverID. When isAdmin is set
// the request is acting with administrative rights and the server owner's key
// is used instead of the caller's.
func (p *Provider) Handle(ctx context.Context, serverID, userID int64, isAdmin bool) (string, error) {
	subject := userID
	if isAdmin {
		server, err := p.servers.FindByID(ctx, serverID)
		if err != nil {
			return "", fmt.Errorf("resolve server owner: %w", err)
		}
		subject = server.OwnerID
	}

	now := requestcontext.Now(ctx)
	key, err := p.keys.Find(ctx, serverID, subject)
	if errors.Is(err, sentinel.ErrNotFound) {
		return p.create(ctx, serverID, subject, now)
	}
	if err != nil {
		return "", fmt.Errorf("load daemon key: %w", err)
	}

	if !key.IsExpired(now) {
		return key.Secret, nil
	}

	secret, err := p.generate()
	if err != nil {
		return "", err
	}
	key.Rotate(secret, now, p.ttl)
	if err := p.keys.Update(ctx, key); err != nil {
		return "", fmt.Errorf("rotate daemon key: %w", err)
	}
	p.logger.DebugContext(ctx, "rotated expired daemon key",
		"server_id", serverID,
		"user_id", subject,
	)
	return key.Secret, nil
}

func (p *Provider) create(ctx context.Context, serverID, userID int64, now time.Time) (string, error) {
	secret, err := p.generate()
	if err != nil {
		return "", err
	}
	key := &models.DaemonKey{
		ServerID:  serverID,
		UserID:    userID,
		Secret:    secret,
		ExpiresAt: now.Add(p.ttl),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := p.keys.Create(ctx, key); err != nil {
		return "", fmt.Errorf("create daemon key: %w", err)
	}
	return key.Secret, nil
}

// GenerateSecret returns a fresh key: the "i_" prefix followed by 40 URL-safe
// random characters.
func GenerateSecret() (string, error) {
	buf := make([]byte, 30)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("could not generate daemon key: %w", err)
	}
	return models.SecretPrefix + base64.RawURLEncoding.EncodeToString(buf), nil
}
