package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"panel/internal/audit"
	"panel/internal/daemon"
	"panel/internal/i18n"
	"panel/internal/subuser/metrics"
	"panel/internal/subuser/models"
	dErrors "panel/pkg/domain-errors"
	"panel/pkg/platform/sentinel"
)

type SubuserStore interface {
	GetWithServer(ctx context.Context, id int64) (*models.Subuser, error)
}

type PermissionStore interface {
	DeleteBySubuser(ctx context.Context, subuserID int64) error
	ListBySubuser(ctx context.Context, subuserID int64) ([]string, error)
}

// PermissionWriter bulk-inserts validated permission names.
type PermissionWriter interface {
	InsertMany(ctx context.Context, subuserID int64, names []string) error
}

type PermissionCreator interface {
	Create(ctx context.Context, subuserID int64, names []string) error
}

// KeyProvider returns the daemon access key of a user on a server, issuing
// or rotating it as needed.
type KeyProvider interface {
	Handle(ctx context.Context, serverID, userID int64, isAdmin bool) (string, error)
}

type DaemonServerRepository interface {
	SetNode(ctx context.Context, nodeID int64) (daemon.Server, error)
}

// TxManager scopes a unit of work. Begin returns a context carrying the
// transaction; stores called with it participate in the transaction.
type TxManager interface {
	Begin(ctx context.Context) (context.Context, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

type Translator interface {
	T(messageID string, data map[string]any) string
}

// Service updates subusers and keeps the node daemons in sync with the
// database.
type Service struct {
	subusers       SubuserStore
	permissions    PermissionStore
	creator        PermissionCreator
	keys           KeyProvider
	daemons        DaemonServerRepository
	tx             TxManager
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *metrics.Metrics
	translator     Translator
	tracer         trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithTranslator sets the catalog used for user-facing messages. English is
// used when unset.
func WithTranslator(t Translator) Option {
	return func(s *Service) {
		s.translator = t
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// New constructs a Service.
func New(
	subusers SubuserStore,
	permissions PermissionStore,
	creator PermissionCreator,
	keys KeyProvider,
	daemons DaemonServerRepository,
	tx TxManager,
	opts ...Option,
) (*Service, error) {
	switch {
	case subusers == nil:
		return nil, errors.New("subuser store is required")
	case permissions == nil:
		return nil, errors.New("permission store is required")
	case creator == nil:
		return nil, errors.New("permission creator is required")
	case keys == nil:
		return nil, errors.New("key provider is required")
	case daemons == nil:
		return nil, errors.New("daemon repository is required")
	case tx == nil:
		return nil, errors.New("transaction manager is required")
	}

	s := &Service{
		subusers:    subusers,
		permissions: permissions,
		creator:     creator,
		keys:        keys,
		daemons:     daemons,
		tx:          tx,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.translator == nil {
		tr, err := i18n.New("en")
		if err != nil {
			return nil, fmt.Errorf("load messages: %w", err)
		}
		s.translator = tr
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer("panel/internal/subuser/service")
	}
	return s, nil
}

// Get returns the subuser with its server and current permissions.
func (s *Service) Get(ctx context.Context, id int64) (*models.SubuserDetails, error) {
	subuser, err := s.subusers.GetWithServer(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeNotFound, s.translator.T(i18n.SubuserNotFound, nil))
	}
	if err != nil {
		return nil, err
	}
	names, err := s.permissions.ListBySubuser(ctx, subuser.ID)
	if err != nil {
		return nil, fmt.Errorf("list permissions of subuser %d: %w", subuser.ID, err)
	}
	return &models.SubuserDetails{Subuser: subuser, Permissions: names}, nil
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.auditPublisher == nil {
		return
	}
	if err := s.auditPublisher.Emit(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to emit audit event",
			"action", string(event.Action),
			"error", err,
		)
	}
}

func (s *Service) observe(outcome string, start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveUpdate(outcome, start)
	}
}
