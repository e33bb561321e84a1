package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"panel/internal/audit"
	"panel/internal/daemon"
	keyservice "panel/internal/daemonkey/service"
	keystore "panel/internal/daemonkey/store"
	"panel/internal/i18n"
	"panel/internal/platform/config"
	"panel/internal/platform/postgres"
	platformredis "panel/internal/platform/redis"
	serverstore "panel/internal/server/store"
	submetrics "panel/internal/subuser/metrics"
	subuserservice "panel/internal/subuser/service"
	permissionstore "panel/internal/subuser/store/permission"
	subuserstore "panel/internal/subuser/store/subuser"
)

// runtime owns the process-wide connections and the services built on them.
type runtime struct {
	db       *sql.DB
	redis    *platformredis.Client
	kafka    *audit.KafkaSink
	subusers *subuserservice.Service
}

func newRuntime(ctx context.Context, cfg config.Config, logger *slog.Logger, reg prometheus.Registerer) (*runtime, error) {
	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	rt := &runtime{db: db}

	if err := rt.wire(ctx, cfg, logger, reg); err != nil {
		_ = rt.Close(context.Background())
		return nil, err
	}
	return rt, nil
}

func (rt *runtime) wire(ctx context.Context, cfg config.Config, logger *slog.Logger, reg prometheus.Registerer) error {
	servers := serverstore.NewPostgres(rt.db)

	var keys keyservice.KeyStore
	switch cfg.Daemon.KeyStore {
	case config.KeyStoreRedis:
		client, err := platformredis.New(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		rt.redis = client
		keys = keystore.NewRedis(client.Client)
	default:
		keys = keystore.NewPostgres(rt.db)
	}

	provider, err := keyservice.New(keys, servers,
		keyservice.WithTTL(cfg.Daemon.KeyTTL),
		keyservice.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	sinks := []audit.Sink{audit.NewLogSink(logger)}
	if len(cfg.Kafka.Brokers) > 0 {
		sink, err := audit.NewKafkaSink(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
		if err != nil {
			return err
		}
		rt.kafka = sink
		if err := sink.EnsureTopic(ctx); err != nil {
			return err
		}
		sinks = append(sinks, sink)
	}

	translator, err := i18n.New(cfg.Locale)
	if err != nil {
		return err
	}

	permissions := permissionstore.NewPostgres(rt.db)
	creator, err := subuserservice.NewPermissionService(permissions, nil, translator)
	if err != nil {
		return err
	}

	rt.subusers, err = subuserservice.New(
		subuserstore.NewPostgres(rt.db),
		permissions,
		creator,
		provider,
		daemon.NewRepository(servers,
			daemon.WithTimeout(cfg.Daemon.Timeout),
			daemon.WithLogger(logger),
		),
		postgres.NewTxManager(rt.db),
		subuserservice.WithLogger(logger),
		subuserservice.WithAuditPublisher(audit.NewPublisher(sinks...)),
		subuserservice.WithMetrics(submetrics.New(reg)),
		subuserservice.WithTranslator(translator),
	)
	return err
}

// Health pings every backing service the runtime holds.
func (rt *runtime) Health(ctx context.Context) error {
	if err := rt.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if rt.redis != nil {
		if err := rt.redis.Health(ctx); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
	}
	return nil
}

func (rt *runtime) Close(ctx context.Context) error {
	var errs []error
	if rt.kafka != nil {
		errs = append(errs, rt.kafka.Close(ctx))
	}
	if rt.redis != nil {
		errs = append(errs, rt.redis.Close())
	}
	errs = append(errs, rt.db.Close())
	return errors.Join(errs...)
}
