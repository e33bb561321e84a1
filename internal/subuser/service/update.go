package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"panel/internal/audit"
	"panel/internal/daemon"
	"panel/internal/i18n"
	"panel/internal/subuser/metrics"
	dErrors "panel/pkg/domain-errors"
)

// Update replaces the permissions of a subuser and revokes the subuser's
// daemon access key so the daemon re-authorizes against the new set.
//
// The local changes are committed only after the daemon accepted the
// revocation. When the daemon cannot be reached or rejects the call, the
// transaction is rolled back and a *dErrors.DisplayError is returned. There is
// no remote undo: a revoked key is simply re-issued on next use.
func (s *Service) Update(ctx context.Context, subuserID int64, permissions []string) (err error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "subuser.Update", trace.WithAttributes(
		attribute.Int64("subuser.id", subuserID),
		attribute.Int("subuser.permission_count", len(permissions)),
	))
	outcome := metrics.OutcomeFailed
	defer func() {
		s.observe(outcome, start)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "subuser update failed")
		}
		span.End()
	}()

	subuser, err := s.subusers.GetWithServer(ctx, subuserID)
	if err != nil {
		return err
	}
	if subuser.Server == nil {
		return dErrors.New(dErrors.CodeInvariantViolation, "subuser loaded without its server")
	}
	span.SetAttributes(
		attribute.Int64("server.id", subuser.ServerID),
		attribute.Int64("node.id", subuser.Server.NodeID),
	)

	txCtx, err := s.tx.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin subuser update: %w", err)
	}
	settled := false
	rollback := func() {
		if settled {
			return
		}
		settled = true
		if rbErr := s.tx.Rollback(txCtx); rbErr != nil {
			s.logger.ErrorContext(ctx, "failed to roll back subuser update",
				"subuser_id", subuser.ID,
				"error", rbErr,
			)
		}
	}
	defer rollback()

	if err := s.permissions.DeleteBySubuser(txCtx, subuser.ID); err != nil {
		return fmt.Errorf("delete permissions of subuser %d: %w", subuser.ID, err)
	}
	if err := s.creator.Create(txCtx, subuser.ID, permissions); err != nil {
		return fmt.Errorf("create permissions of subuser %d: %w", subuser.ID, err)
	}

	key, err := s.keys.Handle(txCtx, subuser.ServerID, subuser.UserID, false)
	if err != nil {
		return fmt.Errorf("get daemon key: %w", err)
	}

	if err := s.revokeKey(ctx, subuser.Server.NodeID, key); err != nil {
		var reqErr *daemon.RequestError
		if !errors.As(err, &reqErr) {
			return fmt.Errorf("revoke daemon key: %w", err)
		}
		rollback()
		s.logger.WarnContext(ctx, "daemon request failed, subuser update rolled back",
			"subuser_id", subuser.ID,
			"server_id", subuser.ServerID,
			"node_id", subuser.Server.NodeID,
			"error", err,
		)
		outcome = metrics.OutcomeDaemonFailed
		if s.metrics != nil {
			s.metrics.IncrementDaemonFailure(reqErr.Code())
		}
		s.emit(ctx, audit.Event{
			Action:    audit.ActionDaemonConnectionFailed,
			SubuserID: subuser.ID,
			ServerID:  subuser.ServerID,
			UserID:    subuser.UserID,
			Reason:    reqErr.Code(),
		})
		return s.daemonConnectionFailed(reqErr)
	}

	settled = true
	if err := s.tx.Commit(txCtx); err != nil {
		return fmt.Errorf("commit subuser update: %w", err)
	}
	outcome = metrics.OutcomeCommitted

	s.logger.InfoContext(ctx, "subuser permissions updated",
		"subuser_id", subuser.ID,
		"server_id", subuser.ServerID,
		"permission_count", len(permissions),
	)
	s.emit(ctx, audit.Event{
		Action:      audit.ActionSubuserPermissionsUpdated,
		SubuserID:   subuser.ID,
		ServerID:    subuser.ServerID,
		UserID:      subuser.UserID,
		Permissions: permissions,
	})
	return nil
}

func (s *Service) revokeKey(ctx context.Context, nodeID int64, key string) error {
	server, err := s.daemons.SetNode(ctx, nodeID)
	if err != nil {
		return err
	}
	return server.RevokeAccessKey(ctx, key)
}

// daemonConnectionFailed turns a daemon failure into the message shown to the
// user. The code is E_CONN_REFUSED when no response came back, otherwise the
// HTTP status of the daemon's reply.
func (s *Service) daemonConnectionFailed(reqErr *daemon.RequestError) error {
	code := reqErr.Code()
	msg := s.translator.T(i18n.DaemonConnectionFailed, map[string]any{"Code": code})
	return dErrors.NewDisplay(msg, code, reqErr)
}
