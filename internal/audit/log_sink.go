package audit

import (
	"context"
	"log/slog"
)

// LogSink writes audit events as structured log records.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger.With("component", "audit")}
}

func (s *LogSink) Write(ctx context.Context, event Event) error {
	s.logger.InfoContext(ctx, "audit event",
		"event_id", event.ID.String(),
		"action", string(event.Action),
		"timestamp", timestampUTC(event.Timestamp),
		"actor_id", event.ActorID,
		"subuser_id", event.SubuserID,
		"server_id", event.ServerID,
		"user_id", event.UserID,
		"permissions", event.Permissions,
		"reason", event.Reason,
		"request_id", event.RequestID,
	)
	return nil
}
