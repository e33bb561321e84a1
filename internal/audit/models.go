package audit

import (
	"time"

	"github.com/google/uuid"
)

// Action names what happened.
type Action string

const (
	ActionSubuserPermissionsUpdated Action = "subuser_permissions_updated"
	ActionDaemonConnectionFailed    Action = "daemon_connection_failed"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so sinks can fan out.
type Event struct {
	ID        uuid.UUID `json:"id"`
	Action    Action    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	// ActorID is the panel user that triggered the action, 0 for CLI runs.
	ActorID     int64    `json:"actor_id,omitempty"`
	SubuserID   int64    `json:"subuser_id"`
	ServerID    int64    `json:"server_id"`
	UserID      int64    `json:"user_id"`
	Permissions []string `json:"permissions,omitempty"`
	Reason      string   `json:"reason,omitempty"`
	RequestID   string   `json:"request_id,omitempty"`
}
