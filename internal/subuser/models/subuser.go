package models

import (
	"time"

	servermodels "panel/internal/server/models"
)

// Subuser grants a panel user delegated, permission-limited access to one
// server. Server is attached by GetWithServer lookups and nil otherwise.
type Subuser struct {
	ID        int64                `json:"id"`
	UserID    int64                `json:"user_id"`
	ServerID  int64                `json:"server_id"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
	Server    *servermodels.Server `json:"server,omitempty"`
}

// Permission is a single named capability held by a subuser.
type Permission struct {
	SubuserID int64  `json:"subuser_id"`
	Name      string `json:"permission"`
}

// SubuserDetails is a subuser together with its current permission names.
type SubuserDetails struct {
	Subuser     *Subuser `json:"subuser"`
	Permissions []string `json:"permissions"`
}
