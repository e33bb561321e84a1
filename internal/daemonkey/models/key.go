package models

import "time"

// SecretPrefix marks daemon access keys so they are recognizable in daemon logs.
const SecretPrefix = "i_"

// DaemonKey authorizes one user to act on one server through the daemon.
type DaemonKey struct {
	ServerID  int64
	UserID    int64
	Secret    string
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsExpired reports whether the key is no longer accepted by the daemon at now.
func (k *DaemonKey) IsExpired(now time.Time) bool {
	return !now.Before(k.ExpiresAt)
}

// Rotate replaces the secret and pushes the expiry out by ttl.
func (k *DaemonKey) Rotate(secret string, now time.Time, ttl time.Duration) {
	k.Secret = secret
	k.ExpiresAt = now.Add(ttl)
	k.UpdatedAt = now
}
