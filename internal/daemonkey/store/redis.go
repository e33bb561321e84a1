package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"panel/internal/daemonkey/models"
	"panel/pkg/platform/sentinel"
)

const daemonKeyPrefix = "daemon_key:"

// RedisStore keeps daemon access keys in Redis hashes, one per (server, user).
// Keys live outside the SQL transaction; a rotation is visible immediately.
type RedisStore struct {
	client *redis.Client
}

// NewRedis constructs a Redis-backed daemon key store.
func NewRedis(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func redisKey(serverID, userID int64) string {
	return daemonKeyPrefix + strconv.FormatInt(serverID, 10) + ":" + strconv.FormatInt(userID, 10)
}

func (s *RedisStore) Find(ctx context.Context, serverID, userID int64) (*models.DaemonKey, error) {
	fields, err := s.client.HGetAll(ctx, redisKey(serverID, userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("find daemon key: %w", err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("daemon key %d/%d: %w", serverID, userID, sentinel.ErrNotFound)
	}

	key := &models.DaemonKey{ServerID: serverID, UserID: userID, Secret: fields["secret"]}
	for name, dst := range map[string]*time.Time{
		"expires_at": &key.ExpiresAt,
		"created_at": &key.CreatedAt,
		"updated_at": &key.UpdatedAt,
	} {
		t, err := time.Parse(time.RFC3339Nano, fields[name])
		if err != nil {
			return nil, fmt.Errorf("decode daemon key %s: %w", name, err)
		}
		*dst = t
	}
	return key, nil
}

func (s *RedisStore) Create(ctx context.Context, key *models.DaemonKey) error {
	if err := s.client.HSet(ctx, redisKey(key.ServerID, key.UserID), encode(key)).Err(); err != nil {
		return fmt.Errorf("create daemon key: %w", err)
	}
	return nil
}

func (s *RedisStore) Update(ctx context.Context, key *models.DaemonKey) error {
	rk := redisKey(key.ServerID, key.UserID)
	n, err := s.client.Exists(ctx, rk).Result()
	if err != nil {
		return fmt.Errorf("update daemon key: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("daemon key %d/%d: %w", key.ServerID, key.UserID, sentinel.ErrNotFound)
	}
	if err := s.client.HSet(ctx, rk, encode(key)).Err(); err != nil {
		return fmt.Errorf("update daemon key: %w", err)
	}
	return nil
}

func encode(key *models.DaemonKey) map[string]any {
	return map[string]any{
		"secret":     key.Secret,
		"expires_at": key.ExpiresAt.UTC().Format(time.RFC3339Nano),
		"created_at": key.CreatedAt.UTC().Format(time.RFC3339Nano),
		"updated_at": key.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}
