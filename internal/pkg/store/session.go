package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// deletes the lock only while it still holds the caller's token
const releaseLockScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`

// SessionStore keeps wizard sessions as JSON documents that expire after ttl
// of inactivity.
type SessionStore[T any] struct {
	redis       RedisClient
	prefix      string
	ttl         time.Duration
	lockTimeout time.Duration
}

func NewSessionStore[T any](redis RedisClient, prefix string, ttl, lockTimeout time.Duration) *SessionStore[T] {
	return &SessionStore[T]{
		redis:       redis,
		prefix:      prefix,
		ttl:         ttl,
		lockTimeout: lockTimeout,
	}
}

func (s *SessionStore[T]) GetCacheKey(id string) string {
	return fmt.Sprintf("%s:session:%s", s.prefix, id)
}

func (s *SessionStore[T]) GetLockKey(id string) string {
	return fmt.Sprintf("%s:lock:%s", s.prefix, id)
}

// Save writes the session and restarts its ttl.
func (s *SessionStore[T]) Save(ctx context.Context, id string, session T) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := s.redis.Set(ctx, s.GetCacheKey(id), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}

	return nil
}

// Load returns ErrSessionNotFound when the session never existed or expired.
func (s *SessionStore[T]) Load(ctx context.Context, id string) (T, error) {
	var session T

	data, err := s.redis.Get(ctx, s.GetCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return session, ErrSessionNotFound.WithMessage("session %s not found or expired", id)
		}
		return session, fmt.Errorf("failed to get session: %w", err)
	}

	if err := json.Unmarshal(data, &session); err != nil {
		return session, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return session, nil
}

func (s *SessionStore[T]) Delete(ctx context.Context, id string) error {
	if err := s.redis.Del(ctx, s.GetCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

// Lock serializes mutations of one session. The returned release func must be
// called once the mutation is saved. A held lock yields ErrSessionBusy. A lock
// that expired and was taken by another request is left alone on release.
func (s *SessionStore[T]) Lock(ctx context.Context, id string) (func(), error) {
	key := s.GetLockKey(id)
	token := uuid.New().String()

	acquired, err := s.redis.SetNX(ctx, key, token, s.lockTimeout).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}

	if !acquired {
		return nil, ErrSessionBusy
	}

	return func() {
		// the request context may already be gone
		released, err := s.redis.Eval(context.WithoutCancel(ctx), releaseLockScript, []string{key}, token).Int()
		if err != nil {
			slog.ErrorContext(ctx, "failed to release lock", "key", key, "error", err)
			return
		}
		if released == 0 {
			slog.WarnContext(ctx, "lock expired before release", "key", key)
		}
	}, nil
}
