package service

import (
	"context"
	"fmt"

	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/logger"
)

// SessionStore keeps wizard sessions between requests.
type SessionStore[T any] interface {
	Save(ctx context.Context, id string, session T) error
	Load(ctx context.Context, id string) (T, error)
	Delete(ctx context.Context, id string) error
	Lock(ctx context.Context, id string) (func(), error)
}

// mutate applies fn to the stored session under the session lock. The session
// is only saved when fn succeeds, a failed step leaves it untouched.
func mutate[T any](ctx context.Context, sessions SessionStore[T], id string, fn func(T) (T, error)) (T, error) {
	var zero T

	ctx = logger.WithSessionID(ctx, id)

	unlock, err := sessions.Lock(ctx, id)
	if err != nil {
		return zero, err
	}
	defer unlock()

	session, err := sessions.Load(ctx, id)
	if err != nil {
		return zero, err
	}

	next, err := fn(session)
	if err != nil {
		return zero, err
	}

	if err := sessions.Save(ctx, id, next); err != nil {
		return zero, fmt.Errorf("failed to save session: %w", err)
	}

	return next, nil
}

// remove deletes a session once no mutation holds it.
func remove[T any](ctx context.Context, sessions SessionStore[T], id string) error {
	ctx = logger.WithSessionID(ctx, id)

	unlock, err := sessions.Lock(ctx, id)
	if err != nil {
		return err
	}
	defer unlock()

	// surfaces SessionNotFound for unknown ids
	if _, err := sessions.Load(ctx, id); err != nil {
		return err
	}

	return sessions.Delete(ctx, id)
}
