package simulator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ijalalfrz/airline-booking-simulator/internal/pkg/random"
)

// Config tunes a simulated remote call.
type Config struct {
	// Delay is how long every attempt takes.
	Delay time.Duration
	// Timeout bounds all attempts together, zero means only the caller's context.
	Timeout time.Duration
	// FailureRate is the probability in [0, 1] that an attempt fails.
	FailureRate float64
	MaxRetries  int
	// Backoff before retry n is Backoff * 2^n.
	Backoff time.Duration
}

// Simulator stands in for a remote airline system. Each call waits out the
// configured delay, may fail, and is retried with exponential backoff.
type Simulator struct {
	name string
	cfg  Config
	src  random.Source
}

func New(name string, cfg Config, src random.Source) *Simulator {
	return &Simulator{name: name, cfg: cfg, src: src}
}

// Name identifies the simulated system in logs.
func (s *Simulator) Name() string {
	return s.name
}

// Do performs one simulated call. It returns the context error as soon as ctx
// is done, and ErrRetryExceeded once every attempt has failed.
func (s *Simulator) Do(ctx context.Context, operation string) error {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	var lastErr error
	for attempt := 0; attempt <= s.cfg.MaxRetries; attempt++ {
		select {
		case <-time.After(s.cfg.Delay):
		case <-ctx.Done():
			return fmt.Errorf("context cancelled or timeout: %w", ctx.Err())
		}

		if !random.Chance(s.src, s.cfg.FailureRate) {
			return nil
		}

		lastErr = ErrSimulatedServiceFailure.WithMessage("%s %s failed", s.name, operation)
		slog.ErrorContext(ctx, "simulated call failed", "system", s.name, "operation", operation,
			"attempt", attempt+1, "error", lastErr)

		if attempt < s.cfg.MaxRetries {
			backoff := s.cfg.Backoff * time.Duration(1<<attempt)
			slog.InfoContext(ctx, "retrying with exponential backoff", "backoff", backoff,
				"next_attempt", attempt+2)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return fmt.Errorf("context cancelled or timeout: %w", ctx.Err())
			}
		}
	}

	return ErrRetryExceeded.WithMessage("%s %s failed after %d attempts", s.name, operation,
		s.cfg.MaxRetries+1).WithCause(lastErr)
}

// Run performs a simulated call and computes its result with fn once the
// call went through.
func Run[T any](ctx context.Context, s *Simulator, operation string, fn func() (T, error)) (T, error) {
	if err := s.Do(ctx, operation); err != nil {
		var zero T
		return zero, err
	}

	return fn()
}
