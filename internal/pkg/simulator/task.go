package simulator

import (
	"context"
)

// Task is a simulated call running in the background.
type Task[T any] struct {
	cancel context.CancelFunc
	done   chan struct{}
	result T
	err    error
}

// Start runs the call in its own goroutine. The task stops when ctx is done
// or Cancel is called.
func Start[T any](ctx context.Context, s *Simulator, operation string, fn func() (T, error)) *Task[T] {
	ctx, cancel := context.WithCancel(ctx)

	t := &Task[T]{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(t.done)
		defer cancel()

		t.result, t.err = Run(ctx, s, operation, fn)
	}()

	return t
}

// Await blocks until the task finishes or ctx is done. A result is only
// returned while ctx is still live, so callers can commit it safely.
func (t *Task[T]) Await(ctx context.Context) (T, error) {
	var zero T

	select {
	case <-t.done:
	case <-ctx.Done():
		t.cancel()
		return zero, ctx.Err()
	}

	if t.err != nil {
		return zero, t.err
	}

	if err := ctx.Err(); err != nil {
		return zero, err
	}

	return t.result, nil
}

// Cancel stops the task. Await then reports context.Canceled.
func (t *Task[T]) Cancel() {
	t.cancel()
}

// Done is closed once the task finished.
func (t *Task[T]) Done() <-chan struct{} {
	return t.done
}
