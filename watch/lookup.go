package watch

import (
	"context"
	"errors"
	"time"

	"github.com/abouramd/live-stream/model"
)

// Deadline derives the context of one lookup from parent.
// A non-positive timeout leaves the lookup unbounded.
func Deadline(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout > 0 {
		return context.WithTimeout(parent, timeout)
	}
	return context.WithCancel(parent)
}

// Lookup resolves refs and returns as soon as either the resolver answers or
// ctx ends. An answer that raced the end of ctx is dropped, and an expired
// deadline is reported as ErrTimeout.
func Lookup(ctx context.Context, resolver Resolver, refs []model.SourceRef) ([]model.Stream, error) {
	done := make(chan []model.Stream, 1)
	go func() {
		done <- resolver.Resolve(ctx, refs)
	}()

	var streams []model.Stream
	select {
	case streams = <-done:
	case <-ctx.Done():
	}

	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, err
	}

	return streams, nil
}
