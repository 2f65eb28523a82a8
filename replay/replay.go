// SPDX-License-Identifier: MIT

// Package replay drives a recorded trace at a fixed pace, the way the
// visualizer animates steps at a user-chosen speed.
//
// Play is generic over the step type, so the Kruskal trace and any other
// trace-then-replay record share one loop.
package replay

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNegativeDelay is returned when delay < 0.
var ErrNegativeDelay = errors.New("replay: delay cannot be negative")

// ErrNilHandler is returned when fn is nil.
var ErrNilHandler = errors.New("replay: handler is nil")

// Play calls fn for each step in order, waiting delay between consecutive
// steps. The first step is delivered immediately; delay == 0 never waits.
//
// Play returns ctx.Err() if ctx ends first, or the first error returned by
// fn. It starts no goroutines.
func Play[T any](ctx context.Context, steps []T, delay time.Duration, fn func(i int, step T) error) error {
	if delay < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeDelay, delay)
	}
	if fn == nil {
		return ErrNilHandler
	}

	var tick <-chan time.Time
	if delay > 0 && len(steps) > 1 {
		t := time.NewTicker(delay)
		defer t.Stop()
		tick = t.C
	}

	for i, s := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 && tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		}
		if err := fn(i, s); err != nil {
			return err
		}
	}

	return nil
}
