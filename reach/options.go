// Package reach implements the sketch's reachability query: does a
// directed path exist between two vertices using only edges active in a
// given time window.
//
// The search builds its adjacency view lazily from one pass over the
// sketch's virtual queue (geministore.Matrix.VisitActiveEdges) rather
// than re-probing the hash matrix per neighbor. It uses a small walker
// struct, functional Options, and context cancellation checked once per
// loop iteration.
package reach

import (
	"context"
	"errors"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("reach: invalid option supplied")

// Option configures a Query call.
type Option func(*config)

type config struct {
	ctx        context.Context
	stepBudget int // 0 = unlimited
	err        error
}

func defaultConfig() config {
	return config{ctx: context.Background()}
}

// WithContext sets a context for cancellation; Query returns ctx.Err()
// if it is done before the search completes.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithStepBudget bounds the number of vertices the search may dequeue.
// On exhaustion, Query returns false — "unknown, conservatively no" —
// rather than an error; this is a design contract, not a failure mode.
// A budget of 0 (the default) means unlimited.
func WithStepBudget(n int) Option {
	return func(c *config) {
		if n < 0 {
			c.err = errors.Join(ErrOptionViolation, errors.New("step budget cannot be negative"))
			return
		}
		c.stepBudget = n
	}
}
