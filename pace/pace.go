// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package pace provides [anytime.Middleware] to limit how quickly the
// steps of a computation are executed.
//
// Attach the Middlewares using [anytime.WithMiddleware] during
// executor construction. Time spent waiting counts against the
// deadline of the run.
package pace

import (
	"context"
	"errors"
	"runtime/trace"
	"time"

	"golang.org/x/time/rate"
	"vawter.tech/anytime"
)

// WithMaxRate is a wrapper around a [rate.Limiter] that enforces a rate
// by delaying each step until the limiter permits it. The wait happens
// on the goroutine executing the computation.
func WithMaxRate(r float64, b int) anytime.Middleware {
	if r <= 0 {
		panic(errors.New("rate must be greater than zero"))
	}
	if b <= 0 {
		panic(errors.New("burst must be greater than zero"))
	}
	return Limiter(rate.NewLimiter(rate.Limit(r), b))
}

// Limiter adapts an existing [rate.Limiter], which may be shared with
// other parts of the program, to pace steps.
func Limiter(l *rate.Limiter) anytime.Middleware {
	return func(ctx context.Context, step func()) {
		// Fast-path: there's capacity.
		if l.Allow() {
			step()
			return
		}

		res := l.Reserve()
		if !res.OK() {
			panic(errors.New("limiter will never permit a step"))
		}
		wait(ctx, res.Delay())
		step()
	}
}

func wait(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	defer trace.StartRegion(ctx, "pace wait").End()
	time.Sleep(d)
}
