// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package anytime

import (
	"context"
	"errors"
	"io"
	"runtime/trace"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrMiddleware is the panic value used when a [Middleware] does not
// call the step function exactly once.
var ErrMiddleware = errors.New("anytime: middleware must invoke the step exactly once")

// An Executor runs an [Interruptable] until it is done or until its
// deadline has been missed. An Executor produces exactly one result and
// must not be used from multiple goroutines.
type Executor[T any] struct {
	cfg      *config
	deadline time.Duration
	fn       Interruptable[T]
	info     RunInfo
}

// New constructs an Executor that will allow the computation to run
// for the given duration. A zero deadline still permits a single step.
// New panics if the Interruptable is nil or the deadline is negative.
func New[T any](fn Interruptable[T], deadline time.Duration, opts ...Option) *Executor[T] {
	if fn == nil {
		panic(errors.New("interruptable must not be nil"))
	}
	if deadline < 0 {
		panic(errors.New("deadline must not be negative"))
	}
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.Sanitize()

	return &Executor[T]{
		cfg:      cfg,
		deadline: deadline,
		fn:       fn,
		info: RunInfo{
			Budget: deadline,
			Name:   cfg.name,
			State:  StateIdle,
		},
	}
}

// Exec is a shortcut for constructing an [Executor] and calling
// [Executor.Run].
func Exec[T any](fn Interruptable[T], deadline time.Duration, opts ...Option) (T, error) {
	return New(fn, deadline, opts...).Run()
}

// Info returns a summary of the run.
func (e *Executor[T]) Info() RunInfo { return e.info }

// PartialResult returns the current snapshot of the computation. It may
// be called at any time, regardless of whether Run has been called.
func (e *Executor[T]) PartialResult() (T, bool) {
	return e.fn.Snapshot()
}

// Run steps the computation until it is done or until the deadline has
// been missed. The deadline is checked only after a pending step, so a
// finished computation is always returned, no matter how long it took.
//
// If the deadline is missed, a [*TimeoutError] is returned, containing
// the snapshot taken immediately after the final step.
//
// Run may only be called once. Subsequent calls return [ErrExhausted]
// without stepping the computation. If the Interruptable implements
// [io.Closer], it is closed before Run returns.
func (e *Executor[T]) Run() (T, error) {
	var zero T
	if e.info.State != StateIdle {
		return zero, ErrExhausted
	}

	ctx, traceTask := trace.NewTask(context.Background(), e.cfg.name)
	defer traceTask.End()
	defer e.release()

	next := e.chain(ctx)
	clock := e.cfg.clock
	start := clock.Now()
	e.info.Started = start
	e.info.State = StateRunning

	for {
		status := next()
		e.info.Steps++

		if out, done := status.Value(); done {
			e.info.Elapsed = clock.Now().Sub(start)
			e.info.State = StateDone
			e.logger().Debug("computation finished")
			return out, nil
		}

		elapsed := clock.Now().Sub(start)
		e.info.Elapsed = elapsed
		if elapsed < e.deadline {
			continue
		}

		e.info.State = StateTimedOut
		err := &TimeoutError[T]{
			budget: e.deadline,
			lateBy: elapsed - e.deadline,
			steps:  e.info.Steps,
		}
		err.partial, err.hasPartial = e.fn.Snapshot()
		e.logger().WithField("late_by", err.lateBy).Debug("deadline exceeded")
		return zero, err
	}
}

// chain builds the middleware invocation chain from the bottom up.
func (e *Executor[T]) chain(ctx context.Context) func() Status[T] {
	var status Status[T]
	var calls int
	chain := func() {
		calls++
		if calls > 1 {
			panic(ErrMiddleware)
		}
		trace.WithRegion(ctx, "step", func() {
			status = e.fn.Step()
		})
	}
	for i := len(e.cfg.mw) - 1; i >= 0; i-- {
		mw := e.cfg.mw[i]    // Capture
		nextInChain := chain // Capture
		chain = func() {
			mw(ctx, nextInChain)
		}
	}

	return func() Status[T] {
		calls = 0
		status = Status[T]{}
		chain()
		if calls != 1 {
			panic(ErrMiddleware)
		}
		return status
	}
}

func (e *Executor[T]) logger() logrus.FieldLogger {
	return e.cfg.logger.WithFields(logrus.Fields{
		"elapsed": e.info.Elapsed,
		"name":    e.info.Name,
		"steps":   e.info.Steps,
	})
}

func (e *Executor[T]) release() {
	c, ok := e.fn.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		e.logger().WithError(err).Warn("could not close computation")
	}
}
