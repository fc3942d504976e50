// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package anytime

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// A Clock provides the time source used to measure elapsed time. The
// values returned from Now should carry a monotonic clock reading, as
// those from [time.Now] do.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the default [Clock], backed by [time.Now].
var SystemClock Clock = systemClock{}

// A Middleware wraps the execution of every step of a computation. It
// must call the step function exactly once before returning; an
// [Executor] panics with [ErrMiddleware] otherwise. Time spent in a
// Middleware counts against the deadline.
//
// The context carries runtime tracing data. It is never canceled.
type Middleware func(ctx context.Context, step func())

// An Option configures an [Executor].
type Option func(*config)

// WithClock replaces the time source used to measure elapsed time.
func WithClock(clock Clock) Option {
	return func(cfg *config) {
		cfg.clock = clock
	}
}

// WithLogger attaches a logger to which the [Executor] will report the
// outcome of a run. By default, nothing is logged.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithMiddleware appends step [Middleware]. The first Middleware
// provided will be the outermost.
func WithMiddleware(mw ...Middleware) Option {
	return func(cfg *config) {
		cfg.mw = append(cfg.mw, mw...)
	}
}

// WithName sets the name used for runtime tracing and logging.
func WithName(name string) Option {
	return func(cfg *config) {
		cfg.name = name
	}
}

type config struct {
	clock  Clock
	logger logrus.FieldLogger
	mw     []Middleware
	name   string
}

// Sanitize fills in default values.
func (c *config) Sanitize() {
	if c.clock == nil {
		c.clock = SystemClock
	}
	if c.logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		c.logger = l
	}
	if c.name == "" {
		c.name = "anytime"
	}
}
