// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package seq

import (
	"iter"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"vawter.tech/anytime"
	"vawter.tech/anytime/clocktest"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// TestFromSeq verifies that each step pulls one value and that the last
// value is the final result.
func TestFromSeq(t *testing.T) {
	r := require.New(t)

	s := FromSeq(slices.Values([]int{1, 2, 3}))
	defer s.Close()

	_, ok := s.Snapshot()
	r.False(ok)

	for want := 1; want <= 3; want++ {
		r.False(s.Step().IsDone())
		got, ok := s.Snapshot()
		r.True(ok)
		r.Equal(want, got)
	}

	out, done := s.Step().Value()
	r.True(done)
	r.Equal(3, out)
}

// TestFromSeqEmpty verifies the behavior of an empty sequence.
func TestFromSeqEmpty(t *testing.T) {
	r := require.New(t)

	s := FromSeq(slices.Values([]string(nil)))
	defer s.Close()

	out, done := s.Step().Value()
	r.True(done)
	r.Equal("", out)
	_, ok := s.Snapshot()
	r.False(ok)
}

// TestExecTimeoutReleases verifies that an Executor closes the
// underlying iterator when the deadline is missed.
func TestExecTimeoutReleases(t *testing.T) {
	r := require.New(t)

	released := false
	var infinite iter.Seq[int] = func(yield func(int) bool) {
		defer func() { released = true }()
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}

	clock := clocktest.New(epoch, time.Millisecond)
	_, err := anytime.Exec(FromSeq(infinite), 3*time.Millisecond,
		anytime.WithClock(clock))
	r.ErrorIs(err, anytime.ErrDeadlineExceeded)
	r.True(released)

	partial, ok := anytime.PartialFrom[int](err)
	r.True(ok)
	r.Equal(2, partial)
}

// TestRefine verifies that a refinement sequence ends once the done
// predicate is satisfied.
func TestRefine(t *testing.T) {
	r := require.New(t)

	halve := Refine(100, func(v int) int { return v / 2 },
		func(v int) bool { return v < 10 })
	r.Equal([]int{100, 50, 25, 12, 6}, slices.Collect(halve))

	got, err := anytime.Exec(FromSeq(halve), time.Minute)
	r.NoError(err)
	r.Equal(6, got)
}

// TestRefineStopsEarly verifies that the refinement sequence honors an
// early exit.
func TestRefineStopsEarly(t *testing.T) {
	r := require.New(t)

	calls := 0
	inc := Refine(0, func(v int) int { calls++; return v + 1 },
		func(int) bool { return false })
	for v := range inc {
		if v == 3 {
			break
		}
	}
	r.Equal(3, calls)
}
