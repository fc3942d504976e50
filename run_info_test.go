// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package anytime_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"vawter.tech/anytime"
	"vawter.tech/anytime/clocktest"
)

// TestRunInfo verifies the summary reported by an Executor in each of
// its states.
func TestRunInfo(t *testing.T) {
	r := require.New(t)

	clock := clocktest.New(epoch, time.Millisecond)
	e := anytime.New[int](&counter{}, 2*time.Millisecond,
		anytime.WithClock(clock),
		anytime.WithName("test"),
	)

	info := e.Info()
	r.Equal(anytime.StateIdle, info.State)
	r.Equal("test", info.Name)
	r.Equal(time.Duration(0), info.LateBy())

	data, err := json.Marshal(info)
	r.NoError(err)
	r.JSONEq(`{"budget":"2ms","name":"test","state":"idle","steps":0}`, string(data))

	_, err = e.Run()
	r.ErrorIs(err, anytime.ErrDeadlineExceeded)

	info = e.Info()
	r.Equal(anytime.StateTimedOut, info.State)
	r.Equal(2, info.Steps)
	r.Equal(epoch, info.Started)
	r.Equal(2*time.Millisecond, info.Elapsed)
	r.Equal(time.Duration(0), info.LateBy())
	r.Equal("test: 2 steps in 2ms of 2ms (timed out, late by 0s)", info.String())

	data, err = json.Marshal(info)
	r.NoError(err)
	r.JSONEq(`{
		"budget": "2ms",
		"elapsed": "2ms",
		"lateBy": "0s",
		"name": "test",
		"started": "2026-01-01T00:00:00Z",
		"state": "timed out",
		"steps": 2
	}`, string(data))
}

// TestRunInfoDone verifies the summary of a finished run.
func TestRunInfoDone(t *testing.T) {
	r := require.New(t)

	clock := clocktest.New(epoch, time.Millisecond)
	e := anytime.New[int](&counter{limit: 3}, time.Hour, anytime.WithClock(clock))
	_, err := e.Run()
	r.NoError(err)

	info := e.Info()
	r.Equal(anytime.StateDone, info.State)
	r.Equal("anytime", info.Name)
	r.Equal(3, info.Steps)
	r.Equal(3*time.Millisecond, info.Elapsed)
	r.Equal(time.Duration(0), info.LateBy())
	r.Equal("anytime: 3 steps in 3ms of 1h0m0s (done)", info.String())
}

// TestRunState verifies the names of the states.
func TestRunState(t *testing.T) {
	r := require.New(t)

	r.Equal("idle", anytime.StateIdle.String())
	r.Equal("running", anytime.StateRunning.String())
	r.Equal("done", anytime.StateDone.String())
	r.Equal("timed out", anytime.StateTimedOut.String())
	r.Equal("RunState(42)", anytime.RunState(42).String())
}
