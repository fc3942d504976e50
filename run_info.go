// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package anytime

import (
	"encoding/json"
	"fmt"
	"time"
)

// RunState describes the progress of an [Executor].
type RunState int

// These constants enumerate the states of an [Executor].
const (
	StateIdle     RunState = iota // Run has not been called.
	StateRunning                  // Run is executing steps.
	StateDone                     // The computation finished.
	StateTimedOut                 // The deadline was missed.
)

// String implements [fmt.Stringer].
func (s RunState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	case StateTimedOut:
		return "timed out"
	default:
		return fmt.Sprintf("RunState(%d)", int(s))
	}
}

// A RunInfo summarizes a run of an [Executor] for observability
// purposes. It is retrieved via [Executor.Info].
type RunInfo struct {
	Budget  time.Duration // The deadline imposed on the run.
	Elapsed time.Duration // Measured after the most recent step.
	Name    string        // The value passed to [WithName].
	Started time.Time     // Set immediately before the first step.
	State   RunState
	Steps   int // The number of steps that have returned.
}

// LateBy returns the amount by which the run missed its deadline, or
// zero if the run did not time out.
func (i RunInfo) LateBy() time.Duration {
	if i.State != StateTimedOut {
		return 0
	}
	return i.Elapsed - i.Budget
}

// MarshalJSON summarizes the RunInfo.
func (i RunInfo) MarshalJSON() ([]byte, error) {
	p := struct {
		Budget  string    `json:"budget"`
		Elapsed string    `json:"elapsed,omitzero"`
		LateBy  string    `json:"lateBy,omitzero"`
		Name    string    `json:"name,omitzero"`
		Started time.Time `json:"started,omitzero"`
		State   string    `json:"state"`
		Steps   int       `json:"steps"`
	}{
		Budget:  i.Budget.String(),
		Name:    i.Name,
		Started: i.Started,
		State:   i.State.String(),
		Steps:   i.Steps,
	}
	if i.State != StateIdle {
		p.Elapsed = i.Elapsed.String()
	}
	if i.State == StateTimedOut {
		p.LateBy = i.LateBy().String()
	}
	return json.Marshal(p)
}

// String is for debugging use only.
func (i RunInfo) String() string {
	var state string
	switch i.State {
	case StateTimedOut:
		state = fmt.Sprintf("(timed out, late by %s)", i.LateBy())
	default:
		state = fmt.Sprintf("(%s)", i.State)
	}
	return fmt.Sprintf("%s: %d steps in %s of %s %s",
		i.Name, i.Steps, i.Elapsed, i.Budget, state)
}
