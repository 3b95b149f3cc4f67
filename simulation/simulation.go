// Package simulation drives page-replacement simulations. A simulation
// replays a reference string once over a fresh frame table, asking the
// configured policy for a decision at every step.
package simulation

import (
	"errors"

	"github.com/sarchlab/pagesim/mem/frames"
	"github.com/sarchlab/pagesim/mem/replacement"
)

// ErrInvalidConfiguration is returned when a simulation is configured
// with a non-positive frame count or an empty reference string.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// A Simulation replays one reference string under one policy. Each
// simulation owns its frame table and policy state; nothing is shared
// across runs.
type Simulation struct {
	id         string
	kind       replacement.Kind
	frameCount int
	refs       []int
}

// ID returns the unique ID of the simulation run.
func (s *Simulation) ID() string {
	return s.id
}

// Policy returns the replacement algorithm of the simulation.
func (s *Simulation) Policy() replacement.Kind {
	return s.kind
}

// FrameCount returns the number of frame slots of the simulation.
func (s *Simulation) FrameCount() int {
	return s.frameCount
}

// References returns a copy of the reference string.
func (s *Simulation) References() []int {
	refs := make([]int, len(s.refs))
	copy(refs, s.refs)

	return refs
}

// Run performs a single forward pass over the reference string and
// returns the trace, one entry per reference, in step order.
func (s *Simulation) Run() Trace {
	return s.run(replacement.New(s.kind, s.frameCount))
}

func (s *Simulation) run(policy replacement.Policy) Trace {
	table := frames.NewTable(s.frameCount)
	trace := make(Trace, 0, len(s.refs))

	for step, page := range s.refs {
		decision := policy.Decide(step, page, table, s.refs)

		trace = append(trace, TraceEntry{
			Step:   step,
			Page:   page,
			Hit:    decision.Hit,
			Victim: decision.Victim,
			Frames: table.Snapshot(),
		})
	}

	return trace
}

// Simulate builds and runs a simulation in one call.
func Simulate(
	kind replacement.Kind,
	frameCount int,
	refs []int,
) (Trace, error) {
	s, err := MakeBuilder().
		WithPolicy(kind).
		WithFrameCount(frameCount).
		WithReferences(refs).
		Build()
	if err != nil {
		return nil, err
	}

	return s.Run(), nil
}
