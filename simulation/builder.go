package simulation

import (
	"fmt"

	"github.com/rs/xid"
	"github.com/sarchlab/pagesim/mem/replacement"
)

// Builder can be used to build a simulation.
type Builder struct {
	kind       replacement.Kind
	frameCount int
	refs       []int
}

// MakeBuilder creates a new builder.
func MakeBuilder() Builder {
	return Builder{
		kind:       replacement.FIFO,
		frameCount: 3,
	}
}

// WithPolicy sets the replacement algorithm of the builder.
func (b Builder) WithPolicy(kind replacement.Kind) Builder {
	b.kind = kind
	return b
}

// WithFrameCount sets the number of frame slots of the builder.
func (b Builder) WithFrameCount(frameCount int) Builder {
	b.frameCount = frameCount
	return b
}

// WithReferences sets the reference string of the builder.
func (b Builder) WithReferences(refs []int) Builder {
	b.refs = refs
	return b
}

// Build validates the configuration and builds the simulation. The
// reference string is copied, so mutating the argument slice afterwards
// does not affect the simulation.
func (b Builder) Build() (*Simulation, error) {
	if b.frameCount < 1 {
		return nil, fmt.Errorf("%w: frame count must be positive, got %d",
			ErrInvalidConfiguration, b.frameCount)
	}

	if len(b.refs) == 0 {
		return nil, fmt.Errorf("%w: reference string must not be empty",
			ErrInvalidConfiguration)
	}

	refs := make([]int, len(b.refs))
	copy(refs, b.refs)

	return &Simulation{
		id:         xid.New().String(),
		kind:       b.kind,
		frameCount: b.frameCount,
		refs:       refs,
	}, nil
}
