package simulation

import (
	"github.com/sarchlab/pagesim/mem/frames"
)

// A TraceEntry records the outcome of one reference. Victim is the slot
// whose resident page was evicted at this step, or replacement.NoVictim
// when the reference hit or filled an empty slot. Frames is a snapshot
// of the frame table taken after the step's mutation.
type TraceEntry struct {
	Step   int            `json:"step"`
	Page   int            `json:"page"`
	Hit    bool           `json:"hit"`
	Victim int            `json:"victim"`
	Frames []frames.Frame `json:"frames"`
}

// A Trace is the complete record of one simulation run, one entry per
// reference, in step order.
type Trace []TraceEntry
