// Package replacement implements the page-replacement policies. A policy
// decides, for each reference, whether the page is resident and, on a
// fault with a full table, which slot to evict.
package replacement

import (
	"fmt"
	"strings"

	"github.com/sarchlab/pagesim/mem/frames"
)

// A Kind selects one of the supported replacement algorithms.
type Kind int

// The supported replacement algorithms.
const (
	FIFO Kind = iota
	LRU
	Opt
)

// Kinds lists all supported algorithm kinds.
func Kinds() []Kind {
	return []Kind{FIFO, LRU, Opt}
}

func (k Kind) String() string {
	switch k {
	case FIFO:
		return "FIFO"
	case LRU:
		return "LRU"
	case Opt:
		return "OPT"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind converts an algorithm name to a Kind. Matching is
// case-insensitive.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(name) {
	case "fifo":
		return FIFO, nil
	case "lru":
		return LRU, nil
	case "opt", "optimal":
		return Opt, nil
	default:
		return FIFO, fmt.Errorf("unknown replacement algorithm %q", name)
	}
}

// NoVictim marks a decision that evicted no resident page, either
// because the reference hit or because the fault filled an empty slot.
const NoVictim = -1

// A Decision is the outcome of processing one reference. Victim is the
// slot whose resident page was evicted, or NoVictim.
type Decision struct {
	Hit    bool
	Victim int
}

// A Policy decides the outcome of one reference. On return, the frame
// table already reflects the new resident page if the decision was a
// fault; on a hit the table is unchanged. The step argument is the
// zero-based index of the current reference, and ref is the full
// reference string. Only OPT reads ref; FIFO and LRU ignore it.
type Policy interface {
	Decide(step, page int, table *frames.Table, ref []int) Decision
}

// New creates a fresh policy of the given kind for a table with numSlots
// slots. Policy state is scoped to a single simulation run.
func New(kind Kind, numSlots int) Policy {
	switch kind {
	case FIFO:
		return newFIFOPolicy()
	case LRU:
		return newLRUPolicy(numSlots)
	case Opt:
		return newOptPolicy()
	default:
		panic(fmt.Sprintf("unknown replacement kind %d", int(kind)))
	}
}
