package replacement

import (
	"github.com/sarchlab/pagesim/mem/frames"
)

// optPolicy implements Belady's optimal algorithm. On a fault with a
// full table it evicts the resident page whose next use lies farthest in
// the future, recomputed from the reference string each time. A page
// that is never referenced again beats any finite distance, and the scan
// stops at the first such slot, so the lowest-index never-reused slot
// wins. Finite distances tie-break to the first slot reaching the
// maximum, again the lowest index.
type optPolicy struct{}

func newOptPolicy() *optPolicy {
	return &optPolicy{}
}

func (p *optPolicy) Decide(
	step, page int,
	table *frames.Table,
	ref []int,
) Decision {
	if _, ok := table.Lookup(page); ok {
		return Decision{Hit: true, Victim: NoVictim}
	}

	if slot, ok := table.FirstEmpty(); ok {
		table.Place(slot, page)
		return Decision{Victim: NoVictim}
	}

	victim := 0
	farthest := -1
	for i := 0; i < table.Size(); i++ {
		next := nextUse(ref, step, table.Frame(i).Page)

		if next < 0 {
			victim = i
			break
		}

		if next > farthest {
			farthest = next
			victim = i
		}
	}

	table.Place(victim, page)

	return Decision{Victim: victim}
}

// nextUse returns the position of the first reference to page strictly
// after step, or -1 if the page is never referenced again.
func nextUse(ref []int, step, page int) int {
	for i := step + 1; i < len(ref); i++ {
		if ref[i] == page {
			return i
		}
	}

	return -1
}
