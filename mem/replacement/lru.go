package replacement

import (
	"github.com/sarchlab/pagesim/mem/frames"
)

// lruPolicy evicts the slot whose resident page was referenced least
// recently. It keeps one last-used step number per slot, -1 meaning
// never used. Ties go to the lowest slot index.
type lruPolicy struct {
	lastUsed []int
}

func newLRUPolicy(numSlots int) *lruPolicy {
	lastUsed := make([]int, numSlots)
	for i := range lastUsed {
		lastUsed[i] = -1
	}

	return &lruPolicy{lastUsed: lastUsed}
}

func (p *lruPolicy) Decide(
	step, page int,
	table *frames.Table,
	ref []int,
) Decision {
	if slot, ok := table.Lookup(page); ok {
		p.lastUsed[slot] = step
		return Decision{Hit: true, Victim: NoVictim}
	}

	if slot, ok := table.FirstEmpty(); ok {
		table.Place(slot, page)
		p.lastUsed[slot] = step

		return Decision{Victim: NoVictim}
	}

	victim := 0
	oldest := p.lastUsed[0]
	for i := 1; i < table.Size(); i++ {
		if p.lastUsed[i] < oldest {
			oldest = p.lastUsed[i]
			victim = i
		}
	}

	table.Place(victim, page)
	p.lastUsed[victim] = step

	return Decision{Victim: victim}
}
