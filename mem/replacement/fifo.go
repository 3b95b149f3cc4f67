package replacement

import (
	"github.com/sarchlab/pagesim/mem/frames"
)

// fifoPolicy evicts resident pages in the order the slots were filled,
// tracked by a cursor that rotates over the slots. The cursor moves only
// when a fault evicts from a full table.
type fifoPolicy struct {
	nextSlot int
}

func newFIFOPolicy() *fifoPolicy {
	return &fifoPolicy{}
}

func (p *fifoPolicy) Decide(
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

	victim := p.nextSlot
	p.nextSlot = (p.nextSlot + 1) % table.Size()
	table.Place(victim, page)

	return Decision{Victim: victim}
}
