// Package frames provides the physical frame table that page-replacement
// policies operate on.
package frames

// A Frame is one physical frame slot. An invalid frame holds no page, and
// its Page value carries no meaning.
type Frame struct {
	Page  int  `json:"page"`
	Valid bool `json:"valid"`
}

// A Table is a fixed-size, ordered collection of frame slots. The slot
// index is the identifier used when reporting evictions. The table is a
// passive store; all replacement decisions live in the replacement
// package.
type Table struct {
	slots []Frame
}

// NewTable creates a table with numSlots slots, all invalid.
func NewTable(numSlots int) *Table {
	return &Table{
		slots: make([]Frame, numSlots),
	}
}

// Size returns the number of slots in the table.
func (t *Table) Size() int {
	return len(t.slots)
}

// Lookup finds the slot that currently holds page. It returns the slot
// index and true if the page is resident, or false if it is not.
func (t *Table) Lookup(page int) (int, bool) {
	for i, f := range t.slots {
		if f.Valid && f.Page == page {
			return i, true
		}
	}

	return 0, false
}

// FirstEmpty returns the lowest-index invalid slot, or false if every
// slot is occupied.
func (t *Table) FirstEmpty() (int, bool) {
	for i, f := range t.slots {
		if !f.Valid {
			return i, true
		}
	}

	return 0, false
}

// Place stores page in the given slot and marks the slot valid.
func (t *Table) Place(slot, page int) {
	t.slots[slot] = Frame{
		Page:  page,
		Valid: true,
	}
}

// Frame returns a copy of the frame at the given slot.
func (t *Table) Frame(slot int) Frame {
	return t.slots[slot]
}

// OccupiedCount returns the number of valid slots.
func (t *Table) OccupiedCount() int {
	count := 0
	for _, f := range t.slots {
		if f.Valid {
			count++
		}
	}

	return count
}

// Snapshot returns a copy of all slots. Mutating the returned slice does
// not affect the table.
func (t *Table) Snapshot() []Frame {
	snapshot := make([]Frame, len(t.slots))
	copy(snapshot, t.slots)

	return snapshot
}
