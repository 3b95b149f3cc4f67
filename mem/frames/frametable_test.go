package frames

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Table", func() {
	var table *Table

	BeforeEach(func() {
		table = NewTable(3)
	})

	It("should start with all slots invalid", func() {
		Expect(table.Size()).To(Equal(3))
		Expect(table.OccupiedCount()).To(Equal(0))

		for i := 0; i < table.Size(); i++ {
			Expect(table.Frame(i).Valid).To(BeFalse())
		}
	})

	It("should find a resident page", func() {
		table.Place(1, 42)

		slot, ok := table.Lookup(42)

		Expect(ok).To(BeTrue())
		Expect(slot).To(Equal(1))
	})

	It("should not find a page that is not resident", func() {
		table.Place(0, 42)

		_, ok := table.Lookup(7)

		Expect(ok).To(BeFalse())
	})

	It("should not match the page value of an invalid slot", func() {
		// A zero-value frame holds Page 0 but is not resident.
		_, ok := table.Lookup(0)

		Expect(ok).To(BeFalse())
	})

	It("should return the lowest-index empty slot", func() {
		table.Place(0, 1)

		slot, ok := table.FirstEmpty()

		Expect(ok).To(BeTrue())
		Expect(slot).To(Equal(1))
	})

	It("should report no empty slot when the table is full", func() {
		table.Place(0, 1)
		table.Place(1, 2)
		table.Place(2, 3)

		_, ok := table.FirstEmpty()

		Expect(ok).To(BeFalse())
	})

	It("should overwrite a slot on placement", func() {
		table.Place(0, 1)
		table.Place(0, 9)

		Expect(table.Frame(0)).To(Equal(Frame{Page: 9, Valid: true}))
		Expect(table.OccupiedCount()).To(Equal(1))

		_, ok := table.Lookup(1)
		Expect(ok).To(BeFalse())
	})

	It("should snapshot independently of the table", func() {
		table.Place(0, 1)

		snapshot := table.Snapshot()
		snapshot[0] = Frame{Page: 99, Valid: true}

		Expect(table.Frame(0).Page).To(Equal(1))
	})
})
