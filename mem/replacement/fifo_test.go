package replacement

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/pagesim/mem/frames"
)

var _ = Describe("FIFO Policy", func() {
	var (
		policy *fifoPolicy
		table  *frames.Table
	)

	BeforeEach(func() {
		policy = newFIFOPolicy()
		table = frames.NewTable(3)
	})

	It("should hit without touching the table", func() {
		policy.Decide(0, 1, table, nil)

		decision := policy.Decide(1, 1, table, nil)

		Expect(decision).To(Equal(Decision{Hit: true, Victim: NoVictim}))
		Expect(table.OccupiedCount()).To(Equal(1))
		Expect(table.Frame(0)).To(Equal(frames.Frame{Page: 1, Valid: true}))
	})

	It("should fill the lowest-index empty slot on a fault", func() {
		policy.Decide(0, 1, table, nil)

		decision := policy.Decide(1, 2, table, nil)

		Expect(decision).To(Equal(Decision{Victim: NoVictim}))
		Expect(table.Frame(1)).To(Equal(frames.Frame{Page: 2, Valid: true}))
	})

	It("should evict in slot-fill order once the table is full", func() {
		policy.Decide(0, 1, table, nil)
		policy.Decide(1, 2, table, nil)
		policy.Decide(2, 3, table, nil)

		first := policy.Decide(3, 4, table, nil)
		second := policy.Decide(4, 5, table, nil)

		Expect(first).To(Equal(Decision{Victim: 0}))
		Expect(second).To(Equal(Decision{Victim: 1}))
		Expect(table.Frame(0).Page).To(Equal(4))
		Expect(table.Frame(1).Page).To(Equal(5))
	})

	It("should not advance the cursor on hits or fills", func() {
		policy.Decide(0, 1, table, nil)
		policy.Decide(1, 2, table, nil)
		policy.Decide(2, 3, table, nil)
		policy.Decide(3, 1, table, nil) // hit

		decision := policy.Decide(4, 4, table, nil)

		Expect(decision).To(Equal(Decision{Victim: 0}))
	})

	It("should wrap the cursor around the table", func() {
		policy.Decide(0, 1, table, nil)
		policy.Decide(1, 2, table, nil)
		policy.Decide(2, 3, table, nil)
		policy.Decide(3, 4, table, nil)
		policy.Decide(4, 5, table, nil)
		policy.Decide(5, 6, table, nil)

		decision := policy.Decide(6, 7, table, nil)

		Expect(decision).To(Equal(Decision{Victim: 0}))
	})
})
