package replacement

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/pagesim/mem/frames"
)

var _ = Describe("LRU Policy", func() {
	var (
		policy *lruPolicy
		table  *frames.Table
	)

	BeforeEach(func() {
		policy = newLRUPolicy(3)
		table = frames.NewTable(3)
	})

	It("should start with all slots never used", func() {
		Expect(policy.lastUsed).To(Equal([]int{-1, -1, -1}))
	})

	It("should fill the lowest-index empty slot on a fault", func() {
		policy.Decide(0, 1, table, nil)

		decision := policy.Decide(1, 2, table, nil)

		Expect(decision).To(Equal(Decision{Victim: NoVictim}))
		Expect(table.Frame(1)).To(Equal(frames.Frame{Page: 2, Valid: true}))
		Expect(policy.lastUsed[1]).To(Equal(1))
	})

	It("should refresh the slot timestamp on a hit", func() {
		policy.Decide(0, 1, table, nil)
		policy.Decide(1, 2, table, nil)

		decision := policy.Decide(2, 1, table, nil)

		Expect(decision).To(Equal(Decision{Hit: true, Victim: NoVictim}))
		Expect(policy.lastUsed[0]).To(Equal(2))
		Expect(table.OccupiedCount()).To(Equal(2))
	})

	It("should evict the least recently used slot", func() {
		policy.Decide(0, 1, table, nil)
		policy.Decide(1, 2, table, nil)
		policy.Decide(2, 3, table, nil)
		policy.Decide(3, 1, table, nil) // hit, page 2 now oldest

		decision := policy.Decide(4, 4, table, nil)

		Expect(decision).To(Equal(Decision{Victim: 1}))
		Expect(table.Frame(1).Page).To(Equal(4))
	})

	It("should give the referenced slot the newest timestamp", func() {
		refs := []int{1, 2, 3, 1, 2, 4}

		for step, page := range refs {
			policy.Decide(step, page, table, nil)

			slot, ok := table.Lookup(page)
			Expect(ok).To(BeTrue())

			for i := 0; i < table.Size(); i++ {
				if i != slot {
					Expect(policy.lastUsed[i]).To(
						BeNumerically("<", policy.lastUsed[slot]))
				}
			}
		}
	})
})
