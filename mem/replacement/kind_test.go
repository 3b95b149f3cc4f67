package replacement

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Kind", func() {
	It("should parse algorithm names case-insensitively", func() {
		kind, err := ParseKind("FIFO")
		Expect(err).ToNot(HaveOccurred())
		Expect(kind).To(Equal(FIFO))

		kind, err = ParseKind("lru")
		Expect(err).ToNot(HaveOccurred())
		Expect(kind).To(Equal(LRU))

		kind, err = ParseKind("Optimal")
		Expect(err).ToNot(HaveOccurred())
		Expect(kind).To(Equal(Opt))
	})

	It("should reject unknown algorithm names", func() {
		_, err := ParseKind("clock")
		Expect(err).To(HaveOccurred())
	})

	It("should round-trip names through String and ParseKind", func() {
		for _, kind := range Kinds() {
			parsed, err := ParseKind(kind.String())
			Expect(err).ToNot(HaveOccurred())
			Expect(parsed).To(Equal(kind))
		}
	})
})
