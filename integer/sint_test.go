package integer_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/aarith/aerr"
	"github.com/sarchlab/aarith/integer"
)

var _ = Describe("Sint", func() {
	Describe("expanding arithmetic", func() {
		It("matches E2: S<8>(-128) + S<8>(-1) expanding is S<9>(-129)", func() {
			a := integer.SintFromInt64(8, -128)
			b := integer.SintFromInt64(8, -1)
			got := a.ExpandingAdd(b)
			Expect(got.Width()).To(Equal(9))
			Expect(got.Int64()).To(Equal(int64(-129)))
		})

		It("multiplies the extremes without wrap", func() {
			a := integer.SintFromInt64(8, -128)
			got := a.ExpandingMul(a)
			Expect(got.Width()).To(Equal(16))
			Expect(got.Int64()).To(Equal(int64(16384)))
		})
	})

	Describe("negate and abs", func() {
		It("wraps Negate(min) back to min", func() {
			min := integer.SintFromInt64(8, -128)
			Expect(min.Negate().Int64()).To(Equal(int64(-128)))
		})

		It("makes ExpandingAbs(min) exact in N+1 bits", func() {
			min := integer.SintFromInt64(8, -128)
			abs := min.ExpandingAbs()
			Expect(abs.Width()).To(Equal(9))
			Expect(abs.Int64()).To(Equal(int64(128)))
		})
	})

	Describe("division", func() {
		It("truncates toward zero with the remainder signed like the dividend", func() {
			a := integer.SintFromInt64(8, -7)
			b := integer.SintFromInt64(8, 2)
			q, r, err := a.DivMod(b)
			Expect(err).NotTo(HaveOccurred())
			Expect(q.Int64()).To(Equal(int64(-3)))
			Expect(r.Int64()).To(Equal(int64(-1)))
		})
	})

	Describe("shifts", func() {
		It("floors negative values on arithmetic right shift", func() {
			Expect(integer.SintFromInt64(8, -8).ShiftRight(1).Int64()).To(Equal(int64(-4)))
			Expect(integer.SintFromInt64(8, -7).ShiftRight(1).Int64()).To(Equal(int64(-4)))
			Expect(integer.SintFromInt64(8, 7).ShiftRight(1).Int64()).To(Equal(int64(3)))
		})

		It("wraps on left shift", func() {
			Expect(integer.SintFromInt64(8, 96).ShiftLeft(1).Int64()).To(Equal(int64(-64)))
		})
	})

	Describe("decimal rendering", func() {
		It("prefixes negatives with a minus", func() {
			Expect(integer.SintFromInt64(8, -42).Decimal()).To(Equal("-42"))
			Expect(integer.SintFromInt64(8, 42).Decimal()).To(Equal("42"))
			Expect(integer.SintFromInt64(8, 0).Decimal()).To(Equal("0"))
		})
	})
})

var _ = Describe("Range", func() {
	It("iterates start..end inclusive by the stride", func() {
		r, err := integer.NewRange(
			integer.SintFromInt64(8, -3),
			integer.SintFromInt64(8, 5),
			integer.SintFromInt64(8, 2),
		)
		Expect(err).NotTo(HaveOccurred())
		var got []int64
		for _, v := range r.Slice() {
			got = append(got, v.Int64())
		}
		Expect(got).To(Equal([]int64{-3, -1, 1, 3, 5}))
	})

	It("survives strides that would wrap at the top of the width", func() {
		r, err := integer.NewRange(
			integer.SintFromInt64(8, 120),
			integer.SintFromInt64(8, 127),
			integer.SintFromInt64(8, 4),
		)
		Expect(err).NotTo(HaveOccurred())
		var got []int64
		for _, v := range r.Slice() {
			got = append(got, v.Int64())
		}
		Expect(got).To(Equal([]int64{120, 124}))
	})

	It("is empty when start exceeds end", func() {
		r, err := integer.NewRange(
			integer.SintFromInt64(8, 6),
			integer.SintFromInt64(8, 5),
			integer.SintFromInt64(8, 1),
		)
		Expect(err).NotTo(HaveOccurred())
		Expect(r.Slice()).To(BeEmpty())
	})

	It("fails with InvalidArgument for a non-positive stride", func() {
		_, err := integer.NewRange(
			integer.SintFromInt64(8, 0),
			integer.SintFromInt64(8, 5),
			integer.SintFromInt64(8, 0),
		)
		Expect(aerr.Is(err, aerr.InvalidArgument)).To(BeTrue())
	})
})
