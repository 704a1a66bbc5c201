package integer_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/aarith/aerr"
	"github.com/sarchlab/aarith/integer"
)

var _ = Describe("Uint", func() {
	Describe("expanding arithmetic", func() {
		It("matches E1: 170*3 expanding in 8 bits produces U<16>(510)", func() {
			a := integer.UintFromUint64(8, 170)
			b := integer.UintFromUint64(8, 3)
			got := a.ExpandingMul(b)
			Expect(got.Width()).To(Equal(16))
			Expect(got.Uint64()).To(Equal(uint64(510)))
		})

		It("expanding add never wraps", func() {
			a := integer.UintFromUint64(8, 255)
			b := integer.UintFromUint64(8, 1)
			got := a.ExpandingAdd(b)
			Expect(got.Width()).To(Equal(9))
			Expect(got.Uint64()).To(Equal(uint64(256)))
		})

		It("width_cast of an expanding add matches the wrapped add", func() {
			a := integer.UintFromUint64(8, 200)
			b := integer.UintFromUint64(8, 100)
			wrapped := a.Add(b)
			expanded := a.ExpandingAdd(b).WidthCast(8)
			Expect(expanded.Equal(wrapped)).To(BeTrue())
		})
	})

	Describe("shifts", func() {
		It("multiplies and divides by powers of two", func() {
			u := integer.UintFromUint64(8, 0b00000011)
			Expect(u.ShiftLeft(2).Uint64()).To(Equal(uint64(12)))
			Expect(u.ShiftLeft(7).Uint64()).To(Equal(uint64(128)))
			Expect(integer.UintFromUint64(8, 200).ShiftRight(3).Uint64()).To(Equal(uint64(25)))
		})
	})

	Describe("division", func() {
		It("computes restoring division matching quotient*divisor+remainder == dividend", func() {
			a := integer.UintFromUint64(16, 1000)
			b := integer.UintFromUint64(16, 7)
			q, r, err := a.DivMod(b)
			Expect(err).NotTo(HaveOccurred())
			reconstructed := q.Mul(b).Add(r)
			Expect(reconstructed.Equal(a)).To(BeTrue())
			Expect(r.Compare(b)).To(Equal(-1))
		})

		It("fails with DivisionByZero", func() {
			a := integer.UintFromUint64(8, 5)
			zero := integer.UintFromUint64(8, 0)
			_, _, err := a.DivMod(zero)
			Expect(aerr.Is(err, aerr.DivisionByZero)).To(BeTrue())
		})
	})

	Describe("textual conversions (E3)", func() {
		It("renders U<16>(204) as decimal/hex/octal", func() {
			u := integer.UintFromUint64(16, 204)
			Expect(u.Decimal()).To(Equal("204"))
			Expect(u.Hex()).To(Equal("00cc"))
			Expect(u.Octal()).To(Equal("000314"))
		})

		It("renders zero as \"0\" with leading zeros stripped", func() {
			Expect(integer.UintFromUint64(8, 0).Decimal()).To(Equal("0"))
		})
	})

	Describe("narrow_cast", func() {
		It("succeeds when the value fits", func() {
			got, err := integer.UintFromUint64(16, 200).NarrowCast(8)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Uint64()).To(Equal(uint64(200)))
		})

		It("fails with Overflow when bits would be discarded", func() {
			_, err := integer.UintFromUint64(16, 300).NarrowCast(8)
			Expect(aerr.Is(err, aerr.Overflow)).To(BeTrue())
		})
	})
})
