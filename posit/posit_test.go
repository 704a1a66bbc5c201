package posit_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/aarith/posit"
)

var _ = Describe("Posit", func() {
	Describe("distinguished patterns", func() {
		It("recognises zero and NaR", func() {
			Expect(posit.Zero(8, 2).IsZero()).To(BeTrue())
			Expect(posit.NaR(8, 2).IsNaR()).To(BeTrue())
			Expect(posit.FromUint64(8, 2, 0x80).IsNaR()).To(BeTrue())
			Expect(posit.FromUint64(8, 2, 0x81).IsNaR()).To(BeFalse())
		})

		It("negates zero and NaR to themselves", func() {
			Expect(posit.Zero(8, 2).Neg().IsZero()).To(BeTrue())
			Expect(posit.NaR(8, 2).Neg().IsNaR()).To(BeTrue())
		})
	})

	Describe("decode", func() {
		It("reads regime, exponent, and fraction for posit<8,2>", func() {
			// 0 10 01 101: sign 0, regime r=0, exponent 1, fraction 0.101.
			p := posit.FromUint64(8, 2, 0b01001101)
			pr, ok := p.Decode()
			Expect(ok).To(BeTrue())
			Expect(pr.Sign).To(BeFalse())
			Expect(pr.Scale.Int64()).To(Equal(int64(1)))
			Expect(p.Float64()).To(Equal(3.25))
		})

		It("left-justifies a truncated exponent field", func() {
			// 0 111110 1: regime r=4, one exponent bit left; that bit is
			// the high bit of a 2-bit field, so e = 2.
			p := posit.FromUint64(8, 2, 0b01111101)
			pr, ok := p.Decode()
			Expect(ok).To(BeTrue())
			Expect(pr.Scale.Int64()).To(Equal(int64(18)))
		})

		It("decodes a negative posit through its two's complement", func() {
			one := posit.One(8, 2)
			neg := one.Neg()
			pr, ok := neg.Decode()
			Expect(ok).To(BeTrue())
			Expect(pr.Sign).To(BeTrue())
			Expect(pr.Scale.Int64()).To(Equal(int64(0)))
			Expect(neg.Float64()).To(Equal(-1.0))
		})

		It("orders decoded magnitudes on (scale, fraction)", func() {
			small, _ := posit.FromFloat64(8, 2, 1.5).Decode()
			big, _ := posit.FromFloat64(8, 2, 3).Decode()
			negBig, _ := posit.FromFloat64(8, 2, -3).Decode()
			Expect(small.CompareMagnitude(big)).To(Equal(-1))
			Expect(big.CompareMagnitude(small)).To(Equal(1))
			Expect(big.CompareMagnitude(negBig)).To(Equal(0))
		})

		It("refuses zero and NaR", func() {
			_, ok := posit.Zero(8, 2).Decode()
			Expect(ok).To(BeFalse())
			_, ok = posit.NaR(8, 2).Decode()
			Expect(ok).To(BeFalse())
		})
	})

	Describe("conversions", func() {
		It("maps the unit values of posit<8,0>", func() {
			Expect(posit.FromFloat64(8, 0, 1).Bits().Word(0)).To(Equal(uint64(0b01000000)))
			Expect(posit.FromFloat64(8, 0, 2).Bits().Word(0)).To(Equal(uint64(0b01100000)))
			Expect(posit.FromUint64(8, 0, 0b01000000).Float64()).To(Equal(1.0))
		})

		It("clamps beyond-range magnitudes to MaxPos and MinPos", func() {
			Expect(posit.FromFloat64(8, 2, 1e30).Equal(posit.MaxPos(8, 2))).To(BeTrue())
			Expect(posit.FromFloat64(8, 2, 1e-30).Equal(posit.MinPos(8, 2))).To(BeTrue())
			Expect(posit.FromFloat64(8, 2, -1e30).Equal(posit.MaxPos(8, 2).Neg())).To(BeTrue())
		})
	})

	Describe("arithmetic", func() {
		It("matches E5: posit8(1.0) + posit8(1.0) is posit8(2.0)", func() {
			one := posit.FromUint64(8, 0, 0b01000000)
			Expect(one.Float64()).To(Equal(1.0))
			sum := one.Add(one)
			Expect(sum.Bits().Word(0)).To(Equal(uint64(0b01100000)))
		})

		It("propagates NaR through every operation", func() {
			nar := posit.NaR(8, 2)
			one := posit.One(8, 2)
			Expect(nar.Add(one).IsNaR()).To(BeTrue())
			Expect(one.Mul(nar).IsNaR()).To(BeTrue())
			Expect(one.Div(posit.Zero(8, 2)).IsNaR()).To(BeTrue())
			Expect(nar.Sqrt().IsNaR()).To(BeTrue())
		})

		It("takes square roots of exact squares exactly", func() {
			four := posit.FromFloat64(8, 2, 4)
			Expect(four.Sqrt().Float64()).To(Equal(2.0))
			Expect(posit.FromFloat64(16, 2, 9).Sqrt().Float64()).To(Equal(3.0))
		})

		It("returns NaR for the square root of a negative", func() {
			Expect(posit.One(8, 2).Neg().Sqrt().IsNaR()).To(BeTrue())
		})

		It("inverts powers of two exactly through Recip", func() {
			Expect(posit.FromFloat64(8, 2, 4).Recip().Float64()).To(Equal(0.25))
		})
	})

	Describe("circle traversal", func() {
		It("matches E6: 255 values from min back to min, skipping NaR", func() {
			min := posit.Min(8, 2)
			count := 0
			p := min
			for {
				count++
				p = p.Next()
				if p.IsNaR() {
					p = p.Next()
				}
				if p.Equal(min) {
					break
				}
			}
			Expect(count).To(Equal(255))
		})
	})

	Describe("binary rendering", func() {
		It("separates the decoded fields", func() {
			p := posit.FromUint64(8, 2, 0b01001101)
			Expect(p.Binary(false)).To(Equal("01001101"))
			Expect(p.Binary(true)).To(Equal("0 10 01 101"))
		})

		It("renders zero and NaR without field structure", func() {
			Expect(posit.Zero(8, 2).Binary(true)).To(Equal("0 0000000"))
			Expect(posit.NaR(8, 2).Binary(true)).To(Equal("1 0000000"))
		})
	})
})
