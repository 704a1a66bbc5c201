package posit_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/google/go-cmp/cmp"

	"github.com/sarchlab/aarith/aerr"
	"github.com/sarchlab/aarith/posit"
)

// positComparer lets go-cmp diff structs holding posits.
var positComparer = cmp.Comparer(func(a, b posit.Posit) bool { return a.Equal(b) })

var _ = Describe("IntervalBound", func() {
	It("negates open to closed and back", func() {
		Expect(posit.Open.Negate()).To(Equal(posit.Closed))
		Expect(posit.Closed.Negate()).To(Equal(posit.Open))
	})

	It("merges to closed only when both are closed", func() {
		Expect(posit.MergeBounds(posit.Closed, posit.Closed)).To(Equal(posit.Closed))
		Expect(posit.MergeBounds(posit.Closed, posit.Open)).To(Equal(posit.Open))
		Expect(posit.MergeBounds(posit.Open, posit.Closed)).To(Equal(posit.Open))
		Expect(posit.MergeBounds(posit.Open, posit.Open)).To(Equal(posit.Open))
	})
})

var _ = Describe("Bound", func() {
	one := posit.One(8, 2)
	negOne := posit.One(8, 2).Neg()

	It("keeps exact as the identity of the sign algebra", func() {
		b := posit.Bound{Value: one, Sign: posit.Exact}.Add(posit.Bound{Value: one, Sign: posit.PlusEps})
		want := posit.Bound{Value: posit.FromFloat64(8, 2, 2), Sign: posit.PlusEps}
		Expect(cmp.Diff(want, b, positComparer)).To(BeEmpty())
	})

	It("loses track when opposing epsilons meet", func() {
		b := posit.Bound{Value: one, Sign: posit.PlusEps}.Add(posit.Bound{Value: one, Sign: posit.MinusEps})
		Expect(b.Sign).To(Equal(posit.Unsure))
	})

	It("keeps agreeing epsilons under addition", func() {
		b := posit.Bound{Value: one, Sign: posit.MinusEps}.Add(posit.Bound{Value: one, Sign: posit.MinusEps})
		Expect(b.Sign).To(Equal(posit.MinusEps))
	})

	It("mirrors the epsilon through a negative multiplication factor", func() {
		b := posit.Bound{Value: one, Sign: posit.PlusEps}.Mul(posit.Bound{Value: negOne, Sign: posit.Exact})
		want := posit.Bound{Value: negOne, Sign: posit.MinusEps}
		Expect(cmp.Diff(want, b, positComparer)).To(BeEmpty())
	})

	It("propagates unsure through multiplication by an exact bound", func() {
		b := posit.Bound{Value: one, Sign: posit.Unsure}.Mul(posit.Bound{Value: one, Sign: posit.Exact})
		Expect(b.Sign).To(Equal(posit.Unsure))
	})
})

var _ = Describe("Valid", func() {
	n, es := 8, 2
	p1 := posit.FromFloat64(n, es, 1)
	p2 := posit.FromFloat64(n, es, 2)

	Describe("distinguished patterns", func() {
		It("keeps empty, full, and NaR apart", func() {
			Expect(posit.EmptyValid(n, es).IsEmpty()).To(BeTrue())
			Expect(posit.FullValid(n, es).IsFull()).To(BeTrue())
			Expect(posit.NaRValid(n, es).IsNaR()).To(BeTrue())
			Expect(posit.EmptyValid(n, es).IsFull()).To(BeFalse())
			Expect(posit.NaRValid(n, es).IsEmpty()).To(BeFalse())
		})

		It("denotes an exact value as a doubly closed point", func() {
			v := posit.ExactValid(p1)
			Expect(v.IsExact()).To(BeTrue())
			Expect(v.Contains(p1)).To(BeTrue())
			Expect(v.Contains(p2)).To(BeFalse())
		})
	})

	Describe("containment (E8)", func() {
		It("includes the closed start and excludes the open end", func() {
			v := posit.NewValid(p1, posit.Closed, p2, posit.Open)
			Expect(v.Contains(p1)).To(BeTrue())
			Expect(v.Contains(p2)).To(BeFalse())
		})

		It("contains the interior and rejects the exterior", func() {
			v := posit.NewValid(p1, posit.Closed, p2, posit.Open)
			Expect(v.Contains(posit.FromFloat64(n, es, 1.5))).To(BeTrue())
			Expect(v.Contains(posit.FromFloat64(n, es, 0.5))).To(BeFalse())
			Expect(v.Contains(posit.FromFloat64(n, es, 3))).To(BeFalse())
			Expect(v.Contains(posit.NaR(n, es))).To(BeFalse())
		})

		It("wraps through NaR when start is above end", func() {
			// The arc from 2 around the circle to 1: everything except
			// the open interval (1, 2).
			v := posit.NewValid(p2, posit.Closed, p1, posit.Closed)
			Expect(v.Contains(posit.FromFloat64(n, es, 1.5))).To(BeFalse())
			Expect(v.Contains(posit.FromFloat64(n, es, 4))).To(BeTrue())
			Expect(v.Contains(posit.FromFloat64(n, es, -1))).To(BeTrue())
			Expect(v.Contains(posit.NaR(n, es))).To(BeTrue())
		})

		It("treats an endpoint NaR as a signed infinity", func() {
			// (-inf, 1]: start NaR open.
			v := posit.NewValid(posit.NaR(n, es), posit.Open, p1, posit.Closed)
			Expect(v.Contains(posit.FromFloat64(n, es, -100))).To(BeTrue())
			Expect(v.Contains(p1)).To(BeTrue())
			Expect(v.Contains(p2)).To(BeFalse())
			Expect(v.Contains(posit.NaR(n, es))).To(BeFalse())
		})
	})

	Describe("arithmetic", func() {
		It("propagates the special forms", func() {
			v := posit.ExactValid(p1)
			Expect(posit.EmptyValid(n, es).Add(v).IsEmpty()).To(BeTrue())
			Expect(posit.NaRValid(n, es).Add(v).IsNaR()).To(BeTrue())
			Expect(posit.FullValid(n, es).Mul(v).IsFull()).To(BeTrue())
		})

		It("adds two exact valids into a containing interval", func() {
			v := posit.ExactValid(p1).Add(posit.ExactValid(p2))
			Expect(v.Contains(posit.FromFloat64(n, es, 3))).To(BeTrue())
			Expect(v.StartBound()).To(Equal(posit.Closed))
			Expect(v.EndBound()).To(Equal(posit.Closed))
		})

		It("returns the whole circle when dividing by an interval through zero", func() {
			span := posit.NewValid(posit.FromFloat64(n, es, -1), posit.Closed, p1, posit.Closed)
			Expect(posit.ExactValid(p2).Div(span).IsFull()).To(BeTrue())
		})

		It("rejects square roots of irregular valids", func() {
			v := posit.NewValid(p2, posit.Closed, p1, posit.Closed)
			_, err := v.Sqrt()
			Expect(aerr.Is(err, aerr.InvalidArgument)).To(BeTrue())
		})

		It("maps intervals reaching below zero to the NaR valid", func() {
			v := posit.NewValid(posit.FromFloat64(n, es, -1), posit.Closed, p1, posit.Closed)
			r, err := v.Sqrt()
			Expect(err).NotTo(HaveOccurred())
			Expect(r.IsNaR()).To(BeTrue())
		})

		It("takes square roots of regular valids with a one-ULP margin", func() {
			four := posit.FromFloat64(n, es, 4)
			nine := posit.FromFloat64(n, es, 9)
			r, err := posit.NewValid(four, posit.Closed, nine, posit.Closed).Sqrt()
			Expect(err).NotTo(HaveOccurred())
			Expect(r.Contains(posit.FromFloat64(n, es, 2))).To(BeTrue())
			Expect(r.Contains(posit.FromFloat64(n, es, 3))).To(BeTrue())
			Expect(r.Contains(posit.FromFloat64(n, es, 2.5))).To(BeTrue())
		})
	})

	Describe("printing", func() {
		It("renders the distinguished and regular forms", func() {
			Expect(posit.EmptyValid(n, es).String()).To(Equal("∅"))
			Expect(posit.NaRValid(n, es).String()).To(Equal("NaR"))
			Expect(posit.ExactValid(p1).String()).To(Equal("1"))
			v := posit.NewValid(p1, posit.Closed, p2, posit.Open)
			Expect(v.String()).To(Equal("[1, 2)"))
			inf := posit.NewValid(posit.NaR(n, es), posit.Open, p1, posit.Closed)
			Expect(inf.String()).To(Equal("(-∞, 1]"))
		})
	})
})

var _ = Describe("Tile", func() {
	It("denotes a posit exactly when certain", func() {
		p := posit.One(8, 2)
		t := posit.CertainTile(p)
		Expect(t.AsValid().IsExact()).To(BeTrue())
		Expect(t.String()).To(Equal("1"))
	})

	It("denotes the open gap to the successor when uncertain", func() {
		p := posit.One(8, 2)
		t := posit.NewTile(p, true)
		v := t.AsValid()
		Expect(v.Contains(p)).To(BeFalse())
		Expect(v.Contains(p.Next())).To(BeFalse())
		Expect(v.StartBound()).To(Equal(posit.Open))
	})

	It("round-trips through its packed bits", func() {
		tl := posit.NewTile(posit.FromFloat64(8, 2, -3), true)
		back := posit.TileFromBits(8, 2, tl.Bits())
		Expect(cmp.Diff(tl.Value(), back.Value(), positComparer)).To(BeEmpty())
		Expect(back.IsUncertain()).To(BeTrue())
	})
})
