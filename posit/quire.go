package posit

import (
	"github.com/sarchlab/aarith/container"
	"github.com/sarchlab/aarith/integer"
)

// Quire is the wide two's-complement fixed-point accumulator for
// P<n,es>: any posit, and any product of two posits, converts into it
// exactly, so sums of products accumulate with no intermediate rounding.
// One rounding happens at the end, in ToPosit.
//
// The binary point sits at bit 2I, I = 2^es*(n-2), so the smallest
// product (MinPos squared, scale -2I) lands on bit zero and the largest
// (MaxPos squared, scale 2I) on bit 4I. The bits between bit 4I and the
// sign bit are the carry guard: QuireWidth-4I-2 of them, which is 30 for
// P<8,2> and P<32,2> but only 14 for P<16,1>, so how many MaxPos-squared
// products accumulate without wrapping depends on the shape. The
// all-zeros pattern is zero; a one followed by zeros is NaR.
type Quire struct {
	n, es int
	bits  container.Bits
}

// QuireWidth returns the bit width of the quire for P<n,es>: the
// smallest power of two at least 2I + 33.
func QuireWidth(n, es int) int {
	i := (1 << uint(es)) * (n - 2)
	w := 2*i + 33
	p := 1
	for p < w {
		p <<= 1
	}
	return p
}

func quirePoint(n, es int) int { return 2 * (1 << uint(es)) * (n - 2) }

// NewQuire returns the zero quire for P<n,es>.
func NewQuire(n, es int) Quire {
	checkShape(n, es)
	return Quire{n: n, es: es, bits: container.New(QuireWidth(n, es))}
}

// NaRQuire returns the NaR quire pattern.
func NaRQuire(n, es int) Quire {
	q := NewQuire(n, es)
	q.bits = q.bits.SetBit(q.bits.Width()-1, 1)
	return q
}

// QuireFromBits reinterprets a raw pattern of width QuireWidth(n, es).
func QuireFromBits(n, es int, b container.Bits) Quire {
	checkShape(n, es)
	if b.Width() != QuireWidth(n, es) {
		panic("posit: quire pattern width does not match shape")
	}
	return Quire{n: n, es: es, bits: b}
}

// QuireFromPosit converts p into the quire exactly.
func QuireFromPosit(p Posit) Quire {
	q := NewQuire(p.n, p.es)
	if p.IsNaR() {
		return NaRQuire(p.n, p.es)
	}
	if p.IsZero() {
		return q
	}
	q.bits = positFixed(p)
	return q
}

// Bits returns the quire's packed pattern.
func (q Quire) Bits() container.Bits { return q.bits }

// Width reports the quire's total bit width.
func (q Quire) Width() int { return q.bits.Width() }

// IsZero reports whether q holds the exact sum zero.
func (q Quire) IsZero() bool { return q.bits.IsZero() }

// IsNaR reports whether q is the NaR pattern.
func (q Quire) IsNaR() bool {
	w := q.bits.Width()
	return q.bits.GetBit(w-1) == 1 && q.bits.BitRange(w-2, 0).IsZero()
}

// positFixed returns p's value as a W-bit two's-complement fixed-point
// word with the binary point at quirePoint. Exact for every regular p.
func positFixed(p Posit) container.Bits {
	w := QuireWidth(p.n, p.es)
	pr, _ := p.Decode()
	sig := pr.Frac.BitRange(fracPoint(p.n), 0).WidthCast(w, false)
	// Hidden bit moves from fracPoint to quirePoint + scale.
	sh := quirePoint(p.n, p.es) + int(pr.Scale.Int64()) - fracPoint(p.n)
	if sh >= 0 {
		sig = sig.ShiftLeft(sh)
	} else {
		// Only the register's zero fill below the real fraction bits can
		// sit this low; nothing of value is dropped.
		sig = sig.ShiftRightLogical(-sh)
	}
	if pr.Sign {
		one := integer.UintFromUint64(w, 1)
		sig = integer.UintFromBits(sig.Not()).Add(one).Bits()
	}
	return sig
}

// productFixed returns a*b as an exact W-bit fixed-point word. Both
// operands must be regular.
func productFixed(a, b Posit) container.Bits {
	w := QuireWidth(a.n, a.es)
	pa, _ := a.Decode()
	pb, _ := b.Decode()
	sa := integer.UintFromBits(pa.Frac.BitRange(fracPoint(a.n), 0))
	sb := integer.UintFromBits(pb.Frac.BitRange(fracPoint(a.n), 0))
	prod := sa.ExpandingMul(sb).Bits().WidthCast(w, false)
	sh := quirePoint(a.n, a.es) + int(pa.Scale.Int64()+pb.Scale.Int64()) - 2*fracPoint(a.n)
	if sh >= 0 {
		prod = prod.ShiftLeft(sh)
	} else {
		prod = prod.ShiftRightLogical(-sh)
	}
	if pa.Sign != pb.Sign {
		one := integer.UintFromUint64(w, 1)
		prod = integer.UintFromBits(prod.Not()).Add(one).Bits()
	}
	return prod
}

func (q Quire) accumulate(v container.Bits) Quire {
	sum := integer.UintFromBits(q.bits).Add(integer.UintFromBits(v))
	return Quire{n: q.n, es: q.es, bits: sum.Bits()}
}

// AddPosit accumulates p into the quire exactly. NaR absorbs.
func (q Quire) AddPosit(p Posit) Quire {
	if p.n != q.n || p.es != q.es {
		panic("posit: quire and posit have different shapes")
	}
	if q.IsNaR() || p.IsNaR() {
		return NaRQuire(q.n, q.es)
	}
	if p.IsZero() {
		return q
	}
	return q.accumulate(positFixed(p))
}

// SubPosit accumulates -p into the quire exactly.
func (q Quire) SubPosit(p Posit) Quire {
	if p.IsNaR() {
		return NaRQuire(q.n, q.es)
	}
	return q.AddPosit(p.Neg())
}

// AddProduct accumulates a*b into the quire with no intermediate
// rounding (the fused dot-product step). NaR absorbs.
func (q Quire) AddProduct(a, b Posit) Quire {
	requireSamePositShape(a, b)
	if q.IsNaR() || a.IsNaR() || b.IsNaR() {
		return NaRQuire(q.n, q.es)
	}
	if a.IsZero() || b.IsZero() {
		return q
	}
	return q.accumulate(productFixed(a, b))
}

// SubProduct accumulates -(a*b) into the quire exactly.
func (q Quire) SubProduct(a, b Posit) Quire {
	requireSamePositShape(a, b)
	if q.IsNaR() || a.IsNaR() || b.IsNaR() {
		return NaRQuire(q.n, q.es)
	}
	if a.IsZero() || b.IsZero() {
		return q
	}
	return q.AddProduct(a.Neg(), b)
}

// ToPosit rounds the accumulated sum to P<n,es> in a single
// round-to-nearest-even step.
func (q Quire) ToPosit() Posit {
	if q.IsNaR() {
		return NaR(q.n, q.es)
	}
	if q.IsZero() {
		return Zero(q.n, q.es)
	}
	w := q.bits.Width()
	neg := q.bits.GetBit(w-1) == 1
	mag := q.bits
	if neg {
		one := integer.UintFromUint64(w, 1)
		mag = integer.UintFromBits(mag.Not()).Add(one).Bits()
	}
	lead := w - 1 - mag.CountLeadingZeros()
	scale := int64(lead - quirePoint(q.n, q.es))
	return encodeRounded(q.n, q.es, neg, scale, mag, lead, false)
}
