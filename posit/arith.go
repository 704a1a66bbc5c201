package posit

import (
	"github.com/sarchlab/aarith/container"
	"github.com/sarchlab/aarith/integer"
)

// workRegWidth and workRegPoint give the fixed-point register shape
// shared by the add/sub path:
// wide enough to align two significands across the full useful scale
// range while keeping guard bits below for the sticky computation.
func workRegWidth(n int) int { return 2*n + 8 }

func workRegPoint(n int) int { return n + 4 }

// loadSig places the 1.F significand of pr into a working register with
// the hidden bit at workRegPoint(n).
func loadSig(n int, pr Params) integer.Uint {
	sig := pr.Frac.BitRange(fracPoint(n), 0) // hidden + n fraction bits
	w := sig.WidthCast(workRegWidth(n), false)
	return integer.UintFromBits(w.ShiftLeft(workRegPoint(n) - fracPoint(n)))
}

// Add returns p+q rounded to nearest, ties to the even last bit. NaR
// propagates; adding exact opposites yields zero.
func (p Posit) Add(q Posit) Posit {
	requireSamePositShape(p, q)
	n, es := p.n, p.es
	switch {
	case p.IsNaR() || q.IsNaR():
		return NaR(n, es)
	case p.IsZero():
		return q
	case q.IsZero():
		return p
	}
	pa, _ := p.Decode()
	qa, _ := q.Decode()

	// Order so pa carries the larger magnitude.
	if pa.CompareMagnitude(qa) < 0 {
		pa, qa = qa, pa
	}
	ea, eb := pa.Scale.Int64(), qa.Scale.Int64()
	ra, rb := loadSig(n, pa), loadSig(n, qa)
	signA, signB := pa.Sign, qa.Sign

	w := workRegWidth(n)
	sticky := false
	d := ea - eb
	if d >= int64(w) {
		if !rb.Bits().IsZero() {
			sticky = true
		}
		rb = integer.NewUint(w)
	} else if d > 0 {
		if !rb.Bits().BitRange(int(d)-1, 0).IsZero() {
			sticky = true
		}
		rb = integer.UintFromBits(rb.Bits().ShiftRightLogical(int(d)))
	}

	var sum integer.Uint
	if signA == signB {
		sum = ra.Add(rb)
	} else {
		sum = ra.Sub(rb)
		if sticky {
			// The bits lost aligning the smaller operand pull the true
			// difference just below the computed one.
			sum = sum.Sub(integer.UintFromUint64(w, 1))
		}
		if sum.Bits().IsZero() && !sticky {
			return Zero(n, es)
		}
	}

	lead := w - 1 - sum.Bits().CountLeadingZeros()
	scale := ea + int64(lead-workRegPoint(n))
	return encodeRounded(n, es, signA, scale, sum.Bits(), lead, sticky)
}

// Sub returns p-q, defined as p + (-q).
func (p Posit) Sub(q Posit) Posit { return p.Add(q.Neg()) }

// Mul returns p*q rounded to nearest, ties to the even last bit.
func (p Posit) Mul(q Posit) Posit {
	requireSamePositShape(p, q)
	n, es := p.n, p.es
	switch {
	case p.IsNaR() || q.IsNaR():
		return NaR(n, es)
	case p.IsZero() || q.IsZero():
		return Zero(n, es)
	}
	pa, _ := p.Decode()
	qa, _ := q.Decode()
	sign := pa.Sign != qa.Sign

	sa := integer.UintFromBits(pa.Frac.BitRange(fracPoint(n), 0))
	sb := integer.UintFromBits(qa.Frac.BitRange(fracPoint(n), 0))
	prod := sa.ExpandingMul(sb) // 2n+2 bits; value = prod / 2^(2n)

	lead := prod.Width() - 1 - prod.Bits().CountLeadingZeros()
	scale := pa.Scale.Int64() + qa.Scale.Int64() + int64(lead-2*fracPoint(n))
	return encodeRounded(n, es, sign, scale, prod.Bits(), lead, false)
}

// Div returns p/q rounded to nearest, ties to the even last bit.
// Division by zero returns NaR (posits have no infinity to absorb it).
func (p Posit) Div(q Posit) Posit {
	requireSamePositShape(p, q)
	n, es := p.n, p.es
	switch {
	case p.IsNaR() || q.IsNaR() || q.IsZero():
		return NaR(n, es)
	case p.IsZero():
		return Zero(n, es)
	}
	pa, _ := p.Decode()
	qa, _ := q.Decode()
	sign := pa.Sign != qa.Sign

	// Quotient with n+4 extra low bits; the remainder feeds the sticky.
	k := n + 4
	w := n + 1 + k
	sa := pa.Frac.BitRange(fracPoint(n), 0).WidthCast(w, false)
	sb := qa.Frac.BitRange(fracPoint(n), 0).WidthCast(w, false)
	num := integer.UintFromBits(sa.ShiftLeft(k))
	quo, rem, _ := num.DivMod(integer.UintFromBits(sb))
	sticky := !rem.Bits().IsZero()

	lead := w - 1 - quo.Bits().CountLeadingZeros()
	scale := pa.Scale.Int64() - qa.Scale.Int64() + int64(lead-k)
	return encodeRounded(n, es, sign, scale, quo.Bits(), lead, sticky)
}

// Recip returns 1/p via the division path.
func (p Posit) Recip() Posit { return One(p.n, p.es).Div(p) }

// Sqrt returns the square root of p rounded to nearest, ties to the even
// last bit, computed by the digit-recurrence (shift-and-subtract)
// method on the significand. Negative operands and NaR return NaR.
func (p Posit) Sqrt() Posit {
	n, es := p.n, p.es
	switch {
	case p.IsNaR() || p.IsNegative():
		return NaR(n, es)
	case p.IsZero():
		return p
	}
	pa, _ := p.Decode()
	scale := pa.Scale.Int64()

	// Fold an odd scale's extra factor of two into the significand so
	// the root halves an even scale exactly.
	sig := pa.Frac.BitRange(fracPoint(n), 0).WidthCast(n+2, false)
	pt := fracPoint(n)
	if scale&1 != 0 {
		sig = sig.ShiftLeft(1)
		scale--
	}
	newScale := scale / 2

	// r = floor(sqrt(sig * 2^(2*prec - pt))), so r carries prec fraction
	// bits below its leading one at position prec.
	prec := n + 3
	wide := sig.WidthCast(2*prec+2, false).ShiftLeft(2*prec - pt)
	root, rem := isqrt(integer.UintFromBits(wide))
	sticky := !rem.Bits().IsZero()
	return encodeRounded(n, es, false, newScale, root.Bits(), prec, sticky)
}

// isqrt computes the integer square root by the bitwise shift-and-
// subtract recurrence, returning the root and the remainder v - root^2.
func isqrt(v integer.Uint) (root, rem integer.Uint) {
	w := v.Width()
	res := integer.NewUint(w)
	for pos := (w - 1) / 2 * 2; pos >= 0; pos -= 2 {
		trial := res.Add(integer.UintFromBits(container.New(w).SetBit(pos, 1)))
		if v.Compare(trial) >= 0 {
			v = v.Sub(trial)
			res = integer.UintFromBits(res.Bits().ShiftRightLogical(1).SetBit(pos, 1))
		} else {
			res = integer.UintFromBits(res.Bits().ShiftRightLogical(1))
		}
	}
	return res, v
}
