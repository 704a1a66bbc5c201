package float

import "github.com/sarchlab/aarith/integer"

func requireSameShape(a, b Float) {
	if a.expWidth != b.expWidth || a.mantWidth != b.mantWidth {
		panic("float: operands have different shapes")
	}
}

// roundPack is the single encode path every arithmetic operation funnels
// through. The value being packed is
//
//	(-1)^sign * 2^(e - bias) * sig / 2^hiddenPos
//
// where e is the biased exponent the value would carry if the leading
// one of sig sat exactly at hiddenPos. sig may be unnormalised in either
// direction (a carry above hiddenPos, or leading zeros below it);
// sticky records value bits already shifted out below sig's bit 0.
// Rounds to nearest, ties to even; overflows to the signed infinity and
// underflows through the subnormal range to the signed zero.
func roundPack(eW, mW int, sign bool, e int64, sig integer.Uint, hiddenPos int, sticky bool) Float {
	if hiddenPos < mW {
		// Too few bits below the hidden position to cut a mantissa from;
		// left-justify first.
		shift := mW - hiddenPos
		sig = integer.UintFromBits(sig.Bits().WidthCast(sig.Width()+shift, false).ShiftLeft(shift))
		hiddenPos = mW
	}
	if sig.Bits().IsZero() && !sticky {
		return Zero(eW, mW, sign)
	}

	// Normalise: pull a carry back down, or shift a borrowed-out
	// significand up (never past the subnormal boundary e == 1).
	lead := sig.Width() - 1 - sig.Bits().CountLeadingZeros()
	if lead > hiddenPos {
		shift := lead - hiddenPos
		if !sig.Bits().BitRange(shift-1, 0).IsZero() {
			sticky = true
		}
		sig = integer.UintFromBits(sig.Bits().ShiftRightLogical(shift))
		e += int64(shift)
	} else if lead < hiddenPos && lead >= 0 {
		shift := hiddenPos - lead
		if int64(shift) > e-1 {
			shift = int(e - 1)
		}
		if shift > 0 {
			sig = integer.UintFromBits(sig.Bits().ShiftLeft(shift))
			e -= int64(shift)
		}
	}

	// Push into the subnormal range if the exponent ran below minimum.
	if e < 1 {
		shift := 1 - e
		if shift >= int64(sig.Width()) {
			if !sig.Bits().IsZero() {
				sticky = true
			}
			sig = integer.NewUint(sig.Width())
		} else {
			if !sig.Bits().BitRange(int(shift)-1, 0).IsZero() {
				sticky = true
			}
			sig = integer.UintFromBits(sig.Bits().ShiftRightLogical(int(shift)))
		}
		e = 1
	}

	// Cut the mW+1 kept bits and round on the guard/sticky below them.
	guardCount := hiddenPos - mW
	kept := integer.UintFromBits(sig.Bits().ShiftRightLogical(guardCount).WidthCast(mW+2, false))
	if guardCount > 0 {
		guard := sig.Bits().GetBit(guardCount-1) == 1
		rest := sticky
		if guardCount > 1 && !sig.Bits().BitRange(guardCount-2, 0).IsZero() {
			rest = true
		}
		lsb := kept.Bits().GetBit(0) == 1
		if guard && (rest || lsb) {
			kept = kept.Add(integer.UintFromUint64(mW+2, 1))
			if kept.Bits().GetBit(mW+1) == 1 {
				kept = integer.UintFromBits(kept.Bits().ShiftRightLogical(1))
				e++
			}
		}
	}

	if e >= int64(uint64(1)<<uint(eW)-1) {
		return Inf(eW, mW, sign)
	}
	mant := kept.Bits().BitRange(mW-1, 0)
	if kept.Bits().GetBit(mW) == 1 {
		return FromFields(eW, mW, sign, uint64(e), mant)
	}
	// Hidden bit clear: subnormal (e == 1 here) or zero.
	return FromFields(eW, mW, sign, 0, mant)
}

// Add returns a+b under round-to-nearest-even. NaN operands propagate as
// the quiet NaN; Inf + (-Inf) is NaN; exact cancellation yields +0.
func (a Float) Add(b Float) Float {
	requireSameShape(a, b)
	eW, mW := a.expWidth, a.mantWidth
	switch {
	case a.IsNaN() || b.IsNaN():
		return NaN(eW, mW)
	case a.IsInf() && b.IsInf():
		if a.Sign() != b.Sign() {
			return NaN(eW, mW)
		}
		return a
	case a.IsInf():
		return a
	case b.IsInf():
		return b
	case a.IsZero() && b.IsZero():
		return Zero(eW, mW, a.Sign() && b.Sign())
	case a.IsZero():
		return b
	case b.IsZero():
		return a
	}

	// Working register: hidden bit + mantissa shifted up three guard
	// positions, with one headroom bit for the addition carry.
	w := mW + 5
	point := mW + 3
	ea, sa := a.unpack()
	eb, sb := b.unpack()
	ra := integer.UintFromBits(sa.Bits().WidthCast(w, false).ShiftLeft(3))
	rb := integer.UintFromBits(sb.Bits().WidthCast(w, false).ShiftLeft(3))
	signA, signB := a.Sign(), b.Sign()

	// Order so ra carries the larger (exponent, significand) magnitude.
	if ea < eb || (ea == eb && ra.Compare(rb) < 0) {
		ea, eb = eb, ea
		ra, rb = rb, ra
		signA, signB = signB, signA
	}

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
			// The discarded low bits of the smaller operand make the
			// true difference a hair below the computed one.
			sum = sum.Sub(integer.UintFromUint64(w, 1))
		}
		if sum.Bits().IsZero() && !sticky {
			return Zero(eW, mW, false)
		}
	}
	return roundPack(eW, mW, signA, ea, sum, point, sticky)
}

// Sub returns a-b, defined as a + (-b).
func (a Float) Sub(b Float) Float { return a.Add(b.Neg()) }

// Mul returns a*b under round-to-nearest-even. 0*Inf is NaN; otherwise
// infinities and zeros carry the XOR of the operand signs.
func (a Float) Mul(b Float) Float {
	requireSameShape(a, b)
	eW, mW := a.expWidth, a.mantWidth
	sign := a.Sign() != b.Sign()
	switch {
	case a.IsNaN() || b.IsNaN():
		return NaN(eW, mW)
	case (a.IsZero() && b.IsInf()) || (a.IsInf() && b.IsZero()):
		return NaN(eW, mW)
	case a.IsInf() || b.IsInf():
		return Inf(eW, mW, sign)
	case a.IsZero() || b.IsZero():
		return Zero(eW, mW, sign)
	}
	ea, sa := a.unpackNorm()
	eb, sb := b.unpackNorm()
	prod := sa.ExpandingMul(sb)
	return roundPack(eW, mW, sign, ea+eb-bias(eW), prod, 2*mW, false)
}

// Div returns a/b under round-to-nearest-even. 0/0 and Inf/Inf are NaN;
// x/0 with x nonzero is the signed infinity.
func (a Float) Div(b Float) Float {
	requireSameShape(a, b)
	eW, mW := a.expWidth, a.mantWidth
	sign := a.Sign() != b.Sign()
	switch {
	case a.IsNaN() || b.IsNaN():
		return NaN(eW, mW)
	case a.IsInf() && b.IsInf():
		return NaN(eW, mW)
	case a.IsZero() && b.IsZero():
		return NaN(eW, mW)
	case a.IsInf():
		return Inf(eW, mW, sign)
	case b.IsInf():
		return Zero(eW, mW, sign)
	case b.IsZero():
		return Inf(eW, mW, sign)
	case a.IsZero():
		return Zero(eW, mW, sign)
	}
	ea, sa := a.unpackNorm()
	eb, sb := b.unpackNorm()
	// Quotient with four extra low bits; the remainder feeds the sticky.
	k := mW + 4
	w := mW + 1 + k
	num := integer.UintFromBits(sa.Bits().WidthCast(w, false).ShiftLeft(k))
	den := sb.WidthCast(w)
	q, r, _ := num.DivMod(den)
	sticky := !r.Bits().IsZero()
	return roundPack(eW, mW, sign, ea-eb+bias(eW), q, k, sticky)
}
