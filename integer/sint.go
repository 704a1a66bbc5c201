package integer

import (
	"github.com/sarchlab/aarith/aerr"
	"github.com/sarchlab/aarith/container"
)

// Sint is an N-bit value interpreted as two's complement; bit N-1 is the
// sign. min(Sint<N>) = -2^(N-1), max(Sint<N>) = 2^(N-1)-1.
type Sint struct {
	bits container.Bits
}

// NewSint returns the n-bit signed zero value.
func NewSint(n int) Sint { return Sint{bits: container.New(n)} }

// SintFromInt64 returns the n-bit signed value equal to v truncated (by
// two's-complement wraparound) to n bits.
func SintFromInt64(n int, v int64) Sint {
	return Sint{bits: container.FromUint64(n, uint64(v))}
}

// SintFromBits reinterprets raw bits as signed.
func SintFromBits(b container.Bits) Sint { return Sint{bits: b} }

// Bits returns the underlying bit container.
func (s Sint) Bits() container.Bits { return s.bits }

// Width reports the bit width of s.
func (s Sint) Width() int { return s.bits.Width() }

// IsNegative reports whether the sign bit is set.
func (s Sint) IsNegative() bool { return s.bits.GetBit(s.Width()-1) == 1 }

// Int64 returns s as a native int64 (meaningful only for Width() <= 64).
func (s Sint) Int64() int64 {
	n := s.Width()
	v := s.bits.Word(0)
	if n < 64 && s.IsNegative() {
		v |= ^uint64(0) << uint(n)
	}
	return int64(v)
}

func requireSameWidthS(a, b Sint) {
	if a.Width() != b.Width() {
		panic("integer: operands have different widths")
	}
}

// Add computes (a+b) mod 2^N using the unsigned bit-pattern routine.
func (a Sint) Add(b Sint) Sint {
	requireSameWidthS(a, b)
	return Sint{bits: Uint{bits: a.bits}.Add(Uint{bits: b.bits}).bits}
}

// Sub computes (a-b) mod 2^N using the unsigned bit-pattern routine.
func (a Sint) Sub(b Sint) Sint {
	requireSameWidthS(a, b)
	return Sint{bits: Uint{bits: a.bits}.Sub(Uint{bits: b.bits}).bits}
}

// Mul computes (a*b) mod 2^N using the unsigned bit-pattern routine (two's
// complement multiplication is bit-identical to unsigned for the low N
// bits of the product).
func (a Sint) Mul(b Sint) Sint {
	requireSameWidthS(a, b)
	return Sint{bits: Uint{bits: a.bits}.Mul(Uint{bits: b.bits}).bits}
}

// ExpandingAdd returns a+b with no wrap, in N+1 bits: both operands are
// sign-extended before the addition, so the mathematical sum is always
// representable.
func (a Sint) ExpandingAdd(b Sint) Sint {
	requireSameWidthS(a, b)
	n := a.Width()
	aw := a.bits.WidthCast(n+1, true)
	bw := b.bits.WidthCast(n+1, true)
	return Sint{bits: Uint{bits: aw}.Add(Uint{bits: bw}).bits}
}

// ExpandingSub returns a-b with no wrap, in N+1 bits.
func (a Sint) ExpandingSub(b Sint) Sint {
	requireSameWidthS(a, b)
	n := a.Width()
	aw := a.bits.WidthCast(n+1, true)
	bw := b.bits.WidthCast(n+1, true)
	return Sint{bits: Uint{bits: aw}.Sub(Uint{bits: bw}).bits}
}

// ExpandingMul returns a*b with no wrap, in 2N bits, via the unsigned
// magnitude product with the sign reapplied.
func (a Sint) ExpandingMul(b Sint) Sint {
	requireSameWidthS(a, b)
	n := a.Width()
	magA := Uint{bits: a.ExpandingAbs().bits}
	magB := Uint{bits: b.ExpandingAbs().bits}
	prod := Sint{bits: magA.ExpandingMul(magB).bits.WidthCast(2*n, false)}
	if a.IsNegative() != b.IsNegative() {
		return prod.Negate()
	}
	return prod
}

// Negate returns -a (bitwise NOT plus one); negating the minimum value
// wraps back to itself (documented, not an error).
func (a Sint) Negate() Sint {
	one := Uint{bits: container.FromUint64(a.Width(), 1)}
	return Sint{bits: Uint{bits: a.bits.Not()}.Add(one).bits}
}

// ExpandingAbs returns the absolute value of a, widened to N+1 bits so that
// ExpandingAbs(min) is exact (no wrap). The in-place Width()-bit Abs
// below wraps for min, matching Negate's documented behavior.
func (a Sint) ExpandingAbs() Sint {
	widened := a.bits.WidthCast(a.Width()+1, true)
	w := Sint{bits: widened}
	if w.IsNegative() {
		return w.Negate()
	}
	return w
}

// Abs returns |a| at the same width as a; Abs(min) wraps to min, same as
// Negate(min).
func (a Sint) Abs() Sint {
	if a.IsNegative() {
		return a.Negate()
	}
	return a
}

// DivMod computes truncated-toward-zero division: the quotient's sign is
// the XOR of the operand signs, and the remainder takes the sign of the
// dividend. Returns DivisionByZero if divisor is zero.
func (a Sint) DivMod(divisor Sint) (quotient, remainder Sint, err error) {
	requireSameWidthS(a, divisor)
	if divisor.bits.IsZero() {
		return Sint{}, Sint{}, &aerr.Error{Kind: aerr.DivisionByZero, Op: "integer.Sint.DivMod", Msg: "division by zero"}
	}
	n := a.Width()
	negA := a.IsNegative()
	negB := divisor.IsNegative()

	magA := a.ExpandingAbs().bits
	magB := divisor.ExpandingAbs().bits

	uq, ur, _ := Uint{bits: magA}.DivMod(Uint{bits: magB})

	q := Sint{bits: uq.bits.WidthCast(n, false)}
	r := Sint{bits: ur.bits.WidthCast(n, false)}

	if negA != negB {
		q = q.Negate()
	}
	if negA {
		r = r.Negate()
	}
	return q, r, nil
}

// ShiftLeft returns a shifted left by s bits, modulo 2^N.
func (a Sint) ShiftLeft(s int) Sint { return Sint{bits: a.bits.ShiftLeft(s)} }

// ShiftRight returns a arithmetically shifted right by s bits, which is
// floor division by 2^s.
func (a Sint) ShiftRight(s int) Sint { return Sint{bits: a.bits.ShiftRightArithmetic(s)} }

// Compare returns -1, 0, or 1: negatives order below non-negatives; among
// same-signedness operands, magnitudes decide (with negative-side
// comparison reversed).
func (a Sint) Compare(b Sint) int {
	an, bn := a.IsNegative(), b.IsNegative()
	switch {
	case an && !bn:
		return -1
	case !an && bn:
		return 1
	}
	magCmp := container.CompareUnsigned(a.Abs().bits, b.Abs().bits)
	if an && bn {
		return -magCmp
	}
	return magCmp
}

// Equal reports whether a and b have the same width and value.
func (a Sint) Equal(b Sint) bool { return a.bits.Equal(b.bits) }

// WidthCast sign-extends (or truncates) a to width m.
func (a Sint) WidthCast(m int) Sint { return Sint{bits: a.bits.WidthCast(m, true)} }

// NarrowCast truncates a to m bits, returning Overflow if the value does
// not fit (i.e. sign-extending the truncated result back does not
// reproduce a).
func (a Sint) NarrowCast(m int) (Sint, error) {
	if m >= a.Width() {
		return a.WidthCast(m), nil
	}
	truncated := a.bits.WidthCast(m, true)
	roundTrip := truncated.WidthCast(a.Width(), true)
	if !roundTrip.Equal(a.bits) {
		return Sint{}, &aerr.Error{Kind: aerr.Overflow, Op: "integer.Sint.NarrowCast", Msg: "value does not fit target width"}
	}
	return Sint{bits: truncated}, nil
}
