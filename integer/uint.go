// Package integer implements arbitrary-width two's-complement integer
// arithmetic over container.Bits: unsigned (Uint) and signed (Sint)
// values, expanding add/sub/mul, restoring division, cross-width
// comparison, and BCD-based decimal conversion.
//
// Uint is the canonical bit-pattern implementation; the unsigned path
// computes the bit-identical result that signed operations only
// reinterpret, so Sint is a thin wrapper that delegates to it and
// special-cases sign handling at the edges.
package integer

import (
	"math/bits"

	"github.com/sarchlab/aarith/aerr"
	"github.com/sarchlab/aarith/container"
)

// Uint is an N-bit value interpreted as unsigned two's-complement (i.e.
// plain binary).
type Uint struct {
	bits container.Bits
}

// NewUint returns the n-bit unsigned zero value.
func NewUint(n int) Uint { return Uint{bits: container.New(n)} }

// UintFromUint64 returns the n-bit unsigned value equal to v truncated to
// n bits.
func UintFromUint64(n int, v uint64) Uint { return Uint{bits: container.FromUint64(n, v)} }

// UintFromBits reinterprets raw bits as unsigned.
func UintFromBits(b container.Bits) Uint { return Uint{bits: b} }

// Bits returns the underlying bit container.
func (u Uint) Bits() container.Bits { return u.bits }

// Width reports the bit width of u.
func (u Uint) Width() int { return u.bits.Width() }

// Uint64 returns the low 64 bits of u as a native value (truncating for
// widths > 64).
func (u Uint) Uint64() uint64 { return u.bits.Word(0) }

func requireSameWidth(a, b Uint) {
	if a.Width() != b.Width() {
		panic("integer: operands have different widths")
	}
}

// Add returns (a+b) mod 2^N.
func (a Uint) Add(b Uint) Uint {
	requireSameWidth(a, b)
	sum, _ := addWords(a.bits, b.bits, 0)
	return Uint{bits: sum}
}

// Sub returns (a-b) mod 2^N.
func (a Uint) Sub(b Uint) Uint {
	requireSameWidth(a, b)
	diff, _ := subWords(a.bits, b.bits, 0)
	return Uint{bits: diff}
}

// Mul returns (a*b) mod 2^N.
func (a Uint) Mul(b Uint) Uint {
	requireSameWidth(a, b)
	full := a.ExpandingMul(b)
	return Uint{bits: full.bits.WidthCast(a.Width(), false)}
}

// ExpandingAdd returns a+b with no truncation, in N+1 bits.
func (a Uint) ExpandingAdd(b Uint) Uint {
	requireSameWidth(a, b)
	n := a.Width()
	aw := a.bits.WidthCast(n+1, false)
	bw := b.bits.WidthCast(n+1, false)
	sum, _ := addWords(aw, bw, 0)
	return Uint{bits: sum}
}

// ExpandingSub returns a-b with no wrap, in N+1 bits (two's complement,
// negative results are representable since the result is signed-capable
// at N+1 bits: treat the extra bit as the sign of the mathematical
// difference).
func (a Uint) ExpandingSub(b Uint) Uint {
	requireSameWidth(a, b)
	n := a.Width()
	aw := a.bits.WidthCast(n+1, false)
	bw := b.bits.WidthCast(n+1, false)
	diff, _ := subWords(aw, bw, 0)
	return Uint{bits: diff}
}

// ExpandingMul returns a*b with no truncation, in 2N bits.
func (a Uint) ExpandingMul(b Uint) Uint {
	requireSameWidth(a, b)
	n := a.Width()
	out := container.New(2 * n)
	// Schoolbook shift-and-add over the bits of b; a is widened to 2N
	// once, shifted in place by repeated doubling.
	aw := a.bits.WidthCast(2*n, false)
	for i := 0; i < n; i++ {
		if b.bits.GetBit(i) == 1 {
			shifted := aw.ShiftLeft(i)
			out, _ = addWords(out, shifted, 0)
		}
	}
	return Uint{bits: out}
}

// DivMod computes restoring long division: quotient*divisor + remainder
// == dividend, with 0 <= remainder < divisor. Returns DivisionByZero if
// divisor is zero.
func (a Uint) DivMod(divisor Uint) (quotient, remainder Uint, err error) {
	requireSameWidth(a, divisor)
	if divisor.bits.IsZero() {
		return Uint{}, Uint{}, &aerr.Error{Kind: aerr.DivisionByZero, Op: "integer.Uint.DivMod", Msg: "division by zero"}
	}
	n := a.Width()
	q := container.New(n)
	rem := container.New(n)
	for i := n - 1; i >= 0; i-- {
		rem = rem.ShiftLeft(1)
		if a.bits.GetBit(i) == 1 {
			rem = rem.SetBit(0, 1)
		}
		if container.CompareUnsigned(rem, divisor.bits) >= 0 {
			rem, _ = subWords(rem, divisor.bits, 0)
			q = q.SetBit(i, 1)
		}
	}
	return Uint{bits: q}, Uint{bits: rem}, nil
}

// ShiftLeft returns a logically shifted left by s bits, modulo 2^N.
func (a Uint) ShiftLeft(s int) Uint { return Uint{bits: a.bits.ShiftLeft(s)} }

// ShiftRight returns a logically shifted right by s bits (zero fill).
func (a Uint) ShiftRight(s int) Uint { return Uint{bits: a.bits.ShiftRightLogical(s)} }

// Compare returns -1, 0, or 1 comparing a and b, widening the narrower
// operand to max(Na, Nb) under unsigned rules.
func (a Uint) Compare(b Uint) int { return container.CompareUnsigned(a.bits, b.bits) }

// Equal reports whether a and b have the same width and value.
func (a Uint) Equal(b Uint) bool { return a.bits.Equal(b.bits) }

// WidthCast returns a reinterpreted at width m (zero-extending or
// truncating; unsigned values never sign-extend).
func (a Uint) WidthCast(m int) Uint { return Uint{bits: a.bits.WidthCast(m, false)} }

// NarrowCast truncates a to m bits, returning Overflow if any discarded
// bit was set.
func (a Uint) NarrowCast(m int) (Uint, error) {
	if m >= a.Width() {
		return a.WidthCast(m), nil
	}
	truncated := a.bits.WidthCast(m, false)
	roundTrip := truncated.WidthCast(a.Width(), false)
	if !roundTrip.Equal(a.bits) {
		return Uint{}, &aerr.Error{Kind: aerr.Overflow, Op: "integer.Uint.NarrowCast", Msg: "value does not fit target width"}
	}
	return Uint{bits: truncated}, nil
}

// addWords adds a and b (equal width) plus an incoming carry (0 or 1) one
// 64-bit word at a time (the same word-at-a-time carry propagation
// math/big's nat.go uses), returning the sum (same width, wrapped) and
// the outgoing carry out of the top word.
func addWords(a, b container.Bits, carryIn uint64) (container.Bits, uint64) {
	n := a.Width()
	out := container.New(n)
	carry := carryIn
	for i := 0; i < a.WordLen(); i++ {
		sum, c := bits.Add64(a.Word(i), b.Word(i), carry)
		out = out.SetWord(i, sum)
		carry = c
	}
	return out, carry
}

// subWords subtracts b from a (equal width) plus an incoming borrow,
// returning the difference (wrapped) and the outgoing borrow.
func subWords(a, b container.Bits, borrowIn uint64) (container.Bits, uint64) {
	n := a.Width()
	out := container.New(n)
	borrow := borrowIn
	for i := 0; i < a.WordLen(); i++ {
		diff, brw := bits.Sub64(a.Word(i), b.Word(i), borrow)
		out = out.SetWord(i, diff)
		borrow = brw
	}
	return out, borrow
}
