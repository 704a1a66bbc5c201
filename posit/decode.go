package posit

import (
	"math/bits"

	"github.com/sarchlab/aarith/container"
	"github.com/sarchlab/aarith/integer"
)

// Params is the decoded intermediate form of a regular (non-zero,
// non-NaR) posit: a sign, a signed scale, and the significand 1.F held
// in a fixed-point scratch register. The register is 2N+2 bits wide with
// the hidden bit at position N and the fraction bits immediately below,
// leaving N+1 bits of integer-part headroom for intermediate overflow
// during arithmetic.
//
// Two Params with equal sign compare by (scale, fraction) directly.
type Params struct {
	Sign  bool
	Scale integer.Sint
	Frac  container.Bits
}

// fracPoint is the register position of the hidden bit for width n.
func fracPoint(n int) int { return n }

func fracRegWidth(n int) int { return 2*n + 2 }

// scaleWidth is the Sint width used for a posit scale: wide enough for
// the full scale range of P<n,es> with a few bits of growth room for
// intermediate sums and differences of scales.
func scaleWidth(n, es int) int {
	return es + bits.Len(uint(n)) + 3
}

func scaleSint(n, es int, v int64) integer.Sint {
	return integer.SintFromInt64(scaleWidth(n, es), v)
}

// Decode unpacks p into its Params form. The second return is false for
// the zero and NaR patterns, which have no regime/exponent/fraction
// reading.
func (p Posit) Decode() (Params, bool) {
	if p.IsZero() || p.IsNaR() {
		return Params{}, false
	}
	n, es := p.n, p.es
	sign := p.bits.GetBit(n-1) == 1
	m := p.bits
	if sign {
		m = p.Neg().bits
	}

	// The regime is a run of identical bits starting at bit n-2, ended
	// by a terminator bit (which is consumed) or by running out of bits.
	r0 := m.GetBit(n - 2)
	k := 1
	for k < n-1 && m.GetBit(n-2-k) == r0 {
		k++
	}
	var regime int64
	if r0 == 1 {
		regime = int64(k) - 1
	} else {
		regime = -int64(k)
	}
	rem := n - 1 - k - 1
	if rem < 0 {
		rem = 0
	}

	// Up to es exponent bits, left-justified when fewer remain.
	eBits := es
	if eBits > rem {
		eBits = rem
	}
	var e int64
	for i := 0; i < eBits; i++ {
		e = e<<1 | int64(m.GetBit(rem-1-i))
	}
	e <<= uint(es - eBits)

	fracLen := rem - eBits
	scale := (int64(1)<<uint(es))*regime + e

	frac := container.New(fracRegWidth(n))
	frac = frac.SetBit(fracPoint(n), 1)
	for i := 0; i < fracLen; i++ {
		frac = frac.SetBit(fracPoint(n)-fracLen+i, m.GetBit(i))
	}

	return Params{
		Sign:  sign,
		Scale: scaleSint(n, es, scale),
		Frac:  frac,
	}, true
}

// CompareMagnitude orders the absolute values of two decoded posits
// directly on (scale, fraction), ignoring the signs.
func (pr Params) CompareMagnitude(other Params) int {
	a, b := pr.Scale.Int64(), other.Scale.Int64()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return container.CompareUnsigned(pr.Frac, other.Frac)
}

// FracLen reports how many fraction bits the pattern of p actually
// carries (the rest of the register below the hidden bit is zero fill).
func (p Posit) FracLen() int {
	if p.IsZero() || p.IsNaR() {
		return 0
	}
	n, es := p.n, p.es
	m := p.bits
	if p.bits.GetBit(n-1) == 1 {
		m = p.Neg().bits
	}
	r0 := m.GetBit(n - 2)
	k := 1
	for k < n-1 && m.GetBit(n-2-k) == r0 {
		k++
	}
	rem := n - 1 - k - 1
	if rem < 0 {
		return 0
	}
	if rem <= es {
		return 0
	}
	return rem - es
}

// fieldWidths returns the on-the-wire widths (sign, regime, exponent,
// fraction) of p's pattern, summing to n. Used by the separated binary
// rendering.
func (p Posit) fieldWidths() (signW, regimeW, expW, fracW int) {
	n, es := p.n, p.es
	if p.IsZero() || p.IsNaR() {
		return 1, n - 1, 0, 0
	}
	m := p.bits
	if p.bits.GetBit(n-1) == 1 {
		m = p.Neg().bits
	}
	r0 := m.GetBit(n - 2)
	k := 1
	for k < n-1 && m.GetBit(n-2-k) == r0 {
		k++
	}
	regimeW = k
	if k < n-1 {
		regimeW++ // terminator bit
	}
	rem := n - 1 - regimeW
	expW = es
	if expW > rem {
		expW = rem
	}
	fracW = rem - expW
	return 1, regimeW, expW, fracW
}
