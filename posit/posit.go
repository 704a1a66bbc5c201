// Package posit implements the posit number system and its companions:
// decode/encode of the variable-length regime/exponent/fraction posit
// encoding, the decoded Params intermediate form, arithmetic under
// round-to-nearest-even with ties to the even last bit, the Quire exact
// accumulator, and the Valid/Bound/Tile interval types.
//
// A posit's width N and exponent-field budget ES are runtime fields,
// like every other width in this module. Two bit patterns are
// distinguished: all zeros is the value zero, and a one
// followed by zeros is NaR, the single non-real value. Every other
// pattern denotes (-1)^s * 2^(2^ES * r + e) * 1.f, with negative values
// stored as the two's complement of their absolute encoding. The real
// order of posits is the signed-integer order of their patterns.
package posit

import (
	"math"
	"math/bits"

	"github.com/sarchlab/aarith/container"
	"github.com/sarchlab/aarith/integer"
)

// Posit is an N-bit posit with up to ES exponent bits.
type Posit struct {
	n, es int
	bits  container.Bits
}

func checkShape(n, es int) {
	if n < 3 || n > 64 {
		panic("posit: width must be in [3, 64]")
	}
	if es < 0 || es > 5 {
		panic("posit: exponent budget must be in [0, 5]")
	}
}

// New returns the zero posit of shape P<n,es>.
func New(n, es int) Posit {
	checkShape(n, es)
	return Posit{n: n, es: es, bits: container.New(n)}
}

// FromBits reinterprets a raw n-bit pattern as a P<n,es>.
func FromBits(n, es int, b container.Bits) Posit {
	checkShape(n, es)
	if b.Width() != n {
		panic("posit: bit pattern width does not match shape")
	}
	return Posit{n: n, es: es, bits: b}
}

// FromUint64 builds a P<n,es> from the low n bits of pattern.
func FromUint64(n, es int, pattern uint64) Posit {
	checkShape(n, es)
	return Posit{n: n, es: es, bits: container.FromUint64(n, pattern)}
}

// Zero returns the zero posit (the all-zeros pattern).
func Zero(n, es int) Posit { return New(n, es) }

// NaR returns the Not-a-Real posit (a one followed by zeros).
func NaR(n, es int) Posit {
	p := New(n, es)
	p.bits = p.bits.SetBit(n-1, 1)
	return p
}

// One returns the posit with value 1 (sign 0, regime "10", all else 0).
func One(n, es int) Posit {
	p := New(n, es)
	p.bits = p.bits.SetBit(n-2, 1)
	return p
}

// MaxPos returns the largest positive posit (0 followed by ones).
func MaxPos(n, es int) Posit {
	p := New(n, es)
	return Posit{n: n, es: es, bits: p.bits.Not().SetBit(n-1, 0)}
}

// MinPos returns the smallest positive posit (the pattern 1).
func MinPos(n, es int) Posit { return FromUint64(n, es, 1) }

// Min returns the most negative posit, the pattern one past NaR.
func Min(n, es int) Posit {
	return Posit{n: n, es: es, bits: NaR(n, es).bits.SetBit(0, 1)}
}

// Max is the largest posit on the real line, identical to MaxPos.
func Max(n, es int) Posit { return MaxPos(n, es) }

// Bits returns the n-bit pattern.
func (p Posit) Bits() container.Bits { return p.bits }

// Width reports the posit width N.
func (p Posit) Width() int { return p.n }

// ExpBudget reports the exponent-field budget ES.
func (p Posit) ExpBudget() int { return p.es }

// IsZero reports whether p is the zero pattern.
func (p Posit) IsZero() bool { return p.bits.IsZero() }

// IsNaR reports whether p is the NaR pattern.
func (p Posit) IsNaR() bool {
	return p.bits.GetBit(p.n-1) == 1 && p.bits.BitRange(p.n-2, 0).IsZero()
}

// IsNegative reports whether p is a negative real (NaR is neither
// negative nor positive).
func (p Posit) IsNegative() bool {
	return p.bits.GetBit(p.n-1) == 1 && !p.IsNaR()
}

// Equal reports whether p and q have the same shape and pattern.
func (p Posit) Equal(q Posit) bool {
	return p.n == q.n && p.es == q.es && p.bits.Equal(q.bits)
}

func requireSamePositShape(p, q Posit) {
	if p.n != q.n || p.es != q.es {
		panic("posit: operands have different shapes")
	}
}

// pattern returns the bit pattern as a signed value, which is also the
// posit's position on the number line (NaR sits at the most negative
// pattern, off the real line).
func (p Posit) pattern() int64 {
	return integer.SintFromBits(p.bits).Int64()
}

// Compare orders p and q by value: the signed-integer order of the
// patterns, which places NaR below every real.
func (p Posit) Compare(q Posit) int {
	requireSamePositShape(p, q)
	a, b := p.pattern(), q.pattern()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Neg returns -p (the two's complement of the pattern). Zero and NaR
// negate to themselves.
func (p Posit) Neg() Posit {
	one := integer.UintFromUint64(p.n, 1)
	return Posit{n: p.n, es: p.es, bits: integer.UintFromBits(p.bits.Not()).Add(one).Bits()}
}

// Abs returns the absolute value of p; NaR stays NaR.
func (p Posit) Abs() Posit {
	if p.IsNegative() {
		return p.Neg()
	}
	return p
}

// Next returns the successor on the posit circle: the pattern plus one,
// wrapping from MaxPos through NaR to Min.
func (p Posit) Next() Posit {
	one := integer.UintFromUint64(p.n, 1)
	return Posit{n: p.n, es: p.es, bits: integer.UintFromBits(p.bits).Add(one).Bits()}
}

// Prior returns the predecessor on the posit circle: the pattern minus
// one.
func (p Posit) Prior() Posit {
	one := integer.UintFromUint64(p.n, 1)
	return Posit{n: p.n, es: p.es, bits: integer.UintFromBits(p.bits).Sub(one).Bits()}
}

// FromFloat64 returns the P<n,es> nearest to v. NaN and the infinities
// map to NaR; nonzero magnitudes beyond the posit range clamp to
// +-MaxPos, and magnitudes below MinPos clamp to +-MinPos.
func FromFloat64(n, es int, v float64) Posit {
	checkShape(n, es)
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return NaR(n, es)
	case v == 0:
		return Zero(n, es)
	}
	raw := math.Float64bits(v)
	sign := raw>>63 == 1
	exp := int64(raw>>52) & 0x7FF
	frac := raw & (uint64(1)<<52 - 1)
	var scale int64
	var sig uint64
	if exp == 0 {
		shift := bits.LeadingZeros64(frac) - 11
		sig = frac << uint(shift)
		scale = -1022 - int64(shift)
	} else {
		sig = frac | uint64(1)<<52
		scale = exp - 1023
	}
	return encodeRounded(n, es, sign, scale, container.FromUint64(56, sig), 52, false)
}

// Float64 returns p as a native float64, exact for n <= 53+es shapes;
// NaR maps to NaN.
func (p Posit) Float64() float64 {
	switch {
	case p.IsZero():
		return 0
	case p.IsNaR():
		return math.NaN()
	}
	pr, _ := p.Decode()
	sig := 0.0
	for i := p.n; i >= 0; i-- {
		if pr.Frac.GetBit(i) == 1 {
			sig += math.Ldexp(1, i-p.n)
		}
	}
	v := math.Ldexp(sig, int(pr.Scale.Int64()))
	if pr.Sign {
		v = -v
	}
	return v
}
