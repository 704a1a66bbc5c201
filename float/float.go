// Package float implements a parameterised IEEE-754-style binary
// floating-point value over the integer layer: a sign bit, an exponent
// field of width E, and a mantissa field of width M, with classification
// (zero, subnormal, normal, infinity, quiet/signalling NaN) and
// arithmetic that rounds to nearest, ties to even, on every operation.
//
// Exponent and mantissa widths are runtime fields, like every other
// width in this module. The canonical representation is the packed
// 1+E+M bit pattern; arithmetic unpacks into an explicit hidden-bit
// significand with guard and sticky bits, operates, and repacks through
// a single shared rounding path.
package float

import (
	"math"
	"math/bits"

	"github.com/sarchlab/aarith/container"
	"github.com/sarchlab/aarith/integer"
)

// Float is a binary floating-point value with an E-bit exponent and an
// M-bit mantissa. The zero value of the struct is not usable; construct
// through New, FromBits, FromFields, or FromFloat64.
type Float struct {
	expWidth  int
	mantWidth int
	bits      container.Bits
}

func checkShape(e, m int) {
	if e < 2 || e > 60 {
		panic("float: exponent width must be in [2, 60]")
	}
	if m < 1 {
		panic("float: mantissa width must be >= 1")
	}
}

// New returns the positive zero of shape F<e,m>.
func New(e, m int) Float {
	checkShape(e, m)
	return Float{expWidth: e, mantWidth: m, bits: container.New(1 + e + m)}
}

// FromBits reinterprets a raw (1+e+m)-bit pattern as an F<e,m>.
func FromBits(e, m int, b container.Bits) Float {
	checkShape(e, m)
	if b.Width() != 1+e+m {
		panic("float: bit pattern width does not match shape")
	}
	return Float{expWidth: e, mantWidth: m, bits: b}
}

// FromFields assembles a value from raw (unchecked) sign, exponent, and
// mantissa fields. The fields are masked to their widths.
func FromFields(e, m int, sign bool, exp uint64, mant container.Bits) Float {
	checkShape(e, m)
	f := New(e, m)
	b := mant.WidthCast(1+e+m, false)
	expBits := container.FromUint64(1+e+m, exp&((uint64(1)<<uint(e))-1)).ShiftLeft(m)
	b = container.Or(b, expBits)
	if sign {
		b = b.SetBit(e+m, 1)
	}
	f.bits = b
	return f
}

// FromFloat64 returns the F<e,m> nearest to v under round-to-nearest-
// even. Values representable exactly are preserved exactly; NaN maps to
// the canonical quiet NaN, infinities and zeros keep their sign.
func FromFloat64(e, m int, v float64) Float {
	checkShape(e, m)
	raw := math.Float64bits(v)
	sign := raw>>63 == 1
	exp := int64(raw>>52) & 0x7FF
	frac := raw & (uint64(1)<<52 - 1)
	switch {
	case exp == 0x7FF && frac == 0:
		return Inf(e, m, sign)
	case exp == 0x7FF:
		return NaN(e, m)
	case exp == 0 && frac == 0:
		return Zero(e, m, sign)
	}
	var ue int64
	var sig uint64
	if exp == 0 {
		// Subnormal double: normalise so the leading one sits at bit 52.
		shift := bits.LeadingZeros64(frac) - 11
		sig = frac << uint(shift)
		ue = -1022 - int64(shift)
	} else {
		sig = frac | uint64(1)<<52
		ue = exp - 1023
	}
	sigBits := integer.UintFromUint64(56, sig)
	return roundPack(e, m, sign, ue+bias(e), sigBits, 52, false)
}

// FromFloat32 returns the F<e,m> nearest to v; for F<8,23> the value is
// preserved exactly.
func FromFloat32(e, m int, v float32) Float {
	return FromFloat64(e, m, float64(v))
}

// Zero returns the signed zero of shape F<e,m>.
func Zero(e, m int, sign bool) Float {
	f := New(e, m)
	if sign {
		f.bits = f.bits.SetBit(e+m, 1)
	}
	return f
}

// Inf returns the signed infinity of shape F<e,m>.
func Inf(e, m int, sign bool) Float {
	return FromFields(e, m, sign, uint64(1)<<uint(e)-1, container.New(m))
}

// NaN returns the canonical quiet NaN: exponent all ones, top mantissa
// bit set, remaining payload zero, sign positive.
func NaN(e, m int) Float {
	mant := container.New(m).SetBit(m-1, 1)
	return FromFields(e, m, false, uint64(1)<<uint(e)-1, mant)
}

// Bits returns the packed bit pattern.
func (f Float) Bits() container.Bits { return f.bits }

// ExpWidth reports the exponent field width.
func (f Float) ExpWidth() int { return f.expWidth }

// MantWidth reports the mantissa field width.
func (f Float) MantWidth() int { return f.mantWidth }

// Sign reports whether the sign bit is set.
func (f Float) Sign() bool { return f.bits.GetBit(f.expWidth+f.mantWidth) == 1 }

// ExpField returns the raw biased exponent field.
func (f Float) ExpField() uint64 {
	return f.bits.BitRange(f.expWidth+f.mantWidth-1, f.mantWidth).Word(0)
}

// MantField returns the raw mantissa field.
func (f Float) MantField() container.Bits {
	return f.bits.BitRange(f.mantWidth-1, 0)
}

func bias(e int) int64 { return int64(1)<<uint(e-1) - 1 }

// Bias returns 2^(E-1)-1 for this shape.
func (f Float) Bias() int64 { return bias(f.expWidth) }

func (f Float) maxExpField() uint64 { return uint64(1)<<uint(f.expWidth) - 1 }

// IsZero reports whether f is positive or negative zero.
func (f Float) IsZero() bool { return f.ExpField() == 0 && f.MantField().IsZero() }

// IsSubnormal reports whether f is subnormal (zero exponent field,
// nonzero mantissa).
func (f Float) IsSubnormal() bool { return f.ExpField() == 0 && !f.MantField().IsZero() }

// IsNormal reports whether f is a normal finite value.
func (f Float) IsNormal() bool {
	e := f.ExpField()
	return e > 0 && e < f.maxExpField()
}

// IsFinite reports whether f is zero, subnormal, or normal.
func (f Float) IsFinite() bool { return f.ExpField() < f.maxExpField() }

// IsInf reports whether f is positive or negative infinity.
func (f Float) IsInf() bool { return f.ExpField() == f.maxExpField() && f.MantField().IsZero() }

// IsNaN reports whether f is any NaN.
func (f Float) IsNaN() bool { return f.ExpField() == f.maxExpField() && !f.MantField().IsZero() }

// IsQuietNaN reports whether f is a NaN with the top mantissa bit set.
func (f Float) IsQuietNaN() bool { return f.IsNaN() && f.MantField().GetBit(f.mantWidth-1) == 1 }

// IsSignallingNaN reports whether f is a NaN with the top mantissa bit
// clear.
func (f Float) IsSignallingNaN() bool { return f.IsNaN() && f.MantField().GetBit(f.mantWidth-1) == 0 }

// IsNegative reports the sign bit, including for zeros and NaNs.
func (f Float) IsNegative() bool { return f.Sign() }

// Neg returns f with the sign bit flipped.
func (f Float) Neg() Float {
	g := f
	g.bits = f.bits.SetBit(f.expWidth+f.mantWidth, 1-f.bits.GetBit(f.expWidth+f.mantWidth))
	return g
}

// Equal reports whether f and o have the same shape and bit pattern.
// This is representation equality; use Eq for IEEE value equality.
func (f Float) Equal(o Float) bool {
	return f.expWidth == o.expWidth && f.mantWidth == o.mantWidth && f.bits.Equal(o.bits)
}

// unpack returns the biased exponent and the hidden-bit significand of a
// finite nonzero value: subnormals come back with exponent 1 and the
// hidden bit clear, normals with their exponent field and the hidden bit
// set. The significand is mantWidth+1 bits wide.
func (f Float) unpack() (int64, integer.Uint) {
	e := int64(f.ExpField())
	sig := integer.UintFromBits(f.MantField().WidthCast(f.mantWidth+1, false))
	if e == 0 {
		e = 1
	} else {
		sig = integer.UintFromBits(sig.Bits().SetBit(f.mantWidth, 1))
	}
	return e, sig
}

// unpackNorm is unpack with subnormals fully normalised: the hidden bit
// is always set and the exponent may drop to zero or below.
func (f Float) unpackNorm() (int64, integer.Uint) {
	e, sig := f.unpack()
	lead := sig.Width() - 1 - sig.Bits().CountLeadingZeros()
	if lead < f.mantWidth {
		shift := f.mantWidth - lead
		sig = integer.UintFromBits(sig.Bits().ShiftLeft(shift))
		e -= int64(shift)
	}
	return e, sig
}

// Float64 returns f as a native float64. Exact whenever E <= 11 and
// M <= 52; wider shapes are rounded by the conversion.
func (f Float) Float64() float64 {
	switch {
	case f.IsNaN():
		return math.NaN()
	case f.IsInf():
		if f.Sign() {
			return math.Inf(-1)
		}
		return math.Inf(1)
	case f.IsZero():
		if f.Sign() {
			return math.Copysign(0, -1)
		}
		return 0
	}
	e, sig := f.unpackNorm()
	// Value is sig/2^M * 2^(e-bias).
	m := f.mantWidth
	sigVal := 0.0
	for i := sig.Width() - 1; i >= 0; i-- {
		if sig.Bits().GetBit(i) == 1 {
			sigVal += math.Ldexp(1, i-m)
		}
	}
	v := math.Ldexp(sigVal, int(e-f.Bias()))
	if f.Sign() {
		v = -v
	}
	return v
}
