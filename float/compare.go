package float

import "github.com/sarchlab/aarith/container"

// Compare returns the three-way order of a and b and whether the order
// is defined: ok is false when either operand is NaN. +0 and -0 compare
// equal.
func (a Float) Compare(b Float) (int, bool) {
	requireSameShape(a, b)
	if a.IsNaN() || b.IsNaN() {
		return 0, false
	}
	if a.IsZero() && b.IsZero() {
		return 0, true
	}
	an, bn := a.Sign(), b.Sign()
	switch {
	case an && !bn:
		return -1, true
	case !an && bn:
		return 1, true
	}
	// Same sign: the exponent|mantissa field ordering is monotonic in
	// magnitude, flipped on the negative side.
	w := a.expWidth + a.mantWidth
	magCmp := container.CompareUnsigned(a.bits.BitRange(w-1, 0), b.bits.BitRange(w-1, 0))
	if an {
		return -magCmp, true
	}
	return magCmp, true
}

// Eq reports IEEE equality: false for any NaN operand, true for +0 == -0.
func (a Float) Eq(b Float) bool {
	c, ok := a.Compare(b)
	return ok && c == 0
}

// Ne reports IEEE inequality: true whenever either operand is NaN.
func (a Float) Ne(b Float) bool {
	c, ok := a.Compare(b)
	return !ok || c != 0
}

// Lt reports a < b; false for any NaN operand.
func (a Float) Lt(b Float) bool {
	c, ok := a.Compare(b)
	return ok && c < 0
}

// Le reports a <= b; false for any NaN operand.
func (a Float) Le(b Float) bool {
	c, ok := a.Compare(b)
	return ok && c <= 0
}

// Gt reports a > b; false for any NaN operand.
func (a Float) Gt(b Float) bool {
	c, ok := a.Compare(b)
	return ok && c > 0
}

// Ge reports a >= b; false for any NaN operand.
func (a Float) Ge(b Float) bool {
	c, ok := a.Compare(b)
	return ok && c >= 0
}

// totalOrderKey maps the bit pattern to an unsigned key whose natural
// order is the IEEE-754 total order: negative patterns flip every bit,
// non-negative patterns set the top bit.
func (f Float) totalOrderKey() container.Bits {
	w := 1 + f.expWidth + f.mantWidth
	if f.Sign() {
		return f.bits.Not()
	}
	return f.bits.SetBit(w-1, 1)
}

// TotalOrder reports whether a precedes or equals b in the IEEE-754
// total order: -NaN < negative numbers < -0 < +0 < positive numbers
// < +NaN, with NaNs tie-broken by payload.
func TotalOrder(a, b Float) bool {
	requireSameShape(a, b)
	return container.CompareUnsigned(a.totalOrderKey(), b.totalOrderKey()) <= 0
}
