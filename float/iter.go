package float

import (
	"github.com/sarchlab/aarith/container"
	"github.com/sarchlab/aarith/integer"
)

// ForEach visits every bit pattern of shape F<e,m> exactly once, in
// ascending pattern order, until f returns false. Nothing is
// materialised; the walk is a lazy counter over the pattern space.
func ForEach(e, m int, f func(Float) bool) {
	checkShape(e, m)
	w := 1 + e + m
	one := integer.UintFromUint64(w, 1)
	cur := integer.NewUint(w)
	for {
		if !f(FromBits(e, m, cur.Bits())) {
			return
		}
		next := cur.Add(one)
		if next.Bits().IsZero() {
			return
		}
		cur = next
	}
}

// NextUp returns the next representable value toward positive infinity:
// NextUp(-0) is +0, NextUp(+0) is the smallest positive subnormal,
// NextUp(maxfinite) is +Inf, and NaN and +Inf return themselves.
func (f Float) NextUp() Float {
	w := 1 + f.expWidth + f.mantWidth
	switch {
	case f.IsNaN():
		return f
	case f.IsInf() && !f.Sign():
		return f
	case f.IsZero() && f.Sign():
		return Zero(f.expWidth, f.mantWidth, false)
	}
	pattern := integer.UintFromBits(f.bits)
	one := integer.UintFromUint64(w, 1)
	if f.Sign() {
		return FromBits(f.expWidth, f.mantWidth, pattern.Sub(one).Bits())
	}
	return FromBits(f.expWidth, f.mantWidth, pattern.Add(one).Bits())
}

// ForEachRegular walks every finite value of shape F<e,m> in ascending
// value order, from the most negative finite value to the most positive,
// by successive NextUp steps. Both zeros are visited, -0 before +0.
func ForEachRegular(e, m int, f func(Float) bool) {
	checkShape(e, m)
	// Most negative finite: sign set, exponent one below all-ones,
	// mantissa all ones.
	mant := container.New(m).Not()
	cur := FromFields(e, m, true, uint64(1)<<uint(e)-2, mant)
	top := cur.Neg()
	for {
		if !f(cur) {
			return
		}
		if cur.Equal(top) {
			return
		}
		cur = cur.NextUp()
	}
}
