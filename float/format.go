package float

import (
	"math"
	"strconv"
	"strings"
)

// Sci renders f in the scientific form "[-]<m>E[-]<d>" where <m> is the
// significand in [1, 2) as a native-float literal and <d> is the decimal
// (power-of-two) exponent. Zeros print as "0"/"-0", infinities as
// "inf"/"-inf", NaN as "nan".
func (f Float) Sci() string {
	switch {
	case f.IsNaN():
		return "nan"
	case f.IsInf():
		if f.Sign() {
			return "-inf"
		}
		return "inf"
	case f.IsZero():
		if f.Sign() {
			return "-0"
		}
		return "0"
	}
	e, sig := f.unpackNorm()
	frac := 0.0
	for i := sig.Width() - 1; i >= 0; i-- {
		if sig.Bits().GetBit(i) == 1 {
			frac += math.Ldexp(1, i-f.mantWidth)
		}
	}
	var sb strings.Builder
	if f.Sign() {
		sb.WriteByte('-')
	}
	sb.WriteString(strconv.FormatFloat(frac, 'g', -1, 64))
	sb.WriteByte('E')
	sb.WriteString(strconv.FormatInt(e-f.Bias(), 10))
	return sb.String()
}
