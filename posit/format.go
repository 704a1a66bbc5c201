package posit

import (
	"math"
	"strconv"
	"strings"

	"github.com/sarchlab/aarith/integer"
)

// Binary renders the n-bit pattern MSB first. With sep, spaces separate
// the sign, regime, exponent, and fraction fields at the decoded
// boundaries (zero and NaR have no field structure past the sign and
// render with a single gap).
func (p Posit) Binary(sep bool) string {
	raw := p.bits.Binary()
	if !sep {
		return raw
	}
	signW, regimeW, expW, fracW := p.fieldWidths()
	var sb strings.Builder
	pos := 0
	for _, w := range []int{signW, regimeW, expW, fracW} {
		if w == 0 {
			continue
		}
		if pos > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(raw[pos : pos+w])
		pos += w
	}
	return sb.String()
}

// String renders p's value: "0", "NaR", or the shortest native-float
// literal that round-trips the value.
func (p Posit) String() string {
	switch {
	case p.IsZero():
		return "0"
	case p.IsNaR():
		return "NaR"
	}
	return strconv.FormatFloat(p.Float64(), 'g', -1, 64)
}

// String renders the valid: the empty set and NaR print as their
// symbols, an exact valid prints its value, and an interval prints with
// bracket style matching the endpoint bounds, substituting the signed
// infinities when an endpoint is NaR under the bound interpretation.
func (v Valid) String() string {
	switch {
	case v.IsEmpty():
		return "∅"
	case v.IsNaR():
		return "NaR"
	case v.IsExact():
		return v.start.String()
	}
	var sb strings.Builder
	if v.startBound == Closed {
		sb.WriteByte('[')
	} else {
		sb.WriteByte('(')
	}
	if v.start.IsNaR() {
		sb.WriteString("-∞")
	} else {
		sb.WriteString(v.start.String())
	}
	sb.WriteString(", ")
	if v.end.IsNaR() {
		sb.WriteString("∞")
	} else {
		sb.WriteString(v.end.String())
	}
	if v.endBound == Closed {
		sb.WriteByte(']')
	} else {
		sb.WriteByte(')')
	}
	return sb.String()
}

// String renders the endpoint bound with its epsilon qualifier spelled
// out, matching the interval notation used by Valid.
func (b Bound) String() string {
	v := b.Value.String()
	switch b.Sign {
	case Exact:
		return v
	case PlusEps:
		return "(" + v + " + ε)"
	case MinusEps:
		return "(" + v + " - ε)"
	default:
		return "(" + v + " ± ε)"
	}
}

// String renders the tile: its value for a certain tile, the open gap to
// the successor for an uncertain one.
func (t Tile) String() string {
	if !t.uncertain {
		return t.value.String()
	}
	next := t.value.Next()
	hi := "∞"
	if !next.IsNaR() {
		hi = next.String()
	}
	lo := t.value.String()
	if t.value.IsNaR() {
		lo = "-∞"
	}
	return "(" + lo + ", " + hi + ")"
}

// String renders the quire's accumulated value through a float64
// conversion, for diagnostics; the exact value lives in the bits.
func (q Quire) String() string {
	switch {
	case q.IsZero():
		return "0"
	case q.IsNaR():
		return "NaR"
	}
	return strconv.FormatFloat(q.Float64(), 'g', -1, 64)
}

// Float64 approximates the quire's value as a native float64.
func (q Quire) Float64() float64 {
	if q.IsNaR() {
		return math.NaN()
	}
	w := q.bits.Width()
	neg := q.bits.GetBit(w-1) == 1
	mag := q.bits
	if neg {
		one := integer.UintFromUint64(w, 1)
		mag = integer.UintFromBits(mag.Not()).Add(one).Bits()
	}
	v := 0.0
	point := quirePoint(q.n, q.es)
	for i := w - 1; i >= 0; i-- {
		if mag.GetBit(i) == 1 {
			v += math.Ldexp(1, i-point)
		}
	}
	if neg {
		v = -v
	}
	return v
}
