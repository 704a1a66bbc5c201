package posit

import (
	"github.com/sarchlab/aarith/aerr"
	"github.com/sarchlab/aarith/container"
)

// Valid is an interval over the projective posit circle: the
// counter-clockwise arc from start to end, each endpoint included or
// excluded per its IntervalBound. Three patterns are distinguished:
// (NaR closed, NaR closed) is the empty set, (NaR open, NaR open) is
// the whole circle (all reals and NaR), and (NaR open, NaR closed) is
// the exact NaR. (p closed, p closed) denotes the exact value p.
type Valid struct {
	start, end           Posit
	startBound, endBound IntervalBound
}

// NewValid builds a valid from its endpoints. Both endpoints must share
// one posit shape.
func NewValid(start Posit, startBound IntervalBound, end Posit, endBound IntervalBound) Valid {
	requireSamePositShape(start, end)
	return Valid{start: start, end: end, startBound: startBound, endBound: endBound}
}

// ExactValid returns the valid denoting exactly p.
func ExactValid(p Posit) Valid {
	return Valid{start: p, end: p, startBound: Closed, endBound: Closed}
}

// EmptyValid returns the empty set.
func EmptyValid(n, es int) Valid {
	return Valid{start: NaR(n, es), end: NaR(n, es), startBound: Closed, endBound: Closed}
}

// FullValid returns the whole circle: every real plus NaR.
func FullValid(n, es int) Valid {
	return Valid{start: NaR(n, es), end: NaR(n, es), startBound: Open, endBound: Open}
}

// NaRValid returns the valid denoting exactly NaR.
func NaRValid(n, es int) Valid {
	return Valid{start: NaR(n, es), end: NaR(n, es), startBound: Open, endBound: Closed}
}

// Start returns the start endpoint value.
func (v Valid) Start() Posit { return v.start }

// End returns the end endpoint value.
func (v Valid) End() Posit { return v.end }

// StartBound returns the start endpoint's bound.
func (v Valid) StartBound() IntervalBound { return v.startBound }

// EndBound returns the end endpoint's bound.
func (v Valid) EndBound() IntervalBound { return v.endBound }

// IsEmpty reports whether v is the empty set.
func (v Valid) IsEmpty() bool {
	return v.start.IsNaR() && v.end.IsNaR() && v.startBound == Closed && v.endBound == Closed
}

// IsFull reports whether v is the whole circle.
func (v Valid) IsFull() bool {
	return v.start.IsNaR() && v.end.IsNaR() && v.startBound == Open && v.endBound == Open
}

// IsNaR reports whether v denotes exactly NaR.
func (v Valid) IsNaR() bool {
	return v.start.IsNaR() && v.end.IsNaR() && v.startBound == Open && v.endBound == Closed
}

// IsExact reports whether v denotes exactly one real value.
func (v Valid) IsExact() bool {
	return !v.start.IsNaR() && v.start.Equal(v.end) &&
		v.startBound == Closed && v.endBound == Closed
}

// IsRegular reports whether v is a plain interval of reals: neither
// endpoint NaR and the arc not wrapping around the circle.
func (v Valid) IsRegular() bool {
	if v.start.IsNaR() || v.end.IsNaR() {
		return false
	}
	c := v.start.Compare(v.end)
	if c > 0 {
		return false
	}
	if c == 0 && v.startBound == Open && v.endBound == Open {
		// Same point, both open: everything except the point.
		return false
	}
	return true
}

// Bits packs the valid into 2n+2 bits: the start posit, its bound bit
// (1 for open), the end posit, and its bound bit, high to low.
func (v Valid) Bits() container.Bits {
	boundBit := func(b IntervalBound) container.Bits {
		u := container.New(1)
		if b == Open {
			u = u.SetBit(0, 1)
		}
		return u
	}
	hi := container.Concat(v.start.bits, boundBit(v.startBound))
	lo := container.Concat(v.end.bits, boundBit(v.endBound))
	return container.Concat(hi, lo)
}

// ValidFromBits unpacks a (2n+2)-bit pattern produced by Bits.
func ValidFromBits(n, es int, b container.Bits) Valid {
	if b.Width() != 2*n+2 {
		panic("posit: valid pattern width does not match shape")
	}
	bound := func(bit uint) IntervalBound {
		if bit == 1 {
			return Open
		}
		return Closed
	}
	return Valid{
		start:      FromBits(n, es, b.BitRange(2*n+1, n+2)),
		end:        FromBits(n, es, b.BitRange(n, 1)),
		startBound: bound(b.GetBit(n + 1)),
		endBound:   bound(b.GetBit(0)),
	}
}

// Equal reports whether v and w are the same valid.
func (v Valid) Equal(w Valid) bool {
	return v.start.Equal(w.start) && v.end.Equal(w.end) &&
		v.startBound == w.startBound && v.endBound == w.endBound
}

// Contains reports whether the posit p lies in v. Membership is decided
// on the circle: positions are the signed order of the patterns, with
// NaR at the wrap point.
func (v Valid) Contains(p Posit) bool {
	requireSamePositShape(v.start, p)
	if v.IsEmpty() {
		return false
	}
	if v.IsFull() {
		return true
	}
	s, e := v.start.pattern(), v.end.pattern()
	x := p.pattern()
	if s == e {
		if x == s {
			return v.startBound == Closed || v.endBound == Closed
		}
		// Same point, not both closed: the arc wraps the whole circle
		// around the point only when both endpoints exclude it.
		return v.startBound == Open && v.endBound == Open
	}
	if x == s {
		return v.startBound == Closed
	}
	if x == e {
		return v.endBound == Closed
	}
	if s < e {
		return s < x && x < e
	}
	return x > s || x < e
}

// stepDown moves an endpoint one ULP toward the circle's negative end,
// saturating at the most negative posit rather than stepping onto NaR.
func stepDown(p Posit) Posit {
	q := p.Prior()
	if q.IsNaR() {
		return p
	}
	return q
}

// stepUp moves an endpoint one ULP toward the positive end, saturating
// at MaxPos.
func stepUp(p Posit) Posit {
	q := p.Next()
	if q.IsNaR() {
		return p
	}
	return q
}

// widen applies the containment margin after a rounded endpoint
// computation: the low endpoint steps down one ULP and the high endpoint
// steps up one ULP, so every real the exact operation could produce
// stays inside. An endpoint already saturated at the edge of the range
// closes instead, since scalar arithmetic clamps results onto it.
func widen(lo, hi Bound, loBound, hiBound IntervalBound) Valid {
	start := stepDown(lo.Value)
	if start.Equal(lo.Value) {
		loBound = Closed
	}
	end := stepUp(hi.Value)
	if end.Equal(hi.Value) {
		hiBound = Closed
	}
	return Valid{
		start:      start,
		end:        end,
		startBound: loBound,
		endBound:   hiBound,
	}
}

// boundsOf converts v's endpoints into the Bound form the interval
// algebra runs on: a closed endpoint is exact, an open start lies just
// above its value, an open end just below.
func (v Valid) boundsOf() (lo, hi Bound) {
	lo = Bound{Value: v.start, Sign: Exact}
	if v.startBound == Open {
		lo.Sign = PlusEps
	}
	hi = Bound{Value: v.end, Sign: Exact}
	if v.endBound == Open {
		hi.Sign = MinusEps
	}
	return lo, hi
}

// special handles the distinguished operand forms shared by every binary
// operation; handled reports whether the result is already decided.
func (v Valid) special(w Valid) (Valid, bool) {
	n, es := v.start.n, v.start.es
	switch {
	case v.IsEmpty() || w.IsEmpty():
		return EmptyValid(n, es), true
	case v.IsNaR() || w.IsNaR():
		return NaRValid(n, es), true
	case v.IsFull() || w.IsFull():
		return FullValid(n, es), true
	case !v.IsRegular() || !w.IsRegular():
		// An arc through NaR has no finite endpoint form to operate on;
		// the whole circle is the containing answer.
		return FullValid(n, es), true
	}
	return Valid{}, false
}

// Add returns an interval containing x+y for every x in v and y in w.
func (v Valid) Add(w Valid) Valid {
	requireSamePositShape(v.start, w.start)
	if r, done := v.special(w); done {
		return r
	}
	vl, vh := v.boundsOf()
	wl, wh := w.boundsOf()
	lo := vl.Add(wl)
	hi := vh.Add(wh)
	return widen(lo, hi,
		MergeBounds(v.startBound, w.startBound),
		MergeBounds(v.endBound, w.endBound))
}

// Neg returns the interval of -x for x in v.
func (v Valid) Neg() Valid {
	n, es := v.start.n, v.start.es
	switch {
	case v.IsEmpty():
		return EmptyValid(n, es)
	case v.IsNaR():
		return NaRValid(n, es)
	case v.IsFull():
		return FullValid(n, es)
	}
	return Valid{
		start:      v.end.Neg(),
		end:        v.start.Neg(),
		startBound: v.endBound,
		endBound:   v.startBound,
	}
}

// Sub returns an interval containing x-y for every x in v and y in w.
func (v Valid) Sub(w Valid) Valid { return v.Add(w.Neg()) }

// Mul returns an interval containing x*y for every x in v and y in w.
// The endpoints come from the four endpoint products, selected through
// the Bound sign algebra.
func (v Valid) Mul(w Valid) Valid {
	requireSamePositShape(v.start, w.start)
	if r, done := v.special(w); done {
		return r
	}
	vl, vh := v.boundsOf()
	wl, wh := w.boundsOf()
	products := []Bound{vl.Mul(wl), vl.Mul(wh), vh.Mul(wl), vh.Mul(wh)}
	lo := minBound(products)
	hi := maxBound(products)
	return widen(lo, hi,
		MergeBounds(v.startBound, w.startBound),
		MergeBounds(v.endBound, w.endBound))
}

// Div returns an interval containing x/y for every x in v and y in w.
// A divisor interval containing zero, or reaching zero at an open
// endpoint, has no bounded quotient; the whole circle is returned.
func (v Valid) Div(w Valid) Valid {
	requireSamePositShape(v.start, w.start)
	if r, done := v.special(w); done {
		return r
	}
	n, es := v.start.n, v.start.es
	if w.Contains(Zero(n, es)) || w.start.IsZero() || w.end.IsZero() {
		return FullValid(n, es)
	}
	vl, vh := v.boundsOf()
	wl, wh := w.boundsOf()
	quotients := []Bound{vl.Div(wl), vl.Div(wh), vh.Div(wl), vh.Div(wh)}
	lo := minBound(quotients)
	hi := maxBound(quotients)
	return widen(lo, hi,
		MergeBounds(v.startBound, w.startBound),
		MergeBounds(v.endBound, w.endBound))
}

// Sqrt returns an interval containing sqrt(x) for every x in v: the
// scalar square root of each endpoint, widened one ULP outward. An
// irregular valid has no endpoint order to operate on and is rejected;
// an interval reaching below zero yields the NaR valid.
func (v Valid) Sqrt() (Valid, error) {
	n, es := v.start.n, v.start.es
	switch {
	case v.IsEmpty():
		return EmptyValid(n, es), nil
	case v.IsNaR():
		return NaRValid(n, es), nil
	}
	if !v.IsRegular() {
		return Valid{}, &aerr.Error{
			Kind: aerr.InvalidArgument,
			Op:   "posit.Valid.Sqrt",
			Msg:  "square root of an irregular valid",
		}
	}
	lo := v.start.Sqrt()
	hi := v.end.Sqrt()
	if lo.IsNaR() || hi.IsNaR() {
		return NaRValid(n, es), nil
	}
	return Valid{
		start:      stepDown(lo),
		end:        stepUp(hi),
		startBound: Open,
		endBound:   Open,
	}, nil
}
