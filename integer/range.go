package integer

import "github.com/sarchlab/aarith/aerr"

// Range is a lazy, finite, ascending sequence of Sint values [start, end]
// with a positive stride. The stride arithmetic is carried out in N+1
// bits internally so that the boundary check (does the next value exceed
// end?) never wraps.
type Range struct {
	start, end, stride Sint
}

// NewRange returns a Range iterating start, start+stride, ... up to and
// including end. Returns InvalidArgument if stride <= 0.
func NewRange(start, end, stride Sint) (Range, error) {
	if stride.IsNegative() || stride.bits.IsZero() {
		return Range{}, &aerr.Error{Kind: aerr.InvalidArgument, Op: "integer.NewRange", Msg: "stride must be positive"}
	}
	return Range{start: start, end: end, stride: stride}, nil
}

// Each calls f with every value in the range, in ascending order, until f
// returns false or the range is exhausted.
func (r Range) Each(f func(Sint) bool) {
	n := r.start.Width()
	cur := r.start
	if cur.Compare(r.end) > 0 {
		return
	}
	for {
		if !f(cur) {
			return
		}
		curWide := cur.bits.WidthCast(n+1, true)
		strideWide := r.stride.bits.WidthCast(n+1, true)
		nextWide := Sint{bits: curWide}.Add(Sint{bits: strideWide})
		next := Sint{bits: nextWide.bits.WidthCast(n, true)}
		if nextWide.Compare(Sint{bits: r.end.bits.WidthCast(n+1, true)}) > 0 {
			return
		}
		cur = next
	}
}

// Slice materializes the range as a slice (test/debug convenience; the
// iteration itself, via Each, never materializes).
func (r Range) Slice() []Sint {
	var out []Sint
	r.Each(func(v Sint) bool {
		out = append(out, v)
		return true
	})
	return out
}
