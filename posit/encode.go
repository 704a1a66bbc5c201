package posit

import "github.com/sarchlab/aarith/container"

// bitSink accumulates MSB-first magnitude bits into an n-1 bit budget.
// The first bit past the budget becomes the rounding bit; every later
// one bit folds into the sticky bit.
type bitSink struct {
	kept   uint64
	budget int
	count  int
	round  int
	sticky bool
}

func (s *bitSink) push(b uint) {
	switch {
	case s.count < s.budget:
		s.kept = s.kept<<1 | uint64(b)
		s.count++
	case s.round < 0:
		s.round = int(b)
	case b == 1:
		s.sticky = true
	}
}

func floorDiv64(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// encodeRounded packs (sign, scale, significand 1.F) into an n-bit posit
// under round-to-nearest-even with ties to the even last kept bit. frac
// carries the fraction bits F in positions [0, fracLen) of its register
// (bit fracLen-1 is the bit just below the hidden one); sticky records
// nonzero value bits below position 0. Rounding never produces zero or
// NaR: results beyond the range clamp to +-MaxPos and +-MinPos.
func encodeRounded(n, es int, sign bool, scale int64, frac container.Bits, fracLen int, sticky bool) Posit {
	useed := int64(1) << uint(es)
	regime := floorDiv64(scale, useed)
	e := scale - regime*useed

	sink := &bitSink{budget: n - 1, round: -1}
	if regime >= 0 {
		for i := int64(0); i <= regime; i++ {
			sink.push(1)
		}
		sink.push(0)
	} else {
		for i := int64(0); i < -regime; i++ {
			sink.push(0)
		}
		sink.push(1)
	}
	for i := es - 1; i >= 0; i-- {
		sink.push(uint(e>>uint(i)) & 1)
	}
	for i := fracLen - 1; i >= 0; i-- {
		sink.push(frac.GetBit(i))
	}
	for sink.count < sink.budget {
		sink.push(0)
	}

	pattern := sink.kept
	if sink.round == 1 && (sink.sticky || sticky || pattern&1 == 1) {
		// Rounding up on the packed pattern carries through the
		// fraction into the exponent and regime fields on its own.
		pattern++
	}
	if pattern == 0 {
		pattern = 1
	}
	if pattern >= uint64(1)<<uint(n-1) {
		pattern = uint64(1)<<uint(n-1) - 1
	}

	p := Posit{n: n, es: es, bits: container.FromUint64(n, pattern)}
	if sign {
		p = p.Neg()
	}
	return p
}

// Encode re-packs a Params value into the posit it decodes from. The
// register must be normalised (hidden bit set at the fraction point);
// the fraction point's full run of low bits participates, so trailing
// zero fill never perturbs rounding.
func Encode(n, es int, pr Params) Posit {
	if pr.Frac.GetBit(fracPoint(n)) != 1 {
		panic("posit: Encode requires a normalised significand")
	}
	return encodeRounded(n, es, pr.Sign, pr.Scale.Int64(), pr.Frac, fracPoint(n), false)
}
