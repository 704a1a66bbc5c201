package container

import "strings"

// Binary renders b as exactly Width() characters of '0'/'1', MSB first.
func (b Bits) Binary() string {
	var sb strings.Builder
	sb.Grow(b.width)
	for i := b.width - 1; i >= 0; i-- {
		if b.GetBit(i) == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Base2k renders b as ceil(Width()/k) digits in base 2^k (k in 1..4),
// using 0-9a-f, MSB group first; the top group may be partial.
func (b Bits) Base2k(k int) string {
	if k < 1 || k > 4 {
		panic("container: Base2k requires k in 1..4")
	}
	const digits = "0123456789abcdef"
	groups := (b.width + k - 1) / k
	out := make([]byte, groups)
	for g := 0; g < groups; g++ {
		lo := g * k
		hi := lo + k - 1
		if hi >= b.width {
			hi = b.width - 1
		}
		v := uint64(0)
		for i := hi; i >= lo; i-- {
			v = (v << 1) | uint64(b.GetBit(i))
		}
		out[groups-1-g] = digits[v]
	}
	return string(out)
}
