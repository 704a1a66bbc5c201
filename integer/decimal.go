package integer

import (
	"strings"

	"github.com/sarchlab/aarith/aerr"
	"github.com/sarchlab/aarith/container"
)

// ToBCD converts u to binary-coded decimal using the shift-and-add-3
// algorithm: for each source bit from MSB to LSB, first add 3 to every
// 4-bit BCD digit that is currently >= 5, then shift the whole BCD
// register left by one and shift in the next source bit. The result
// width is padded to a whole number of 4-bit digits, generously sized so
// the largest value of N never overflows the digit register (each bit of
// input contributes at most ~0.302 decimal digits; 4 bits per digit with
// one spare digit is ample headroom).
func (u Uint) ToBCD() container.Bits {
	digits := (u.Width()*34)/113 + 2 // >= N*log10(2) digits, plus 1 spare
	bcdWidth := digits * 4
	bcd := container.New(bcdWidth)

	for i := u.Width() - 1; i >= 0; i-- {
		for d := 0; d < digits; d++ {
			nibble := bcd.BitRange(d*4+3, d*4).Word(0)
			if nibble >= 5 {
				bcd = setNibble(bcd, d, nibble+3)
			}
		}
		bcd = bcd.ShiftLeft(1)
		if u.bits.GetBit(i) == 1 {
			bcd = bcd.SetBit(0, 1)
		}
	}
	return bcd
}

func setNibble(b container.Bits, digit int, v uint64) container.Bits {
	for k := 0; k < 4; k++ {
		b = b.SetBit(digit*4+k, uint((v>>uint(k))&1))
	}
	return b
}

// Decimal renders u via ToBCD and the hex of that BCD register, with
// leading zeros stripped ("0" for zero).
func (u Uint) Decimal() string {
	bcd := u.ToBCD()
	digitsStr := bcd.Base2k(4)
	trimmed := strings.TrimLeft(digitsStr, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

// Hex renders u as lowercase hex, zero-padded to ceil(Width()/4) digits.
func (u Uint) Hex() string { return u.bits.Base2k(4) }

// Octal renders u zero-padded to ceil(Width()/3) digits.
func (u Uint) Octal() string { return u.bits.Base2k(3) }

// Decimal renders s with a "-" prefix for negative values followed by the
// decimal of the absolute value.
func (s Sint) Decimal() string {
	if s.IsNegative() {
		return "-" + Uint{bits: s.Abs().bits}.Decimal()
	}
	return Uint{bits: s.bits}.Decimal()
}

// Base2n renders u in base 2^k for k in 1..4 (binary, base 4, octal,
// hex), MSB group first with a possibly partial top group.
func (u Uint) Base2n(k int) string { return u.bits.Base2k(k) }

// Binary renders u as exactly Width() binary digits.
func (u Uint) Binary() string { return u.bits.Binary() }

// UintFromDecimal parses a decimal string into an n-bit unsigned value.
// Returns InvalidArgument for malformed input and Overflow when the
// value does not fit n bits.
func UintFromDecimal(n int, s string) (Uint, error) {
	if s == "" {
		return Uint{}, &aerr.Error{Kind: aerr.InvalidArgument, Op: "integer.UintFromDecimal", Msg: "empty string"}
	}
	acc := NewUint(n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return Uint{}, &aerr.Error{Kind: aerr.InvalidArgument, Op: "integer.UintFromDecimal", Msg: "non-decimal digit"}
		}
		// Scale and bump in n+5 bits so a full-width accumulator times
		// ten plus nine still cannot wrap before the narrowing check.
		w := n + 5
		next := acc.WidthCast(w).Mul(UintFromUint64(w, 10)).Add(UintFromUint64(w, uint64(c-'0')))
		narrowed, err := next.NarrowCast(n)
		if err != nil {
			return Uint{}, &aerr.Error{Kind: aerr.Overflow, Op: "integer.UintFromDecimal", Msg: "value does not fit target width"}
		}
		acc = narrowed
	}
	return acc, nil
}

// SintFromDecimal parses an optionally "-"-prefixed decimal string into
// an n-bit signed value.
func SintFromDecimal(n int, s string) (Sint, error) {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	mag, err := UintFromDecimal(n, s)
	if err != nil {
		return Sint{}, err
	}
	// The magnitude must fit the signed range: up to 2^(n-1) when
	// negative, 2^(n-1)-1 otherwise.
	limit := UintFromBits(container.New(n).SetBit(n-1, 1))
	cmp := mag.Compare(limit)
	if cmp > 0 || (cmp == 0 && !neg) {
		return Sint{}, &aerr.Error{Kind: aerr.Overflow, Op: "integer.SintFromDecimal", Msg: "value does not fit target width"}
	}
	v := Sint{bits: mag.bits}
	if neg {
		v = v.Negate()
	}
	return v, nil
}
