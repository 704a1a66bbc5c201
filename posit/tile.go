package posit

import "github.com/sarchlab/aarith/container"

// Tile is a posit plus one uncertainty bit: a certain tile denotes its
// posit exactly, and an uncertain tile denotes the open interval between
// the posit and its successor on the circle (reaching to the infinity
// boundary at the extremes).
type Tile struct {
	value     Posit
	uncertain bool
}

// NewTile builds a tile from a posit and its uncertainty bit.
func NewTile(p Posit, uncertain bool) Tile {
	return Tile{value: p, uncertain: uncertain}
}

// CertainTile denotes p exactly.
func CertainTile(p Posit) Tile { return Tile{value: p} }

// Value returns the tile's posit.
func (t Tile) Value() Posit { return t.value }

// IsUncertain reports the uncertainty bit.
func (t Tile) IsUncertain() bool { return t.uncertain }

// Equal reports whether two tiles have the same posit and uncertainty.
func (t Tile) Equal(o Tile) bool {
	return t.value.Equal(o.value) && t.uncertain == o.uncertain
}

// Bits packs the tile into n+1 bits: the posit pattern in the high n
// bits and the uncertainty bit at bit zero.
func (t Tile) Bits() container.Bits {
	u := container.New(1)
	if t.uncertain {
		u = u.SetBit(0, 1)
	}
	return container.Concat(t.value.bits, u)
}

// TileFromBits unpacks an (n+1)-bit pattern produced by Bits.
func TileFromBits(n, es int, b container.Bits) Tile {
	if b.Width() != n+1 {
		panic("posit: tile pattern width does not match shape")
	}
	return Tile{
		value:     FromBits(n, es, b.BitRange(n, 1)),
		uncertain: b.GetBit(0) == 1,
	}
}

// AsValid returns the interval a tile denotes: the exact posit for a
// certain tile, the open gap to the successor for an uncertain one.
func (t Tile) AsValid() Valid {
	if !t.uncertain {
		return ExactValid(t.value)
	}
	return Valid{
		start:      t.value,
		end:        t.value.Next(),
		startBound: Open,
		endBound:   Open,
	}
}
