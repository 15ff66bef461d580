package tileset

import "math/bits"

// Lookup splits a flat index into (col, row). Implementations must agree for
// every valid index; they differ only in cost.
type Lookup interface {
	Decompose(i Index) (col, row int)
}

// DivLookup is the reference strategy using integer division.
type DivLookup struct {
	Cols int
}

func (l DivLookup) Decompose(i Index) (int, int) {
	cols := Index(l.Cols)
	return int(i % cols), int(i / cols)
}

// ShiftLookup replaces division with a mask and a shift. Only valid when the
// column count is a power of two.
type ShiftLookup struct {
	Mask Index
	Shift uint
}

func NewShiftLookup(cols int) ShiftLookup {
	if !isPowerOfTwo(cols) {
		panic("tileset: shift lookup needs a power of two column count")
	}
	return ShiftLookup{
		Mask: Index(cols - 1),
		Shift: uint(bits.TrailingZeros(uint(cols))),
	}
}

func (l ShiftLookup) Decompose(i Index) (int, int) {
	return int(i & l.Mask), int(i >> l.Shift)
}
