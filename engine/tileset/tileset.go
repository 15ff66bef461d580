// Package tileset describes a tile atlas: a single image cut into a regular grid of
// equally sized tiles, addressed by a flat index in row-major order.
package tileset

import (
	"errors"
	"fmt"
	"image"
	"math/bits"
)

var ErrTileSize = errors.New("tileset: tile size must be positive")
var ErrEmptyAtlas = errors.New("tileset: atlas holds no complete tile")

// Index is a flat atlas tile index in [0, Cols*Rows).
type Index uint32

type Tileset struct {
	TileWidth, TileHeight int // In pixels
	Cols, Rows int

	lookup Lookup
	fast bool
	shift int

	stepU, stepV float32
}

// New derives the atlas grid from the atlas image size. Partial tiles on the
// right and bottom edges are ignored.
func New(tileWidth, tileHeight, atlasWidth, atlasHeight int) (*Tileset, error) {
	if tileWidth <= 0 || tileHeight <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrTileSize, tileWidth, tileHeight)
	}
	cols := atlasWidth / tileWidth
	rows := atlasHeight / tileHeight
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: atlas %dx%d, tile %dx%d", ErrEmptyAtlas, atlasWidth, atlasHeight, tileWidth, tileHeight)
	}

	t := &Tileset{
		TileWidth: tileWidth,
		TileHeight: tileHeight,
		Cols: cols,
		Rows: rows,
		stepU: 1 / float32(cols),
		stepV: 1 / float32(rows),
	}

	if isPowerOfTwo(cols) {
		t.fast = true
		t.shift = bits.TrailingZeros(uint(cols))
		t.lookup = NewShiftLookup(cols)
	} else {
		t.lookup = DivLookup{Cols: cols}
	}
	return t, nil
}

// FromBounds is New for an already decoded atlas image.
func FromBounds(tileWidth, tileHeight int, bounds image.Rectangle) (*Tileset, error) {
	return New(tileWidth, tileHeight, bounds.Dx(), bounds.Dy())
}

func isPowerOfTwo(x int) bool {
	return x > 0 && x&(x-1) == 0
}

// Count is the number of addressable tiles.
func (t *Tileset) Count() int {
	return t.Cols * t.Rows
}

// FastDivision reports whether lookups use the shift/mask strategy.
func (t *Tileset) FastDivision() bool {
	return t.fast
}

// ShiftBits is log2(Cols). Only meaningful when FastDivision is true.
func (t *Tileset) ShiftBits() int {
	return t.shift
}

// Strategy returns the lookup strategy selected for this atlas.
func (t *Tileset) Strategy() Lookup {
	return t.lookup
}

// Lookup decomposes a tile index into its atlas column and row.
// An index outside the atlas is a programming error and panics.
func (t *Tileset) Lookup(i Index) (col, row int) {
	if int(i) >= t.Count() {
		panic(fmt.Sprintf("tileset: index %d out of range [0, %d)", i, t.Count()))
	}
	return t.lookup.Decompose(i)
}

// SourceRect is the pixel rectangle of tile i inside the atlas image.
func (t *Tileset) SourceRect(i Index) image.Rectangle {
	col, row := t.Lookup(i)
	x := col * t.TileWidth
	y := row * t.TileHeight
	return image.Rect(x, y, x+t.TileWidth, y+t.TileHeight)
}

// UV returns normalized texture coordinates of the cell at (col, row), measured
// against the usable atlas area (Cols*TileWidth by Rows*TileHeight).
func (t *Tileset) UV(col, row int) (u0, v0, u1, v1 float32) {
	u0 = float32(col) * t.stepU
	v0 = float32(row) * t.stepV
	return u0, v0, u0 + t.stepU, v0 + t.stepV
}

// Bounds is the usable atlas area in pixels.
func (t *Tileset) Bounds() image.Rectangle {
	return image.Rect(0, 0, t.Cols*t.TileWidth, t.Rows*t.TileHeight)
}
