package tilemap

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/unitoftime/tileview/engine/tileset"
)

var ErrGridSize = errors.New("tilemap: grid dimensions must be positive")

// Tilemap is a dense grid of atlas indices stored row-major in one buffer.
// It is filled once and only read while rendering.
type Tilemap struct {
	width, height int
	tiles []tileset.Index
}

func New(width, height int) (*Tilemap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrGridSize, width, height)
	}
	return &Tilemap{
		width: width,
		height: height,
		tiles: make([]tileset.Index, width*height),
	}, nil
}

func (t *Tilemap) Width() int {
	return t.width
}

func (t *Tilemap) Height() int {
	return t.height
}

func (t *Tilemap) Get(x, y int) (tileset.Index, bool) {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return 0, false
	}
	return t.tiles[y*t.width+x], true
}

// At skips the bounds check on the coordinates; callers iterate a range that
// was already clamped to the grid.
func (t *Tilemap) At(x, y int) tileset.Index {
	return t.tiles[y*t.width+x]
}

func (t *Tilemap) Set(x, y int, index tileset.Index) bool {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return false
	}
	t.tiles[y*t.width+x] = index
	return true
}

// Fill assigns every cell from f.
func (t *Tilemap) Fill(f func(x, y int) tileset.Index) {
	for y := 0; y < t.height; y++ {
		row := t.tiles[y*t.width : (y+1)*t.width]
		for x := range row {
			row[x] = f(x, y)
		}
	}
}

// FillRandom assigns uniformly random indices in [0, count).
func (t *Tilemap) FillRandom(rng *rand.Rand, count int) {
	if count <= 0 {
		panic("tilemap: FillRandom needs a positive tile count")
	}
	t.Fill(func(x, y int) tileset.Index {
		return tileset.Index(rng.Intn(count))
	})
}
