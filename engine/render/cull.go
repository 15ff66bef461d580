package render

import (
	"image"
	"math"

	"github.com/ungerik/go3d/float64/vec2"
)

// VisibleRange is a half-open rectangle of tile coordinates:
// MinX <= x < MaxX, MinY <= y < MaxY. It always lies inside the grid.
type VisibleRange struct {
	MinX, MinY int
	MaxX, MaxY int
}

func (r VisibleRange) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

func (r VisibleRange) Contains(x, y int) bool {
	return x >= r.MinX && x < r.MaxX && y >= r.MinY && y < r.MaxY
}

func (r VisibleRange) Cells() int {
	if r.Empty() {
		return 0
	}
	return (r.MaxX - r.MinX) * (r.MaxY - r.MinY)
}

// Cull returns the tiles of a grid (in cells) that can touch a screen of the
// given pixel size. The minimum is floored and the maximum is ceiled plus one
// so a partially visible edge row or column is never dropped; the result may
// include a thin border of off-screen tiles.
func Cull(v Viewport, tile, screen, grid image.Point) VisibleRange {
	topLeft := v.ScreenToWorld(vec2.T{0, 0})
	bottomRight := v.ScreenToWorld(vec2.T{float64(screen.X), float64(screen.Y)})

	tw := float64(tile.X)
	th := float64(tile.Y)
	return VisibleRange{
		MinX: clampIndex(math.Floor(topLeft[0]/tw), grid.X),
		MinY: clampIndex(math.Floor(topLeft[1]/th), grid.Y),
		MaxX: clampIndex(math.Ceil(bottomRight[0]/tw)+1, grid.X),
		MaxY: clampIndex(math.Ceil(bottomRight[1]/th)+1, grid.Y),
	}
}

// clampIndex clamps in float space so far-away offsets cannot overflow the
// int conversion.
func clampIndex(f float64, dim int) int {
	if math.IsNaN(f) {
		return 0
	}
	return int(clamp(f, 0, float64(dim)))
}
