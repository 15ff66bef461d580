package render

import (
	"image"
	"math"

	"github.com/ungerik/go3d/float64/vec2"
)

// HoverTile maps a cursor position to the grid cell under it. ok is false when
// the cursor is outside the grid.
func HoverTile(v Viewport, tile image.Point, cursor vec2.T, grid image.Point) (x, y int, ok bool) {
	world := v.ScreenToWorld(cursor)
	fx := math.Floor(world[0] / float64(tile.X))
	fy := math.Floor(world[1] / float64(tile.Y))
	if !(fx >= 0 && fx < float64(grid.X) && fy >= 0 && fy < float64(grid.Y)) {
		return 0, 0, false
	}
	return int(fx), int(fy), true
}

// Outline splits a rectangle border of the given thickness into four bars:
// top, bottom, left, right.
func Outline(r Rect, width float64) [4]Rect {
	return [4]Rect{
		{r.X, r.Y, r.W, width},
		{r.X, r.Y + r.H - width, r.W, width},
		{r.X, r.Y, width, r.H},
		{r.X + r.W - width, r.Y, width, r.H},
	}
}
