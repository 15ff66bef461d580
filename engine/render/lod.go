package render

import "math"

// DefaultLODThreshold is the on-screen tile width in pixels below which tiles
// start being skipped.
const DefaultLODThreshold = 8.0

// Stride is the level of detail factor: 1 draws every tile, n > 1 draws one
// tile per n x n block, enlarged to cover the block. It is chosen so a block is
// never narrower on screen than threshold.
func Stride(tileWidth int, zoom, threshold float64) int {
	size := float64(tileWidth) * zoom
	if size >= threshold || !(size > 0) {
		return 1
	}
	return int(math.Ceil(threshold / size))
}

// AlignStart snaps a minimum tile coordinate down to a multiple of stride so
// block boundaries stay fixed to the grid while the view pans.
func AlignStart(min, stride int) int {
	if stride <= 1 {
		return min
	}
	q := min / stride
	if min%stride < 0 {
		q--
	}
	return q * stride
}
