package pgen

import (
	"math"

	"github.com/unitoftime/tileview/engine/tileset"
)

var DefaultOctaves = []Octave{
	{0.01, 0.6},
	{0.05, 0.3},
	{0.1, 0.07},
	{0.2, 0.02},
	{0.4, 0.01},
}

// Island returns a fill function that shapes layered noise into a single island
// centred on a width x height grid, then spreads the height range over the
// first count atlas tiles: low heights map to low indices.
func Island(seed int64, width, height, count int) func(x, y int) tileset.Index {
	terrain := NewNoiseMap(seed, DefaultOctaves, 0.8)
	islandExponent := 2.0

	return func(x, y int) tileset.Index {
		h := terrain.Get(x, y)

		// Modify height to represent an island
		dx := float64(x)/float64(width) - 0.5
		dy := float64(y)/float64(height) - 0.5
		d := math.Sqrt(dx*dx+dy*dy) * 2
		d = math.Pow(d, islandExponent)
		h = (1 - d + h) / 2

		return Band(h, count)
	}
}

// Band maps h in [0, 1] onto [0, count). Values outside the range saturate.
func Band(h float64, count int) tileset.Index {
	if count <= 1 || math.IsNaN(h) || h <= 0 {
		return 0
	}
	i := int(h * float64(count))
	if i >= count {
		i = count - 1
	}
	return tileset.Index(i)
}
