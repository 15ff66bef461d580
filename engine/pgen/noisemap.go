// Package pgen generates grid contents from layered noise.
package pgen

import (
	"math"

	"github.com/ojrac/opensimplex-go"
)

// Octave is one noise layer: its sampling frequency in cells and its weight.
type Octave struct {
	Freq, Scale float64
}

// NoiseMap sums octaves of normalized opensimplex noise, then bends the result
// with an exponent. Values stay in [0, 1].
type NoiseMap struct {
	noise opensimplex.Noise
	octaves []Octave
	exponent float64
}

// NewNoiseMap rescales the octave weights so they sum to one.
func NewNoiseMap(seed int64, octaves []Octave, exponent float64) *NoiseMap {
	total := 0.0
	for _, o := range octaves {
		total += o.Scale
	}

	scaled := make([]Octave, len(octaves))
	for i, o := range octaves {
		scaled[i] = o
		if total > 0 {
			scaled[i].Scale = o.Scale / total
		}
	}

	return &NoiseMap{
		noise: opensimplex.NewNormalized(seed),
		octaves: scaled,
		exponent: exponent,
	}
}

func (n *NoiseMap) Get(x, y int) float64 {
	ret := 0.0
	for _, o := range n.octaves {
		ret += o.Scale * n.noise.Eval2(o.Freq*float64(x), o.Freq*float64(y))
	}

	ret = math.Max(0, math.Min(1, ret))
	return math.Pow(ret, n.exponent)
}
