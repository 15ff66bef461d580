package render

import (
	"image"
	"testing"

	"github.com/ungerik/go3d/float64/vec2"
)

func TestStride(t *testing.T) {
	tests := []struct {
		name string
		tileWidth int
		zoom float64
		threshold float64
		want int
	}{
		{"full detail", 32, 1, 8, 1},
		{"exactly at threshold", 32, 0.25, 8, 1},
		{"zoom 0.1", 32, 0.1, 8, 3},
		{"half threshold", 32, 0.125, 8, 2},
		{"minimum zoom", 32, 0.001, 8, 250},
		{"no threshold", 32, 0.001, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stride(tt.tileWidth, tt.zoom, tt.threshold); got != tt.want {
				t.Errorf("Stride(%d, %v, %v) = %d, want %d", tt.tileWidth, tt.zoom, tt.threshold, got, tt.want)
			}
		})
	}
}

func TestStrideMonotonic(t *testing.T) {
	prev := 1
	for zoom := 2.0; zoom > DefaultMinZoom; zoom /= DefaultZoomStep {
		s := Stride(32, zoom, DefaultLODThreshold)
		if s < 1 {
			t.Fatalf("Stride at zoom %v = %d, want >= 1", zoom, s)
		}
		if s < prev {
			t.Fatalf("Stride decreased from %d to %d as zoom fell to %v", prev, s, zoom)
		}
		prev = s
	}
}

func TestAlignStart(t *testing.T) {
	tests := []struct {
		min, stride, want int
	}{
		{0, 1, 0},
		{7, 1, 7},
		{7, 3, 6},
		{9, 3, 9},
		{10, 4, 8},
		{-1, 4, -4},
		{-4, 4, -4},
	}
	for _, tt := range tests {
		if got := AlignStart(tt.min, tt.stride); got != tt.want {
			t.Errorf("AlignStart(%d, %d) = %d, want %d", tt.min, tt.stride, got, tt.want)
		}
	}
}

// Panning less than a block must not change which cells represent the blocks.
func TestLODAlignmentStableUnderPan(t *testing.T) {
	// The far edges clamp to the grid, so only the near edge moves while panning.
	ts, grid := testWorld(t, 8, 4, 340, 240)
	v := DefaultViewport()
	v.Zoom = 0.1
	v.Offset = vec2.T{-3000, -2000}
	screen := image.Pt(800, 600)

	cells := func(f Frame) map[[2]int]bool {
		m := make(map[[2]int]bool)
		for d := range f.All() {
			if d.X%f.Stride != 0 || d.Y%f.Stride != 0 {
				t.Fatalf("representative (%d, %d) not aligned to stride %d", d.X, d.Y, f.Stride)
			}
			m[[2]int{d.X, d.Y}] = true
		}
		return m
	}

	base := NewFrame(*v, ts, grid, screen, DefaultLODThreshold)
	if base.Stride != 3 {
		t.Fatalf("stride = %d, want 3", base.Stride)
	}
	want := cells(base)

	// World x 3000 sits in cell 93, the first cell of block [93, 96) which
	// spans world x [2976, 3072). Panning up to 71 world pixels stays inside it.
	for _, shift := range []float64{1, 5, 17, 31, 60, 71} {
		moved := *v
		moved.Pan(-shift*moved.Zoom, 0)
		f := NewFrame(moved, ts, grid, screen, DefaultLODThreshold)
		if f.StartX != base.StartX {
			t.Fatalf("pan by %v world px moved StartX from %d to %d", shift, base.StartX, f.StartX)
		}
		got := cells(f)
		if len(got) != len(want) {
			t.Errorf("pan by %v world px: %d representatives, want %d", shift, len(got), len(want))
		}
		for c := range want {
			if !got[c] {
				t.Errorf("pan by %v world px dropped representative %v", shift, c)
				break
			}
		}
		d := f.Instruction(base.StartX, base.StartY)
		if d.Dst.X == base.Instruction(base.StartX, base.StartY).Dst.X {
			t.Errorf("pan by %v world px did not move the block on screen", shift)
		}
	}
}
