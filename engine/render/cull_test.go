package render

import (
	"image"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ungerik/go3d/float64/vec2"
)

func TestCullScenario(t *testing.T) {
	v := DefaultViewport()
	v.Offset = vec2.T{-100, -50}

	got := Cull(*v, image.Pt(32, 32), image.Pt(800, 600), image.Pt(1000, 1000))
	want := VisibleRange{MinX: 3, MinY: 1, MaxX: 30, MaxY: 22}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Cull mismatch (-want+got):\n%v", diff)
	}

	// The tile under screen pixel (0, 0) is world (100, 50) -> cell (3, 1).
	if !got.Contains(3, 1) {
		t.Errorf("range %+v misses the tile at the top-left corner", got)
	}
}

func TestCullEmptyWhenOffGrid(t *testing.T) {
	tile := image.Pt(32, 32)
	screen := image.Pt(800, 600)
	grid := image.Pt(100, 100)

	tests := []struct {
		name string
		offset vec2.T
	}{
		{"grid left of screen", vec2.T{-100 * 32 - 5000, 0}},
		{"grid right of screen", vec2.T{5000, 0}},
		{"grid above screen", vec2.T{0, -100 * 32 - 5000}},
		{"grid below screen", vec2.T{0, 5000}},
		{"very far away", vec2.T{1e300, -1e300}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := DefaultViewport()
			v.Offset = tt.offset
			r := Cull(*v, tile, screen, grid)
			if !r.Empty() {
				t.Errorf("Cull = %+v, want empty", r)
			}
			if r.Cells() != 0 {
				t.Errorf("Cells = %d, want 0", r.Cells())
			}
			checkBounded(t, r, grid)
		})
	}
}

func checkBounded(t *testing.T, r VisibleRange, grid image.Point) {
	t.Helper()
	if r.MinX < 0 || r.MinY < 0 || r.MinX > r.MaxX || r.MinY > r.MaxY || r.MaxX > grid.X || r.MaxY > grid.Y {
		t.Fatalf("range %+v escapes grid %v", r, grid)
	}
}

// A tile is visible when its screen rectangle overlaps [0, w) x [0, h).
func onScreen(v Viewport, tile image.Point, screen image.Point, x, y int) bool {
	tl := v.WorldToScreen(vec2.T{float64(x * tile.X), float64(y * tile.Y)})
	br := v.WorldToScreen(vec2.T{float64((x + 1) * tile.X), float64((y + 1) * tile.Y)})
	return br[0] > 0 && tl[0] < float64(screen.X) && br[1] > 0 && tl[1] < float64(screen.Y)
}

func TestCullSoundAndBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	tile := image.Pt(16, 12)
	grid := image.Pt(60, 40)

	for i := 0; i < 300; i++ {
		v := DefaultViewport()
		v.Zoom = 0.05 + rng.Float64()*4
		v.Offset = vec2.T{rng.Float64()*1600 - 1200, rng.Float64()*1200 - 900}
		screen := image.Pt(1+rng.Intn(900), 1+rng.Intn(700))

		r := Cull(*v, tile, screen, grid)
		checkBounded(t, r, grid)

		for y := 0; y < grid.Y; y++ {
			for x := 0; x < grid.X; x++ {
				if onScreen(*v, tile, screen, x, y) && !r.Contains(x, y) {
					t.Fatalf("visible tile (%d, %d) outside %+v (zoom %v offset %v screen %v)",
						x, y, r, v.Zoom, v.Offset, screen)
				}
			}
		}
	}
}

func TestCullTracksResize(t *testing.T) {
	v := DefaultViewport()
	small := Cull(*v, image.Pt(32, 32), image.Pt(320, 320), image.Pt(1000, 1000))
	large := Cull(*v, image.Pt(32, 32), image.Pt(1920, 1080), image.Pt(1000, 1000))
	if large.MaxX <= small.MaxX || large.MaxY <= small.MaxY {
		t.Errorf("larger window did not grow the range: %+v vs %+v", small, large)
	}
}
