package client

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/unitoftime/tileview/engine/render"
)

type Stats struct {
	FPS float64
	Zoom float64
	Stride int
	Tiles int // Instructions drawn in the last frame
}

func FrameStats(fps float64, f *render.Frame, tiles int) Stats {
	return Stats{
		FPS: fps,
		Zoom: f.View.Zoom,
		Stride: f.Stride,
		Tiles: tiles,
	}
}

// Title formats stats for the window title bar.
func Title(s Stats) string {
	return fmt.Sprintf("FPS: %.0f | Zoom: %.3f | LOD: %d | Tiles: %s",
		s.FPS, s.Zoom, s.Stride, humanize.Comma(int64(s.Tiles)))
}
