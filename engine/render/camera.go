package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/ungerik/go3d/float64/vec2"
	"github.com/zyedidia/generic"
)

const (
	DefaultMinZoom = 0.001
	DefaultMaxZoom = 16.0
	DefaultZoomStep = 1.1
)

var ErrZoomRange = errors.New("render: invalid zoom range")

// Viewport is the camera over the grid. World coordinates are un-zoomed grid
// pixels; Offset is where world (0, 0) lands before the zoom is applied:
//
//	screen = (world + Offset) * Zoom
type Viewport struct {
	Offset vec2.T
	Zoom float64

	MinZoom, MaxZoom float64
	Step float64 // Multiplier applied per scroll notch
}

func NewViewport(minZoom, maxZoom, step float64) (*Viewport, error) {
	if !(minZoom > 0) || minZoom > maxZoom {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrZoomRange, minZoom, maxZoom)
	}
	if !(step > 1) {
		return nil, fmt.Errorf("%w: step %v must exceed 1", ErrZoomRange, step)
	}
	return &Viewport{
		Zoom: clamp(1.0, minZoom, maxZoom),
		MinZoom: minZoom,
		MaxZoom: maxZoom,
		Step: step,
	}, nil
}

func DefaultViewport() *Viewport {
	v, err := NewViewport(DefaultMinZoom, DefaultMaxZoom, DefaultZoomStep)
	if err != nil {
		panic(err)
	}
	return v
}

func clamp(x, lo, hi float64) float64 {
	return generic.Max(lo, generic.Min(hi, x))
}

func (v Viewport) WorldToScreen(w vec2.T) vec2.T {
	sum := vec2.Add(&w, &v.Offset)
	return sum.Scaled(v.Zoom)
}

func (v Viewport) ScreenToWorld(s vec2.T) vec2.T {
	scaled := vec2.T{s[0] / v.Zoom, s[1] / v.Zoom}
	return vec2.Sub(&scaled, &v.Offset)
}

// Center places the middle of a world of the given pixel size in the middle
// of the screen at the current zoom.
func (v *Viewport) Center(worldW, worldH, screenW, screenH float64) {
	v.Offset = vec2.T{
		(worldW - screenW/v.Zoom) / -2,
		(worldH - screenH/v.Zoom) / -2,
	}
}

// Pan moves the view by a pointer delta in screen pixels. The delta is divided
// by the zoom so the world point under the cursor follows it exactly.
func (v *Viewport) Pan(dx, dy float64) {
	delta := vec2.T{dx, dy}
	delta = delta.Scaled(1 / v.Zoom)
	v.Offset.Add(&delta)
}

// ZoomAt applies one scroll notch anchored at cursor. dir > 0 zooms in, dir < 0
// zooms out, 0 does nothing. It reports whether the zoom changed.
func (v *Viewport) ZoomAt(cursor vec2.T, dir float64) bool {
	switch {
	case dir > 0:
		return v.ZoomTo(cursor, v.Zoom*v.Step)
	case dir < 0:
		return v.ZoomTo(cursor, v.Zoom/v.Step)
	}
	return false
}

// ZoomTo sets the zoom, clamped to [MinZoom, MaxZoom], keeping the world point
// under cursor fixed on screen. The offset is always re-derived from the
// clamped zoom, so a clamped step still anchors at the cursor.
// A NaN zoom or cursor leaves the viewport untouched.
func (v *Viewport) ZoomTo(cursor vec2.T, zoom float64) bool {
	if math.IsNaN(zoom) || math.IsNaN(cursor[0]) || math.IsNaN(cursor[1]) {
		return false
	}
	world := v.ScreenToWorld(cursor)

	zoom = clamp(zoom, v.MinZoom, v.MaxZoom)
	changed := zoom != v.Zoom
	v.Zoom = zoom

	v.Offset = vec2.T{
		cursor[0]/zoom - world[0],
		cursor[1]/zoom - world[1],
	}
	return changed
}
