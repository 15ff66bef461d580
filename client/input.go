package client

import (
	"image"

	"github.com/ungerik/go3d/float64/vec2"

	"github.com/unitoftime/tileview/engine/render"
)

// Event is a pointer or window event in screen pixels.
type Event interface {
	event()
}

type PointerDown struct{ X, Y float64 }
type PointerUp struct{}
type PointerMove struct{ X, Y float64 }

// Scroll is one wheel movement at the cursor. Dir > 0 zooms in.
type Scroll struct{ X, Y, Dir float64 }

type Resize struct{ Width, Height int }

func (PointerDown) event() {}
func (PointerUp) event() {}
func (PointerMove) event() {}
func (Scroll) event() {}
func (Resize) event() {}

// Controller turns events into viewport changes: dragging with the pointer
// held pans, scrolling zooms about the cursor.
type Controller struct {
	View *render.Viewport
	Screen image.Point
	Cursor vec2.T

	dragging bool
}

func NewController(view *render.Viewport, screen image.Point) *Controller {
	return &Controller{
		View: view,
		Screen: screen,
	}
}

// Handle applies e and reports whether the viewport or screen changed.
func (c *Controller) Handle(e Event) bool {
	switch e := e.(type) {
	case PointerDown:
		c.Cursor = vec2.T{e.X, e.Y}
		c.dragging = true
	case PointerUp:
		c.dragging = false
	case PointerMove:
		last := c.Cursor
		c.Cursor = vec2.T{e.X, e.Y}
		if c.dragging && c.Cursor != last {
			c.View.Pan(c.Cursor[0]-last[0], c.Cursor[1]-last[1])
			return true
		}
	case Scroll:
		c.Cursor = vec2.T{e.X, e.Y}
		return c.View.ZoomAt(c.Cursor, e.Dir)
	case Resize:
		size := image.Pt(e.Width, e.Height)
		if size != c.Screen && e.Width > 0 && e.Height > 0 {
			c.Screen = size
			return true
		}
	}
	return false
}

func (c *Controller) Dragging() bool {
	return c.dragging
}
