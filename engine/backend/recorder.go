package backend

import "github.com/unitoftime/tileview/engine/render"

// Recorder keeps what it is asked to draw. It needs no graphics context.
type Recorder struct {
	Keep bool // Retain instructions, not just counts

	Instructions []render.DrawInstruction
	Highlights []render.Rect
	tiles int
}

func (r *Recorder) DrawTile(d render.DrawInstruction) {
	r.tiles++
	if r.Keep {
		r.Instructions = append(r.Instructions, d)
	}
}

func (r *Recorder) Highlight(rect render.Rect) {
	r.Highlights = append(r.Highlights, rect)
}

func (r *Recorder) Tiles() int {
	return r.tiles
}

func (r *Recorder) Reset() {
	r.tiles = 0
	r.Instructions = r.Instructions[:0]
	r.Highlights = r.Highlights[:0]
}
