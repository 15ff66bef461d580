package backend

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/unitoftime/tileview/engine/render"
	"github.com/unitoftime/tileview/engine/tileset"
)

// maxTilesPerDraw is the maximum number of tiles per DrawTriangles call.
// Limited by uint16 index buffer: 65535 / 4 vertices per tile = 16383.
const maxTilesPerDraw = 16383

const DefaultOutlineWidth = 8.0

// Quads emits every tile as a textured quad into one vertex buffer and flushes
// it with DrawTriangles. The hovered tile gets a solid outline.
type Quads struct {
	OutlineWidth float64

	dst *ebiten.Image
	atlas *ebiten.Image
	scaleU, scaleV float32 // Normalized UV to atlas pixels

	vs []ebiten.Vertex
	is []uint16
	rects rectBatch
}

func NewQuads(atlas *ebiten.Image, ts *tileset.Tileset) *Quads {
	bounds := ts.Bounds()
	return &Quads{
		OutlineWidth: DefaultOutlineWidth,
		atlas: atlas,
		scaleU: float32(bounds.Dx()),
		scaleV: float32(bounds.Dy()),
	}
}

func (q *Quads) Begin(dst *ebiten.Image) {
	q.dst = dst
}

func (q *Quads) DrawTile(d render.DrawInstruction) {
	if len(q.vs) >= maxTilesPerDraw*4 {
		q.flush()
	}
	q.vs, q.is = appendQuad(q.vs, q.is, d.Quad(), q.scaleU, q.scaleV)
}

// appendQuad converts a quad to ebiten vertices with source coordinates in
// atlas pixels.
func appendQuad(vs []ebiten.Vertex, is []uint16, quad [4]render.Vertex, scaleU, scaleV float32) ([]ebiten.Vertex, []uint16) {
	start := uint16(len(vs))
	for _, v := range quad {
		vs = append(vs, ebiten.Vertex{
			DstX: v.X, DstY: v.Y,
			SrcX: v.U * scaleU, SrcY: v.V * scaleV,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		})
	}
	is = append(is, start, start+1, start+2, start, start+2, start+3)
	return vs, is
}

func (q *Quads) flush() {
	if len(q.is) == 0 {
		return
	}
	q.dst.DrawTriangles(q.vs, q.is, q.atlas, &ebiten.DrawTrianglesOptions{
		Filter: ebiten.FilterNearest,
	})
	q.vs = q.vs[:0]
	q.is = q.is[:0]
}

func (q *Quads) Highlight(r render.Rect) {
	for _, bar := range render.Outline(r, q.OutlineWidth) {
		q.rects.Add(bar, OutlineColor)
	}
}

// End flushes the tiles, then the outline on top of them.
func (q *Quads) End() {
	q.flush()
	q.rects.Draw(q.dst)
	q.dst = nil
}
