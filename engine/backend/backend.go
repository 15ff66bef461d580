// Package backend turns render.DrawInstructions into pixels. Blit copies one
// atlas sub-image per tile, Quads batches textured triangles, and Recorder keeps
// the instructions for headless runs.
package backend

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/unitoftime/tileview/engine/render"
)

// Target is a backend that draws into an ebiten image, one frame at a time.
type Target interface {
	render.Backend
	Begin(dst *ebiten.Image)
	End()
}

var (
	HighlightFill = color.RGBA{255, 255, 0, 100}
	OutlineColor = color.RGBA{255, 0, 0, 255}
)

// whiteImage is a 1x1 white pixel used as the texture for solid rectangles.
var whiteImage *ebiten.Image

func white() *ebiten.Image {
	if whiteImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteImage
}

// rectBatch batches solid rectangle draws into a single DrawTriangles call.
type rectBatch struct {
	vs []ebiten.Vertex
	is []uint16
}

func (b *rectBatch) Add(r render.Rect, clr color.RGBA) {
	start := uint16(len(b.vs))
	cr, cg, cb, ca := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	x0, y0 := float32(r.X), float32(r.Y)
	x1, y1 := float32(r.X+r.W), float32(r.Y+r.H)
	b.vs = append(b.vs,
		ebiten.Vertex{DstX: x0, DstY: y0, SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		ebiten.Vertex{DstX: x1, DstY: y0, SrcX: 2, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		ebiten.Vertex{DstX: x1, DstY: y1, SrcX: 2, SrcY: 2, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		ebiten.Vertex{DstX: x0, DstY: y1, SrcX: 1, SrcY: 2, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
	)
	b.is = append(b.is, start, start+1, start+2, start, start+2, start+3)
}

// Draw flushes the accumulated rectangles onto dst and resets the batch.
func (b *rectBatch) Draw(dst *ebiten.Image) {
	if len(b.is) == 0 {
		return
	}
	dst.DrawTriangles(b.vs, b.is, white(), nil)
	b.vs = b.vs[:0]
	b.is = b.is[:0]
}
