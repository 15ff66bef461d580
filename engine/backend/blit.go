package backend

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/unitoftime/tileview/engine/render"
	"github.com/unitoftime/tileview/engine/tileset"
)

// Blit draws each tile as its own DrawImage of an atlas sub-image. The hovered
// tile gets a translucent fill.
type Blit struct {
	dst *ebiten.Image
	tiles []*ebiten.Image // Indexed by tileset.Index
	rects rectBatch
}

func NewBlit(atlas *ebiten.Image, ts *tileset.Tileset) *Blit {
	tiles := make([]*ebiten.Image, ts.Count())
	for i := range tiles {
		tiles[i] = atlas.SubImage(ts.SourceRect(tileset.Index(i))).(*ebiten.Image)
	}
	return &Blit{tiles: tiles}
}

func (b *Blit) Begin(dst *ebiten.Image) {
	b.dst = dst
}

func (b *Blit) DrawTile(d render.DrawInstruction) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(d.Dst.W/float64(d.Src.Dx()), d.Dst.H/float64(d.Src.Dy()))
	op.GeoM.Translate(d.Dst.X, d.Dst.Y)
	b.dst.DrawImage(b.tiles[d.Tile], op)
}

func (b *Blit) Highlight(r render.Rect) {
	b.rects.Add(r, HighlightFill)
}

func (b *Blit) End() {
	b.rects.Draw(b.dst)
	b.dst = nil
}
