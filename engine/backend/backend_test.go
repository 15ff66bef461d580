package backend

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/unitoftime/tileview/engine/render"
)

func TestAppendQuad(t *testing.T) {
	quad := [4]render.Vertex{
		{X: 10, Y: 20, U: 0.25, V: 0.5},
		{X: 42, Y: 20, U: 0.5, V: 0.5},
		{X: 42, Y: 52, U: 0.5, V: 1},
		{X: 10, Y: 52, U: 0.25, V: 1},
	}

	vs, is := appendQuad(nil, nil, quad, 128, 64)
	vs, is = appendQuad(vs, is, quad, 128, 64)

	if len(vs) != 8 {
		t.Fatalf("vertices = %d, want 8", len(vs))
	}
	wantIdx := []uint16{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7}
	if diff := cmp.Diff(wantIdx, is); diff != "" {
		t.Errorf("indices (-want +got):\n%s", diff)
	}

	want := ebiten.Vertex{DstX: 42, DstY: 52, SrcX: 64, SrcY: 64, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1}
	if vs[2] != want {
		t.Errorf("vs[2] = %+v, want %+v", vs[2], want)
	}
}

func TestRectBatchAdd(t *testing.T) {
	var b rectBatch
	b.Add(render.Rect{X: 1, Y: 2, W: 3, H: 4}, color.RGBA{255, 0, 0, 255})
	for _, bar := range render.Outline(render.Rect{X: 0, Y: 0, W: 32, H: 32}, DefaultOutlineWidth) {
		b.Add(bar, OutlineColor)
	}

	if len(b.vs) != 20 || len(b.is) != 30 {
		t.Fatalf("batch = %d vertices %d indices, want 20 30", len(b.vs), len(b.is))
	}
	if b.vs[2].DstX != 4 || b.vs[2].DstY != 6 {
		t.Errorf("bottom right = (%v, %v), want (4, 6)", b.vs[2].DstX, b.vs[2].DstY)
	}
	if b.vs[0].ColorR != 1 || b.vs[0].ColorG != 0 {
		t.Errorf("color = %v %v, want red", b.vs[0].ColorR, b.vs[0].ColorG)
	}
	if b.is[29] != 19 {
		t.Errorf("last index = %d, want 19", b.is[29])
	}
}

func TestRecorder(t *testing.T) {
	r := &Recorder{Keep: true}
	d := render.DrawInstruction{X: 3, Y: 4, Src: image.Rect(0, 0, 32, 32)}
	r.DrawTile(d)
	r.DrawTile(d)
	r.Highlight(render.Rect{W: 32, H: 32})

	if r.Tiles() != 2 || len(r.Instructions) != 2 || len(r.Highlights) != 1 {
		t.Fatalf("recorder = %d tiles %d kept %d highlights", r.Tiles(), len(r.Instructions), len(r.Highlights))
	}

	r.Reset()
	if r.Tiles() != 0 || len(r.Instructions) != 0 || len(r.Highlights) != 0 {
		t.Errorf("reset left state behind")
	}

	counting := &Recorder{}
	counting.DrawTile(d)
	if counting.Tiles() != 1 || len(counting.Instructions) != 0 {
		t.Errorf("counting recorder kept instructions")
	}
}
