package render

import (
	"image"
	"iter"

	"github.com/remeh/sizedwaitgroup"
	"github.com/ungerik/go3d/float64/vec2"

	"github.com/unitoftime/tileview/engine/tilemap"
	"github.com/unitoftime/tileview/engine/tileset"
)

// Rect is a screen-space rectangle in pixels.
type Rect struct {
	X, Y, W, H float64
}

// Vertex is one corner of a textured quad. U and V are normalized atlas
// coordinates.
type Vertex struct {
	X, Y float32
	U, V float32
}

// DrawInstruction is everything a backend needs to draw one tile: the source
// cell in the atlas and the destination rectangle on screen.
type DrawInstruction struct {
	X, Y int // Grid cell
	Tile tileset.Index
	Col, Row int // Atlas cell
	Src image.Rectangle // Atlas pixels
	Dst Rect

	u0, v0, u1, v1 float32
}

// Quad returns the instruction as four vertices: top-left, top-right,
// bottom-right, bottom-left.
func (d DrawInstruction) Quad() [4]Vertex {
	x0, y0 := float32(d.Dst.X), float32(d.Dst.Y)
	x1, y1 := float32(d.Dst.X+d.Dst.W), float32(d.Dst.Y+d.Dst.H)
	return [4]Vertex{
		{x0, y0, d.u0, d.v0},
		{x1, y0, d.u1, d.v0},
		{x1, y1, d.u1, d.v1},
		{x0, y1, d.u0, d.v1},
	}
}

// Backend draws what the frame tells it to. Implementations own textures and
// the render target; they never see the viewport.
type Backend interface {
	DrawTile(d DrawInstruction)
	Highlight(r Rect)
}

// Frame is the per-frame iteration plan. It holds a copy of the viewport, so
// the transform used for culling is the one used for every instruction even if
// the live viewport moves while the frame is being consumed.
type Frame struct {
	View Viewport
	Tileset *tileset.Tileset
	Grid *tilemap.Tilemap
	Screen image.Point

	Range VisibleRange
	Stride int
	StartX, StartY int
}

func NewFrame(view Viewport, ts *tileset.Tileset, grid *tilemap.Tilemap, screen image.Point, lodThreshold float64) Frame {
	tile := image.Pt(ts.TileWidth, ts.TileHeight)
	gridSize := image.Pt(grid.Width(), grid.Height())

	visible := Cull(view, tile, screen, gridSize)
	stride := Stride(ts.TileWidth, view.Zoom, lodThreshold)

	return Frame{
		View: view,
		Tileset: ts,
		Grid: grid,
		Screen: screen,
		Range: visible,
		Stride: stride,
		StartX: AlignStart(visible.MinX, stride),
		StartY: AlignStart(visible.MinY, stride),
	}
}

// Count is the number of instructions the frame produces.
func (f *Frame) Count() int {
	if f.Range.Empty() {
		return 0
	}
	return steps(f.StartX, f.Range.MaxX, f.Stride) * steps(f.StartY, f.Range.MaxY, f.Stride)
}

func steps(start, end, stride int) int {
	if end <= start {
		return 0
	}
	return (end - start + stride - 1) / stride
}

// TileRect is the screen rectangle of a single grid cell, ignoring the stride.
func (f *Frame) TileRect(x, y int) Rect {
	return f.blockRect(x, y, 1)
}

func (f *Frame) blockRect(x, y, stride int) Rect {
	tw := float64(f.Tileset.TileWidth)
	th := float64(f.Tileset.TileHeight)
	z := f.View.Zoom
	return Rect{
		X: (float64(x)*tw + f.View.Offset[0]) * z,
		Y: (float64(y)*th + f.View.Offset[1]) * z,
		W: tw * z * float64(stride),
		H: th * z * float64(stride),
	}
}

// Instruction builds the draw instruction for the block whose representative
// cell is (x, y).
func (f *Frame) Instruction(x, y int) DrawInstruction {
	index := f.Grid.At(x, y)
	col, row := f.Tileset.Lookup(index)
	u0, v0, u1, v1 := f.Tileset.UV(col, row)

	sx := col * f.Tileset.TileWidth
	sy := row * f.Tileset.TileHeight
	return DrawInstruction{
		X: x,
		Y: y,
		Tile: index,
		Col: col,
		Row: row,
		Src: image.Rect(sx, sy, sx+f.Tileset.TileWidth, sy+f.Tileset.TileHeight),
		Dst: f.blockRect(x, y, f.Stride),
		u0: u0, v0: v0, u1: u1, v1: v1,
	}
}

// All yields the frame's instructions row by row. At stride n only cells whose
// coordinates are multiples of n are visited.
func (f *Frame) All() iter.Seq[DrawInstruction] {
	return func(yield func(DrawInstruction) bool) {
		f.rows(f.StartY, f.Range.MaxY, yield)
	}
}

func (f *Frame) rows(fromY, toY int, yield func(DrawInstruction) bool) bool {
	if f.Range.Empty() {
		return true
	}
	for y := fromY; y < toY; y += f.Stride {
		for x := f.StartX; x < f.Range.MaxX; x += f.Stride {
			if !yield(f.Instruction(x, y)) {
				return false
			}
		}
	}
	return true
}

// Draw sends every instruction to the backend and returns how many were sent.
func (f *Frame) Draw(b Backend) int {
	n := 0
	for d := range f.All() {
		b.DrawTile(d)
		n++
	}
	return n
}

// Hover resolves the cell under cursor using the frame's viewport.
func (f *Frame) Hover(cursor vec2.T) (x, y int, ok bool) {
	return HoverTile(f.View,
		image.Pt(f.Tileset.TileWidth, f.Tileset.TileHeight),
		cursor,
		image.Pt(f.Grid.Width(), f.Grid.Height()))
}

// DrawHover highlights the cell under cursor, if any.
func (f *Frame) DrawHover(b Backend, cursor vec2.T) bool {
	x, y, ok := f.Hover(cursor)
	if !ok {
		return false
	}
	b.Highlight(f.TileRect(x, y))
	return true
}

// Collect prepares all instructions using up to workers goroutines, each
// building a contiguous band of rows. The result is in the same order as All.
func (f *Frame) Collect(workers int) []DrawInstruction {
	rowCount := 0
	if !f.Range.Empty() {
		rowCount = steps(f.StartY, f.Range.MaxY, f.Stride)
	}
	if workers < 1 {
		workers = 1
	}
	if workers > rowCount {
		workers = rowCount
	}
	if workers <= 1 {
		out := make([]DrawInstruction, 0, f.Count())
		for d := range f.All() {
			out = append(out, d)
		}
		return out
	}

	perBand := (rowCount + workers - 1) / workers
	bands := make([][]DrawInstruction, workers)

	wg := sizedwaitgroup.New(workers)
	for i := range bands {
		fromY := f.StartY + i*perBand*f.Stride
		toY := fromY + perBand*f.Stride
		if toY > f.Range.MaxY {
			toY = f.Range.MaxY
		}

		wg.Add()
		go func(i, fromY, toY int) {
			defer wg.Done()
			band := make([]DrawInstruction, 0, steps(fromY, toY, f.Stride)*steps(f.StartX, f.Range.MaxX, f.Stride))
			f.rows(fromY, toY, func(d DrawInstruction) bool {
				band = append(band, d)
				return true
			})
			bands[i] = band
		}(i, fromY, toY)
	}
	wg.Wait()

	out := make([]DrawInstruction, 0, f.Count())
	for _, band := range bands {
		out = append(out, band...)
	}
	return out
}
