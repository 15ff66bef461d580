package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"github.com/ungerik/go3d/float64/vec2"
)

type probeCmd struct {
	zoom float64
	panX, panY float64
	cursorX, cursorY float64
}

func (c *probeCmd) Name() string     { return "probe" }
func (c *probeCmd) Synopsis() string { return "print the visible range, LOD and hovered tile" }
func (c *probeCmd) Usage() string {
	return "tileview probe [-zoom z] [-panx px -pany px] [-x px -y px]\n"
}
func (c *probeCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.zoom, "zoom", 1, "zoom applied about the screen centre")
	f.Float64Var(&c.panX, "panx", 0, "screen pixels to pan horizontally after zooming")
	f.Float64Var(&c.panY, "pany", 0, "screen pixels to pan vertically after zooming")
	f.Float64Var(&c.cursorX, "x", 0, "cursor x in screen pixels")
	f.Float64Var(&c.cursorY, "y", 0, "cursor y in screen pixels")
}

func (c *probeCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	world, err := loadWorld(nil)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create world")
		return subcommands.ExitFailure
	}

	screen := world.Config.Screen()
	world.View.ZoomTo(vec2.T{float64(screen.X) / 2, float64(screen.Y) / 2}, c.zoom)
	world.View.Pan(c.panX, c.panY)

	f := world.Frame(screen)
	ts := world.Tileset
	fmt.Printf("atlas:    %dx%d tiles of %dx%d, fast lookup %v (shift %d)\n",
		ts.Cols, ts.Rows, ts.TileWidth, ts.TileHeight, ts.FastDivision(), ts.ShiftBits())
	fmt.Printf("viewport: offset (%.2f, %.2f) zoom %.4f\n", f.View.Offset[0], f.View.Offset[1], f.View.Zoom)
	fmt.Printf("range:    x [%d, %d) y [%d, %d), %s cells\n",
		f.Range.MinX, f.Range.MaxX, f.Range.MinY, f.Range.MaxY, humanize.Comma(int64(f.Range.Cells())))
	fmt.Printf("lod:      stride %d from (%d, %d), %s instructions\n",
		f.Stride, f.StartX, f.StartY, humanize.Comma(int64(f.Count())))

	cursor := vec2.T{c.cursorX, c.cursorY}
	if x, y, ok := f.Hover(cursor); ok {
		tile := world.Grid.At(x, y)
		col, row := ts.Lookup(tile)
		r := f.TileRect(x, y)
		fmt.Printf("hover:    cell (%d, %d) tile %d atlas (%d, %d) at (%.1f, %.1f) %.1fx%.1f\n",
			x, y, tile, col, row, r.X, r.Y, r.W, r.H)
	} else {
		fmt.Printf("hover:    none\n")
	}
	return subcommands.ExitSuccess
}
