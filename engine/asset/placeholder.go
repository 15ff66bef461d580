package asset

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/unitoftime/tileview/engine/tileset"
)

var palette = []color.RGBA{
	colornames.Seagreen,
	colornames.Forestgreen,
	colornames.Olivedrab,
	colornames.Sandybrown,
	colornames.Peru,
	colornames.Sienna,
	colornames.Slategray,
	colornames.Steelblue,
	colornames.Royalblue,
	colornames.Navy,
	colornames.Khaki,
	colornames.Lightgray,
}

// Placeholder builds an atlas of cols x rows solid tiles, each labeled with its
// index. It stands in when no atlas file is configured.
func Placeholder(tileWidth, tileHeight, cols, rows int) (*image.RGBA, *tileset.Tileset, error) {
	ts, err := tileset.New(tileWidth, tileHeight, tileWidth*cols, tileHeight*rows)
	if err != nil {
		return nil, nil, err
	}

	img := image.NewRGBA(ts.Bounds())
	drawer := font.Drawer{
		Dst: img,
		Src: image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
	}

	for i := 0; i < ts.Count(); i++ {
		rect := ts.SourceRect(tileset.Index(i))
		fill := palette[i%len(palette)]
		draw.Draw(img, rect, image.NewUniform(fill), image.Point{}, draw.Src)

		// Darker 1px border so neighbouring tiles stay distinguishable
		edge := color.RGBA{fill.R / 2, fill.G / 2, fill.B / 2, 255}
		draw.Draw(img, image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+1), image.NewUniform(edge), image.Point{}, draw.Src)
		draw.Draw(img, image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+1, rect.Max.Y), image.NewUniform(edge), image.Point{}, draw.Src)

		if tileHeight >= 13 {
			drawer.Dot = fixed.P(rect.Min.X+2, rect.Min.Y+12)
			drawer.DrawString(strconv.Itoa(i))
		}
	}
	return img, ts, nil
}
