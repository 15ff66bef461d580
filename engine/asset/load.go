package asset

import (
	"fmt"
	"image"
	_ "image/png"
	"io"
	"io/fs"

	"github.com/rs/zerolog/log"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"gopkg.in/yaml.v3"

	"github.com/unitoftime/tileview/engine/tileset"
)

type Load struct {
	filesystem fs.FS
}

func NewLoad(filesystem fs.FS) *Load {
	return &Load{filesystem}
}

func (load *Load) Open(path string) (fs.File, error) {
	return load.filesystem.Open(path)
}

// Image decodes a png, bmp or webp file.
func (load *Load) Image(path string) (image.Image, error) {
	file, err := load.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	log.Debug().Str("path", path).Str("format", format).Stringer("bounds", img.Bounds()).Msg("Loaded image")
	return img, nil
}

func (load *Load) Yaml(path string, dat interface{}) error {
	file, err := load.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	yamlData, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(yamlData, dat)
}

// Atlas loads an image and slices it into tiles of the given size.
func (load *Load) Atlas(path string, tileWidth, tileHeight int) (image.Image, *tileset.Tileset, error) {
	img, err := load.Image(path)
	if err != nil {
		return nil, nil, err
	}

	ts, err := tileset.FromBounds(tileWidth, tileHeight, img.Bounds())
	if err != nil {
		return nil, nil, fmt.Errorf("atlas %s: %w", path, err)
	}

	log.Debug().
		Str("path", path).
		Int("cols", ts.Cols).
		Int("rows", ts.Rows).
		Bool("fast", ts.FastDivision()).
		Msg("Sliced atlas")
	return img, ts, nil
}
