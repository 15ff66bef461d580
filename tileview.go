package tileview

import (
	"errors"
	"fmt"
	"image"
	"math/rand"

	"github.com/rs/zerolog/log"

	"github.com/unitoftime/tileview/engine/asset"
	"github.com/unitoftime/tileview/engine/pgen"
	"github.com/unitoftime/tileview/engine/render"
	"github.com/unitoftime/tileview/engine/tilemap"
	"github.com/unitoftime/tileview/engine/tileset"
)

var ErrConfig = errors.New("tileview: invalid config")

const (
	FillRandom = "random"
	FillIsland = "island"

	BackendBlit = "blit"
	BackendQuads = "quads"
)

// Placeholder atlas layout used when no atlas file is configured
const (
	placeholderCols = 8
	placeholderRows = 4
)

type Config struct {
	Atlas string `yaml:"atlas"` // Empty uses a generated placeholder atlas
	TileWidth int `yaml:"tile_width"`
	TileHeight int `yaml:"tile_height"`

	GridWidth int `yaml:"grid_width"`
	GridHeight int `yaml:"grid_height"`
	Fill string `yaml:"fill"`
	Seed int64 `yaml:"seed"`

	ScreenWidth int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`

	LODThreshold float64 `yaml:"lod_threshold"`
	MinZoom float64 `yaml:"min_zoom"`
	MaxZoom float64 `yaml:"max_zoom"`
	ZoomStep float64 `yaml:"zoom_step"`

	Backend string `yaml:"backend"`
	OutlineWidth float64 `yaml:"outline_width"`
	FrameCap int `yaml:"frame_cap"` // Frames per second, 0 is uncapped
	Workers int `yaml:"workers"`
}

func DefaultConfig() Config {
	return Config{
		TileWidth: 32,
		TileHeight: 32,
		GridWidth: 1000,
		GridHeight: 1000,
		Fill: FillRandom,
		Seed: 12345,
		ScreenWidth: 800,
		ScreenHeight: 600,
		LODThreshold: render.DefaultLODThreshold,
		MinZoom: render.DefaultMinZoom,
		MaxZoom: render.DefaultMaxZoom,
		ZoomStep: render.DefaultZoomStep,
		Backend: BackendQuads,
		OutlineWidth: 8,
		FrameCap: 60,
		Workers: 4,
	}
}

// LoadConfig reads path over the defaults, so the file only needs the keys it
// changes.
func LoadConfig(load *asset.Load, path string) (Config, error) {
	config := DefaultConfig()
	if err := load.Yaml(path, &config); err != nil {
		return config, err
	}
	return config, config.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.TileWidth <= 0 || c.TileHeight <= 0:
		return fmt.Errorf("%w: tile size %dx%d", ErrConfig, c.TileWidth, c.TileHeight)
	case c.GridWidth <= 0 || c.GridHeight <= 0:
		return fmt.Errorf("%w: grid size %dx%d", ErrConfig, c.GridWidth, c.GridHeight)
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrConfig, c.ScreenWidth, c.ScreenHeight)
	case !(c.LODThreshold > 0):
		return fmt.Errorf("%w: lod_threshold %v", ErrConfig, c.LODThreshold)
	case c.Fill != FillRandom && c.Fill != FillIsland:
		return fmt.Errorf("%w: unknown fill %q", ErrConfig, c.Fill)
	case c.Backend != BackendBlit && c.Backend != BackendQuads:
		return fmt.Errorf("%w: unknown backend %q", ErrConfig, c.Backend)
	case c.OutlineWidth < 0 || c.FrameCap < 0 || c.Workers < 0:
		return fmt.Errorf("%w: negative outline_width, frame_cap or workers", ErrConfig)
	}

	if _, err := render.NewViewport(c.MinZoom, c.MaxZoom, c.ZoomStep); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return nil
}

func (c Config) Screen() image.Point {
	return image.Pt(c.ScreenWidth, c.ScreenHeight)
}

// World is everything a frame is built from: the atlas, the grid and the live
// viewport.
type World struct {
	Config Config
	Atlas image.Image
	Tileset *tileset.Tileset
	Grid *tilemap.Tilemap
	View *render.Viewport
}

func NewWorld(load *asset.Load, config Config) (*World, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var atlas image.Image
	var ts *tileset.Tileset
	var err error
	if config.Atlas == "" {
		atlas, ts, err = asset.Placeholder(config.TileWidth, config.TileHeight, placeholderCols, placeholderRows)
	} else {
		atlas, ts, err = load.Atlas(config.Atlas, config.TileWidth, config.TileHeight)
	}
	if err != nil {
		return nil, err
	}

	grid, err := CreateTilemap(config, ts.Count())
	if err != nil {
		return nil, err
	}

	view, err := render.NewViewport(config.MinZoom, config.MaxZoom, config.ZoomStep)
	if err != nil {
		return nil, err
	}
	view.Center(
		float64(config.GridWidth*config.TileWidth), float64(config.GridHeight*config.TileHeight),
		float64(config.ScreenWidth), float64(config.ScreenHeight))

	log.Info().
		Int("cols", ts.Cols).
		Int("rows", ts.Rows).
		Bool("fast", ts.FastDivision()).
		Int("grid_width", grid.Width()).
		Int("grid_height", grid.Height()).
		Str("fill", config.Fill).
		Msg("World created")

	return &World{
		Config: config,
		Atlas: atlas,
		Tileset: ts,
		Grid: grid,
		View: view,
	}, nil
}

func CreateTilemap(config Config, count int) (*tilemap.Tilemap, error) {
	grid, err := tilemap.New(config.GridWidth, config.GridHeight)
	if err != nil {
		return nil, err
	}

	switch config.Fill {
	case FillIsland:
		grid.Fill(pgen.Island(config.Seed, config.GridWidth, config.GridHeight, count))
	default:
		grid.FillRandom(rand.New(rand.NewSource(config.Seed)), count)
	}
	return grid, nil
}

// Frame snapshots the viewport for a screen of the given size.
func (w *World) Frame(screen image.Point) render.Frame {
	return render.NewFrame(*w.View, w.Tileset, w.Grid, screen, w.Config.LODThreshold)
}
