package client

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"

	"github.com/unitoftime/tileview"
	"github.com/unitoftime/tileview/engine/backend"
	"github.com/unitoftime/tileview/engine/frame"
)

// Game adapts a World to ebiten's update and draw loop.
type Game struct {
	world *tileview.World
	control *Controller
	target backend.Target
	counter *frame.Counter
}

func NewGame(world *tileview.World) (*Game, error) {
	target, err := NewTarget(world)
	if err != nil {
		return nil, err
	}
	return &Game{
		world: world,
		control: NewController(world.View, world.Config.Screen()),
		target: target,
		counter: frame.NewCounter(time.Second),
	}, nil
}

// NewTarget uploads the atlas and builds the configured backend.
func NewTarget(world *tileview.World) (backend.Target, error) {
	atlas := ebiten.NewImageFromImage(world.Atlas)

	switch world.Config.Backend {
	case tileview.BackendBlit:
		return backend.NewBlit(atlas, world.Tileset), nil
	case tileview.BackendQuads:
		quads := backend.NewQuads(atlas, world.Tileset)
		quads.OutlineWidth = world.Config.OutlineWidth
		return quads, nil
	}
	return nil, fmt.Errorf("%w: unknown backend %q", tileview.ErrConfig, world.Config.Backend)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	cx, cy := float64(x), float64(y)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.control.Handle(PointerDown{cx, cy})
	}
	g.control.Handle(PointerMove{cx, cy})
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.control.Handle(PointerUp{})
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.control.Handle(Scroll{cx, cy, wy})
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	f := g.world.Frame(g.control.Screen)

	g.target.Begin(screen)
	tiles := f.Draw(g.target)
	f.DrawHover(g.target, g.control.Cursor)
	g.target.End()

	if g.counter.Tick(time.Now()) {
		ebiten.SetWindowTitle(Title(FrameStats(g.counter.FPS(), &f, tiles)))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.control.Handle(Resize{outsideWidth, outsideHeight}) {
		log.Debug().Int("width", outsideWidth).Int("height", outsideHeight).Msg("Resized")
	}
	return outsideWidth, outsideHeight
}

// Run opens a resizable window and blocks until it closes.
func Run(world *tileview.World) error {
	game, err := NewGame(world)
	if err != nil {
		return err
	}

	config := world.Config
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("tileview")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if config.FrameCap > 0 {
		ebiten.SetTPS(config.FrameCap)
	}

	log.Info().Str("backend", config.Backend).Msg("Starting window")
	return ebiten.RunGame(game)
}
