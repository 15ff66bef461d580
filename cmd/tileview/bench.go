package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"github.com/ungerik/go3d/float64/vec2"

	"github.com/unitoftime/tileview"
	"github.com/unitoftime/tileview/engine/backend"
	"github.com/unitoftime/tileview/engine/frame"
)

type benchCmd struct {
	frames int
	workers int
	zoom float64
	pan float64
	uncapped bool
	cpuprofile string
	memprofile string
}

func (c *benchCmd) Name() string     { return "bench" }
func (c *benchCmd) Synopsis() string { return "build frames headless and report throughput" }
func (c *benchCmd) Usage() string {
	return "tileview bench [-frames n] [-workers n] [-zoom z] [-pan px] [-uncapped]\n"
}
func (c *benchCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.frames, "frames", 600, "number of frames to build")
	f.IntVar(&c.workers, "workers", -1, "parallel workers per frame, -1 uses the config")
	f.Float64Var(&c.zoom, "zoom", 1, "starting zoom")
	f.Float64Var(&c.pan, "pan", 7, "screen pixels panned per frame")
	f.BoolVar(&c.uncapped, "uncapped", false, "ignore the configured frame cap")
	f.StringVar(&c.cpuprofile, "cpuprofile", "", "write cpu profile to `file`")
	f.StringVar(&c.memprofile, "memprofile", "", "write memory profile to `file`")
}

func (c *benchCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	world, err := loadWorld(func(config *tileview.Config) {
		if c.workers >= 0 {
			config.Workers = c.workers
		}
		if c.uncapped {
			config.FrameCap = 0
		}
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to create world")
		return subcommands.ExitFailure
	}
	config := world.Config
	screen := config.Screen()
	center := vec2.T{float64(screen.X) / 2, float64(screen.Y) / 2}
	world.View.ZoomTo(center, c.zoom)

	recorder := &backend.Recorder{}
	quit := frame.Signal{}
	built, tiles := 0, 0

	systems := []frame.System{
		{Name: "Pan", Func: func(dt time.Duration) {
			world.View.Pan(-c.pan, -c.pan/2)
		}},
		{Name: "Draw", Func: func(dt time.Duration) {
			tiles += drawFrame(world, screen, center, recorder)
		}},
		{Name: "Count", Func: func(dt time.Duration) {
			built++
			if built >= c.frames {
				quit.Set(true)
			}
		}},
	}

	stop := profile(c.cpuprofile)
	start := time.Now()
	err = frame.Run(ctx, systems, frame.Cap(config.FrameCap), &quit)
	elapsed := time.Since(start)
	stop()
	writeHeapProfile(c.memprofile)
	if err != nil {
		log.Error().Err(err).Msg("Bench interrupted")
		return subcommands.ExitFailure
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	perFrame := elapsed / time.Duration(max(built, 1))
	fmt.Printf("frames:      %s\n", humanize.Comma(int64(built)))
	fmt.Printf("tiles:       %s (%s per frame)\n", humanize.Comma(int64(tiles)), humanize.Comma(int64(tiles/max(built, 1))))
	fmt.Printf("elapsed:     %v (%v per frame, %.1f fps)\n", elapsed.Round(time.Millisecond), perFrame, float64(built)/elapsed.Seconds())
	fmt.Printf("final zoom:  %.4f\n", world.View.Zoom)
	fmt.Printf("allocated:   %s\n", humanize.Bytes(mem.TotalAlloc))
	return subcommands.ExitSuccess
}

// drawFrame builds one frame into recorder, which holds only that frame's
// output afterwards. It returns the number of tile instructions.
func drawFrame(world *tileview.World, screen image.Point, cursor vec2.T, recorder *backend.Recorder) int {
	f := world.Frame(screen)
	recorder.Reset()

	tiles := 0
	if workers := world.Config.Workers; workers > 1 {
		tiles = len(f.Collect(workers))
	} else {
		f.Draw(recorder)
		tiles = recorder.Tiles()
	}
	f.DrawHover(recorder, cursor)
	return tiles
}
