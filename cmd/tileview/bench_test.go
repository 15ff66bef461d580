package main

import (
	"testing"
	"testing/fstest"

	"github.com/ungerik/go3d/float64/vec2"

	"github.com/unitoftime/tileview"
	"github.com/unitoftime/tileview/engine/asset"
	"github.com/unitoftime/tileview/engine/backend"
)

func TestDrawFrameKeepsOneFrame(t *testing.T) {
	for _, workers := range []int{1, 4} {
		config := tileview.DefaultConfig()
		config.GridWidth = 80
		config.GridHeight = 60
		config.Workers = workers

		world, err := tileview.NewWorld(asset.NewLoad(fstest.MapFS{}), config)
		if err != nil {
			t.Fatal(err)
		}
		screen := config.Screen()
		center := vec2.T{float64(screen.X) / 2, float64(screen.Y) / 2}
		f := world.Frame(screen)

		recorder := &backend.Recorder{}
		for i := 0; i < 5; i++ {
			if got := drawFrame(world, screen, center, recorder); got != f.Count() {
				t.Fatalf("workers=%d frame %d: %d tiles, want %d", workers, i, got, f.Count())
			}
		}
		if len(recorder.Highlights) != 1 {
			t.Errorf("workers=%d: %d highlights after 5 frames, want 1", workers, len(recorder.Highlights))
		}
	}
}
