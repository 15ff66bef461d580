package tilemap

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/unitoftime/tileview/engine/tileset"
)

func TestNewRejectsEmptyGrid(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-1, 5}} {
		_, err := New(dims[0], dims[1])
		if !errors.Is(err, ErrGridSize) {
			t.Errorf("New(%d, %d) error = %v, want ErrGridSize", dims[0], dims[1], err)
		}
	}
}

func TestGetSetBounds(t *testing.T) {
	tmap, err := New(4, 3)
	if err != nil {
		t.Fatal(err)
	}

	if !tmap.Set(3, 2, 7) {
		t.Fatal("Set(3, 2) rejected an in-bounds cell")
	}
	if got, ok := tmap.Get(3, 2); !ok || got != 7 {
		t.Errorf("Get(3, 2) = %d, %v; want 7, true", got, ok)
	}
	if got := tmap.At(3, 2); got != 7 {
		t.Errorf("At(3, 2) = %d, want 7", got)
	}

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, 3}, {0, -1}} {
		if _, ok := tmap.Get(p[0], p[1]); ok {
			t.Errorf("Get(%d, %d) reported in bounds", p[0], p[1])
		}
		if tmap.Set(p[0], p[1], 1) {
			t.Errorf("Set(%d, %d) reported in bounds", p[0], p[1])
		}
	}
}

func TestFillIsRowMajor(t *testing.T) {
	tmap, err := New(5, 4)
	if err != nil {
		t.Fatal(err)
	}
	tmap.Fill(func(x, y int) tileset.Index {
		return tileset.Index(y*10 + x)
	})
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			if got := tmap.At(x, y); got != tileset.Index(y*10+x) {
				t.Fatalf("At(%d, %d) = %d, want %d", x, y, got, y*10+x)
			}
		}
	}
}

func TestFillRandomStaysInAtlas(t *testing.T) {
	tmap, err := New(100, 100)
	if err != nil {
		t.Fatal(err)
	}
	tmap.FillRandom(rand.New(rand.NewSource(1)), 32)

	seen := make(map[tileset.Index]bool)
	for y := 0; y < tmap.Height(); y++ {
		for x := 0; x < tmap.Width(); x++ {
			i := tmap.At(x, y)
			if i >= 32 {
				t.Fatalf("At(%d, %d) = %d, outside [0, 32)", x, y, i)
			}
			seen[i] = true
		}
	}
	if len(seen) != 32 {
		t.Errorf("random fill used %d distinct tiles, want 32", len(seen))
	}
}
