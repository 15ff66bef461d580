// Package frame runs ordered systems once per frame until told to stop.
package frame

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type System struct {
	Name string
	Func func(dt time.Duration)
}

func (s *System) Run(dt time.Duration) {
	s.Func(dt)
}

type Signal struct {
	mu sync.Mutex
	value bool
}

func (s *Signal) Set(val bool) {
	s.mu.Lock()
	s.value = val
	s.mu.Unlock()
}

func (s *Signal) Get() bool {
	s.mu.Lock()
	ret := s.value
	s.mu.Unlock()
	return ret
}

// Cap converts a frames per second cap into a limit. Zero means uncapped.
func Cap(fps int) rate.Limit {
	if fps <= 0 {
		return rate.Inf
	}
	return rate.Limit(fps)
}

// Run calls every system in order once per frame, passing the duration of the
// previous frame. It returns nil once quit is set, or the context error if ctx
// ends first. limit caps how many frames start per second.
func Run(ctx context.Context, systems []System, limit rate.Limit, quit *Signal) error {
	limiter := rate.NewLimiter(limit, 1)

	frameStart := time.Now()
	var dt time.Duration

	for !quit.Get() {
		if err := limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}

		for i := range systems {
			systems[i].Run(dt)
		}

		// Capture Frame time
		dt = time.Since(frameStart)
		frameStart = time.Now()
	}
	return nil
}
