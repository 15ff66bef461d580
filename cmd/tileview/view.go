package main

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"

	"github.com/unitoftime/tileview"
	"github.com/unitoftime/tileview/client"
)

type viewCmd struct {
	backend string
	cpuprofile string
	memprofile string
}

func (c *viewCmd) Name() string     { return "view" }
func (c *viewCmd) Synopsis() string { return "open the grid in a window" }
func (c *viewCmd) Usage() string {
	return "tileview view [-backend blit|quads] [-cpuprofile file] [-memprofile file]\n"
}
func (c *viewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.backend, "backend", "", "override the configured backend (blit, quads)")
	f.StringVar(&c.cpuprofile, "cpuprofile", "", "write cpu profile to `file`")
	f.StringVar(&c.memprofile, "memprofile", "", "write memory profile to `file`")
}

func (c *viewCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	world, err := loadWorld(func(config *tileview.Config) {
		if c.backend != "" {
			config.Backend = c.backend
		}
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to create world")
		return subcommands.ExitFailure
	}

	stop := profile(c.cpuprofile)
	err = client.Run(world)
	stop()
	writeHeapProfile(c.memprofile)

	if err != nil {
		log.Error().Err(err).Msg("Window closed with error")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
