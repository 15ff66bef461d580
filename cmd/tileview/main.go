package main

import (
	"context"
	"embed"
	"flag"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/unitoftime/tileview"
	"github.com/unitoftime/tileview/engine/asset"
)

//go:embed config.yaml
var embedded embed.FS

var configPath = flag.String("config", "", "load config from `file` instead of the embedded config.yaml")
var logFile = flag.String("log", "", "also write logs to `file`, rotated")
var debug = flag.Bool("debug", false, "enable debug logging")

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&viewCmd{}, "")
	subcommands.Register(&benchCmd{}, "")
	subcommands.Register(&probeCmd{}, "")

	flag.Parse()
	setupLogging()
	os.Exit(int(subcommands.Execute(context.Background())))
}

func setupLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	if *logFile != "" {
		out = zerolog.MultiLevelWriter(out, &lumberjack.Logger{
			Filename: *logFile,
			MaxSize: 10, // megabytes
			MaxBackups: 3,
		})
	}
	log.Logger = log.Output(out)
}

// loadWorld reads the config and builds the world. An atlas path in a config
// file is resolved relative to that file.
func loadWorld(mod func(c *tileview.Config)) (*tileview.World, error) {
	var filesystem fs.FS = embedded
	name := "config.yaml"
	if *configPath != "" {
		filesystem = os.DirFS(filepath.Dir(*configPath))
		name = filepath.Base(*configPath)
	}

	load := asset.NewLoad(filesystem)
	config, err := tileview.LoadConfig(load, name)
	if err != nil {
		return nil, err
	}
	if mod != nil {
		mod(&config)
	}
	log.Debug().Interface("config", config).Msg("Loaded config")

	return tileview.NewWorld(load, config)
}

// profile starts a CPU profile if path is set. The returned func stops it.
func profile(path string) func() {
	if path == "" {
		return func() {}
	}
	f, err := os.Create(path)
	check(err)
	check(pprof.StartCPUProfile(f))
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}
}

func writeHeapProfile(path string) {
	if path == "" {
		return
	}
	f, err := os.Create(path)
	check(err)
	defer f.Close()
	runtime.GC() // get up-to-date statistics
	check(pprof.WriteHeapProfile(f))
}
