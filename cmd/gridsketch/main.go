package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridsketch/audio"
	"github.com/lixenwraith/gridsketch/config"
	"github.com/lixenwraith/gridsketch/engine"
	"github.com/lixenwraith/gridsketch/terminal"
	"github.com/lixenwraith/gridsketch/watch"
)

var (
	configFlag = flag.String("config", "gridsketch.yaml", "YAML config file, watched for changes and written by 's'")
	seedFlag   = flag.Uint64("seed", 0, "Particle seed, 0 picks one from the clock")
	audioFlag  = flag.Bool("audio", false, "Play tones on selection changes")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/gridsketch.log")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	store := config.NewStore(cfg)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mGRIDSKETCH CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sketchOpts := []engine.Option{}
	if *seedFlag != 0 {
		sketchOpts = append(sketchOpts, engine.WithSeed(*seedFlag))
	}

	host := terminal.NewHost(screen, store,
		terminal.WithSketchOptions(sketchOpts...),
		terminal.WithConfigPath(*configFlag),
	)

	if *audioFlag {
		player := audio.NewPlayer()
		if err := player.Init(); err != nil {
			// Non-fatal, the sketch runs silent
			log.Printf("audio initialization failed: %v (continuing without audio)", err)
		}
		if player.Enabled() {
			defer player.Close()
			sketch := host.Sketch()
			sketch.AddListener(player.Listener(sketch.Selection))
		}
	}

	go func() {
		err := config.Watch(ctx, *configFlag, store)
		if err != nil && !errors.Is(err, watch.ErrNotExist) {
			log.Printf("config watch stopped: %v", err)
		}
	}()

	if err := host.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "gridsketch: %v\n", err)
		os.Exit(1)
	}
}
