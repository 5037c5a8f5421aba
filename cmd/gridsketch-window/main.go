package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/gridsketch/config"
	"github.com/lixenwraith/gridsketch/engine"
	"github.com/lixenwraith/gridsketch/window"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	seed := flag.Uint64("seed", 0, "Particle seed, 0 picks one from the clock")
	width := flag.Int("width", 1280, "Initial window width")
	height := flag.Int("height", 800, "Initial window height")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	var opts []engine.Option
	if *seed != 0 {
		opts = append(opts, engine.WithSeed(*seed))
	}
	game := window.NewGame(config.NewStore(cfg), opts...)

	if err := window.Run(game, "gridsketch", *width, *height); err != nil {
		log.Fatalf("window: %v", err)
	}
}
