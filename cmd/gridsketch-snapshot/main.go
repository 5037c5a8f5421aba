package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goccy/go-json"

	"github.com/lixenwraith/gridsketch/config"
	"github.com/lixenwraith/gridsketch/render/snapshot"
	"github.com/lixenwraith/gridsketch/selection"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	out := flag.String("out", "gridsketch.png", "Output file, .png or .svg")
	width := flag.Float64("width", 800, "Surface width")
	height := flag.Float64("height", 600, "Surface height")
	frames := flag.Int("frames", 120, "Frames to simulate before drawing")
	seed := flag.Uint64("seed", 1, "Particle seed")
	sel := flag.String("select", "", `Scripted selection, sets separated by ';' cells by ',' ("0,5;12,13")`)
	selJSON := flag.String("select-json", "", `Selection as copied from the terminal host ({"current":0,"sets":[[0,5]]})`)
	caption := flag.String("caption", "", "Caption drawn in the PNG corner")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("gridsketch-snapshot: ")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	o := snapshot.Options{
		Config:  cfg,
		Width:   *width,
		Height:  *height,
		Frames:  *frames,
		Seed:    *seed,
		Caption: *caption,
	}

	switch {
	case *selJSON != "":
		var s selection.Snapshot
		if err := json.Unmarshal([]byte(*selJSON), &s); err != nil {
			log.Fatalf("decoding -select-json: %v", err)
		}
		o.Selection = s
	case *sel != "":
		sets, err := selection.ParseSets(*sel)
		if err != nil {
			log.Fatalf("parsing -select: %v", err)
		}
		o.Selection = snapshot.ScriptedSelection(sets)
	}

	if err := snapshot.WriteFile(*out, o); err != nil {
		log.Fatal(err)
	}
	fmt.Fprintf(os.Stderr, "wrote %s (%vx%v, %d frames)\n", *out, *width, *height, *frames)
}
