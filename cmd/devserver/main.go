package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/gridsketch/config"
	"github.com/lixenwraith/gridsketch/devserver"
)

func main() {
	root := flag.String("root", ".", "Directory to serve")
	port := flag.Int("port", 0, "Listen port, falls back to $PORT then 3000")
	live := flag.Bool("live", true, "Watch files and reload open pages")
	configPath := flag.String("config", "", "YAML config used as snapshot defaults")
	flag.Parse()

	addr, err := devserver.ResolveAddr(*port, os.Getenv)
	if err != nil {
		log.Fatal(err)
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	srv, err := devserver.New(*root,
		devserver.WithAddr(addr),
		devserver.WithLiveReload(*live),
		devserver.WithDefaults(cfg),
	)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		log.Fatal(err)
	}
	log.Printf("server stopped")
}
