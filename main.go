package main

import (
	"context"
	"flag"
	"log"
	"time"

	"Duskmire/commands"
	"Duskmire/internal/config"
	"Duskmire/internal/game"
)

func main() {
	configPath := flag.String("config", "", "Optional YAML config file")
	addr := flag.String("addr", "", "HTTP address to listen on")
	areasPath := flag.String("areas", "", "Directory containing world area definitions")
	tickMillis := flag.Int("tick", 0, "Tick interval in milliseconds")
	startRoom := flag.Int("start", 0, "Room id new players begin in")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *areasPath != "" {
		cfg.AreasPath = *areasPath
	}
	if *tickMillis > 0 {
		cfg.TickMillis = *tickMillis
	}
	if *startRoom > 0 {
		cfg.StartRoom = *startRoom
	}

	world, err := game.NewWorld(cfg.AreasPath, game.RoomID(cfg.StartRoom))
	if err != nil {
		log.Fatal(err)
	}

	loop := game.NewLoop(world, time.Duration(cfg.TickMillis)*time.Millisecond)
	go loop.Run(context.Background())

	server := game.NewServer(world, commands.Dispatch)
	if err := server.ListenAndServe(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
