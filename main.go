package main

import (
	"fmt"
	"os"

	"github.com/meghashyamc/raycast2d/config"
	"github.com/meghashyamc/raycast2d/game"
	"github.com/meghashyamc/raycast2d/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %s\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.GetLogLevel())

	g, err := game.NewGame(cfg, log)
	if err != nil {
		log.Error("failed to create game", "err", err)
		os.Exit(1)
	}
	if err := g.Run(); err != nil {
		log.Error("error running game", "err", err)
		os.Exit(1)
	}
}
