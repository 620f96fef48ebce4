// Package main is the entry point for the interactive locomotion client.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-locomotion/internal/client"
	"github.com/Faultbox/midgard-locomotion/internal/config"
	"github.com/Faultbox/midgard-locomotion/internal/game"
	"github.com/Faultbox/midgard-locomotion/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Midgard Locomotion ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	sim, err := game.NewSimulation(cfg)
	if err != nil {
		logger.Error("failed to create simulation", zap.Error(err))
		os.Exit(1)
	}

	g, err := client.New(client.Config{
		Title:     cfg.Client.Title,
		Width:     cfg.Client.Width,
		Height:    cfg.Client.Height,
		FrameRate: cfg.Simulation.FrameRate,
	}, sim)
	if err != nil {
		logger.Error("failed to create client", zap.Error(err))
		os.Exit(1)
	}
	defer g.Close()

	if err := g.Run(); err != nil {
		logger.Error("client error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("client closed normally")
}
