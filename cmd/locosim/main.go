// Package main runs a scripted headless locomotion simulation and prints a
// run summary.
package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-locomotion/internal/config"
	"github.com/Faultbox/midgard-locomotion/internal/engine/input"
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

	if path := config.DumpConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Dump config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", path)
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	runID := uuid.NewString()
	logger.SetLogger(logger.Log.With(zap.String("run", runID)))

	logger.Info("=== Midgard Locomotion (headless) ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	sim, err := game.NewSimulation(cfg)
	if err != nil {
		logger.Error("failed to create simulation", zap.Error(err))
		os.Exit(1)
	}

	script := input.NewScript(cfg.Simulation.Script)
	stats := game.RunScript(sim, script, cfg.Simulation.Frames, cfg.Simulation.FrameRate, nil)

	logger.Info("run complete",
		zap.Int("frames", stats.Frames),
		zap.Int("fixed_steps", stats.FixedSteps),
		zap.Float32("distance", stats.Distance),
		zap.Object("final_position", game.LogVec(sim.Position())),
	)

	fmt.Printf("run %s\n", runID)
	fmt.Printf("  simulated    %s s over %s frames (%s fixed ticks)\n",
		humanize.FtoaWithDigits(float64(stats.Time), 2), humanize.Comma(int64(stats.Frames)), humanize.Comma(int64(stats.FixedSteps)))
	fmt.Printf("  travelled    %s m\n", humanize.FtoaWithDigits(float64(stats.Distance), 2))
	fmt.Printf("  steps        %s\n", humanize.Comma(int64(stats.Steps)))
	fmt.Printf("  crouching    %s ticks, head bent %s ticks\n", humanize.Comma(int64(stats.CrouchTicks)), humanize.Comma(int64(stats.HeadBends)))
	fmt.Printf("  foot misses  %s ticks\n", humanize.Comma(int64(stats.Ungrounded)))
	if stats.DroppedTime > 0 {
		fmt.Printf("  dropped      %s s\n", humanize.FtoaWithDigits(float64(stats.DroppedTime), 3))
	}
}
