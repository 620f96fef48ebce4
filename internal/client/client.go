// Package client runs a simulation interactively from an SDL window.
package client

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-locomotion/internal/engine/window"
	"github.com/Faultbox/midgard-locomotion/internal/game"
	"github.com/Faultbox/midgard-locomotion/internal/logger"
)

// Config holds interactive client configuration.
type Config struct {
	Title     string
	Width     int
	Height    int
	FrameRate float32
}

// Game drives a simulation from the keyboard of an SDL window.
type Game struct {
	config   Config
	running  bool
	window   *window.Window
	keyboard *window.Keyboard
	sim      *game.Simulation
	log      *zap.Logger
}

// New opens the window and binds the keyboard to sim.
func New(cfg Config, sim *game.Simulation) (*Game, error) {
	g := &Game{
		config: cfg,
		sim:    sim,
		log:    logger.Named("game"),
	}

	var err error
	g.window, err = window.New(window.Config{
		Title:  cfg.Title,
		Width:  cfg.Width,
		Height: cfg.Height,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	g.keyboard = window.NewKeyboard()

	g.log.Info("game initialized")
	return g, nil
}

// Run loops until the window is closed.
func (g *Game) Run() error {
	g.running = true

	frameTime := time.Duration(float64(time.Second) / float64(g.config.FrameRate))
	lastTime := time.Now()
	statusTimer := time.Now()

	g.log.Info("starting game loop")

	for g.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if g.window.Poll() {
			g.running = false
			break
		}

		r := g.sim.Frame(g.keyboard, dt)

		if time.Since(statusTimer) >= time.Second {
			g.log.Info("status",
				zap.Object("position", game.LogVec(r.Position)),
				zap.Float32("forward_velocity", r.Snapshot.ForwardVelocity),
				zap.Stringer("branch", r.Vertical.Branch),
				zap.Bool("crouching", r.IK.Crouching),
			)
			g.window.SetTitle(fmt.Sprintf("%s  v=%.2f  %s", g.config.Title, r.Snapshot.ForwardVelocity, r.Vertical.Branch))
			statusTimer = time.Now()
		}

		if sleep := frameTime - time.Since(now); sleep > 0 {
			time.Sleep(sleep)
		}
	}

	return nil
}

// Close releases the window.
func (g *Game) Close() {
	g.log.Info("closing game")
	if g.window != nil {
		g.window.Close()
	}
}
