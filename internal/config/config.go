// Package config handles simulation configuration loading and management.
package config

import (
	"github.com/Faultbox/midgard-locomotion/internal/engine/capsule"
	"github.com/Faultbox/midgard-locomotion/internal/engine/character"
	"github.com/Faultbox/midgard-locomotion/internal/engine/ik"
	"github.com/Faultbox/midgard-locomotion/internal/engine/input"
	"github.com/Faultbox/midgard-locomotion/internal/engine/pose"
	"github.com/Faultbox/midgard-locomotion/internal/engine/spatial"
	"github.com/Faultbox/midgard-locomotion/pkg/math"
)

// Config holds all simulation settings.
type Config struct {
	Locomotion character.Config `yaml:"locomotion"`
	IK         ik.Config        `yaml:",inline"` // feet_ik, head_ik, body
	Skeleton   pose.Skeleton    `yaml:"skeleton"`
	Capsule    capsule.Config   `yaml:"capsule"`
	Simulation SimulationConfig `yaml:"simulation"`
	Level      LevelConfig      `yaml:"level"`
	Client     ClientConfig     `yaml:"client"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// SimulationConfig holds frame loop settings.
type SimulationConfig struct {
	FixedStep     float32         `yaml:"fixed_step"`      // seconds per physics tick
	FrameRate     float32         `yaml:"frame_rate"`      // headless frames per second
	Frames        int             `yaml:"frames"`          // 0 runs until the script ends
	MaxFixedSteps int             `yaml:"max_fixed_steps"` // per rendered frame
	Start         math.Vec3       `yaml:"start"`           // locomotion root spawn point
	Script        []input.Segment `yaml:"script"`
}

// LevelConfig describes the static level.
type LevelConfig struct {
	Terrain  TerrainConfig `yaml:"terrain"`
	Boxes    []BoxConfig   `yaml:"boxes"`
	Triggers []BoxConfig   `yaml:"triggers"`
}

// TerrainConfig describes the ground heightfield. Width or depth of zero
// disables the terrain.
type TerrainConfig struct {
	OriginX    float32             `yaml:"origin_x"`
	OriginZ    float32             `yaml:"origin_z"`
	CellSize   float32             `yaml:"cell_size"`
	Width      int                 `yaml:"width"`
	Depth      int                 `yaml:"depth"`
	BaseHeight float32             `yaml:"base_height"`
	Noise      spatial.NoiseConfig `yaml:"noise"`
}

// BoxConfig is an axis-aligned volume in the level.
type BoxConfig struct {
	Name     string    `yaml:"name"`
	Center   math.Vec3 `yaml:"center"`
	Size     math.Vec3 `yaml:"size"`
	Category string    `yaml:"category"` // ground, obstacle or other
}

// ClientConfig holds interactive window settings.
type ClientConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Locomotion: character.DefaultConfig(),
		IK:         ik.DefaultConfig(),
		Skeleton:   pose.DefaultSkeleton(),
		Capsule:    capsule.DefaultConfig(),
		Simulation: SimulationConfig{
			FixedStep:     0.02,
			FrameRate:     60,
			Frames:        0,
			MaxFixedSteps: 5,
			Start:         math.Vec3{Y: 1.2},
			Script: []input.Segment{
				{Duration: 0.5},
				{Duration: 3, Vertical: 0.5},
				{Duration: 2, Vertical: 1},
				{Duration: 1.5, Horizontal: 1, Vertical: 1},
				{Duration: 1},
			},
		},
		Level: LevelConfig{
			Terrain: TerrainConfig{
				OriginX:  -20,
				OriginZ:  -20,
				CellSize: 0.5,
				Width:    81,
				Depth:    81,
				Noise: spatial.NoiseConfig{
					Seed:        7,
					Amplitude:   0.2,
					Frequency:   0.15,
					Octaves:     3,
					Persistence: 0.5,
				},
			},
			Boxes: []BoxConfig{
				{Name: "beam", Center: math.Vec3{Y: 2.0, Z: 8}, Size: math.Vec3{X: 4, Y: 0.4, Z: 0.5}, Category: "obstacle"},
				{Name: "step", Center: math.Vec3{X: 0.15, Y: 0.1, Z: 4}, Size: math.Vec3{X: 0.4, Y: 0.2, Z: 0.6}, Category: "ground"},
			},
			Triggers: []BoxConfig{
				{Name: "beam_zone", Center: math.Vec3{Y: 1, Z: 8}, Size: math.Vec3{X: 4, Y: 2, Z: 2}, Category: "obstacle"},
			},
		},
		Client: ClientConfig{
			Title:  "Midgard Locomotion",
			Width:  1280,
			Height: 720,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
