package config

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/Faultbox/midgard-locomotion/internal/engine/ik"
)

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

var categories = map[string]bool{"ground": true, "obstacle": true, "other": true}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			err = multierr.Append(err, fmt.Errorf(format, args...))
		}
	}

	loco := c.Locomotion
	check(loco.MovementSpeed >= 0, "locomotion.movement_speed must not be negative")
	check(loco.RotationSpeed >= 0 && loco.RotationSpeed <= 1, "locomotion.rotation_speed must be in [0,1]")
	check(loco.WalkStrideLength >= 0 && loco.RunStrideLength >= 0, "locomotion stride lengths must not be negative")
	check(loco.StandingPelvisHeightMin <= loco.StandingPelvisHeightMax,
		"locomotion.standing_pelvis_height_min %v exceeds max %v", loco.StandingPelvisHeightMin, loco.StandingPelvisHeightMax)

	feet := c.IK.Feet
	check(feet.HeightFromGroundRaycast >= 0, "feet_ik.height_from_ground_raycast must not be negative")
	check(feet.RaycastDownDistance >= 0, "feet_ik.raycast_down_distance must not be negative")
	check(inUnit(feet.PelvisUpAndDownSpeed), "feet_ik.pelvis_up_and_down_speed must be in [0,1]")
	check(inUnit(feet.FeetToIKPositionSpeed), "feet_ik.feet_to_ik_position_speed must be in [0,1]")

	head := c.IK.Head
	check(inUnit(head.SlerpStart), "head_ik.slerp_start must be in [0,1]")
	check(head.ProbeStep > 0, "head_ik.probe_step must be positive")
	check(head.ProbeRange > 0, "head_ik.probe_range must be positive")
	check(head.HeadIterations >= 1 && head.ChestIterations >= 1, "head_ik iteration caps must be at least 1")

	body := c.IK.Body
	check(body.StrideMode == ik.StrideBlend || body.StrideMode == ik.StrideStep,
		"body.stride_mode %q must be %q or %q", body.StrideMode, ik.StrideBlend, ik.StrideStep)
	check(inUnit(body.TiltRate), "body.tilt_rate must be in [0,1]")

	sim := c.Simulation
	check(sim.FixedStep > 0, "simulation.fixed_step must be positive")
	check(sim.FrameRate > 0, "simulation.frame_rate must be positive")
	check(sim.MaxFixedSteps >= 1, "simulation.max_fixed_steps must be at least 1")
	check(sim.Frames >= 0, "simulation.frames must not be negative")
	for i, seg := range sim.Script {
		check(seg.Duration > 0, "simulation.script[%d].duration must be positive", i)
	}

	t := c.Level.Terrain
	if t.Width > 0 || t.Depth > 0 {
		check(t.Width >= 2 && t.Depth >= 2, "level.terrain needs at least 2x2 samples")
		check(t.CellSize > 0, "level.terrain.cell_size must be positive")
	}
	for i, b := range c.Level.Boxes {
		check(b.Size.X > 0 && b.Size.Y > 0 && b.Size.Z > 0, "level.boxes[%d] %q has a non-positive size", i, b.Name)
		check(categories[b.Category], "level.boxes[%d] %q has unknown category %q", i, b.Name, b.Category)
	}
	for i, b := range c.Level.Triggers {
		check(b.Size.X > 0 && b.Size.Y > 0 && b.Size.Z > 0, "level.triggers[%d] %q has a non-positive size", i, b.Name)
		check(categories[b.Category], "level.triggers[%d] %q has unknown category %q", i, b.Name, b.Category)
	}

	check(logLevels[c.Logging.Level], "logging.level %q is not one of debug, info, warn, error", c.Logging.Level)

	return err
}

func inUnit(v float32) bool {
	return v >= 0 && v <= 1
}
