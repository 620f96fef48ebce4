package ik

import "github.com/Faultbox/midgard-locomotion/internal/engine/spatial"

// StrideMode selects how stride progress reaches the animator.
type StrideMode string

const (
	// StrideBlend publishes DistanceCovered every frame for a blend tree.
	StrideBlend StrideMode = "blend"
	// StrideStep fires the step trigger once per half stride and mirrors
	// every second step.
	StrideStep StrideMode = "step"
)

// Config groups the IK tunables by solver.
type Config struct {
	Feet FeetConfig `yaml:"feet_ik"`
	Head HeadConfig `yaml:"head_ik"`
	Body BodyConfig `yaml:"body"`
}

// FeetConfig tunes foot grounding and the pelvis shift.
type FeetConfig struct {
	EnableFeetIK            bool              `yaml:"enable_feet_ik"`
	EnablePelvisShift       bool              `yaml:"enable_pelvis_shift"`
	HeightFromGroundRaycast float32           `yaml:"height_from_ground_raycast"`
	RaycastDownDistance     float32           `yaml:"raycast_down_distance"`
	LevelMask               spatial.LayerMask `yaml:"level_mask"`
	PelvisOffset            float32           `yaml:"pelvis_offset"`
	PelvisUpAndDownSpeed    float32           `yaml:"pelvis_up_and_down_speed"`
	FeetToIKPositionSpeed   float32           `yaml:"feet_to_ik_position_speed"`
	RightFootCurve          string            `yaml:"right_foot_curve"`
	LeftFootCurve           string            `yaml:"left_foot_curve"`
	UseFeetRotation         bool              `yaml:"use_feet_rotation"`
	ShowSolverDebug         bool              `yaml:"show_solver_debug"`
}

// HeadConfig tunes the head and chest obstacle probe.
type HeadConfig struct {
	SlerpStart      float32           `yaml:"slerp_start"`
	SlerpRate       float32           `yaml:"slerp_rate"`
	ProbeRadius     float32           `yaml:"probe_radius"`
	ProbeRange      float32           `yaml:"probe_range"`
	ProbeStep       float32           `yaml:"probe_step"`
	HeadIterations  int               `yaml:"head_iterations"`
	ChestIterations int               `yaml:"chest_iterations"`
	LevelMask       spatial.LayerMask `yaml:"level_mask"`
}

// BodyConfig tunes the acceleration lean and stride publishing.
type BodyConfig struct {
	EnableAccelerationTilt bool       `yaml:"enable_acceleration_tilt"`
	TiltRate               float32    `yaml:"tilt_rate"`
	TiltMinVelocity        float32    `yaml:"tilt_min_velocity"`
	StrideMode             StrideMode `yaml:"stride_mode"`
	StepsPerMirror         int        `yaml:"steps_per_mirror"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		Feet: FeetConfig{
			EnableFeetIK:            true,
			EnablePelvisShift:       false,
			HeightFromGroundRaycast: 1.5,
			RaycastDownDistance:     1.5,
			LevelMask:               spatial.LayerAll,
			PelvisOffset:            0,
			PelvisUpAndDownSpeed:    0.3,
			FeetToIKPositionSpeed:   0.5,
			RightFootCurve:          "RightFootCurve",
			LeftFootCurve:           "LeftFootCurve",
		},
		Head: HeadConfig{
			SlerpStart:      0,
			SlerpRate:       5,
			ProbeRadius:     0.15,
			ProbeRange:      2,
			ProbeStep:       0.05,
			HeadIterations:  4,
			ChestIterations: 3,
			LevelMask:       spatial.LayerAll,
		},
		Body: BodyConfig{
			EnableAccelerationTilt: true,
			TiltRate:               0.1,
			TiltMinVelocity:        2.5,
			StrideMode:             StrideBlend,
			StepsPerMirror:         2,
		},
	}
}
