// Package character implements the locomotion controller: it turns planar
// input into facing, forward velocity and stride progress, keeps the pelvis
// inside a standing band above the ground and moves the character capsule.
package character

import (
	"github.com/Faultbox/midgard-locomotion/internal/engine/pose"
	"github.com/Faultbox/midgard-locomotion/internal/engine/spatial"
	"github.com/Faultbox/midgard-locomotion/pkg/math"
)

// Forward velocity limits. The floor keeps stride math away from zero.
const (
	MinForwardVelocity = 0.1
	MaxForwardVelocity = 5.0
)

// Hip clearance probe.
const (
	HipProbeRadius   = 0.3
	HipProbeRange    = 1.0
	HipProbeStep     = 0.1
	HipProbeMaxSteps = 5
)

// NoGround is the ground distance reported when the downward probe misses.
const NoGround = -1

// Config holds locomotion tunables.
type Config struct {
	MovementSpeed           float32           `yaml:"movement_speed"`
	RotationSpeed           float32           `yaml:"rotation_speed"` // slerp factor per tick
	Gravity                 float32           `yaml:"gravity"`
	PelvisSpringForce       float32           `yaml:"pelvis_spring_force"`
	WalkStrideLength        float32           `yaml:"walk_stride_length"`
	RunStrideLength         float32           `yaml:"run_stride_length"`
	StandingPelvisHeightMax float32           `yaml:"standing_pelvis_height_max"`
	StandingPelvisHeightMin float32           `yaml:"standing_pelvis_height_min"`
	LevelMask               spatial.LayerMask `yaml:"level_mask"`
	ShowSolverDebug         bool              `yaml:"show_solver_debug"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		MovementSpeed:           5,
		RotationSpeed:           0.15,
		Gravity:                 9.81,
		PelvisSpringForce:       4,
		WalkStrideLength:        0,
		RunStrideLength:         12,
		StandingPelvisHeightMax: 1.3,
		StandingPelvisHeightMin: 1.0,
		LevelMask:               spatial.LayerAll,
	}
}

// Body is the capsule the controller steers.
type Body interface {
	Transform() math.Transform
	SetRotation(q math.Quat)
	Move(displacement math.Vec3)
}

// PelvisSource reports where the animated pelvis is.
type PelvisSource interface {
	BoneWorldPosition(b pose.Bone) math.Vec3
}

// Snapshot is the locomotion state published once per frame for consumers
// such as the IK engine.
type Snapshot struct {
	CurrentDirection  math.Vec3
	PreviousDirection math.Vec3
	ForwardVelocity   float32
	StrideLength      float32
	DistanceCovered   float32
}

// Moving reports whether there was directional input this frame.
func (s Snapshot) Moving() bool {
	return !s.CurrentDirection.IsZero()
}

// State exposes the vertical solver internals for logs and tests.
type State struct {
	VerticalVelocity        float32
	PelvisHeightFromGround  float32
	StandingPelvisHeightMax float32
	StandingPelvisHeightMin float32
	HipSteps                int
	Branch                  Branch
}

// Branch is the vertical integration branch taken on the last fixed tick.
type Branch uint8

const (
	BranchNone Branch = iota
	BranchGravity
	BranchSpring
	BranchRest
)

// String returns the branch name.
func (b Branch) String() string {
	switch b {
	case BranchGravity:
		return "gravity"
	case BranchSpring:
		return "pelvis_force"
	case BranchRest:
		return "rest"
	default:
		return "none"
	}
}
