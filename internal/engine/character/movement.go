package character

import (
	"errors"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-locomotion/internal/engine/input"
	"github.com/Faultbox/midgard-locomotion/internal/engine/pose"
	"github.com/Faultbox/midgard-locomotion/internal/engine/spatial"
	"github.com/Faultbox/midgard-locomotion/internal/logger"
	"github.com/Faultbox/midgard-locomotion/pkg/math"
)

// Construction errors.
var (
	ErrNoBody  = errors.New("character: body is required")
	ErrNoQuery = errors.New("character: spatial query is required")
)

// Locomotion is the per-frame locomotion controller.
//
// Update runs once per rendered frame and publishes direction, velocity and
// stride state. FixedUpdate runs on the physics cadence and owns the vertical
// solver and the capsule move.
type Locomotion struct {
	cfg    Config
	body   Body
	query  spatial.Query
	pelvis PelvisSource
	log    *zap.Logger

	currentDirection  math.Vec3
	previousDirection math.Vec3
	moveDirection     math.Vec3 // current direction scaled by movement speed
	forwardVelocity   float32
	strideLength      float32
	distanceCovered   float32

	verticalVelocity         float32
	pelvisHeightFromGround   float32
	currentStandingPelvisMax float32
	currentStandingPelvisMin float32
	hipSteps                 int
	branch                   Branch
}

// New creates a controller. pelvis may be nil, in which case the hip probe
// starts from the body origin.
func New(cfg Config, body Body, query spatial.Query, pelvis PelvisSource) (*Locomotion, error) {
	if body == nil {
		return nil, ErrNoBody
	}
	if query == nil {
		return nil, ErrNoQuery
	}
	return &Locomotion{
		cfg:                      cfg,
		body:                     body,
		query:                    query,
		pelvis:                   pelvis,
		log:                      logger.Named("locomotion"),
		forwardVelocity:          MinForwardVelocity,
		currentStandingPelvisMax: cfg.StandingPelvisHeightMax,
		currentStandingPelvisMin: cfg.StandingPelvisHeightMin,
	}, nil
}

// Update reads this frame's input, turns the body toward the movement
// direction and advances the stride accumulator.
func (l *Locomotion) Update(in input.Frame, dt float32) {
	l.previousDirection = l.currentDirection
	l.currentDirection = in.PlanarDirection()

	if l.cfg.ShowSolverDebug {
		pos := l.body.Transform().Position
		l.log.Debug("direction",
			zap.Object("from", vec(pos)),
			zap.Object("current", vec(pos.Add(l.currentDirection))),
			zap.Object("previous", vec(pos.Add(l.previousDirection))),
		)
	}

	l.moveDirection = l.currentDirection.Scale(l.cfg.MovementSpeed)

	facing := l.body.Transform().Forward()
	l.forwardVelocity = math.Clamp(l.moveDirection.Dot(facing), MinForwardVelocity, MaxForwardVelocity)

	if l.moveDirection.IsZero() {
		l.distanceCovered = 0
	}

	// Stride values only drive animation; physics never reads them.
	l.strideLength = math.Lerp(l.cfg.WalkStrideLength, l.cfg.RunStrideLength, l.forwardVelocity/MaxForwardVelocity)
	if l.strideLength > 0 {
		l.distanceCovered += l.moveDirection.Length() / l.strideLength * dt
	}
	if l.distanceCovered > 1 {
		l.distanceCovered = 0
	}

	if !l.moveDirection.IsZero() {
		rot := l.body.Transform().Rotation
		target := math.LookRotation(l.moveDirection, math.Up)
		l.body.SetRotation(rot.Slerp(target, l.cfg.RotationSpeed))
	}
}

// FixedUpdate finds the standing band, integrates vertical velocity against
// it and moves the capsule by one fixed step.
func (l *Locomotion) FixedUpdate(dt float32) {
	l.solveHipClearance()

	l.pelvisHeightFromGround = l.groundDistance()
	switch {
	case l.pelvisHeightFromGround > l.currentStandingPelvisMax:
		l.verticalVelocity -= l.cfg.Gravity * dt
		if l.verticalVelocity > 0 {
			l.verticalVelocity = 0
		}
		l.branch = BranchGravity
	case l.pelvisHeightFromGround < l.currentStandingPelvisMin:
		// A missed ground probe lands here too and springs upward.
		l.verticalVelocity += l.cfg.PelvisSpringForce * dt
		if l.verticalVelocity < 0 {
			l.verticalVelocity = 0
		}
		l.branch = BranchSpring
	default:
		l.verticalVelocity = 0
		l.branch = BranchRest
	}
	l.log.Debug(l.branch.String(),
		zap.Float32("height", l.pelvisHeightFromGround),
		zap.Float32("vertical_velocity", l.verticalVelocity),
	)

	move := l.moveDirection.Flat()
	move.Y = l.verticalVelocity
	l.body.Move(move.Scale(dt))
}

// Snapshot returns the state published by the last Update.
func (l *Locomotion) Snapshot() Snapshot {
	return Snapshot{
		CurrentDirection:  l.currentDirection,
		PreviousDirection: l.previousDirection,
		ForwardVelocity:   l.forwardVelocity,
		StrideLength:      l.strideLength,
		DistanceCovered:   l.distanceCovered,
	}
}

// ResetStride zeroes the stride accumulator. The animation layer calls this
// when it observes a completed stride.
func (l *Locomotion) ResetStride() {
	l.distanceCovered = 0
}

// State returns the vertical solver state from the last fixed tick.
func (l *Locomotion) State() State {
	return State{
		VerticalVelocity:        l.verticalVelocity,
		PelvisHeightFromGround:  l.pelvisHeightFromGround,
		StandingPelvisHeightMax: l.currentStandingPelvisMax,
		StandingPelvisHeightMin: l.currentStandingPelvisMin,
		HipSteps:                l.hipSteps,
		Branch:                  l.branch,
	}
}

// Transform returns the body placement.
func (l *Locomotion) Transform() math.Transform {
	return l.body.Transform()
}

func (l *Locomotion) pelvisPosition() math.Vec3 {
	if l.pelvis != nil {
		return l.pelvis.BoneWorldPosition(pose.BoneHips)
	}
	return l.body.Transform().Position
}
