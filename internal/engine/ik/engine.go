// Package ik adjusts the animated pose after playback: it grounds the feet,
// shifts the pelvis, leans the body into turns and bends the neck or chest
// away from obstacles in front of the head.
package ik

import (
	"errors"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-locomotion/internal/engine/character"
	"github.com/Faultbox/midgard-locomotion/internal/engine/pose"
	"github.com/Faultbox/midgard-locomotion/internal/engine/spatial"
	"github.com/Faultbox/midgard-locomotion/internal/logger"
	"github.com/Faultbox/midgard-locomotion/pkg/math"
)

// Construction errors.
var (
	ErrNoAnimator = errors.New("ik: animator is required")
	ErrNoQuery    = errors.New("ik: spatial query is required")
)

// Locomotion is the read side of the locomotion controller.
type Locomotion interface {
	Snapshot() character.Snapshot
	ResetStride()
}

// Engine runs the IK adjustment layer. FixedUpdate solves against the level,
// OnAnimatorIK writes the solution into the animator and LateUpdate publishes
// animation parameters.
type Engine struct {
	cfg   Config
	anim  pose.Animator
	query spatial.Query
	loco  Locomotion
	log   *zap.Logger

	feet        [2]foot // indexed by pose.Goal
	lastPelvisY float32

	headTarget  math.Vec3
	chestTarget math.Vec3
	slerpTime   float32
	crouching   bool
	headSteps   int
	chestSteps  int

	stepsUntilMirror int
}

type foot struct {
	origin     math.Vec3
	solution   FootSolution
	lastHeight float32
}

// State is a read-only copy of the solver state.
type State struct {
	Feet        [2]FootSolution
	FootOrigins [2]math.Vec3
	FootHeights [2]float32
	LastPelvisY float32
	HeadTarget  math.Vec3
	ChestTarget math.Vec3
	SlerpTime   float32
	Crouching   bool
	HeadSteps   int
	ChestSteps  int
}

// New creates an engine. loco may be nil; the lean and parameter publishing
// are skipped without it.
func New(cfg Config, anim pose.Animator, query spatial.Query, loco Locomotion) (*Engine, error) {
	if anim == nil {
		return nil, ErrNoAnimator
	}
	if query == nil {
		return nil, ErrNoQuery
	}
	return &Engine{
		cfg:              cfg,
		anim:             anim,
		query:            query,
		loco:             loco,
		log:              logger.Named("ik"),
		slerpTime:        cfg.Head.SlerpStart,
		stepsUntilMirror: cfg.Body.StepsPerMirror,
	}, nil
}

// FixedUpdate solves both feet against the ground and probes for obstacles
// in front of the head.
func (e *Engine) FixedUpdate() {
	if !e.cfg.Feet.EnableFeetIK {
		return
	}

	for g := range e.feet {
		f := &e.feet[g]
		f.origin = e.footOrigin(pose.Goal(g))
		f.solution = e.SolveFoot(f.origin)
	}

	e.solveHeadClearance()
}

// OnAnimatorIK applies the last solution to the animated pose. It must run
// after playback and before the frame is finalized.
func (e *Engine) OnAnimatorIK() {
	if e.cfg.Body.EnableAccelerationTilt && e.loco != nil {
		if snap := e.loco.Snapshot(); snap.Moving() {
			e.accelerationTilt(snap)
		}
	}

	if !e.cfg.Feet.EnableFeetIK {
		return
	}

	if e.cfg.Feet.EnablePelvisShift {
		e.movePelvisHeight()
	}

	e.applyFoot(pose.GoalRightFoot, e.cfg.Feet.RightFootCurve)
	e.applyFoot(pose.GoalLeftFoot, e.cfg.Feet.LeftFootCurve)

	e.lookAlong(pose.BoneNeck, e.headTarget)
	e.lookAlong(pose.BoneUpperChest, e.chestTarget)
}

// LateUpdate advances the look interpolation and publishes the locomotion
// parameters.
func (e *Engine) LateUpdate(dt float32) {
	e.slerpTime += e.cfg.Head.SlerpRate * dt

	if e.loco == nil {
		return
	}
	snap := e.loco.Snapshot()
	if snap.Moving() {
		e.anim.SetBool(pose.ParamLocomotion, true)
		e.anim.SetFloat(pose.ParamVelocity, snap.ForwardVelocity)
	} else {
		e.anim.SetBool(pose.ParamLocomotion, false)
		e.anim.SetFloat(pose.ParamVelocity, 0)
	}

	e.publishStride(snap)
}

// OnTriggerEnter starts crouching inside obstacle volumes.
func (e *Engine) OnTriggerEnter(c spatial.Category) {
	if c != spatial.CategoryObstacle {
		return
	}
	e.crouching = true
	e.log.Info("crouch")
}

// OnTriggerExit stands back up when leaving an obstacle volume.
func (e *Engine) OnTriggerExit(c spatial.Category) {
	if c != spatial.CategoryObstacle {
		return
	}
	e.crouching = false
	e.log.Info("get up")
}

// State returns a copy of the solver state.
func (e *Engine) State() State {
	s := State{
		LastPelvisY: e.lastPelvisY,
		HeadTarget:  e.headTarget,
		ChestTarget: e.chestTarget,
		SlerpTime:   e.slerpTime,
		Crouching:   e.crouching,
		HeadSteps:   e.headSteps,
		ChestSteps:  e.chestSteps,
	}
	for g, f := range e.feet {
		s.Feet[g] = f.solution
		s.FootOrigins[g] = f.origin
		s.FootHeights[g] = f.lastHeight
	}
	return s
}
