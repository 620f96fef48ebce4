package ik

import (
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-locomotion/internal/engine/pose"
	"github.com/Faultbox/midgard-locomotion/pkg/math"
)

// FootSolution is the ground contact found under a foot. A zero Position
// means no ground was found and the animated goal is left alone.
type FootSolution struct {
	Position math.Vec3
	Rotation math.Quat
	Grounded bool
}

// footOrigin returns the probe origin for a foot: the animated foot's XZ at a
// fixed height above the model origin.
func (e *Engine) footOrigin(g pose.Goal) math.Vec3 {
	origin := e.anim.BoneWorldPosition(g.Bone())
	origin.Y = e.anim.Transform().Position.Y + e.cfg.Feet.HeightFromGroundRaycast
	return origin
}

// SolveFoot casts down from origin and returns where the foot should rest.
func (e *Engine) SolveFoot(origin math.Vec3) FootSolution {
	dist := e.cfg.Feet.RaycastDownDistance + e.cfg.Feet.HeightFromGroundRaycast
	if e.cfg.Feet.ShowSolverDebug {
		e.log.Debug("foot ray",
			zap.Object("from", vec(origin)),
			zap.Object("to", vec(origin.Add(math.Down.Scale(dist)))),
		)
	}

	hit, ok := e.query.Raycast(origin, math.Down, dist, e.cfg.Feet.LevelMask)
	if !ok {
		return FootSolution{Rotation: math.QuatIdentity()}
	}

	pos := origin
	pos.Y = hit.Point.Y + e.cfg.Feet.PelvisOffset
	return FootSolution{
		Position: pos,
		Rotation: math.FromToRotation(math.Up, hit.Normal).Mul(e.anim.Transform().Rotation),
		Grounded: true,
	}
}

// applyFoot raises the animated IK goal by the smoothed ground height in model
// space and hands the goal to the IK pass.
func (e *Engine) applyFoot(g pose.Goal, curve string) {
	e.anim.SetIKGoalPositionWeight(g, 1)
	if e.cfg.Feet.UseFeetRotation {
		e.anim.SetIKGoalRotationWeight(g, e.anim.Float(curve))
	}

	f := &e.feet[g]
	if f.solution.Position.IsZero() {
		return
	}

	toWorld := e.anim.Transform().Matrix()
	toLocal := toWorld.Inverse()

	target := toLocal.TransformVec3(e.anim.IKGoalPosition(g))
	solved := toLocal.TransformVec3(f.solution.Position)

	f.lastHeight = math.Lerp(f.lastHeight, solved.Y, e.cfg.Feet.FeetToIKPositionSpeed)
	target.Y += f.lastHeight

	e.anim.SetIKGoalPosition(g, toWorld.TransformVec3(target))
	e.anim.SetIKGoalRotation(g, f.solution.Rotation)
}

// movePelvisHeight drops the body by the lower foot's offset from the model
// origin, smoothed against the previous frame.
func (e *Engine) movePelvisHeight() {
	right := e.feet[pose.GoalRightFoot].solution.Position
	left := e.feet[pose.GoalLeftFoot].solution.Position
	body := e.anim.BodyPosition()

	if right.IsZero() || left.IsZero() || e.lastPelvisY == 0 {
		e.lastPelvisY = body.Y
		return
	}

	originY := e.anim.Transform().Position.Y
	offset := min(left.Y-originY, right.Y-originY)

	next := body.Add(math.Up.Scale(offset))
	next.Y = math.Lerp(e.lastPelvisY, next.Y, e.cfg.Feet.PelvisUpAndDownSpeed)

	e.anim.SetBodyPosition(next)
	e.lastPelvisY = next.Y
}
