package ik

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/midgard-locomotion/internal/engine/pose"
	"github.com/Faultbox/midgard-locomotion/pkg/math"
)

// solveHeadClearance probes forward from the head. While an obstacle is ahead
// the probe is lowered step by step, first bending the neck and, if the head
// pass runs out of steps, the upper chest.
func (e *Engine) solveHeadClearance() {
	e.headSteps, e.chestSteps = 0, 0

	head := e.anim.BoneWorldPosition(pose.BoneHead)
	if !e.obstacleAhead(head) {
		if !e.crouching {
			e.headTarget, e.chestTarget = math.Vec3{}, math.Vec3{}
		}
		return
	}

	e.chestTarget = math.Vec3{}
	origin, steps, blocked := e.lowerProbe(head, head, e.cfg.Head.HeadIterations, &e.headTarget)
	e.headSteps = steps
	if blocked {
		e.headTarget = math.Vec3{}
		_, e.chestSteps, _ = e.lowerProbe(head, origin, e.cfg.Head.ChestIterations, &e.chestTarget)
	}

	e.log.Debug("head clearance",
		zap.Int("head_steps", e.headSteps),
		zap.Int("chest_steps", e.chestSteps),
		zap.Object("head_target", vec(e.headTarget)),
		zap.Object("chest_target", vec(e.chestTarget)),
	)
}

// lowerProbe drops a blocked probe from origin by ProbeStep until it clears or
// maxSteps is reached. Each step writes a vertical look target into dst. It
// returns the last probe origin, the steps taken and whether the probe is
// still blocked.
func (e *Engine) lowerProbe(head, origin math.Vec3, maxSteps int, dst *math.Vec3) (math.Vec3, int, bool) {
	e.slerpTime = e.cfg.Head.SlerpStart

	var offset float32
	steps := 0
	blocked := true
	for blocked && steps < maxSteps {
		origin.Y -= e.cfg.Head.ProbeStep
		offset -= e.cfg.Head.ProbeStep
		*dst = math.Vec3{Y: head.Y - offset}
		steps++
		blocked = e.obstacleAhead(origin)
	}
	return origin, steps, blocked
}

func (e *Engine) obstacleAhead(origin math.Vec3) bool {
	forward := e.anim.Transform().Forward()
	hit, ok := e.query.SphereCast(origin, forward, e.cfg.Head.ProbeRadius, e.cfg.Head.ProbeRange, e.cfg.Head.LevelMask)
	return ok && hit.IsObstacle()
}

// lookAlong turns a bone from its animated rotation toward the rotation that
// maps target onto the model forward. A zero target eases back to identity.
func (e *Engine) lookAlong(b pose.Bone, target math.Vec3) {
	rot := math.FromToRotation(target, e.anim.Transform().Forward())
	e.anim.SetBoneLocalRotation(b, e.anim.BoneLocalRotation(b).Slerp(rot, e.slerpTime))
}

type vec math.Vec3

func (v vec) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat32("x", v.X)
	enc.AddFloat32("y", v.Y)
	enc.AddFloat32("z", v.Z)
	return nil
}
