package ik

import (
	"github.com/Faultbox/midgard-locomotion/internal/engine/character"
	"github.com/Faultbox/midgard-locomotion/internal/engine/pose"
	"github.com/Faultbox/midgard-locomotion/pkg/math"
)

// accelerationTilt leans the hips toward a change of direction. The change
// rotation is composed with a forward-to-up turn so the lean tips the up axis
// rather than the facing.
func (e *Engine) accelerationTilt(snap character.Snapshot) {
	if snap.ForwardVelocity <= e.cfg.Body.TiltMinVelocity {
		return
	}
	if math.Angle(snap.CurrentDirection, snap.PreviousDirection) == 0 {
		return
	}

	model := e.anim.Transform()
	forward := model.Forward()
	target := math.FromToRotation(forward, snap.PreviousDirection).Mul(math.FromToRotation(forward, model.Up()))

	// Not time scaled.
	hips := e.anim.BoneLocalRotation(pose.BoneHips)
	e.anim.SetBoneLocalRotation(pose.BoneHips, hips.Slerp(target, e.cfg.Body.TiltRate))
}
