package ik

import (
	"go.uber.org/zap"

	"github.com/Faultbox/midgard-locomotion/internal/engine/character"
	"github.com/Faultbox/midgard-locomotion/internal/engine/pose"
)

func (e *Engine) publishStride(snap character.Snapshot) {
	switch e.cfg.Body.StrideMode {
	case StrideStep:
		if snap.DistanceCovered > snap.StrideLength/2 {
			e.step()
		}
	default:
		// The published value is the one read before the reset.
		if snap.DistanceCovered >= 1 {
			e.loco.ResetStride()
		}
		e.anim.SetFloat(pose.ParamDistanceCovered, snap.DistanceCovered)
	}
}

func (e *Engine) step() {
	e.loco.ResetStride()
	e.anim.SetTrigger(pose.ParamStep)

	e.stepsUntilMirror--
	if e.stepsUntilMirror > 0 {
		return
	}
	mirror := !e.anim.Bool(pose.ParamMirror)
	e.anim.SetBool(pose.ParamMirror, mirror)
	e.stepsUntilMirror = max(e.cfg.Body.StepsPerMirror, 1)
	e.log.Debug("mirror", zap.Bool("mirror", mirror))
}
