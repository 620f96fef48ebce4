package character

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/midgard-locomotion/internal/engine/spatial"
	"github.com/Faultbox/midgard-locomotion/pkg/math"
)

// solveHipClearance lowers the standing band while an obstacle blocks the
// hips. The probe drops HipProbeStep per step for at most HipProbeMaxSteps;
// the band tracks the last probed height even if the cap is reached blocked.
func (l *Locomotion) solveHipClearance() {
	l.hipSteps = 0
	pelvis := l.pelvisPosition()
	forward := l.body.Transform().Forward()

	if !l.obstacleAhead(pelvis, forward) {
		l.currentStandingPelvisMax = l.cfg.StandingPelvisHeightMax
		l.currentStandingPelvisMin = l.cfg.StandingPelvisHeightMin
		return
	}

	var offset float32
	for l.hipSteps < HipProbeMaxSteps {
		l.hipSteps++
		offset -= HipProbeStep
		l.currentStandingPelvisMax = pelvis.Y + offset
		l.currentStandingPelvisMin = pelvis.Y + offset
		if !l.obstacleAhead(pelvis.Add(math.Vec3{Y: offset}), forward) {
			break
		}
	}
	l.log.Debug("hip clearance",
		zap.Int("steps", l.hipSteps),
		zap.Float32("standing_height", l.currentStandingPelvisMax),
	)
}

func (l *Locomotion) obstacleAhead(origin, forward math.Vec3) bool {
	hit, ok := l.query.SphereCast(origin, forward, HipProbeRadius, HipProbeRange, l.cfg.LevelMask)
	return ok && hit.IsObstacle()
}

// groundDistance casts straight down from the body origin. A miss returns
// NoGround.
func (l *Locomotion) groundDistance() float32 {
	origin := l.body.Transform().Position
	hit, ok := l.query.Raycast(origin, math.Down, spatial.Infinity, l.cfg.LevelMask)
	if !ok {
		return NoGround
	}
	return hit.Point.Sub(origin).Length()
}

// vec adapts a vector for structured logging.
type vec math.Vec3

func (v vec) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat32("x", v.X)
	enc.AddFloat32("y", v.Y)
	enc.AddFloat32("z", v.Z)
	return nil
}
