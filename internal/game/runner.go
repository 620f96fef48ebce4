package game

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/midgard-locomotion/internal/engine/input"
	"github.com/Faultbox/midgard-locomotion/internal/logger"
	"github.com/Faultbox/midgard-locomotion/pkg/math"
)

// RunScript drives sim at a fixed frame rate from a scripted source. With
// frames of zero it runs until the script is exhausted. onFrame may be nil.
func RunScript(sim *Simulation, script *input.Script, frames int, frameRate float32, onFrame func(Report)) Stats {
	log := logger.Named("runner")
	dt := 1 / frameRate

	log.Info("starting headless run",
		zap.Int("frames", frames),
		zap.Float32("frame_rate", frameRate),
		zap.Float32("script_seconds", script.TotalDuration()),
	)

	for i := 0; frames == 0 || i < frames; i++ {
		if frames == 0 && script.Done() {
			break
		}
		r := sim.Frame(script, dt)
		if onFrame != nil {
			onFrame(r)
		}
		log.Debug("frame",
			zap.Int("frame", r.Frame),
			zap.Int("fixed", r.FixedSteps),
			zap.Object("position", LogVec(r.Position)),
			zap.Float32("forward_velocity", r.Snapshot.ForwardVelocity),
			zap.Float32("distance_covered", r.Snapshot.DistanceCovered),
			zap.Stringer("branch", r.Vertical.Branch),
			zap.Bool("crouching", r.IK.Crouching),
		)
	}

	return sim.Stats()
}

// LogVec adapts a vector for structured logging.
type LogVec math.Vec3

func (v LogVec) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddFloat32("x", v.X)
	enc.AddFloat32("y", v.Y)
	enc.AddFloat32("z", v.Z)
	return nil
}
