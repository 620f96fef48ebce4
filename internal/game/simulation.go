// Package game wires the level, the character and the solvers into a frame
// loop and drives it headless or from an SDL window.
package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-locomotion/internal/config"
	"github.com/Faultbox/midgard-locomotion/internal/engine/capsule"
	"github.com/Faultbox/midgard-locomotion/internal/engine/character"
	"github.com/Faultbox/midgard-locomotion/internal/engine/ik"
	"github.com/Faultbox/midgard-locomotion/internal/engine/input"
	"github.com/Faultbox/midgard-locomotion/internal/engine/pose"
	"github.com/Faultbox/midgard-locomotion/internal/engine/spatial"
	"github.com/Faultbox/midgard-locomotion/internal/logger"
	"github.com/Faultbox/midgard-locomotion/pkg/math"
)

// Simulation owns one character in one level and advances it frame by frame.
type Simulation struct {
	fixedStep     float32
	maxFixedSteps int

	level *spatial.Level
	body  *capsule.Controller
	rig   *pose.Rig
	loco  *character.Locomotion
	ik    *ik.Engine
	log   *zap.Logger

	accumulator float32
	stats       Stats
}

// Report describes one rendered frame.
type Report struct {
	Frame      int
	FixedSteps int
	Position   math.Vec3
	Snapshot   character.Snapshot
	Vertical   character.State
	IK         ik.State
	Pose       pose.Final
	Stepped    bool
}

// Stats accumulates over a run.
type Stats struct {
	Frames      int
	FixedSteps  int
	Time        float32 // simulated seconds
	DroppedTime float32 // time discarded by the fixed step cap
	Distance    float32 // horizontal distance travelled
	Steps       int     // step triggers fired
	Ungrounded  int     // fixed ticks with at least one foot off the ground
	CrouchTicks int
	HeadBends   int // fixed ticks that bent the neck or chest
}

// NewSimulation builds the level and character from cfg.
func NewSimulation(cfg *config.Config) (*Simulation, error) {
	level, err := BuildLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("building level: %w", err)
	}

	start := math.NewTransform(cfg.Simulation.Start)
	body := capsule.New(cfg.Capsule, start, level, level, spatial.LayerAll)

	rig := pose.NewRig(cfg.Skeleton)
	rig.Follow(start)
	rig.Evaluate()

	loco, err := character.New(cfg.Locomotion, body, level, rig)
	if err != nil {
		return nil, fmt.Errorf("creating locomotion: %w", err)
	}

	engine, err := ik.New(cfg.IK, rig, level, loco)
	if err != nil {
		return nil, fmt.Errorf("creating ik engine: %w", err)
	}
	body.AddListener(engine)

	return &Simulation{
		fixedStep:     cfg.Simulation.FixedStep,
		maxFixedSteps: cfg.Simulation.MaxFixedSteps,
		level:         level,
		body:          body,
		rig:           rig,
		loco:          loco,
		ik:            engine,
		log:           logger.Named("simulation"),
	}, nil
}

// Frame advances one rendered frame of length dt. Fixed ticks run first so
// pose application always reads this frame's solution.
func (s *Simulation) Frame(src input.Source, dt float32) Report {
	before := s.body.Transform().Position

	steps := s.runFixed(dt)

	s.loco.Update(src.Next(dt), dt)

	s.rig.Follow(s.loco.Transform())
	s.rig.Evaluate()
	s.ik.OnAnimatorIK()
	final := s.rig.Resolve()

	s.ik.LateUpdate(dt)

	r := Report{
		Frame:      s.stats.Frames,
		FixedSteps: steps,
		Position:   s.body.Transform().Position,
		Snapshot:   s.loco.Snapshot(),
		Vertical:   s.loco.State(),
		IK:         s.ik.State(),
		Pose:       final,
		Stepped:    s.rig.Triggered(pose.ParamStep),
	}

	s.stats.Frames++
	s.stats.Time += dt
	s.stats.Distance += r.Position.Sub(before).Flat().Length()
	if r.Stepped {
		s.stats.Steps++
	}
	return r
}

func (s *Simulation) runFixed(dt float32) int {
	s.accumulator += dt
	steps := 0
	for s.accumulator >= s.fixedStep && steps < s.maxFixedSteps {
		s.loco.FixedUpdate(s.fixedStep)
		s.rig.Follow(s.loco.Transform())
		s.ik.FixedUpdate()
		s.accumulator -= s.fixedStep
		steps++
		s.countFixed()
	}
	if s.accumulator >= s.fixedStep {
		s.log.Warn("fixed step cap reached, dropping time",
			zap.Int("steps", steps),
			zap.Float32("dropped", s.accumulator),
		)
		s.stats.DroppedTime += s.accumulator
		s.accumulator = 0
	}
	s.stats.FixedSteps += steps
	return steps
}

func (s *Simulation) countFixed() {
	st := s.ik.State()
	for _, f := range st.Feet {
		if !f.Grounded {
			s.stats.Ungrounded++
			break
		}
	}
	if st.Crouching {
		s.stats.CrouchTicks++
	}
	if st.HeadSteps > 0 {
		s.stats.HeadBends++
	}
}

// Stats returns the totals so far.
func (s *Simulation) Stats() Stats {
	return s.stats
}

// Level returns the simulated level.
func (s *Simulation) Level() *spatial.Level {
	return s.level
}

// Position returns the locomotion root position.
func (s *Simulation) Position() math.Vec3 {
	return s.body.Transform().Position
}
