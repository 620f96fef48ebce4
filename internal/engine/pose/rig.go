package pose

import (
	gomath "math"

	"github.com/Faultbox/midgard-locomotion/pkg/math"
)

// Skeleton holds the bind pose in model space (model origin at the feet).
type Skeleton struct {
	PelvisHeight float32 `yaml:"pelvis_height"`
	ChestHeight  float32 `yaml:"chest_height"`
	NeckHeight   float32 `yaml:"neck_height"`
	HeadHeight   float32 `yaml:"head_height"`
	FootHeight   float32 `yaml:"foot_height"`
	FootSpacing  float32 `yaml:"foot_spacing"` // lateral distance from centre to each foot
	StepHeight   float32 `yaml:"step_height"`  // foot lift at mid-swing while moving
	RootOffset   float32 `yaml:"root_offset"`  // model origin below the locomotion root
}

// DefaultSkeleton returns proportions of a 1.8 unit tall humanoid.
func DefaultSkeleton() Skeleton {
	return Skeleton{
		PelvisHeight: 1.0,
		ChestHeight:  1.35,
		NeckHeight:   1.55,
		HeadHeight:   1.68,
		FootHeight:   0.08,
		FootSpacing:  0.11,
		StepHeight:   0.12,
		RootOffset:   1.15,
	}
}

func (s Skeleton) bindOffset(b Bone) math.Vec3 {
	switch b {
	case BoneHips:
		return math.Vec3{Y: s.PelvisHeight}
	case BoneUpperChest:
		return math.Vec3{Y: s.ChestHeight}
	case BoneNeck:
		return math.Vec3{Y: s.NeckHeight}
	case BoneHead:
		return math.Vec3{Y: s.HeadHeight}
	case BoneRightFoot:
		return math.Vec3{X: s.FootSpacing, Y: s.FootHeight}
	default:
		return math.Vec3{X: -s.FootSpacing, Y: s.FootHeight}
	}
}

type goalState struct {
	position       math.Vec3
	rotation       math.Quat
	positionWeight float32
	rotationWeight float32
}

// Rig is an in-memory animator playing a procedural walk cycle on a fixed
// skeleton. Clip blending is outside its scope: Evaluate simply rebuilds the
// animated pose every frame, which also drops IK weights set last frame.
type Rig struct {
	skeleton  Skeleton
	transform math.Transform

	animatedFeet [goalCount]math.Vec3
	animatedBody math.Vec3
	body         math.Vec3
	local        [boneCount]math.Quat
	goals        [goalCount]goalState

	floats   map[string]float32
	bools    map[string]bool
	triggers map[string]bool
}

// NewRig creates a rig at the origin with the given skeleton.
func NewRig(s Skeleton) *Rig {
	r := &Rig{
		skeleton:  s,
		transform: math.NewTransform(math.Vec3{}),
		floats:    make(map[string]float32),
		bools:     make(map[string]bool),
		triggers:  make(map[string]bool),
	}
	r.Evaluate()
	return r
}

// Skeleton returns the bind pose proportions.
func (r *Rig) Skeleton() Skeleton {
	return r.skeleton
}

// Follow places the model under a locomotion root transform.
func (r *Rig) Follow(root math.Transform) {
	r.transform = math.Transform{
		Position: root.Position.Sub(math.Vec3{Y: r.skeleton.RootOffset}),
		Rotation: root.Rotation,
	}
}

// SetTransform places the model directly.
func (r *Rig) SetTransform(t math.Transform) {
	r.transform = t
}

// Evaluate samples the walk cycle for the current parameters and resets all
// procedural overrides.
func (r *Rig) Evaluate() {
	phase := float64(r.floats[ParamDistanceCovered])
	c := float32(gomath.Cos(2 * gomath.Pi * phase))
	rightCurve := 0.5 + 0.5*c
	leftCurve := 0.5 - 0.5*c
	r.floats[ParamRightFootCurve] = rightCurve
	r.floats[ParamLeftFootCurve] = leftCurve

	var lift [goalCount]float32
	if r.bools[ParamLocomotion] {
		lift[GoalRightFoot] = r.skeleton.StepHeight * (1 - rightCurve)
		lift[GoalLeftFoot] = r.skeleton.StepHeight * (1 - leftCurve)
	}

	for g := Goal(0); g < goalCount; g++ {
		off := r.skeleton.bindOffset(g.Bone()).Add(math.Vec3{Y: lift[g]})
		r.animatedFeet[g] = r.transform.TransformPoint(off)
		r.goals[g] = goalState{
			position: r.animatedFeet[g],
			rotation: r.transform.Rotation,
		}
	}
	for b := range r.local {
		r.local[b] = math.QuatIdentity()
	}
	r.animatedBody = r.transform.TransformPoint(r.skeleton.bindOffset(BoneHips))
	r.body = r.animatedBody

	for name := range r.triggers {
		delete(r.triggers, name)
	}
}

// Transform implements Animator.
func (r *Rig) Transform() math.Transform {
	return r.transform
}

// BoneWorldPosition implements Animator. Upper-body bones ride on the body
// position so pelvis shifts carry them.
func (r *Rig) BoneWorldPosition(b Bone) math.Vec3 {
	switch b {
	case BoneRightFoot:
		return r.animatedFeet[GoalRightFoot]
	case BoneLeftFoot:
		return r.animatedFeet[GoalLeftFoot]
	case BoneHips:
		return r.body
	}
	shift := r.body.Sub(r.animatedBody)
	return r.transform.TransformPoint(r.skeleton.bindOffset(b)).Add(shift)
}

// BoneLocalRotation implements Animator.
func (r *Rig) BoneLocalRotation(b Bone) math.Quat {
	return r.local[b]
}

// SetBoneLocalRotation implements Animator.
func (r *Rig) SetBoneLocalRotation(b Bone, rot math.Quat) {
	r.local[b] = rot
}

// IKGoalPosition implements Animator.
func (r *Rig) IKGoalPosition(g Goal) math.Vec3 {
	return r.goals[g].position
}

// SetIKGoalPosition implements Animator.
func (r *Rig) SetIKGoalPosition(g Goal, pos math.Vec3) {
	r.goals[g].position = pos
}

// SetIKGoalRotation implements Animator.
func (r *Rig) SetIKGoalRotation(g Goal, rot math.Quat) {
	r.goals[g].rotation = rot
}

// SetIKGoalPositionWeight implements Animator.
func (r *Rig) SetIKGoalPositionWeight(g Goal, w float32) {
	r.goals[g].positionWeight = math.Clamp01(w)
}

// SetIKGoalRotationWeight implements Animator.
func (r *Rig) SetIKGoalRotationWeight(g Goal, w float32) {
	r.goals[g].rotationWeight = math.Clamp01(w)
}

// BodyPosition implements Animator.
func (r *Rig) BodyPosition() math.Vec3 {
	return r.body
}

// SetBodyPosition implements Animator.
func (r *Rig) SetBodyPosition(pos math.Vec3) {
	r.body = pos
}

// Float implements Animator.
func (r *Rig) Float(name string) float32 {
	return r.floats[name]
}

// SetFloat implements Animator.
func (r *Rig) SetFloat(name string, v float32) {
	r.floats[name] = v
}

// Bool implements Animator.
func (r *Rig) Bool(name string) bool {
	return r.bools[name]
}

// SetBool implements Animator.
func (r *Rig) SetBool(name string, v bool) {
	r.bools[name] = v
}

// SetTrigger implements Animator. Triggers stay set until the next Evaluate.
func (r *Rig) SetTrigger(name string) {
	r.triggers[name] = true
}

// Triggered reports whether name was triggered since the last Evaluate.
func (r *Rig) Triggered(name string) bool {
	return r.triggers[name]
}

// Final is the resolved pose after IK weights are applied.
type Final struct {
	RightFoot       math.Vec3
	LeftFoot        math.Vec3
	RightFootRot    math.Quat
	LeftFootRot     math.Quat
	Body            math.Vec3
	HipsLocal       math.Quat
	NeckLocal       math.Quat
	UpperChestLocal math.Quat
}

// Resolve blends IK goals over the animated pose by their weights.
func (r *Rig) Resolve() Final {
	foot := func(g Goal) (math.Vec3, math.Quat) {
		gs := r.goals[g]
		anim := r.animatedFeet[g]
		pos := anim.Add(gs.position.Sub(anim).Scale(gs.positionWeight))
		rot := r.transform.Rotation.Slerp(gs.rotation, gs.rotationWeight)
		return pos, rot
	}
	f := Final{
		Body:            r.body,
		HipsLocal:       r.local[BoneHips],
		NeckLocal:       r.local[BoneNeck],
		UpperChestLocal: r.local[BoneUpperChest],
	}
	f.RightFoot, f.RightFootRot = foot(GoalRightFoot)
	f.LeftFoot, f.LeftFootRot = foot(GoalLeftFoot)
	return f
}
