package pose

import (
	"testing"

	"github.com/Faultbox/midgard-locomotion/pkg/math"
)

func TestRigFollowAppliesRootOffset(t *testing.T) {
	s := DefaultSkeleton()
	r := NewRig(s)
	r.Follow(math.NewTransform(math.Vec3{X: 2, Y: 3, Z: -1}))

	got := r.Transform().Position
	want := math.Vec3{X: 2, Y: 3 - s.RootOffset, Z: -1}
	if got.Distance(want) > 1e-5 {
		t.Errorf("model position = %v, want %v", got, want)
	}
}

func TestRigEvaluatePlacesFeet(t *testing.T) {
	s := DefaultSkeleton()
	r := NewRig(s)
	r.SetTransform(math.NewTransform(math.Vec3{Y: 0.5}))
	r.Evaluate()

	right := r.BoneWorldPosition(BoneRightFoot)
	if right.Distance(math.Vec3{X: s.FootSpacing, Y: 0.5 + s.FootHeight}) > 1e-5 {
		t.Errorf("right foot = %v", right)
	}
	if r.IKGoalPosition(GoalLeftFoot) != r.BoneWorldPosition(BoneLeftFoot) {
		t.Error("IK goal should start at the animated foot")
	}
}

func TestRigIKNeedsWeightEveryFrame(t *testing.T) {
	r := NewRig(DefaultSkeleton())
	target := math.Vec3{X: 1, Y: 2, Z: 3}

	r.SetIKGoalPosition(GoalRightFoot, target)
	if got := r.Resolve().RightFoot; got == target {
		t.Error("goal position applied without weight")
	}

	r.SetIKGoalPositionWeight(GoalRightFoot, 1)
	if got := r.Resolve().RightFoot; got != target {
		t.Errorf("weighted goal = %v, want %v", got, target)
	}

	r.Evaluate()
	r.SetIKGoalPosition(GoalRightFoot, target)
	if got := r.Resolve().RightFoot; got == target {
		t.Error("weight leaked into the next frame")
	}
}

func TestRigStepLiftFollowsCurves(t *testing.T) {
	s := DefaultSkeleton()
	r := NewRig(s)
	r.SetBool(ParamLocomotion, true)
	r.SetFloat(ParamDistanceCovered, 0.5)
	r.Evaluate()

	if rc := r.Float(ParamRightFootCurve); rc > 1e-5 {
		t.Errorf("right curve at half stride = %v, want 0", rc)
	}
	lift := r.BoneWorldPosition(BoneRightFoot).Y - s.FootHeight
	if d := lift - s.StepHeight; d > 1e-5 || d < -1e-5 {
		t.Errorf("right foot lift = %v, want %v", lift, s.StepHeight)
	}
	if ll := r.BoneWorldPosition(BoneLeftFoot).Y - s.FootHeight; ll > 1e-5 {
		t.Errorf("planted left foot lifted by %v", ll)
	}
}

func TestRigBodyShiftCarriesUpperBones(t *testing.T) {
	r := NewRig(DefaultSkeleton())
	before := r.BoneWorldPosition(BoneHead)

	r.SetBodyPosition(r.BodyPosition().Sub(math.Vec3{Y: 0.2}))
	after := r.BoneWorldPosition(BoneHead)
	if d := before.Y - after.Y; d < 0.199 || d > 0.201 {
		t.Errorf("head moved by %v, want 0.2", d)
	}
}

func TestRigTriggersClearOnEvaluate(t *testing.T) {
	r := NewRig(DefaultSkeleton())
	r.SetTrigger(ParamStep)
	if !r.Triggered(ParamStep) {
		t.Fatal("trigger not recorded")
	}
	r.Evaluate()
	if r.Triggered(ParamStep) {
		t.Error("trigger survived Evaluate")
	}
}
