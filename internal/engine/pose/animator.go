// Package pose defines the pose-playback interface the solvers write into and
// an in-memory rig implementing it.
package pose

import "github.com/Faultbox/midgard-locomotion/pkg/math"

// Bone identifies a humanoid bone.
type Bone uint8

const (
	BoneHips Bone = iota
	BoneUpperChest
	BoneNeck
	BoneHead
	BoneRightFoot
	BoneLeftFoot
	boneCount
)

var boneNames = [boneCount]string{"hips", "upper_chest", "neck", "head", "right_foot", "left_foot"}

// String returns the bone name.
func (b Bone) String() string {
	if b < boneCount {
		return boneNames[b]
	}
	return "unknown"
}

// Goal identifies an IK end effector.
type Goal uint8

const (
	GoalRightFoot Goal = iota
	GoalLeftFoot
	goalCount
)

// String returns the goal name.
func (g Goal) String() string {
	if g == GoalRightFoot {
		return "right_foot"
	}
	return "left_foot"
}

// Bone returns the bone driven by the goal.
func (g Goal) Bone() Bone {
	if g == GoalRightFoot {
		return BoneRightFoot
	}
	return BoneLeftFoot
}

// Animation parameter names.
const (
	ParamLocomotion      = "Locomotion"
	ParamVelocity        = "Velocity"
	ParamDistanceCovered = "DistanceCovered"
	ParamRightFootCurve  = "RightFootCurve"
	ParamLeftFootCurve   = "LeftFootCurve"
	ParamMirror          = "mirror"
	ParamStep            = "step"
)

// Animator is the pose-playback collaborator. Reads return the animated pose
// of the current frame; writes are applied when the frame is finalized.
type Animator interface {
	// Transform returns the world placement of the animated model.
	Transform() math.Transform

	BoneWorldPosition(b Bone) math.Vec3
	BoneLocalRotation(b Bone) math.Quat
	SetBoneLocalRotation(b Bone, rot math.Quat)

	IKGoalPosition(g Goal) math.Vec3
	SetIKGoalPosition(g Goal, pos math.Vec3)
	SetIKGoalRotation(g Goal, rot math.Quat)
	SetIKGoalPositionWeight(g Goal, w float32)
	SetIKGoalRotationWeight(g Goal, w float32)

	// BodyPosition is the animated pelvis position in world space.
	BodyPosition() math.Vec3
	SetBodyPosition(pos math.Vec3)

	Float(name string) float32
	SetFloat(name string, v float32)
	Bool(name string) bool
	SetBool(name string, v bool)
	SetTrigger(name string)
}
