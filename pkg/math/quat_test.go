package math

import (
	"math"
	"testing"
)

func vecNear(a, b Vec3, eps float32) bool {
	return a.Distance(b) <= eps
}

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := float32(math.Sqrt(float64(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)))
	if math.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatSlerp(t *testing.T) {
	q1 := QuatIdentity()
	q2 := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, float32(math.Pi/2))

	result0 := q1.Slerp(q2, 0)
	if math.Abs(float64(result0.W-q1.W)) > 0.001 {
		t.Errorf("Slerp at t=0 should equal q1")
	}

	result1 := q1.Slerp(q2, 1)
	if math.Abs(float64(result1.W-q2.W)) > 0.001 {
		t.Errorf("Slerp at t=1 should equal q2")
	}

	// For 90 degree rotation, halfway should be 45 degrees
	result5 := q1.Slerp(q2, 0.5)
	expectedW := float32(math.Cos(float64(math.Pi / 8)))
	if math.Abs(float64(result5.W-expectedW)) > 0.01 {
		t.Errorf("Slerp at t=0.5: expected W ~%v, got %v", expectedW, result5.W)
	}
}

func TestQuatSlerpClampsFactor(t *testing.T) {
	q1 := QuatIdentity()
	q2 := QuatFromAxisAngle(Up, float32(math.Pi/3))

	over := q1.Slerp(q2, 7.5)
	if math.Abs(float64(over.Dot(q2))) < 0.9999 {
		t.Errorf("Slerp with t>1 should saturate at q2, got %+v", over)
	}
	under := q1.Slerp(q2, -2)
	if math.Abs(float64(under.Dot(q1))) < 0.9999 {
		t.Errorf("Slerp with t<0 should saturate at q1, got %+v", under)
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, float32(math.Pi/2))

	expectedW := float32(math.Cos(math.Pi / 4))
	expectedY := float32(math.Sin(math.Pi / 4))

	if math.Abs(float64(q.W-expectedW)) > 0.001 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", expectedW, q.W)
	}
	if math.Abs(float64(q.Y-expectedY)) > 0.001 {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", expectedY, q.Y)
	}
}

func TestQuatRotate(t *testing.T) {
	q := QuatFromAxisAngle(Up, float32(math.Pi/2))
	got := q.Rotate(Forward)
	if !vecNear(got, Right, 0.0001) {
		t.Errorf("90 degree yaw of forward: got %v, want %v", got, Right)
	}
}

func TestFromToRotation(t *testing.T) {
	tests := []struct {
		name     string
		from, to Vec3
	}{
		{"up to slope", Up, Vec3{0.3, 1, 0.1}},
		{"forward to right", Forward, Right},
		{"unnormalized", Vec3{0, 5, 0}, Vec3{0, 0, -2}},
		{"antiparallel", Up, Down},
		{"antiparallel x", Right, Vec3{-1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := FromToRotation(tt.from, tt.to)
			got := q.Rotate(tt.from.Normalize())
			if !vecNear(got, tt.to.Normalize(), 0.001) {
				t.Errorf("rotated %v = %v, want %v", tt.from, got, tt.to.Normalize())
			}
		})
	}
}

func TestFromToRotationZeroIsIdentity(t *testing.T) {
	if q := FromToRotation(Vec3{}, Forward); q != QuatIdentity() {
		t.Errorf("zero from vector: got %+v, want identity", q)
	}
	if q := FromToRotation(Forward, Vec3{}); q != QuatIdentity() {
		t.Errorf("zero to vector: got %+v, want identity", q)
	}
}

func TestLookRotation(t *testing.T) {
	dirs := []Vec3{
		{1, 0, 0},
		{0, 0, -1},
		{-3, 0, 4},
		{1, 0.5, 1},
	}
	for _, d := range dirs {
		q := LookRotation(d, Up)
		if got := q.Rotate(Forward); !vecNear(got, d.Normalize(), 0.001) {
			t.Errorf("LookRotation(%v) forward = %v", d, got)
		}
		if up := q.Rotate(Up); up.Y <= 0 {
			t.Errorf("LookRotation(%v) up axis flipped: %v", d, up)
		}
	}
}

func TestLookRotationStraightUp(t *testing.T) {
	q := LookRotation(Up, Up)
	if got := q.Rotate(Forward); !vecNear(got, Up, 0.001) {
		t.Errorf("LookRotation(up) forward = %v, want %v", got, Up)
	}
}

func TestTransformPointRoundTrip(t *testing.T) {
	tr := Transform{
		Position: Vec3{2, 1, -3},
		Rotation: QuatFromAxisAngle(Up, 1.1),
	}
	p := Vec3{0.4, -1.2, 2}

	world := tr.TransformPoint(p)
	if back := tr.InverseTransformPoint(world); !vecNear(back, p, 0.0001) {
		t.Errorf("InverseTransformPoint(TransformPoint(p)) = %v, want %v", back, p)
	}
	if m := tr.Matrix().TransformVec3(p); !vecNear(m, world, 0.0001) {
		t.Errorf("Matrix().TransformVec3 = %v, want %v", m, world)
	}
}

func TestTransformAxes(t *testing.T) {
	tr := NewTransform(Vec3{})
	if tr.Forward() != Forward || tr.Up() != Up || tr.Right() != Right {
		t.Errorf("identity axes: forward %v up %v right %v", tr.Forward(), tr.Up(), tr.Right())
	}
}
