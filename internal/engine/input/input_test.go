package input

import (
	"testing"

	"github.com/Faultbox/midgard-locomotion/pkg/math"
)

func TestPlanarDirection(t *testing.T) {
	tests := []struct {
		name  string
		frame Frame
		want  math.Vec3
	}{
		{
			name:  "forward",
			frame: Frame{Vertical: 1, CameraForward: math.Forward, CameraRight: math.Right},
			want:  math.Vec3{Z: 1},
		},
		{
			name:  "tilted camera is flattened",
			frame: Frame{Vertical: 1, CameraForward: math.Vec3{Y: -1, Z: 1}, CameraRight: math.Right},
			want:  math.Vec3{Z: 1},
		},
		{
			name:  "diagonal is unnormalized",
			frame: Frame{Horizontal: 1, Vertical: 1, CameraForward: math.Forward, CameraRight: math.Right},
			want:  math.Vec3{X: 1, Z: 1},
		},
		{
			name:  "no input",
			frame: Frame{CameraForward: math.Forward, CameraRight: math.Right},
			want:  math.Vec3{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.frame.PlanarDirection()
			if got.Distance(tt.want) > 1e-5 {
				t.Errorf("PlanarDirection() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCameraBasis(t *testing.T) {
	fwd, right := Camera{}.Basis()
	if fwd.Distance(math.Forward) > 1e-6 || right.Distance(math.Right) > 1e-6 {
		t.Errorf("yaw 0 basis = %v, %v", fwd, right)
	}
}

func TestAxisSmoothing(t *testing.T) {
	a := NewAxis()
	if v := a.Update(1, 0.1); v < 0.299 || v > 0.301 {
		t.Errorf("after one step = %v, want 0.3", v)
	}
	for i := 0; i < 10; i++ {
		a.Update(1, 0.1)
	}
	if a.Value() != 1 {
		t.Errorf("held axis = %v, want 1", a.Value())
	}
	a.Update(-1, 0.1)
	if v := a.Value(); v > -0.299 || v < -0.301 {
		t.Errorf("snap reversal = %v, want -0.3", v)
	}
	for i := 0; i < 10; i++ {
		a.Update(0, 0.1)
	}
	if a.Value() != 0 {
		t.Errorf("released axis = %v, want 0", a.Value())
	}
}

func TestScriptSegments(t *testing.T) {
	s := NewScript([]Segment{
		{Duration: 0.5, Vertical: 1},
		{Duration: 0.5, Horizontal: -1},
	})
	if got := s.TotalDuration(); got != 1 {
		t.Errorf("TotalDuration = %v", got)
	}

	var frames []Frame
	for i := 0; i < 10; i++ {
		frames = append(frames, s.Next(0.125))
	}
	for i := 0; i < 4; i++ {
		if frames[i].Vertical != 1 || frames[i].Horizontal != 0 {
			t.Errorf("frame %d = %+v, want first segment", i, frames[i])
		}
	}
	for i := 4; i < 8; i++ {
		if frames[i].Horizontal != -1 || frames[i].Vertical != 0 {
			t.Errorf("frame %d = %+v, want second segment", i, frames[i])
		}
	}
	if frames[9].Horizontal != 0 || frames[9].Vertical != 0 || !s.Done() {
		t.Errorf("script should be exhausted, got %+v", frames[9])
	}
}
