// Package input turns raw two-axis controls into per-frame movement input.
package input

import (
	gomath "math"

	"github.com/Faultbox/midgard-locomotion/pkg/math"
)

// Frame is the input sampled for one rendered frame.
type Frame struct {
	Horizontal float32 // strafe axis, -1 (left) to 1 (right)
	Vertical   float32 // forward axis, -1 (back) to 1 (forward)

	CameraForward math.Vec3
	CameraRight   math.Vec3
}

// PlanarDirection combines the axes with the camera basis flattened onto the
// ground plane. The result is unnormalized: diagonal input is longer.
func (f Frame) PlanarDirection() math.Vec3 {
	forward := f.CameraForward.Flat().Normalize()
	right := f.CameraRight.Flat().Normalize()
	return right.Scale(f.Horizontal).Add(forward.Scale(f.Vertical))
}

// Source produces one input frame per rendered frame.
type Source interface {
	Next(dt float32) Frame
}

// Camera is a yaw-only view basis.
type Camera struct {
	Yaw float32 // radians, 0 looks along +Z
}

// Basis returns the camera forward and right vectors.
func (c Camera) Basis() (forward, right math.Vec3) {
	s := float32(gomath.Sin(float64(c.Yaw)))
	co := float32(gomath.Cos(float64(c.Yaw)))
	return math.Vec3{X: s, Z: co}, math.Vec3{X: co, Z: -s}
}

// Axis smooths a digital control into an analog value the way game-engine
// virtual axes do: it moves toward the pressed direction at Sensitivity
// units/s and falls back to zero at Gravity units/s.
type Axis struct {
	Sensitivity float32
	Gravity     float32
	Snap        bool // jump to zero when the opposite direction is pressed

	value float32
}

// NewAxis returns an axis with common keyboard settings.
func NewAxis() *Axis {
	return &Axis{Sensitivity: 3, Gravity: 3, Snap: true}
}

// Update advances the axis toward raw (-1, 0 or 1) and returns the new value.
func (a *Axis) Update(raw int, dt float32) float32 {
	target := float32(raw)
	switch {
	case raw == 0:
		step := a.Gravity * dt
		if a.value > 0 {
			a.value = max(0, a.value-step)
		} else {
			a.value = min(0, a.value+step)
		}
	default:
		if a.Snap && a.value*target < 0 {
			a.value = 0
		}
		a.value = math.Clamp(a.value+target*a.Sensitivity*dt, -1, 1)
	}
	return a.value
}

// Value returns the current axis value.
func (a *Axis) Value() float32 {
	return a.value
}
