// Package math provides math types and functions for character simulation.
//
// The coordinate convention is Y up, +Z forward and +X right. Rotations are
// unit quaternions applied as q * v * q^-1.
package math

import "math"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Axis vectors.
var (
	Up      = Vec3{0, 1, 0}
	Down    = Vec3{0, -1, 0}
	Forward = Vec3{0, 0, 1}
	Right   = Vec3{1, 0, 0}
)

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// LengthSq returns the squared magnitude.
func (v Vec3) LengthSq() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// Flat returns v with the Y component set to zero.
func (v Vec3) Flat() Vec3 {
	return Vec3{v.X, 0, v.Z}
}

// IsZero reports whether every component is exactly zero.
func (v Vec3) IsZero() bool {
	return v == Vec3{}
}

// Angle returns the unsigned angle between a and b in degrees.
// Returns 0 when either vector has no length.
func Angle(a, b Vec3) float32 {
	denom := math.Sqrt(float64(a.LengthSq()) * float64(b.LengthSq()))
	if denom < 1e-15 {
		return 0
	}
	cos := Clamp(float32(float64(a.Dot(b))/denom), -1, 1)
	return float32(math.Acos(float64(cos)) * 180 / math.Pi)
}

// Lerp linearly interpolates from a to b. t is clamped to [0, 1].
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*Clamp01(t)
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Clamp01 limits x to [0, 1].
func Clamp01(x float32) float32 {
	return Clamp(x, 0, 1)
}
