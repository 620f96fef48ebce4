package math

// Transform is a rigid placement in world space (unit scale).
type Transform struct {
	Position Vec3
	Rotation Quat
}

// NewTransform returns a transform at position with identity rotation.
func NewTransform(position Vec3) Transform {
	return Transform{Position: position, Rotation: QuatIdentity()}
}

// Forward returns the world-space +Z axis of the transform.
func (t Transform) Forward() Vec3 {
	return t.Rotation.Rotate(Forward)
}

// Up returns the world-space +Y axis of the transform.
func (t Transform) Up() Vec3 {
	return t.Rotation.Rotate(Up)
}

// Right returns the world-space +X axis of the transform.
func (t Transform) Right() Vec3 {
	return t.Rotation.Rotate(Right)
}

// Matrix returns the local-to-world matrix.
func (t Transform) Matrix() Mat4 {
	return Translate(t.Position.X, t.Position.Y, t.Position.Z).Mul(t.Rotation.ToMat4())
}

// TransformPoint maps a local-space point to world space.
func (t Transform) TransformPoint(p Vec3) Vec3 {
	return t.Position.Add(t.Rotation.Rotate(p))
}

// InverseTransformPoint maps a world-space point to local space.
func (t Transform) InverseTransformPoint(p Vec3) Vec3 {
	return t.Rotation.Conjugate().Rotate(p.Sub(t.Position))
}
