package spatial

import (
	gomath "math"

	"github.com/Faultbox/midgard-locomotion/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// NewRay creates a ray, normalizing the direction.
func NewRay(origin, direction math.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// NewAABB creates an AABB from min and max corners, handling swapped corners.
func NewAABB(minX, minY, minZ, maxX, maxY, maxZ float32) AABB {
	box := AABB{
		Min: math.Vec3{X: minX, Y: minY, Z: minZ},
		Max: math.Vec3{X: maxX, Y: maxY, Z: maxZ},
	}
	if box.Min.X > box.Max.X {
		box.Min.X, box.Max.X = box.Max.X, box.Min.X
	}
	if box.Min.Y > box.Max.Y {
		box.Min.Y, box.Max.Y = box.Max.Y, box.Min.Y
	}
	if box.Min.Z > box.Max.Z {
		box.Min.Z, box.Max.Z = box.Max.Z, box.Min.Z
	}
	return box
}

// BoxAt creates an AABB from a center point and half extents.
func BoxAt(center, half math.Vec3) AABB {
	return NewAABB(
		center.X-half.X, center.Y-half.Y, center.Z-half.Z,
		center.X+half.X, center.Y+half.Y, center.Z+half.Z,
	)
}

// Expand returns the box grown by r on every side.
func (b AABB) Expand(r float32) AABB {
	d := math.Vec3{X: r, Y: r, Z: r}
	return AABB{Min: b.Min.Sub(d), Max: b.Max.Add(d)}
}

// Contains reports whether p lies inside the box (inclusive).
func (b AABB) Contains(p math.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// IntersectAABB tests ray intersection with an axis-aligned bounding box.
// Returns the entry distance, the outward normal of the entry face and
// whether an intersection occurred. Rays starting inside the box do not hit.
func (r Ray) IntersectAABB(box AABB) (t float32, normal math.Vec3, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	origin := [3]float32{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float32{r.Direction.X, r.Direction.Y, r.Direction.Z}
	lo := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	entryAxis := -1
	var entrySign float32

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
				return 0, math.Vec3{}, false
			}
			continue
		}
		t1 := (lo[axis] - origin[axis]) / dir[axis]
		t2 := (hi[axis] - origin[axis]) / dir[axis]
		sign := float32(-1) // entering through the min face
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tmin {
			tmin = t1
			entryAxis = axis
			entrySign = sign
		}
		if t2 < tmax {
			tmax = t2
		}
	}

	if tmax < tmin || tmax < 0 || tmin < 0 || entryAxis < 0 {
		return 0, math.Vec3{}, false
	}

	switch entryAxis {
	case 0:
		normal = math.Vec3{X: entrySign}
	case 1:
		normal = math.Vec3{Y: entrySign}
	default:
		normal = math.Vec3{Z: entrySign}
	}
	return tmin, normal, true
}
