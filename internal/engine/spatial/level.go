package spatial

import (
	"github.com/Faultbox/midgard-locomotion/pkg/math"
)

// Box is a static axis-aligned collider.
type Box struct {
	Name     string
	Bounds   AABB
	Category Category
	Layer    LayerMask
}

// Trigger is a non-blocking volume that reports enter/exit events.
type Trigger struct {
	Name     string
	Bounds   AABB
	Category Category
}

// Level is a static collection of colliders answering spatial queries.
type Level struct {
	boxes        []Box
	triggers     []Trigger
	terrain      *Heightfield
	terrainLayer LayerMask
}

// NewLevel creates an empty level.
func NewLevel() *Level {
	return &Level{}
}

// AddBox adds a blocking box collider.
func (l *Level) AddBox(b Box) {
	if b.Layer == 0 {
		b.Layer = LayerLevel
	}
	l.boxes = append(l.boxes, b)
}

// AddTrigger adds a trigger volume.
func (l *Level) AddTrigger(t Trigger) {
	l.triggers = append(l.triggers, t)
}

// SetTerrain installs the ground heightfield on the given layer.
func (l *Level) SetTerrain(hf *Heightfield, layer LayerMask) {
	if layer == 0 {
		layer = LayerLevel
	}
	l.terrain = hf
	l.terrainLayer = layer
}

// Terrain returns the installed heightfield, or nil.
func (l *Level) Terrain() *Heightfield {
	return l.terrain
}

// Boxes returns the box colliders.
func (l *Level) Boxes() []Box {
	return l.boxes
}

// Raycast implements Query.
func (l *Level) Raycast(origin, direction math.Vec3, maxDistance float32, mask LayerMask) (Hit, bool) {
	return l.cast(NewRay(origin, direction), 0, maxDistance, mask)
}

// SphereCast implements Query. Boxes are inflated by radius; the terrain is
// tested with the centre ray only.
func (l *Level) SphereCast(origin, direction math.Vec3, radius, maxDistance float32, mask LayerMask) (Hit, bool) {
	return l.cast(NewRay(origin, direction), radius, maxDistance, mask)
}

func (l *Level) cast(r Ray, radius, maxDistance float32, mask LayerMask) (Hit, bool) {
	if r.Direction.IsZero() {
		return Hit{}, false
	}

	var best Hit
	found := false
	bestT := maxDistance

	for i := range l.boxes {
		b := &l.boxes[i]
		if !mask.Has(b.Layer) {
			continue
		}
		bounds := b.Bounds
		if radius > 0 {
			bounds = bounds.Expand(radius)
		}
		t, n, ok := r.IntersectAABB(bounds)
		if !ok || t > bestT {
			continue
		}
		bestT = t
		found = true
		best = Hit{
			Point:    r.At(t).Sub(n.Scale(radius)),
			Normal:   n,
			Distance: t,
			Category: b.Category,
			Collider: b.Name,
		}
	}

	if l.terrain != nil && mask.Has(l.terrainLayer) {
		if t, n, ok := l.terrain.Intersect(r, bestT); ok && t <= bestT {
			found = true
			best = Hit{
				Point:    r.At(t),
				Normal:   n,
				Distance: t,
				Category: CategoryGround,
				Collider: "terrain",
			}
		}
	}

	return best, found
}

// Overlapping returns the trigger volumes containing p.
func (l *Level) Overlapping(p math.Vec3) []Trigger {
	var out []Trigger
	for _, t := range l.triggers {
		if t.Bounds.Contains(p) {
			out = append(out, t)
		}
	}
	return out
}
