// Package spatial provides ray and sphere casts against static level geometry.
package spatial

import (
	gomath "math"

	"github.com/Faultbox/midgard-locomotion/pkg/math"
)

// Category classifies what a query hit.
type Category uint8

const (
	CategoryOther Category = iota
	CategoryGround
	CategoryObstacle
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryGround:
		return "ground"
	case CategoryObstacle:
		return "obstacle"
	default:
		return "other"
	}
}

// ParseCategory converts a config name into a Category.
// Unknown names map to CategoryOther.
func ParseCategory(name string) Category {
	switch name {
	case "ground":
		return CategoryGround
	case "obstacle":
		return CategoryObstacle
	default:
		return CategoryOther
	}
}

// LayerMask selects which collider layers a query considers.
type LayerMask uint32

const (
	LayerDefault LayerMask = 1 << iota
	LayerGround
	LayerLevel

	LayerAll LayerMask = ^LayerMask(0)
)

// Has reports whether m includes any layer of other.
func (m LayerMask) Has(other LayerMask) bool {
	return m&other != 0
}

// Infinity is the max distance for unbounded casts.
var Infinity = float32(gomath.Inf(1))

// Hit describes the first surface a cast reached.
type Hit struct {
	Point    math.Vec3
	Normal   math.Vec3
	Distance float32
	Category Category
	Collider string
}

// IsObstacle reports whether the hit surface is tagged as an obstacle.
func (h Hit) IsObstacle() bool {
	return h.Category == CategoryObstacle
}

// Query is the synchronous spatial query interface consumed by the solvers.
type Query interface {
	// Raycast returns the closest hit along direction within maxDistance.
	Raycast(origin, direction math.Vec3, maxDistance float32, mask LayerMask) (Hit, bool)
	// SphereCast sweeps a sphere of the given radius along direction.
	SphereCast(origin, direction math.Vec3, radius, maxDistance float32, mask LayerMask) (Hit, bool)
}
