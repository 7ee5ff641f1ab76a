package geometry

import (
	"github.com/wegfawefgawefg/RayTracingForBigBoys/pkg/core"
	"github.com/wegfawefgawefg/RayTracingForBigBoys/pkg/material"
)

// Surface is an intersectable object in the scene. Sphere is the only
// concrete implementation, but the trace engine depends on this contract
// rather than the shape.
type Surface interface {
	// Intersect returns the distance along the ray to the nearest
	// intersection point, or false for a miss. A returned distance is
	// never negative.
	Intersect(ray core.Ray) (float64, bool)

	// NormalAt returns the unit surface normal at a point on the surface.
	NormalAt(point core.Vec3) (core.Vec3, error)

	// Material returns the surface's material.
	Material() material.Material
}
