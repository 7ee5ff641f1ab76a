package geometry

import (
	"math"

	"github.com/wegfawefgawefg/RayTracingForBigBoys/pkg/core"
	"github.com/wegfawefgawefg/RayTracingForBigBoys/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
	Mat    material.Material
}

// NewSphere creates a new sphere. Radius must be positive; the sphere does
// not validate it.
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		Mat:    mat,
	}
}

// Intersect tests if a ray intersects the sphere using the projection
// method: project the origin-to-center vector onto the ray direction, then
// compare the perpendicular distance from the center to the ray line against
// the radius.
func (s *Sphere) Intersect(ray core.Ray) (float64, bool) {
	toSphere := s.Center.Subtract(ray.Origin)

	// Distance along the ray to the point nearest the center. A negative t
	// means the center is behind the ray origin; treated as a miss even for
	// spheres large enough to wrap around the origin.
	t := toSphere.Dot(ray.Direction)
	if t < 0 {
		return 0, false
	}

	perpPoint := ray.At(t)
	y := perpPoint.Subtract(s.Center).Length()
	if y > s.Radius {
		return 0, false
	}

	// Back off by the half-chord length to the near intersection point.
	x := math.Sqrt(s.Radius*s.Radius - y*y)
	dist := t - x
	if dist < 0 {
		// Origin is inside the sphere; the contract only reports
		// nonnegative distances.
		return 0, false
	}
	return dist, true
}

// NormalAt returns the outward unit normal at a point on the sphere. It is
// degenerate only when the point coincides with the center, which the
// positive-radius invariant excludes for genuine hit points.
func (s *Sphere) NormalAt(point core.Vec3) (core.Vec3, error) {
	return point.Subtract(s.Center).Normalize()
}

// Material returns the sphere's material
func (s *Sphere) Material() material.Material {
	return s.Mat
}
