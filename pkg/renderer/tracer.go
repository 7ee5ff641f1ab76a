// Package renderer contains the recursive trace engine and the frame
// renderer that drives it, one primary ray per pixel.
package renderer

import (
	"math"

	"github.com/wegfawefgawefg/RayTracingForBigBoys/pkg/core"
	"github.com/wegfawefgawefg/RayTracingForBigBoys/pkg/geometry"
	"github.com/wegfawefgawefg/RayTracingForBigBoys/pkg/scene"
)

const (
	// bounceEpsilon offsets reflected-ray origins along the surface normal
	// so a bounce never re-hits the surface it just left.
	bounceEpsilon = 0.001

	// specularExponent is the fixed Blinn-Phong shininess; there is no
	// per-material control.
	specularExponent = 30.0
)

// Trace returns the color seen along a ray. It finds the nearest surface by
// linear scan, shades it with the scene's lights, then follows a mirror
// reflection, recursing until depth reaches maxBounces. Rays that hit
// nothing, and calls at the bounce limit, contribute black. Color components
// accumulate unbounded; clamping happens only at image output.
func Trace(ray core.Ray, s *scene.Scene, maxBounces, depth int) (core.Vec3, error) {
	if depth == maxBounces {
		return core.Black, nil
	}

	surface, dist, hit := nearestHit(ray, s.Surfaces)
	if !hit {
		return core.Black, nil
	}

	hitPos := ray.At(dist)
	normal, err := surface.NormalAt(hitPos)
	if err != nil {
		return core.Vec3{}, err
	}

	color, err := shade(s, surface, hitPos, normal)
	if err != nil {
		return core.Vec3{}, err
	}

	bounceRay, err := core.NewRay(
		hitPos.Add(normal.Multiply(bounceEpsilon)),
		Reflect(ray.Direction, normal),
	)
	if err != nil {
		return core.Vec3{}, err
	}

	bounceColor, err := Trace(bounceRay, s, maxBounces, depth+1)
	if err != nil {
		return core.Vec3{}, err
	}

	// The bounce contributes at full strength; Material.Reflective does not
	// weight it.
	return color.Add(bounceColor), nil
}

// nearestHit scans every surface and returns the one with the smallest
// intersection distance. Strict < keeps the earlier surface on exact ties,
// so scene order makes the result deterministic.
func nearestHit(ray core.Ray, surfaces []geometry.Surface) (geometry.Surface, float64, bool) {
	var nearest geometry.Surface
	minDist := math.Inf(1)

	for _, surface := range surfaces {
		if dist, hit := surface.Intersect(ray); hit && dist < minDist {
			nearest = surface
			minDist = dist
		}
	}

	return nearest, minDist, nearest != nil
}

// shade evaluates local illumination at a hit point: one ambient term, plus
// diffuse and Blinn-Phong specular terms per light. Lights reach every
// surface point; there is no shadow test and no distance falloff.
func shade(s *scene.Scene, surface geometry.Surface, hitPos, normal core.Vec3) (core.Vec3, error) {
	mat := surface.Material()
	color := mat.Color.Multiply(mat.Ambient)

	toCam, err := s.Camera.Subtract(hitPos).Normalize()
	if err != nil {
		return core.Vec3{}, err
	}

	for _, light := range s.Lights {
		toLight, err := light.Pos.Subtract(hitPos).Normalize()
		if err != nil {
			return core.Vec3{}, err
		}

		color = color.Add(mat.Color.Multiply(mat.Diffuse * max(normal.Dot(toLight), 0)))

		// Blinn-Phong half-vector between the light and the scene's fixed
		// camera position, not the incoming ray direction.
		halfway, err := toLight.Add(toCam).Normalize()
		if err != nil {
			return core.Vec3{}, err
		}
		color = color.Add(light.Color.Multiply(
			mat.Specular * math.Pow(max(halfway.Dot(normal), 0), specularExponent)))
	}

	return color, nil
}

// Reflect mirrors a direction about a unit normal: v - 2(v.n)n.
func Reflect(v, normal core.Vec3) core.Vec3 {
	return v.Subtract(normal.Multiply(2 * v.Dot(normal)))
}
