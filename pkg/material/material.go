// Package material defines the surface appearance model: a base color plus
// scalar weights for the ambient, diffuse and specular illumination terms.
package material

import "github.com/wegfawefgawefg/RayTracingForBigBoys/pkg/core"

// Material describes how a surface responds to light. Color components are
// conventionally in [0,1] but not enforced. Reflective is carried as surface
// metadata; the trace engine reflects at full strength regardless of it.
type Material struct {
	Color      core.Vec3
	Ambient    float64
	Diffuse    float64
	Specular   float64
	Reflective float64
}

// NewMaterial creates a material with the default illumination weights
func NewMaterial(color core.Vec3) Material {
	return Material{
		Color:      color,
		Ambient:    0.05,
		Diffuse:    0.25,
		Specular:   0.1,
		Reflective: 1.0,
	}
}
