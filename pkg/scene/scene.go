// Package scene holds the read-only world description handed to the
// renderer: the camera position, the intersectable surfaces and the point
// lights.
package scene

import (
	"math/rand"

	"github.com/wegfawefgawefg/RayTracingForBigBoys/pkg/core"
	"github.com/wegfawefgawefg/RayTracingForBigBoys/pkg/geometry"
	"github.com/wegfawefgawefg/RayTracingForBigBoys/pkg/material"
)

// Light is a point light with a per-channel emission color. The color is an
// intensity and is not restricted to [0,1].
type Light struct {
	Pos   core.Vec3
	Color core.Vec3
}

// Scene is the immutable world for one render. Surface and light order is
// preserved: nearest-hit ties break toward the earlier surface, so a fixed
// ordering gives reproducible output. A Scene must not be mutated while a
// render is in flight; read-only sharing across workers is safe.
type Scene struct {
	Camera   core.Vec3
	Surfaces []geometry.Surface
	Lights   []Light
}

// NewScene creates an empty scene for a width x height image. The camera
// sits behind the z=0 image plane at (width/2, height/2, -width/2); field of
// view follows from the image dimensions.
func NewScene(width, height int) *Scene {
	return &Scene{
		Camera: core.NewVec3(float64(width)/2, float64(height)/2, -float64(width)/2),
	}
}

const (
	numSpheres = 30
	numLights  = 20
)

// NewRandomScene creates a scene populated with randomly placed spheres and
// lights. Sphere centers cover the image area at depths between width/2 and
// 3*width/2; lights are scattered up to two image sizes around the center.
// The same seed reproduces the same scene.
func NewRandomScene(width, height int, random *rand.Rand) *Scene {
	s := NewScene(width, height)
	w := float64(width)
	h := float64(height)

	for i := 0; i < numSpheres; i++ {
		sphere := geometry.NewSphere(
			core.NewVec3(
				random.Float64()*w,
				random.Float64()*h,
				w/2+random.Float64()*w),
			random.Float64()*w/7,
			material.NewMaterial(core.RandomVec3(random)),
		)
		s.Surfaces = append(s.Surfaces, sphere)
	}

	for i := 0; i < numLights; i++ {
		light := Light{
			Pos: core.NewVec3(
				w/2+(random.Float64()-0.5)*2*w*2,
				h/2+(random.Float64()-0.5)*2*h*2,
				w/2+random.Float64()*w),
			Color: core.RandomVec3(random),
		}
		s.Lights = append(s.Lights, light)
	}

	return s
}
