package scene

import (
	"math/rand"
	"testing"

	"github.com/wegfawefgawefg/RayTracingForBigBoys/pkg/core"
	"github.com/wegfawefgawefg/RayTracingForBigBoys/pkg/geometry"
)

func TestNewScene_CameraPlacement(t *testing.T) {
	s := NewScene(1920, 1080)

	expected := core.NewVec3(960, 540, -960)
	if s.Camera != expected {
		t.Errorf("Expected camera %v, got %v", expected, s.Camera)
	}
	if len(s.Surfaces) != 0 || len(s.Lights) != 0 {
		t.Errorf("Expected empty scene, got %d surfaces and %d lights",
			len(s.Surfaces), len(s.Lights))
	}
}

func TestNewRandomScene_Population(t *testing.T) {
	width, height := 200, 100
	s := NewRandomScene(width, height, rand.New(rand.NewSource(42)))

	if len(s.Surfaces) != numSpheres {
		t.Errorf("Expected %d spheres, got %d", numSpheres, len(s.Surfaces))
	}
	if len(s.Lights) != numLights {
		t.Errorf("Expected %d lights, got %d", numLights, len(s.Lights))
	}

	w := float64(width)
	for i, surface := range s.Surfaces {
		sphere, ok := surface.(*geometry.Sphere)
		if !ok {
			t.Fatalf("Surface %d is not a sphere", i)
		}
		if sphere.Radius <= 0 || sphere.Radius >= w/7 {
			t.Errorf("Sphere %d: radius %f outside (0, %f)", i, sphere.Radius, w/7)
		}
		if sphere.Center.Z < w/2 || sphere.Center.Z >= 3*w/2 {
			t.Errorf("Sphere %d: depth %f outside [%f, %f)",
				i, sphere.Center.Z, w/2, 3*w/2)
		}
	}
}

func TestNewRandomScene_SeedDeterminism(t *testing.T) {
	a := NewRandomScene(100, 100, rand.New(rand.NewSource(7)))
	b := NewRandomScene(100, 100, rand.New(rand.NewSource(7)))

	for i := range a.Surfaces {
		sa := a.Surfaces[i].(*geometry.Sphere)
		sb := b.Surfaces[i].(*geometry.Sphere)
		if sa.Center != sb.Center || sa.Radius != sb.Radius || sa.Mat != sb.Mat {
			t.Fatalf("Sphere %d differs between identically seeded scenes", i)
		}
	}
	for i := range a.Lights {
		if a.Lights[i] != b.Lights[i] {
			t.Fatalf("Light %d differs between identically seeded scenes", i)
		}
	}
}
