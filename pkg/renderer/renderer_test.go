package renderer

import (
	"math/rand"
	"testing"

	"github.com/wegfawefgawefg/RayTracingForBigBoys/pkg/core"
	"github.com/wegfawefgawefg/RayTracingForBigBoys/pkg/scene"
)

func TestRenderer_BufferDimensions(t *testing.T) {
	width, height := 16, 9
	s := scene.NewScene(width, height)

	buffer, err := NewRenderer(s, width, height, 3).Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if len(buffer) != height {
		t.Fatalf("Expected %d rows, got %d", height, len(buffer))
	}
	for y, row := range buffer {
		if len(row) != width {
			t.Errorf("Row %d: expected %d columns, got %d", y, width, len(row))
		}
	}
}

func TestRenderer_EmptySceneRendersBlack(t *testing.T) {
	// With no surfaces, every primary ray misses regardless of lights.
	width, height := 8, 8
	s := scene.NewScene(width, height)
	s.Lights = append(s.Lights, scene.Light{Pos: core.NewVec3(4, 4, 4), Color: core.White})

	buffer, err := NewRenderer(s, width, height, 5).Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for y, row := range buffer {
		for x, pixel := range row {
			if pixel != core.Black {
				t.Fatalf("Pixel (%d,%d): expected black, got %v", x, y, pixel)
			}
		}
	}
}

func TestRenderer_DeterministicAcrossWorkerCounts(t *testing.T) {
	width, height := 32, 24
	s := scene.NewRandomScene(width, height, rand.New(rand.NewSource(7)))

	render := func(workers int) [][]core.Vec3 {
		r := NewRenderer(s, width, height, 3)
		r.SetWorkers(workers)
		buffer, err := r.Render()
		if err != nil {
			t.Fatalf("Render with %d workers failed: %v", workers, err)
		}
		return buffer
	}

	serial := render(1)
	parallel := render(4)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if serial[y][x] != parallel[y][x] {
				t.Fatalf("Pixel (%d,%d) differs across worker counts: %v vs %v",
					x, y, serial[y][x], parallel[y][x])
			}
		}
	}
}

func TestRenderer_RandomSceneProducesLight(t *testing.T) {
	// A populated scene should not render an entirely black frame.
	width, height := 32, 24
	s := scene.NewRandomScene(width, height, rand.New(rand.NewSource(42)))

	buffer, err := NewRenderer(s, width, height, 3).Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for _, row := range buffer {
		for _, pixel := range row {
			if pixel != core.Black {
				return
			}
		}
	}
	t.Error("Expected at least one non-black pixel in a populated scene")
}
