package renderer

import (
	"fmt"

	"github.com/wegfawefgawefg/RayTracingForBigBoys/pkg/core"
	"github.com/wegfawefgawefg/RayTracingForBigBoys/pkg/scene"
)

// Renderer maps pixel coordinates to primary rays and fills a pixel buffer
// by tracing each one. The scene is shared read-only across workers; each
// worker writes only its own rows of the buffer.
type Renderer struct {
	scene      *scene.Scene
	width      int
	height     int
	maxBounces int
	numWorkers int
	logger     core.Logger
}

// NewRenderer creates a renderer for a width x height frame. maxBounces is
// an inclusive cap on reflection bounces; 0 renders a black frame.
func NewRenderer(s *scene.Scene, width, height, maxBounces int) *Renderer {
	return &Renderer{
		scene:      s,
		width:      width,
		height:     height,
		maxBounces: maxBounces,
	}
}

// SetWorkers sets the number of render workers. Zero or negative selects one
// worker per CPU.
func (r *Renderer) SetWorkers(numWorkers int) {
	r.numWorkers = numWorkers
}

// SetLogger enables progress reporting. A nil logger keeps the render silent.
func (r *Renderer) SetLogger(logger core.Logger) {
	r.logger = logger
}

// Render traces every pixel and returns the buffer, indexed [y][x] with row
// 0 at scene-space y=0 (the encoder handles any vertical flip). Scanlines
// render in parallel; the first degenerate-vector error aborts the render.
func (r *Renderer) Render() ([][]core.Vec3, error) {
	buffer := make([][]core.Vec3, r.height)
	for y := range buffer {
		buffer[y] = make([]core.Vec3, r.width)
	}

	pool := newWorkerPool(r.numWorkers, r.height, func(y int) error {
		return r.renderRow(buffer[y], y)
	})
	pool.Start()
	for y := 0; y < r.height; y++ {
		pool.Submit(rowTask{y: y})
	}
	go pool.Stop()

	var firstErr error
	rowsDone := 0
	logEvery := max(1, r.height/10)
	for result := range pool.Results() {
		if result.err != nil && firstErr == nil {
			firstErr = result.err
		}
		rowsDone++
		if r.logger != nil && (rowsDone%logEvery == 0 || rowsDone == r.height) {
			r.logger.Printf("rendered %d/%d rows (%d%%)",
				rowsDone, r.height, 100*rowsDone/r.height)
		}
	}

	if firstErr != nil {
		return nil, firstErr
	}
	return buffer, nil
}

// renderRow traces one scanline into row. The primary ray for pixel (x, y)
// runs from the camera through the point (x, y, 0) on the image plane.
func (r *Renderer) renderRow(row []core.Vec3, y int) error {
	for x := 0; x < r.width; x++ {
		target := core.NewVec3(float64(x), float64(y), 0)
		ray, err := core.NewRay(r.scene.Camera, target.Subtract(r.scene.Camera))
		if err != nil {
			return fmt.Errorf("pixel (%d,%d): %w", x, y, err)
		}

		color, err := Trace(ray, r.scene, r.maxBounces, 0)
		if err != nil {
			return fmt.Errorf("pixel (%d,%d): %w", x, y, err)
		}
		row[x] = color
	}
	return nil
}
