package renderer

import (
	"image"
	"image/color"

	"github.com/wegfawefgawefg/RayTracingForBigBoys/pkg/core"
)

// ToImage converts a pixel buffer to an 8-bit RGBA image. Each component is
// clamped to [0,1], scaled by 255 and truncated. Buffer row 0 lands at the
// bottom of the image, flipping scene-space y-up into image-space y-down.
func ToImage(buffer [][]core.Vec3) *image.RGBA {
	height := len(buffer)
	width := 0
	if height > 0 {
		width = len(buffer[0])
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixel := buffer[y][x].Clamp(0, 1).Multiply(255)
			img.SetRGBA(x, height-1-y, color.RGBA{
				R: uint8(pixel.X),
				G: uint8(pixel.Y),
				B: uint8(pixel.Z),
				A: 255,
			})
		}
	}
	return img
}
