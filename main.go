package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/wegfawefgawefg/RayTracingForBigBoys/pkg/renderer"
	"github.com/wegfawefgawefg/RayTracingForBigBoys/pkg/scene"
)

func main() {
	width := flag.Int("width", 1920, "Image width in pixels")
	height := flag.Int("height", 1080, "Image height in pixels")
	bounces := flag.Int("bounces", 5, "Maximum number of reflection bounces")
	seed := flag.Int64("seed", 42, "Scene generation seed")
	workers := flag.Int("workers", 0, "Number of render workers (0 = one per CPU)")
	output := flag.String("out", "render.png", "Output PNG path")
	flag.Parse()

	fmt.Printf("Rendering %dx%d, %d bounces, seed %d...\n", *width, *height, *bounces, *seed)

	random := rand.New(rand.NewSource(*seed))
	s := scene.NewRandomScene(*width, *height, random)

	r := renderer.NewRenderer(s, *width, *height, *bounces)
	r.SetWorkers(*workers)
	r.SetLogger(log.New(os.Stderr, "", log.Ltime))

	startTime := time.Now()
	buffer, err := r.Render()
	if err != nil {
		log.Fatalf("Render failed: %v", err)
	}
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	file, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Error creating file: %v", err)
	}
	defer file.Close()

	if err := png.Encode(file, renderer.ToImage(buffer)); err != nil {
		log.Fatalf("Error saving PNG: %v", err)
	}
	fmt.Printf("Render saved as %s\n", *output)
}
