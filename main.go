package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/avisner/go-sphere-visualizer/pkg/glow"
	"github.com/avisner/go-sphere-visualizer/pkg/renderer"
	"github.com/avisner/go-sphere-visualizer/pkg/scene"
)

func main() {
	mode := flag.String("mode", "raytrace", "Render mode: 'raytrace' or 'glow'")
	width := flag.Int("width", 800, "Output width in pixels")
	height := flag.Int("height", 450, "Output height in pixels")
	workers := flag.Int("workers", 0, "Worker goroutines (0 = all CPUs)")
	outDir := flag.String("out", "output", "Output directory")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Sphere Visualizer")
		fmt.Println("Usage: sphere-visualizer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Renders the demo scene to <out>/<mode>_<timestamp>.png")
		return
	}

	sampler, err := newSampler(*mode, *width, *height)
	if err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}

	r := renderer.NewRenderer(*width, *height)
	r.NumWorkers = *workers

	img, stats, err := r.RenderFrame(context.Background(), sampler)
	if err != nil {
		fmt.Printf("Render failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Rendered %d pixels with %d workers in %v\n",
		stats.TotalPixels, stats.NumWorkers, stats.RenderTime)

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(*outDir, fmt.Sprintf("%s_%s.png", *mode, timestamp))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		fmt.Printf("Error encoding PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved %s\n", filename)
}

// newSampler builds the pixel sampler for a render mode over the demo scene
func newSampler(mode string, width, height int) (renderer.Sampler, error) {
	sc := scene.NewDefaultScene(float32(width), float32(height))

	switch mode {
	case "glow":
		size := mgl32.Vec2{float32(width), float32(height)}
		return glow.NewField(mgl32.Vec3{0, 0.3, 1}, size, 5).FromSpheres(sc.Spheres), nil
	case "raytrace":
		return renderer.NewRaytracer(sc), nil
	default:
		return nil, fmt.Errorf("unknown mode: %s", mode)
	}
}
