// Command visualizer opens a live preview window and renders an animated
// demo scene. Sphere radii are driven by damped springs retargeted on a
// fixed beat, standing in for the external audio-driven simulation.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"math/rand"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/harmonica"

	"github.com/avisner/go-sphere-visualizer/pkg/renderer"
	"github.com/avisner/go-sphere-visualizer/pkg/scene"
)

const (
	frameRate   = 30
	beatPeriod  = 900 * time.Millisecond
	sphereCount = 8
)

// pulse animates one sphere radius with a damped spring
type pulse struct {
	spring harmonica.Spring
	radius float64
	vel    float64
	target float64
}

func newPulse() *pulse {
	return &pulse{
		spring: harmonica.NewSpring(harmonica.FPS(frameRate), 6.0, 0.4),
		radius: 0.6,
		target: 0.6,
	}
}

func (p *pulse) update() float32 {
	p.radius, p.vel = p.spring.Update(p.radius, p.vel, p.target)
	return float32(p.radius)
}

func main() {
	width := flag.Int("width", 480, "Render width in pixels")
	height := flag.Int("height", 270, "Render height in pixels")
	flag.Parse()

	a := app.New()
	w := a.NewWindow("Sphere Visualizer")

	img := image.NewRGBA(image.Rect(0, 0, *width, *height))
	imgCanvas := canvas.NewImageFromImage(img)
	imgCanvas.FillMode = canvas.ImageFillContain
	imgCanvas.SetMinSize(fyne.NewSize(960, 540))

	status := widget.NewLabel("Rendering...")
	w.SetContent(container.NewBorder(nil, status, nil, nil, imgCanvas))

	ctx, cancel := context.WithCancel(context.Background())
	w.SetOnClosed(cancel)

	go renderLoop(ctx, *width, *height, imgCanvas, status)

	w.ShowAndRun()
}

func renderLoop(ctx context.Context, width, height int, imgCanvas *canvas.Image, status *widget.Label) {
	pulses := make([]*pulse, sphereCount)
	for i := range pulses {
		pulses[i] = newPulse()
	}
	radii := make([]float32, sphereCount)

	r := renderer.NewRenderer(width, height)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()
	beat := time.NewTicker(beatPeriod)
	defer beat.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-beat.C:
			// Retarget a few springs, like a beat hitting some bands
			for i := 0; i < sphereCount/2; i++ {
				pulses[rng.Intn(sphereCount)].target = 0.3 + rng.Float64()*0.9
			}
		case <-ticker.C:
			for i, p := range pulses {
				radii[i] = p.update()
			}

			sc := scene.NewPulseScene(float32(width), float32(height), radii)
			frame, stats, err := r.RenderFrame(ctx, renderer.NewRaytracer(sc))
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				fmt.Fprintf(os.Stderr, "render: %v\n", err)
				continue
			}

			imgCanvas.Image = frame
			imgCanvas.Refresh()
			status.SetText(fmt.Sprintf("%dx%d, %d workers, %v/frame",
				width, height, stats.NumWorkers, stats.RenderTime.Round(time.Millisecond)))
		}
	}
}
