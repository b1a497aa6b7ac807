package renderer

import (
	"context"
	"image"
	"runtime"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderStats reports timing and sizing information for one rendered frame
type RenderStats struct {
	TotalPixels int
	NumWorkers  int
	RenderTime  time.Duration
}

// Renderer renders frames by mapping a Sampler over every pixel with a
// pool of row workers. Every pixel is an independent pure computation, so
// the output is bit-for-bit identical regardless of worker count.
type Renderer struct {
	Width      int
	Height     int
	NumWorkers int // <= 0 selects runtime.NumCPU()
}

// NewRenderer creates a renderer for the given output size
func NewRenderer(width, height int) *Renderer {
	return &Renderer{Width: width, Height: height}
}

// RenderFrame renders one frame. Samples are taken at pixel centers; the
// alpha channel is fixed at full opacity. Cancellation is checked between
// rows: a cancelled frame is abandoned and the context error returned, the
// partial image is not meaningful.
func (r *Renderer) RenderFrame(ctx context.Context, sampler Sampler) (*image.RGBA, RenderStats, error) {
	start := time.Now()

	numWorkers := r.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	img := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	rows := make(chan int, r.Height)
	for y := 0; y < r.Height; y++ {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				if ctx.Err() != nil {
					return
				}
				r.renderRow(img, sampler, y)
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, RenderStats{}, err
	}

	stats := RenderStats{
		TotalPixels: r.Width * r.Height,
		NumWorkers:  numWorkers,
		RenderTime:  time.Since(start),
	}
	return img, stats, nil
}

// renderRow fills one image row. Rows never overlap, so writes are
// goroutine-safe without locking.
func (r *Renderer) renderRow(img *image.RGBA, sampler Sampler, y int) {
	for x := 0; x < r.Width; x++ {
		sample := mgl32.Vec2{float32(x) + 0.5, float32(y) + 0.5}
		color := sampler.Sample(sample)

		offset := img.PixOffset(x, y)
		img.Pix[offset+0] = channelToByte(color.X())
		img.Pix[offset+1] = channelToByte(color.Y())
		img.Pix[offset+2] = channelToByte(color.Z())
		img.Pix[offset+3] = 0xff
	}
}

// channelToByte clamps a linear [0,1] channel into an 8-bit value
func channelToByte(v float32) uint8 {
	return uint8(min(max(v, 0), 1)*255 + 0.5)
}
