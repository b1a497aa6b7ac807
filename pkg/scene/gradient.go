package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Gradient is a color ramp with equally spaced stops
type Gradient struct {
	stops []mgl32.Vec3
}

// NewGradient creates a gradient from at least one stop color
func NewGradient(stops ...mgl32.Vec3) Gradient {
	return Gradient{stops: stops}
}

// Interpolate returns the ramp color at t in [0, 1]. Values outside the
// range clamp to the first or last stop.
func (g Gradient) Interpolate(t float32) mgl32.Vec3 {
	i := float64(t) * float64(len(g.stops)-1)
	floor := math.Floor(i)
	fract := float32(i - floor)

	a := g.stops[clampIndex(int(floor), len(g.stops))]
	b := g.stops[clampIndex(int(floor)+1, len(g.stops))]
	return a.Mul(1 - fract).Add(b.Mul(fract))
}

func clampIndex(i, n int) int {
	return max(0, min(i, n-1))
}
