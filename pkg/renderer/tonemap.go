package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// TonemapFilmic maps linear radiance to a display-ready color using the
// filmic curve, applied per channel. The curve includes its own gamma
// (the final 2.2 power); the output needs no further correction.
func TonemapFilmic(c mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		tonemapChannel(c.X()),
		tonemapChannel(c.Y()),
		tonemapChannel(c.Z()),
	}
}

func tonemapChannel(x float32) float32 {
	v := max(0, x-0.004)
	result := (v * (6.2*v + 0.5)) / (v*(6.2*v+1.7) + 0.06)
	return float32(math.Pow(float64(result), 2.2))
}
