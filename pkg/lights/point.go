// Package lights implements the point lights used for direct lighting.
package lights

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/avisner/go-sphere-visualizer/pkg/geometry"
)

// Shadow rays are parameterized so that t=1 lands exactly on the light;
// the direction is deliberately left unnormalized.
const (
	shadowTMin = 0.001
	shadowTMax = 1.0
)

// PointLight represents a point light with inverse-square falloff.
// Intensity carries both color and strength.
type PointLight struct {
	Position  mgl32.Vec3
	Intensity mgl32.Vec3
}

// NewPointLight creates a new point light
func NewPointLight(position, intensity mgl32.Vec3) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// Contribution returns the lambertian contribution of this light at a
// surface point. occluded is the scene's shadow test; a blocked light
// contributes nothing.
func (l PointLight) Contribution(point, normal mgl32.Vec3, occluded func(geometry.Ray) bool) mgl32.Vec3 {
	dir := l.Position.Sub(point)

	if occluded(geometry.NewRay(point, dir, shadowTMin, shadowTMax)) {
		return mgl32.Vec3{}
	}

	mag2 := dir.Dot(dir)
	cos := max(dir.Normalize().Dot(normal), 0)
	return l.Intensity.Mul(cos / mag2)
}

// Accumulate sums the contributions of all lights at a surface point
func Accumulate(ls []PointLight, point, normal mgl32.Vec3, occluded func(geometry.Ray) bool) mgl32.Vec3 {
	sum := mgl32.Vec3{}
	for _, l := range ls {
		sum = sum.Add(l.Contribution(point, normal, occluded))
	}
	return sum
}
