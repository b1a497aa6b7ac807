// Package glow implements the reduced 2-D glow-field rendering mode. It
// consumes the same sphere positions as the raytracer but paints a scalar
// falloff field thresholded into a saturated highlight; none of the
// intersection or shading machinery is involved.
package glow

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/avisner/go-sphere-visualizer/pkg/geometry"
)

// The field saturates to white once the accumulated value crosses this
// threshold.
const saturation = 0.75

// Metaball is one glow source in viewport space
type Metaball struct {
	Position mgl32.Vec2
	Radius   float32
}

// Field is a renderable glow field. It implements renderer.Sampler.
type Field struct {
	Color     mgl32.Vec3
	Size      mgl32.Vec2
	Zoom      float32
	Metaballs []Metaball
}

// NewField creates a glow field for a viewport size
func NewField(color mgl32.Vec3, size mgl32.Vec2, zoom float32) *Field {
	return &Field{Color: color, Size: size, Zoom: zoom}
}

// FromSpheres projects the shared sphere buffer onto the viewport plane,
// dropping the depth component
func (f *Field) FromSpheres(spheres []geometry.Sphere) *Field {
	f.Metaballs = f.Metaballs[:0]
	for _, s := range spheres {
		f.Metaballs = append(f.Metaballs, Metaball{
			Position: mgl32.Vec2{s.Center.X(), s.Center.Y()},
			Radius:   s.Radius,
		})
	}
	return f
}

// Sample evaluates the glow field at a screen-space sample position
func (f *Field) Sample(sample mgl32.Vec2) mgl32.Vec3 {
	position := mgl32.Vec2{
		(sample.X()/f.Size.X()*2 - 1) * f.Zoom,
		(sample.Y()/f.Size.Y()*2 - 1) * f.Zoom,
	}

	value := float32(0)
	for _, m := range f.Metaballs {
		oc := position.Sub(m.Position)
		value += m.Radius * 0.05 / float32(math.Sqrt(float64(oc.Dot(oc))))
	}

	if value <= saturation {
		return f.Color.Mul(value)
	}
	return mgl32.Vec3{1, 1, 1}
}
