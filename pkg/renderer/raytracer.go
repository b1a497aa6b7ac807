// Package renderer maps pixel samplers over output images in parallel and
// applies the display transform.
package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/avisner/go-sphere-visualizer/pkg/integrator"
	"github.com/avisner/go-sphere-visualizer/pkg/scene"
)

// Sampler computes one display-ready color for a screen-space sample
// position. Implementations must be safe for concurrent use; the frame
// renderer calls Sample from multiple goroutines.
type Sampler interface {
	Sample(sample mgl32.Vec2) mgl32.Vec3
}

// Raytracer samples a scene by tracing a camera ray through the path
// integrator and tonemapping the result
type Raytracer struct {
	Scene      *scene.Scene
	integrator *integrator.PathIntegrator
}

// NewRaytracer creates a raytracing sampler for a scene
func NewRaytracer(sc *scene.Scene) *Raytracer {
	return &Raytracer{
		Scene:      sc,
		integrator: integrator.NewPathIntegrator(),
	}
}

// Sample traces the primary ray for the sample position and returns the
// tonemapped radiance
func (rt *Raytracer) Sample(sample mgl32.Vec2) mgl32.Vec3 {
	ray := rt.Scene.Camera.PrimeRay(sample)
	return TonemapFilmic(rt.integrator.Radiance(ray, rt.Scene))
}
