package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/avisner/go-sphere-visualizer/pkg/geometry"
	"github.com/avisner/go-sphere-visualizer/pkg/lights"
)

// Demo scene constants. External callers normally feed scene buffers from
// their own simulation; these scenes exist for the CLI, the viewer and the
// tests.
const (
	demoSphereN = 20.0
	demoBounces = 5
)

// DefaultRamp is the radius-to-color ramp used by the demo scenes
var DefaultRamp = NewGradient(
	mgl32.Vec3{0, 0, 0},
	mgl32.Vec3{0, 0, 0},
	mgl32.Vec3{0.5, 0, 1},
	mgl32.Vec3{0, 0, 1},
	mgl32.Vec3{0, 0.5, 1},
	mgl32.Vec3{0, 0.1, 1},
)

// NewDefaultScene builds a static demo scene: a handful of ramped spheres
// in front of the camera, one large emissive panel up and to the left, and
// a strong point light from the same corner.
func NewDefaultScene(width, height float32) *Scene {
	camera := NewCamera(
		mgl32.Translate3D(0, 0, -10),
		mgl32.Vec2{width, height},
		math.Pi/4,
		0.0001,
		1000,
	)

	s := New(camera, mgl32.Vec3{1, 1, 1}, demoBounces)

	radii := []float32{0.9, 0.6, 1.2, 0.5, 0.8, 0.7}
	positions := []mgl32.Vec3{
		{0, 0, 0},
		{-2.2, 0.4, 1.0},
		{2.5, -0.3, 2.0},
		{-1.1, -1.2, -0.5},
		{1.4, 1.3, -0.8},
		{-0.2, 2.0, 1.5},
	}
	for i, r := range radii {
		s.AddSphere(geometry.NewSphere(positions[i], r, DefaultRamp.Interpolate(r), demoSphereN))
	}

	s.AddRect(geometry.NewRect(demoPanelTransform().Inv(), mgl32.Vec3{10, 10, 10}))
	s.AddLight(lights.NewPointLight(mgl32.Vec3{-10, 10, -10}, mgl32.Vec3{400, 400, 400}))

	return s
}

// NewPulseScene builds the animated viewer scene: spheres on a ring whose
// radii the caller drives per frame (see cmd/visualizer).
func NewPulseScene(width, height float32, radii []float32) *Scene {
	camera := NewCamera(
		mgl32.Translate3D(0, 0, -10),
		mgl32.Vec2{width, height},
		math.Pi/4,
		0.0001,
		1000,
	)

	s := New(camera, mgl32.Vec3{1, 1, 1}, demoBounces)

	n := len(radii)
	for i, r := range radii {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pos := mgl32.Vec3{
			3 * float32(math.Cos(angle)),
			3 * float32(math.Sin(angle)),
			0,
		}
		s.AddSphere(geometry.NewSphere(pos, r, DefaultRamp.Interpolate(r), demoSphereN))
	}

	s.AddRect(geometry.NewRect(demoPanelTransform().Inv(), mgl32.Vec3{10, 10, 10}))
	s.AddLight(lights.NewPointLight(mgl32.Vec3{-10, 10, -10}, mgl32.Vec3{400, 400, 400}))

	return s
}

// demoPanelTransform places the emissive panel: translated up-left behind
// the spheres, scaled to 10 units and tilted to face the scene center.
func demoPanelTransform() mgl32.Mat4 {
	return mgl32.Translate3D(-10, 10, -10).
		Mul4(mgl32.Scale3D(10, 10, 10)).
		Mul4(mgl32.HomogRotate3DY(math.Pi * 1.25)).
		Mul4(mgl32.HomogRotate3DX(math.Pi * 0.25))
}
