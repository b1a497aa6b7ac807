package integrator

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/avisner/go-sphere-visualizer/pkg/geometry"
	"github.com/avisner/go-sphere-visualizer/pkg/lights"
	"github.com/avisner/go-sphere-visualizer/pkg/scene"
)

func emptyScene(background mgl32.Vec3) *scene.Scene {
	camera := scene.NewCamera(mgl32.Ident4(), mgl32.Vec2{100, 100}, math.Pi/4, 0.0001, 1000)
	return scene.New(camera, background, 5)
}

func TestPathIntegrator_Miss_ReturnsBackground(t *testing.T) {
	sc := emptyScene(mgl32.Vec3{0.1, 0.2, 0.3})
	pt := NewPathIntegrator()

	ray := geometry.NewRay(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, 0.0001, 1000)
	radiance := pt.Radiance(ray, sc)

	// Throughput is still white on the first bounce, so the background
	// passes through exactly
	if radiance != sc.Background {
		t.Errorf("Expected background %v, got %v", sc.Background, radiance)
	}
}

func TestPathIntegrator_RectHit_SingleBounce(t *testing.T) {
	sc := emptyScene(mgl32.Vec3{9, 9, 9})
	sc.AddRect(geometry.NewRect(mgl32.Ident4(), mgl32.Vec3{0.25, 0.5, 0.75}))
	pt := NewPathIntegrator()

	ray := geometry.NewRay(mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, -1, 0}, 0.0001, 1000)
	radiance := pt.Radiance(ray, sc)

	// Rects are terminal: exactly the panel color, untouched by the
	// background or any further bounce
	if radiance != (mgl32.Vec3{0.25, 0.5, 0.75}) {
		t.Errorf("Expected rect emission, got %v", radiance)
	}
}

func TestPathIntegrator_BounceBudget(t *testing.T) {
	// Two nearly perfect mirrors facing each other: every bounce hits, so
	// only the fixed budget stops the loop. With F≈1 almost nothing is
	// emitted along the way.
	sc := emptyScene(mgl32.Vec3{1, 1, 1})
	sc.AddSphere(geometry.NewSphere(mgl32.Vec3{0, 0, 0}, 1, mgl32.Vec3{1, 1, 1}, 1e8))
	sc.AddSphere(geometry.NewSphere(mgl32.Vec3{0, 0, 4}, 1, mgl32.Vec3{1, 1, 1}, 1e8))
	pt := NewPathIntegrator()

	ray := geometry.NewRay(mgl32.Vec3{0, 0, 2}, mgl32.Vec3{0, 0, -1}, 0.001, 1000)
	radiance := pt.Radiance(ray, sc)

	for i := 0; i < 3; i++ {
		if radiance[i] > 1e-3 {
			t.Errorf("Expected near-zero radiance from mirror corridor, got %v", radiance)
			break
		}
	}
}

func TestPathIntegrator_SphereNearerThanRect(t *testing.T) {
	sc := emptyScene(mgl32.Vec3{0, 0, 0})
	// Matte sphere (n=1 gives F=0, terminating after its own bounce)
	sc.AddSphere(geometry.NewSphere(mgl32.Vec3{0, 0, 5}, 1, mgl32.Vec3{1, 0, 0}, 1))
	// Emissive panel behind it
	panel := mgl32.Translate3D(0, 0, 8).Mul4(mgl32.HomogRotate3DX(math.Pi / 2))
	sc.AddRect(geometry.NewRect(panel.Inv(), mgl32.Vec3{0, 5, 0}))
	pt := NewPathIntegrator()

	ray := geometry.NewRay(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, 0.0001, 1000)
	radiance := pt.Radiance(ray, sc)

	// The sphere wins: red ambient only. With n=1 the Fresnel term is
	// zero, so the reflection toward the panel carries no throughput.
	if radiance.Y() != 0 {
		t.Errorf("Expected no panel leakage behind the sphere, got %v", radiance)
	}
	if radiance.X() <= 0 {
		t.Errorf("Expected red ambient contribution from the sphere, got %v", radiance)
	}
}

func TestPathIntegrator_RectNearerThanSphere(t *testing.T) {
	sc := emptyScene(mgl32.Vec3{0, 0, 0})
	sc.AddSphere(geometry.NewSphere(mgl32.Vec3{0, 0, 8}, 1, mgl32.Vec3{1, 0, 0}, 1.5))
	panel := mgl32.Translate3D(0, 0, 5).Mul4(mgl32.HomogRotate3DX(math.Pi / 2))
	sc.AddRect(geometry.NewRect(panel.Inv(), mgl32.Vec3{0, 5, 0}))
	pt := NewPathIntegrator()

	ray := geometry.NewRay(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, 0.0001, 1000)
	radiance := pt.Radiance(ray, sc)

	if radiance != (mgl32.Vec3{0, 5, 0}) {
		t.Errorf("Expected the nearer panel to win with exact emission, got %v", radiance)
	}
}

func TestPathIntegrator_ShadowedLight(t *testing.T) {
	newScene := func(withOccluder bool) *scene.Scene {
		sc := emptyScene(mgl32.Vec3{0, 0, 0})
		sc.AddSphere(geometry.NewSphere(mgl32.Vec3{0, 0, 5}, 1, mgl32.Vec3{1, 1, 1}, 1))
		// Hit point is (0,0,4) with normal -z; the light sits in front of
		// the surface so the lambert term is positive
		sc.AddLight(lights.NewPointLight(mgl32.Vec3{0, 10, -4}, mgl32.Vec3{500, 500, 500}))
		if withOccluder {
			// Midpoint of the shadow segment
			sc.AddSphere(geometry.NewSphere(mgl32.Vec3{0, 5, 0}, 1, mgl32.Vec3{1, 1, 1}, 1))
		}
		return sc
	}
	pt := NewPathIntegrator()
	ray := geometry.NewRay(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1}, 0.0001, 1000)

	lit := pt.Radiance(ray, newScene(false))
	shadowed := pt.Radiance(ray, newScene(true))

	if lit.X() <= shadowed.X() {
		t.Errorf("Expected occluder to reduce radiance: lit=%v shadowed=%v", lit, shadowed)
	}
}

func TestAmbientOcclusion(t *testing.T) {
	pt := NewPathIntegrator()

	// An isolated sphere occludes nothing along its own normal: every
	// march sample sits exactly on the distance field
	open := emptyScene(mgl32.Vec3{})
	open.AddSphere(geometry.NewSphere(mgl32.Vec3{0, 0, 0}, 1, mgl32.Vec3{1, 1, 1}, 1.5))

	occ := pt.ambientOcclusion(open, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 0, -1})
	if math.Abs(float64(occ)-1) > 1e-5 {
		t.Errorf("Expected occlusion 1 for isolated sphere, got %v", occ)
	}

	// A second sphere right in the march path darkens the estimate
	crowded := emptyScene(mgl32.Vec3{})
	crowded.AddSphere(geometry.NewSphere(mgl32.Vec3{0, 0, 0}, 1, mgl32.Vec3{1, 1, 1}, 1.5))
	crowded.AddSphere(geometry.NewSphere(mgl32.Vec3{0, 0, -3}, 1, mgl32.Vec3{1, 1, 1}, 1.5))

	occ = pt.ambientOcclusion(crowded, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 0, -1})
	if occ >= 1 {
		t.Errorf("Expected occlusion below 1 next to a neighbor, got %v", occ)
	}
	if occ < 0 {
		t.Errorf("Expected occlusion clamped to 0, got %v", occ)
	}
}

func TestSchlick(t *testing.T) {
	// Head-on incidence: the angular term vanishes and F reduces to r0
	direction := mgl32.Vec3{0, 0, 1}
	normal := mgl32.Vec3{0, 0, -1}

	f := schlick(direction, normal, 1.0, 1.5)
	if math.Abs(float64(f)-0.04) > 1e-5 {
		t.Errorf("Expected r0=0.04 at head-on incidence, got %v", f)
	}

	// Matched indices reflect nothing at head-on incidence
	if f := schlick(direction, normal, 1.0, 1.0); math.Abs(float64(f)) > 1e-6 {
		t.Errorf("Expected zero reflectance for matched indices, got %v", f)
	}
}

func TestReflect(t *testing.T) {
	got := reflect(mgl32.Vec3{1, -1, 0}, mgl32.Vec3{0, 1, 0})
	if !got.ApproxEqualThreshold(mgl32.Vec3{1, 1, 0}, 1e-6) {
		t.Errorf("Expected (1,1,0), got %v", got)
	}
}
