// Package integrator implements the bounded-bounce light transport loop
// and the local shading of the two primitive kinds.
package integrator

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/avisner/go-sphere-visualizer/pkg/geometry"
	"github.com/avisner/go-sphere-visualizer/pkg/lights"
	"github.com/avisner/go-sphere-visualizer/pkg/scene"
)

// maxBounces is the loop bound of the transport loop. The scene parameter
// block carries its own bounce count for layout parity with the GPU side,
// but the value enforced here is this constant.
const maxBounces = 5

// Reflection ray parameter interval.
const (
	reflectTMin = 0.001
	reflectTMax = 1000.0
)

// Ambient occlusion march: five steps along the normal at multiples of the
// step size, each weighted by 2^-i.
const (
	occlusionSteps    = 5
	occlusionStepSize = 0.35
)

// shading is the result of shading one hit: the emitted color, and if the
// surface reflects, the continuation ray and its throughput attenuation.
type shading struct {
	emission mgl32.Vec3
	reflects bool
	ray      geometry.Ray
	color    mgl32.Vec3
}

// PathIntegrator drives the per-pixel bounce loop. It is stateless; one
// instance may be shared across goroutines.
type PathIntegrator struct{}

// NewPathIntegrator creates a new path integrator
func NewPathIntegrator() *PathIntegrator {
	return &PathIntegrator{}
}

// Radiance queries the radiance of the scene along a ray. Radiance is
// accumulated over at most maxBounces reflections, each attenuated by the
// running throughput; a miss or a non-reflective hit terminates the loop.
func (pt *PathIntegrator) Radiance(ray geometry.Ray, sc *scene.Scene) mgl32.Vec3 {
	radiance := mgl32.Vec3{}
	throughput := mgl32.Vec3{1, 1, 1}

	for bounce := 0; bounce < maxBounces; bounce++ {
		result := pt.shade(ray, sc)

		radiance = radiance.Add(mulElem(throughput, result.emission))

		if !result.reflects {
			break
		}
		throughput = mulElem(throughput, result.color)
		ray = result.ray
	}

	return radiance
}

// shade intersects both primitive sets and shades the nearest hit. The
// rect comparison runs second and only wins under strict <, so an exact
// tie shades the sphere.
func (pt *PathIntegrator) shade(ray geometry.Ray, sc *scene.Scene) shading {
	result := shading{emission: sc.Background}
	nearest := ray.TMax

	if i, t, ok := sc.NearestSpheres(ray); ok && t < nearest {
		nearest = t
		result = pt.shadeSphere(ray, t, sc.Spheres[i], sc)
	}
	if i, t, ok := sc.NearestRects(ray); ok && t < nearest {
		result = pt.shadeRect(sc.Rects[i])
	}

	return result
}

// shadeSphere computes the glossy sphere response: shadowed lambertian
// lighting plus the ambient occlusion estimate, split between emission and
// mirror reflection by Schlick's Fresnel term.
func (pt *PathIntegrator) shadeSphere(ray geometry.Ray, t float32, sphere geometry.Sphere, sc *scene.Scene) shading {
	point := ray.At(t)
	normal := point.Sub(sphere.Center).Normalize()

	occlusion := pt.ambientOcclusion(sc, point, normal)
	direct := lights.Accumulate(sc.Lights, point, normal, sc.Occluded)
	intensity := mgl32.Vec3{occlusion, occlusion, occlusion}.Add(direct)

	fresnel := schlick(ray.Direction, normal, 1.0, sphere.N)

	return shading{
		emission: mulElem(sphere.Color, intensity).Mul(1 - fresnel),
		reflects: true,
		ray:      geometry.NewRay(point, reflect(ray.Direction, normal), reflectTMin, reflectTMax),
		color:    mgl32.Vec3{fresnel, fresnel, fresnel},
	}
}

// shadeRect returns the rect's emission; panels absorb the path.
func (pt *PathIntegrator) shadeRect(rect geometry.Rect) shading {
	return shading{emission: rect.Color}
}

// ambientOcclusion approximates occlusion by marching the scene's signed
// distance field along the normal. The march is a fixed five steps with
// power-of-two weights; it is a cheap estimate, not exact occlusion.
func (pt *PathIntegrator) ambientOcclusion(sc *scene.Scene, point, normal mgl32.Vec3) float32 {
	occlusion := float32(1.0)

	for i := 1; i <= occlusionSteps; i++ {
		offset := float32(i) * occlusionStepSize
		sample := point.Add(normal.Mul(offset))
		occlusion -= (offset - sc.SignedDistance(sample)) / float32(int32(1)<<i)
	}

	return max(occlusion, 0)
}

// schlick computes Schlick's approximation of the Fresnel reflectance.
// The cosine term is the incoming direction dotted with the outward
// normal, unnegated, matching the shader this kernel reproduces.
func schlick(direction, normal mgl32.Vec3, n1, n2 float32) float32 {
	cos := direction.Dot(normal)
	r := (n1 - n2) / (n1 + n2)
	r2 := r * r
	return r2 + (1-r2)*pow32(1+cos, 5)
}

// reflect mirrors direction at normal
func reflect(direction, normal mgl32.Vec3) mgl32.Vec3 {
	return direction.Add(normal.Mul(-2 * direction.Dot(normal)))
}

func mulElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}

func pow32(x float32, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}
