package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/avisner/go-sphere-visualizer/pkg/geometry"
)

// Camera is a pinhole camera. Transform places the camera in world space;
// TanFov is the tangent of the half field of view; TMin and TMax bound the
// valid parameter interval of generated rays.
type Camera struct {
	Transform  mgl32.Mat4
	ScreenSize mgl32.Vec2
	TanFov     float32
	TMin       float32
	TMax       float32
}

// NewCamera creates a camera. fov is the half field of view in radians.
func NewCamera(transform mgl32.Mat4, screenSize mgl32.Vec2, fov, tMin, tMax float32) Camera {
	return Camera{
		Transform:  transform,
		ScreenSize: screenSize,
		TanFov:     float32(math.Tan(float64(fov))),
		TMin:       tMin,
		TMax:       tMax,
	}
}

// PrimeRay generates the primary ray for a screen-space sample position
// (pixel coordinates, origin top-left, Y down). The sample is mapped to
// normalized device coordinates with Y flipped and scaled by the aspect
// ratio, placed at unit depth, and transformed into world space. The
// direction is re-normalized after the transform since it may carry
// non-uniform scale.
func (c Camera) PrimeRay(sample mgl32.Vec2) geometry.Ray {
	ndcX := (sample.X()/c.ScreenSize.X()*2 - 1) * c.TanFov
	ndcY := (sample.Y()/c.ScreenSize.Y()*2 - 1) * c.TanFov * -(c.ScreenSize.Y() / c.ScreenSize.X())

	direction := mgl32.Vec3{ndcX, ndcY, 1}.Normalize()
	ray := geometry.NewRay(mgl32.Vec3{}, direction, c.TMin, c.TMax)

	ray = ray.Transform(c.Transform)
	ray.Direction = ray.Direction.Normalize()
	return ray
}
