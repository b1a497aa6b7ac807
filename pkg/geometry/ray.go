// Package geometry provides the ray and shape primitives used by the
// renderer: rays with a valid parameter interval, spheres, unit rects
// carrying a world-to-local transform, and axis-aligned bounding boxes.
package geometry

import "github.com/go-gl/mathgl/mgl32"

// Ray represents a ray with origin, direction and a valid parameter
// interval. The direction is not required to be normalized; intersection
// parameters are relative to its length.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
	TMin      float32
	TMax      float32
}

// NewRay creates a new ray
func NewRay(origin, direction mgl32.Vec3, tMin, tMax float32) Ray {
	return Ray{Origin: origin, Direction: direction, TMin: tMin, TMax: tMax}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// ValidT reports whether t lies strictly inside the ray's parameter
// interval. Both endpoints are excluded; NaN is never valid.
func (r Ray) ValidT(t float32) bool {
	return t > r.TMin && t < r.TMax
}

// Transform returns the ray transformed by m. The origin transforms as a
// point, the direction as a vector, and the parameter interval carries
// over unchanged so a hit parameter found in the transformed space is
// valid in the original space.
func (r Ray) Transform(m mgl32.Mat4) Ray {
	origin := m.Mul4x1(r.Origin.Vec4(1))
	direction := m.Mul4x1(r.Direction.Vec4(0))
	return Ray{
		Origin:    origin.Vec3(),
		Direction: direction.Vec3(),
		TMin:      r.TMin,
		TMax:      r.TMax,
	}
}
