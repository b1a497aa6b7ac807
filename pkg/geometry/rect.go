package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Rect represents an emissive unit square panel. In its local frame the
// square spans x ∈ [-0.5, 0.5], z ∈ [-0.5, 0.5] on the y = 0 plane.
// Transform is the world-to-local matrix: it is applied to world-space rays
// to move them into the rect's frame. Callers placing a rect with an
// object-to-world matrix pass its inverse.
type Rect struct {
	Transform mgl32.Mat4
	Color     mgl32.Vec3
}

// NewRect creates a new rect from a world-to-local transform and an
// emissive color
func NewRect(worldToLocal mgl32.Mat4, color mgl32.Vec3) Rect {
	return Rect{Transform: worldToLocal, Color: color}
}

// Hit tests if a ray intersects with the rect and returns the ray parameter
// of the intersection. A ray parallel to the plane produces a non-finite t
// that the range and bounds checks reject; there is no explicit guard.
func (r Rect) Hit(ray Ray) (float32, bool) {
	local := ray.Transform(r.Transform)

	t := -local.Origin.Y() / local.Direction.Y()
	p := local.At(t)

	if local.ValidT(t) &&
		p.X() < 0.5 && p.X() > -0.5 &&
		p.Z() < 0.5 && p.Z() > -0.5 {
		return t, true
	}
	return 0, false
}

// BoundingBox returns the axis-aligned bounding box of the rect's four
// corners in world space
func (r Rect) BoundingBox() AABB {
	localToWorld := r.Transform.Inv()

	box := EmptyAABB()
	for _, corner := range [4]mgl32.Vec3{
		{0.5, 0, 0.5}, {-0.5, 0, 0.5}, {0.5, 0, -0.5}, {-0.5, 0, -0.5},
	} {
		box.AddPoint(localToWorld.Mul4x1(corner.Vec4(1)).Vec3())
	}
	return box
}
