package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Sphere represents a sphere shape with a glossy, Fresnel-weighted surface.
// N is the refractive index of the material, used as the n2 side of
// Schlick's approximation against vacuum (n1 = 1).
type Sphere struct {
	Center mgl32.Vec3
	Radius float32
	Color  mgl32.Vec3
	N      float32
}

// NewSphere creates a new sphere
func NewSphere(center mgl32.Vec3, radius float32, color mgl32.Vec3, n float32) Sphere {
	return Sphere{Center: center, Radius: radius, Color: color, N: n}
}

// Hit tests if a ray intersects with the sphere and returns the ray
// parameter of the intersection. Only the near root of the quadratic is
// considered: a ray whose near intersection is out of range (for example
// a ray starting inside the sphere) is a miss, there is no far-root
// fallback.
func (s Sphere) Hit(ray Ray) (float32, bool) {
	oc := ray.Origin.Sub(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4.0*a*c
	if discriminant < 0 {
		return 0, false
	}

	t := (-b - sqrt32(discriminant)) / (2.0 * a)
	return t, ray.ValidT(t)
}

// SignedDistance returns the signed distance from a point to the sphere
// surface (negative inside)
func (s Sphere) SignedDistance(p mgl32.Vec3) float32 {
	return p.Sub(s.Center).Len() - s.Radius
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s Sphere) BoundingBox() AABB {
	r := mgl32.Vec3{s.Radius, s.Radius, s.Radius}
	return AABB{Min: s.Center.Sub(r), Max: s.Center.Add(r)}
}

func sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}
