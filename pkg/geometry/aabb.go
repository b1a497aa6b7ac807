package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl32.Vec3 // Minimum corner
	Max mgl32.Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max mgl32.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// EmptyAABB creates an inverted AABB that contains nothing. Adding points
// grows it into a valid box; its Hit test always reports a miss.
func EmptyAABB() AABB {
	inf := float32(math.Inf(1))
	return AABB{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}
}

// AddPoint grows the AABB to contain the given point
func (aabb *AABB) AddPoint(p mgl32.Vec3) {
	for axis := 0; axis < 3; axis++ {
		aabb.Min[axis] = min(aabb.Min[axis], p[axis])
		aabb.Max[axis] = max(aabb.Max[axis], p[axis])
	}
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	result := aabb
	for axis := 0; axis < 3; axis++ {
		result.Min[axis] = min(result.Min[axis], other.Min[axis])
		result.Max[axis] = max(result.Max[axis], other.Max[axis])
	}
	return result
}

// Contains reports whether the point lies inside the box (inclusive)
func (aabb AABB) Contains(p mgl32.Vec3) bool {
	for axis := 0; axis < 3; axis++ {
		if p[axis] < aabb.Min[axis] || p[axis] > aabb.Max[axis] {
			return false
		}
	}
	return true
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min[0] <= aabb.Max[0] &&
		aabb.Min[1] <= aabb.Max[1] &&
		aabb.Min[2] <= aabb.Max[2]
}

// Hit tests if a ray can intersect this AABB inside the ray's valid
// parameter interval, using the slab method. The test is conservative: it
// only reports a miss when no parameter in (TMin, TMax) reaches the box,
// so it is safe to use as a cull in front of an exact primitive scan.
func (aabb AABB) Hit(ray Ray) bool {
	if !aabb.IsValid() {
		return false
	}

	tMin, tMax := ray.TMin, ray.TMax

	for axis := 0; axis < 3; axis++ {
		lo := aabb.Min[axis]
		hi := aabb.Max[axis]
		origin := ray.Origin[axis]
		direction := ray.Direction[axis]

		// Parallel rays never cross the slab planes
		if abs32(direction) < 1e-8 {
			if origin < lo || origin > hi {
				return false
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (lo - origin) * invDirection
		t2 := (hi - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = max(tMin, t1)
		tMax = min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}

	return true
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
