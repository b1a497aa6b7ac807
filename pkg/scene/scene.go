// Package scene holds the per-frame scene buffers consumed by the
// rendering kernel: tightly packed primitive and light arrays plus the
// camera and scalar parameters. Buffers are immutable for the duration of
// a render call; the caller must not mutate them while a frame is in
// flight.
package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/avisner/go-sphere-visualizer/pkg/geometry"
	"github.com/avisner/go-sphere-visualizer/pkg/lights"
)

// Scene is the complete input of one frame. Primitive counts are implied
// by slice length; there is no fixed capacity.
type Scene struct {
	Spheres []geometry.Sphere
	Rects   []geometry.Rect
	Lights  []lights.PointLight

	Camera     Camera
	Background mgl32.Vec3

	// Bounces is carried with the frame parameters for buffer-layout
	// parity with the GPU side, but the integrator loop runs a fixed
	// compile-time bounce limit and never reads it.
	Bounces uint32

	// Advisory bounding boxes over the two primitive sets. The nearest-hit
	// scans may use them to skip work; they never change observable output
	// when they enclose their primitives.
	SphereBounds geometry.AABB
	RectBounds   geometry.AABB
}

// New creates a scene and computes the advisory bounding boxes from the
// primitive buffers
func New(camera Camera, background mgl32.Vec3, bounces uint32) *Scene {
	return &Scene{
		Camera:       camera,
		Background:   background,
		Bounces:      bounces,
		SphereBounds: geometry.EmptyAABB(),
		RectBounds:   geometry.EmptyAABB(),
	}
}

// AddSphere appends a sphere and grows the sphere bounding box
func (s *Scene) AddSphere(sphere geometry.Sphere) {
	s.Spheres = append(s.Spheres, sphere)
	s.SphereBounds = s.SphereBounds.Union(sphere.BoundingBox())
}

// AddRect appends a rect and grows the rect bounding box
func (s *Scene) AddRect(rect geometry.Rect) {
	s.Rects = append(s.Rects, rect)
	s.RectBounds = s.RectBounds.Union(rect.BoundingBox())
}

// AddLight appends a point light
func (s *Scene) AddLight(light lights.PointLight) {
	s.Lights = append(s.Lights, light)
}

// NearestSpheres scans all spheres for the nearest valid hit. On a miss it
// returns ok=false and the sentinel index len(s.Spheres). Ties are broken
// by iteration order: the first sphere at the minimal t wins under the
// strict < comparison.
func (s *Scene) NearestSpheres(ray geometry.Ray) (index int, t float32, ok bool) {
	index = len(s.Spheres)
	if !s.SphereBounds.Hit(ray) {
		return index, 0, false
	}

	nearest := float32(math.Inf(1))
	for i, sphere := range s.Spheres {
		if hitT, isHit := sphere.Hit(ray); isHit && hitT < nearest {
			nearest = hitT
			index = i
			ok = true
		}
	}
	if !ok {
		return len(s.Spheres), 0, false
	}
	return index, nearest, true
}

// NearestRects scans all rects for the nearest valid hit, with the same
// sentinel and tie-break policy as NearestSpheres over the independent
// rect index space.
func (s *Scene) NearestRects(ray geometry.Ray) (index int, t float32, ok bool) {
	index = len(s.Rects)
	if !s.RectBounds.Hit(ray) {
		return index, 0, false
	}

	nearest := float32(math.Inf(1))
	for i, rect := range s.Rects {
		if hitT, isHit := rect.Hit(ray); isHit && hitT < nearest {
			nearest = hitT
			index = i
			ok = true
		}
	}
	if !ok {
		return len(s.Rects), 0, false
	}
	return index, nearest, true
}

// Occluded reports whether any sphere blocks the ray. Rects are emissive
// panels and do not participate in shadow testing.
func (s *Scene) Occluded(ray geometry.Ray) bool {
	_, _, ok := s.NearestSpheres(ray)
	return ok
}

// SignedDistance returns a lower bound on the distance from a point to the
// nearest sphere surface. Rects are ignored.
func (s *Scene) SignedDistance(p mgl32.Vec3) float32 {
	distance := float32(math.Inf(1))
	for _, sphere := range s.Spheres {
		distance = min(distance, sphere.SignedDistance(p))
	}
	return distance
}
