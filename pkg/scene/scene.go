// Package scene holds the renderable world: a flat list of spheres, the
// point lights and the bounded checkerboard plane. Intersection queries scan
// the sphere list linearly; there is deliberately no acceleration structure.
package scene

import (
	"github.com/raypath/whitted/pkg/core"
	"github.com/raypath/whitted/pkg/geometry"
)

// maxHitDistance is the cutoff beyond which a winning intersection is still
// treated as a miss (the ray escaped to the background)
const maxHitDistance = 1000

// Scene is the world rendered each frame. Sphere centers may be mutated by
// the caller between frames; everything is treated as read-only during a
// frame, which keeps per-pixel evaluation safe to parallelize.
type Scene struct {
	Spheres []*geometry.Sphere     `json:"spheres"`
	Lights  []core.Light           `json:"lights"`
	Board   *geometry.Checkerboard `json:"board,omitempty"`
}

// NewScene creates an empty scene with the reference checkerboard
func NewScene() *Scene {
	return &Scene{Board: geometry.NewCheckerboard()}
}

// Clone returns a deep copy of the scene. A caller that animates sphere
// centers between frames clones first, so concurrent renders never share
// mutable state.
func (s *Scene) Clone() *Scene {
	c := &Scene{
		Spheres: make([]*geometry.Sphere, len(s.Spheres)),
		Lights:  append([]core.Light(nil), s.Lights...),
	}
	for i, sphere := range s.Spheres {
		copied := *sphere
		c.Spheres[i] = &copied
	}
	if s.Board != nil {
		board := *s.Board
		c.Board = &board
	}
	return c
}

// Intersect returns the nearest surface hit by the ray, scanning all spheres
// and then the checkerboard. The record is only meaningful when the second
// return value is true.
func (s *Scene) Intersect(ray core.Ray) (core.HitRecord, bool) {
	var hit core.HitRecord
	nearest := float32(maxHitDistance)

	for _, sphere := range s.Spheres {
		t, ok := sphere.Intersect(ray)
		if !ok || t >= nearest {
			continue
		}
		point := ray.At(t)
		nearest = t
		hit = core.HitRecord{
			T:        t,
			Point:    point,
			Normal:   sphere.NormalAt(point),
			Material: sphere.Material,
		}
	}

	if s.Board != nil {
		if boardHit, ok := s.Board.Intersect(ray); ok && boardHit.T < nearest {
			nearest = boardHit.T
			hit = boardHit
		}
	}

	if nearest >= maxHitDistance {
		return core.HitRecord{}, false
	}
	return hit, true
}
