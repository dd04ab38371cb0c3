package geometry

import (
	"github.com/chewxy/math32"

	"github.com/raypath/whitted/pkg/core"
)

// Sphere represents a sphere shape. The center may be mutated by the caller
// between frames (e.g. for animation); no intersection state is cached.
type Sphere struct {
	Center   core.Vec3     `json:"center"`
	Radius   float32       `json:"radius"`
	Material core.Material `json:"material"`
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float32, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Intersect returns the distance to the nearest intersection of the ray with
// the sphere, using the closest-approach projection method. The ray direction
// must be unit length. If the near intersection lies behind the ray origin
// the far one is used; if both do, there is no hit.
func (s *Sphere) Intersect(ray core.Ray) (float32, bool) {
	l := s.Center.Subtract(ray.Origin)
	tca := l.Dot(ray.Direction)
	d2 := l.Dot(l) - tca*tca
	r2 := s.Radius * s.Radius
	if d2 > r2 {
		return 0, false
	}
	thc := math32.Sqrt(r2 - d2)
	t := tca - thc
	if t < 0 {
		t = tca + thc
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// NormalAt returns the outward unit normal at a point on the sphere surface
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}
