package geometry

import (
	"github.com/chewxy/math32"

	"github.com/raypath/whitted/pkg/core"
)

// planeEpsilon guards the ray/plane division against near-horizontal rays
const planeEpsilon = 1e-3

// Checkerboard is a horizontal plane at a fixed height, visible only inside
// a rectangular region, shaded with a procedural two-color tile pattern.
type Checkerboard struct {
	Height    float32   `json:"height"`    // Plane equation y = Height
	HalfWidth float32   `json:"halfWidth"` // Visible for |x| < HalfWidth
	ZNear     float32   `json:"zNear"`     // Visible for ZFar < z < ZNear
	ZFar      float32   `json:"zFar"`
	TileA     core.Vec3 `json:"tileA"` // Odd-parity tile color
	TileB     core.Vec3 `json:"tileB"` // Even-parity tile color
	Dim       float32   `json:"dim"`   // Applied to both tile colors
}

// NewCheckerboard returns the reference board: y = -4, |x| < 10, -30 < z < -10,
// white and orange tiles dimmed to 30%.
func NewCheckerboard() *Checkerboard {
	return &Checkerboard{
		Height:    -4,
		HalfWidth: 10,
		ZNear:     -10,
		ZFar:      -30,
		TileA:     core.NewVec3(1, 1, 1),
		TileB:     core.NewVec3(1, 0.7, 0.3),
		Dim:       0.3,
	}
}

// Intersect tests the ray against the bounded board region. On a hit the
// record carries the fixed up normal and a default material with the
// procedural tile color filled in.
func (b *Checkerboard) Intersect(ray core.Ray) (core.HitRecord, bool) {
	if math32.Abs(ray.Direction.Y) < planeEpsilon {
		return core.HitRecord{}, false
	}
	t := -(ray.Origin.Y - b.Height) / ray.Direction.Y
	if t <= 0 {
		return core.HitRecord{}, false
	}
	p := ray.At(t)
	if math32.Abs(p.X) >= b.HalfWidth || p.Z >= b.ZNear || p.Z <= b.ZFar {
		return core.HitRecord{}, false
	}

	material := core.DefaultMaterial()
	material.DiffuseColor = b.TileColor(p.X, p.Z)

	return core.HitRecord{
		T:        t,
		Point:    p,
		Normal:   core.NewVec3(0, 1, 0),
		Material: material,
	}, true
}

// TileColor returns the dimmed tile color under a board point. The tile
// index truncates half the coordinates to integers; the +1000 offset keeps
// the x term positive over the visible region so parity is well defined.
func (b *Checkerboard) TileColor(x, z float32) core.Vec3 {
	if (int32(0.5*x+1000)+int32(0.5*z))&1 == 1 {
		return b.TileA.Multiply(b.Dim)
	}
	return b.TileB.Multiply(b.Dim)
}
