package renderer

import (
	"github.com/chewxy/math32"

	"github.com/raypath/whitted/pkg/core"
)

// Camera generates primary rays for a pixel grid. The eye is fixed at the
// origin looking down -Z; the grid dimensions are the downsampled buffer
// dimensions, which keeps the aspect correction consistent with the buffer
// actually being filled.
type Camera struct {
	width, height int
	tanHalfFov    float32
}

// NewCamera creates a camera for a width x height pixel grid with the given
// vertical field of view in radians
func NewCamera(width, height int, fov float32) *Camera {
	return &Camera{
		width:      width,
		height:     height,
		tanHalfFov: math32.Tan(fov / 2),
	}
}

// GetRay generates the primary ray through the center of pixel (i, j)
func (c *Camera) GetRay(i, j int) core.Ray {
	w, h := float32(c.width), float32(c.height)
	x := (2*(float32(i)+0.5)/w - 1) * c.tanHalfFov * w / h
	y := -(2*(float32(j)+0.5)/h - 1) * c.tanHalfFov
	return core.NewRay(core.Vec3{}, core.NewVec3(x, y, -1).Normalize())
}
