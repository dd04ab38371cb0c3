package scene

import (
	"github.com/raypath/whitted/pkg/core"
	"github.com/raypath/whitted/pkg/geometry"
)

// NewDefaultScene creates the reference scene: an ivory sphere, a glass
// sphere, a red rubber sphere and a mirror sphere above the checkerboard,
// lit by three point lights.
func NewDefaultScene() *Scene {
	ivory := core.NewMaterial(1.0, core.NewVec4(0.6, 0.3, 0.1, 0.0), core.NewVec3(0.4, 0.4, 0.3), 50)
	glass := core.NewMaterial(1.5, core.NewVec4(0.0, 0.5, 0.1, 0.8), core.NewVec3(0.6, 0.7, 0.8), 125)
	redRubber := core.NewMaterial(1.0, core.NewVec4(0.9, 0.1, 0.0, 0.0), core.NewVec3(0.3, 0.1, 0.1), 10)
	mirror := core.NewMaterial(1.0, core.NewVec4(0.0, 10.0, 0.8, 0.0), core.NewVec3(1, 1, 1), 1425)

	s := NewScene()
	s.Spheres = []*geometry.Sphere{
		geometry.NewSphere(core.NewVec3(-3, 0, -16), 2, ivory),
		geometry.NewSphere(core.NewVec3(-1, -1.5, -12), 2, glass),
		geometry.NewSphere(core.NewVec3(1.5, -0.5, -18), 3, redRubber),
		geometry.NewSphere(core.NewVec3(7, 5, -18), 4, mirror),
	}
	s.Lights = []core.Light{
		core.NewLight(core.NewVec3(-20, 20, 20), 1.5),
		core.NewLight(core.NewVec3(30, 50, -25), 1.8),
		core.NewLight(core.NewVec3(30, 20, 30), 1.7),
	}
	return s
}
