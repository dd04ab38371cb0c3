package renderer

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/raypath/whitted/pkg/core"
	"github.com/raypath/whitted/pkg/geometry"
	"github.com/raypath/whitted/pkg/scene"
)

func emptyScene() *scene.Scene {
	s := scene.NewScene()
	s.Board = nil
	return s
}

func TestCastRay_BackgroundOnMiss(t *testing.T) {
	r := NewRenderer(emptyScene())

	color := r.CastRay(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0, 4)
	if color != BackgroundColor {
		t.Errorf("Expected background %v, got %v", BackgroundColor, color)
	}
}

func TestCastRay_DepthBoundTerminates(t *testing.T) {
	// A mirror sphere dead ahead: without the depth check this would recurse
	mirror := core.NewMaterial(1, core.NewVec4(0, 10, 0.8, 0), core.NewVec3(1, 1, 1), 1425)
	s := emptyScene()
	s.Spheres = []*geometry.Sphere{geometry.NewSphere(core.NewVec3(0, 0, -10), 2, mirror)}
	r := NewRenderer(s)

	color := r.CastRay(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 5, 4)
	if color != BackgroundColor {
		t.Errorf("Expected immediate background return past the depth bound, got %v", color)
	}
}

func TestCastRay_HardShadowOcclusion(t *testing.T) {
	diffuse := core.NewMaterial(1, core.NewVec4(1, 0, 0, 0), core.NewVec3(1, 0, 0), 10)
	opaque := core.NewMaterial(1, core.NewVec4(1, 0, 0, 0), core.NewVec3(0, 0, 1), 10)

	target := geometry.NewSphere(core.NewVec3(0, 0, -5), 1, diffuse)
	blocker := geometry.NewSphere(core.NewVec3(0, 0, 5), 1, opaque)
	light := core.NewLight(core.NewVec3(0, 0, 10), 2)

	lit := emptyScene()
	lit.Spheres = []*geometry.Sphere{target}
	lit.Lights = []core.Light{light}

	shadowed := emptyScene()
	shadowed.Spheres = []*geometry.Sphere{target, blocker}
	shadowed.Lights = []core.Light{light}

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))

	litColor := NewRenderer(lit).CastRay(ray, 0, 2)
	if litColor.MaxComponent() <= 0 {
		t.Fatalf("Expected direct lighting on the unblocked sphere, got %v", litColor)
	}

	// With the blocker exactly between light and surface, the light's entire
	// contribution is skipped: diffuse-only material, so the result is black.
	shadowedColor := NewRenderer(shadowed).CastRay(ray, 0, 2)
	if !shadowedColor.IsZero() {
		t.Errorf("Expected fully shadowed black, got %v", shadowedColor)
	}
}

func TestCastRay_GlassSphereProducesFiniteColors(t *testing.T) {
	// Refraction through glass exercises the TIR sentinel path; no ray may
	// produce NaN output
	glass := core.NewMaterial(1.5, core.NewVec4(0, 0.5, 0.1, 0.8), core.NewVec3(0.6, 0.7, 0.8), 125)
	s := emptyScene()
	s.Spheres = []*geometry.Sphere{geometry.NewSphere(core.NewVec3(0, 0, -6), 2, glass)}
	s.Lights = []core.Light{core.NewLight(core.NewVec3(-20, 20, 20), 1.5)}
	r := NewRenderer(s)

	for i := -20; i <= 20; i++ {
		dir := core.NewVec3(float32(i)*0.02, 0, -1).Normalize()
		color := r.CastRay(core.NewRay(core.Vec3{}, dir), 0, 4)
		if math32.IsNaN(color.X) || math32.IsNaN(color.Y) || math32.IsNaN(color.Z) {
			t.Fatalf("Direction %v produced NaN color %v", dir, color)
		}
	}
}

func TestCastRay_MirrorWeightExceedsDisplayRange(t *testing.T) {
	// The mirror's specular weight of 10 pushes colors far above 1; the
	// shader must return them unclamped
	mirror := core.NewMaterial(1, core.NewVec4(0, 10, 0.8, 0), core.NewVec3(1, 1, 1), 10)
	s := emptyScene()
	s.Spheres = []*geometry.Sphere{geometry.NewSphere(core.NewVec3(0, 0, -5), 2, mirror)}
	s.Lights = []core.Light{core.NewLight(core.NewVec3(0, 0, 10), 3)}
	r := NewRenderer(s)

	color := r.CastRay(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0, 1)
	if color.MaxComponent() <= 1 {
		t.Errorf("Expected an unclamped over-range color, got %v", color)
	}
}
