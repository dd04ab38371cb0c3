package scene

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/raypath/whitted/pkg/core"
	"github.com/raypath/whitted/pkg/geometry"
)

func TestScene_Intersect_NearestSphereWins(t *testing.T) {
	near := core.NewMaterial(1, core.NewVec4(1, 0, 0, 0), core.NewVec3(1, 0, 0), 10)
	far := core.NewMaterial(1, core.NewVec4(1, 0, 0, 0), core.NewVec3(0, 1, 0), 10)

	s := NewScene()
	s.Board = nil
	// List order must not matter: the farther sphere comes first
	s.Spheres = []*geometry.Sphere{
		geometry.NewSphere(core.NewVec3(0, 0, -20), 2, far),
		geometry.NewSphere(core.NewVec3(0, 0, -10), 2, near),
	}

	hit, ok := s.Intersect(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)))
	if !ok {
		t.Fatal("Expected hit, got miss")
	}
	if math32.Abs(hit.T-8) > 1e-3 {
		t.Errorf("Expected nearest hit at t=8, got t=%f", hit.T)
	}
	if hit.Material.DiffuseColor != near.DiffuseColor {
		t.Errorf("Expected near sphere material, got %v", hit.Material.DiffuseColor)
	}
}

func TestScene_Intersect_NormalIsUnitLength(t *testing.T) {
	s := NewDefaultScene()

	directions := []core.Vec3{
		core.NewVec3(0, 0, -1),
		core.NewVec3(-0.2, 0, -1).Normalize(),
		core.NewVec3(0.1, -0.1, -1).Normalize(),
		core.NewVec3(0, -0.3, -1).Normalize(),
	}
	for _, dir := range directions {
		hit, ok := s.Intersect(core.NewRay(core.Vec3{}, dir))
		if !ok {
			continue
		}
		if math32.Abs(hit.Normal.Length()-1) > 1e-4 {
			t.Errorf("Direction %v: expected unit normal, got length %f", dir, hit.Normal.Length())
		}
	}
}

func TestScene_Intersect_BoardBeatsFartherSphere(t *testing.T) {
	s := NewScene()
	s.Spheres = []*geometry.Sphere{
		geometry.NewSphere(core.NewVec3(0, -100, -20), 10, core.DefaultMaterial()),
	}

	// Straight down through the board at (0, -4, -20)
	hit, ok := s.Intersect(core.NewRay(core.NewVec3(0, 0, -20), core.NewVec3(0, -1, 0)))
	if !ok {
		t.Fatal("Expected hit, got miss")
	}
	if hit.Normal != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected the board (up normal), got normal %v", hit.Normal)
	}
	if math32.Abs(hit.T-4) > 1e-3 {
		t.Errorf("Expected board hit at t=4, got t=%f", hit.T)
	}
}

func TestScene_Intersect_DistanceCutoff(t *testing.T) {
	s := NewScene()
	s.Board = nil
	s.Spheres = []*geometry.Sphere{
		geometry.NewSphere(core.NewVec3(0, 0, -2000), 10, core.DefaultMaterial()),
	}

	if _, ok := s.Intersect(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))); ok {
		t.Error("Expected a hit beyond the cutoff distance to be treated as a miss")
	}
}

func TestScene_Intersect_EmptySceneMisses(t *testing.T) {
	s := NewScene()
	s.Board = nil

	if _, ok := s.Intersect(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))); ok {
		t.Error("Expected miss in an empty scene")
	}
}

func TestScene_Orbit(t *testing.T) {
	s := NewDefaultScene()
	original := s.Spheres[0].Center

	s.Orbit(0, 90, 8, 0, -16)
	center := s.Spheres[0].Center
	if math32.Abs(center.X) > 1e-3 || math32.Abs(center.Z-(-8)) > 1e-3 {
		t.Errorf("Expected orbit to (0, y, -8), got %v", center)
	}
	if center.Y != original.Y {
		t.Errorf("Orbit must keep height, got y=%f want %f", center.Y, original.Y)
	}

	// Out-of-range indices are ignored
	s.Orbit(99, 90, 8, 0, -16)
}

func TestScene_Clone_IsIndependent(t *testing.T) {
	s := NewDefaultScene()
	c := s.Clone()

	if len(c.Spheres) != len(s.Spheres) || len(c.Lights) != len(s.Lights) {
		t.Fatalf("Clone changed shape: %d spheres %d lights", len(c.Spheres), len(c.Lights))
	}
	if c.Board == nil || c.Board == s.Board {
		t.Error("Expected the board to be copied, not shared")
	}

	original := s.Spheres[0].Center
	c.Orbit(0, 90, 8, 0, -16)
	if s.Spheres[0].Center != original {
		t.Errorf("Moving the clone moved the original to %v", s.Spheres[0].Center)
	}
	if c.Spheres[0].Center == original {
		t.Error("Expected the clone's sphere to move")
	}
}
