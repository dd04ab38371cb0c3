package geometry

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/raypath/whitted/pkg/core"
)

func TestCheckerboard_Intersect(t *testing.T) {
	board := NewCheckerboard()

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		expectHit bool
	}{
		{
			name:      "hit inside the bounded region",
			origin:    core.NewVec3(0, 0, 0),
			direction: core.NewVec3(0, -4, -20).Normalize(),
			expectHit: true,
		},
		{
			name:      "near-horizontal ray is rejected",
			origin:    core.NewVec3(0, 0, 0),
			direction: core.NewVec3(0, -1e-4, -1).Normalize(),
			expectHit: false,
		},
		{
			name:      "outside the x bound",
			origin:    core.NewVec3(0, 0, 0),
			direction: core.NewVec3(15, -4, -20).Normalize(),
			expectHit: false,
		},
		{
			name:      "in front of the z interval",
			origin:    core.NewVec3(0, 0, 0),
			direction: core.NewVec3(0, -4, -5).Normalize(),
			expectHit: false,
		},
		{
			name:      "beyond the z interval",
			origin:    core.NewVec3(0, 0, 0),
			direction: core.NewVec3(0, -4, -35).Normalize(),
			expectHit: false,
		},
		{
			name:      "plane behind the ray",
			origin:    core.NewVec3(0, -8, -20),
			direction: core.NewVec3(0, -1, 0),
			expectHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := board.Intersect(core.NewRay(tt.origin, tt.direction))

			if ok != tt.expectHit {
				t.Fatalf("Expected hit=%t, got hit=%t", tt.expectHit, ok)
			}
			if !ok {
				return
			}
			if hit.Normal != core.NewVec3(0, 1, 0) {
				t.Errorf("Expected up normal, got %v", hit.Normal)
			}
			if math32.Abs(hit.Point.Y-board.Height) > 1e-3 {
				t.Errorf("Expected hit at y=%f, got y=%f", board.Height, hit.Point.Y)
			}
			if hit.Material.Albedo != core.DefaultMaterial().Albedo {
				t.Errorf("Expected diffuse-only board material, got albedo %v", hit.Material.Albedo)
			}
		})
	}
}

func TestCheckerboard_TileColor_Parity(t *testing.T) {
	board := NewCheckerboard()

	// Adjacent tiles two units apart alternate colors
	a := board.TileColor(0, -20)
	b := board.TileColor(2, -20)
	c := board.TileColor(4, -20)

	if a == b {
		t.Errorf("Adjacent tiles should differ, both %v", a)
	}
	if a != c {
		t.Errorf("Tiles two apart should match: %v vs %v", a, c)
	}

	// Every tile color carries the fixed dimming factor
	expectedEven := board.TileB.Multiply(board.Dim)
	if a != expectedEven {
		t.Errorf("Expected even-parity color %v, got %v", expectedEven, a)
	}
	expectedOdd := board.TileA.Multiply(board.Dim)
	if b != expectedOdd {
		t.Errorf("Expected odd-parity color %v, got %v", expectedOdd, b)
	}
}
