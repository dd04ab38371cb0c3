package scene

import "github.com/chewxy/math32"

// Orbit places the sphere at index on a horizontal circle of the given
// radius around (cx, cz), at angleDeg degrees, keeping its height. Out of
// range indices are ignored so animation never depends on scene contents.
func (s *Scene) Orbit(index int, angleDeg, radius, cx, cz float32) {
	if index < 0 || index >= len(s.Spheres) {
		return
	}
	rad := angleDeg * math32.Pi / 180
	s.Spheres[index].Center.X = cx + radius*math32.Cos(rad)
	s.Spheres[index].Center.Z = cz + radius*math32.Sin(rad)
}
