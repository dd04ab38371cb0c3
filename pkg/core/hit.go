package core

// HitRecord describes a single ray/surface intersection. Records are
// produced fresh per intersection query and consumed immediately; the
// fields are only meaningful when the query reported a hit.
type HitRecord struct {
	T        float32  // Distance from the ray origin to the hit point
	Point    Vec3     // Hit point in world space
	Normal   Vec3     // Outward unit surface normal at the hit point
	Material Material // Material of the surface that was hit
}
