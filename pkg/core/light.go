package core

// Light is a point light source with no falloff
type Light struct {
	Position  Vec3    `json:"position"`
	Intensity float32 `json:"intensity"`
}

// NewLight creates a new point light
func NewLight(position Vec3, intensity float32) Light {
	return Light{Position: position, Intensity: intensity}
}
