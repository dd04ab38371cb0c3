package core

// Material describes how a surface responds to light. Albedo holds the
// weights of the diffuse, specular, reflected and refracted contributions,
// in that order. The weights are not required to sum to 1, so shaded colors
// can exceed the displayable range and are tone mapped downstream.
type Material struct {
	RefractiveIndex  float32 `json:"refractiveIndex"`
	Albedo           Vec4    `json:"albedo"`
	DiffuseColor     Vec3    `json:"diffuseColor"`
	SpecularExponent float32 `json:"specularExponent"`
}

// NewMaterial creates a material from its four parameters
func NewMaterial(refractiveIndex float32, albedo Vec4, diffuseColor Vec3, specularExponent float32) Material {
	return Material{
		RefractiveIndex:  refractiveIndex,
		Albedo:           albedo,
		DiffuseColor:     diffuseColor,
		SpecularExponent: specularExponent,
	}
}

// DefaultMaterial returns the diffuse-only black material used as the base
// for procedurally shaded surfaces such as the checkerboard
func DefaultMaterial() Material {
	return Material{
		RefractiveIndex: 1,
		Albedo:          NewVec4(1, 0, 0, 0),
	}
}
