package renderer

import (
	"github.com/chewxy/math32"

	"github.com/raypath/whitted/pkg/core"
)

// rayBias offsets secondary and shadow ray origins off the surface along the
// normal, avoiding self-intersection acne
const rayBias = 1e-3

// BackgroundColor is returned verbatim for any ray that escapes the scene or
// exceeds the recursion depth
var BackgroundColor = core.NewVec3(0.2, 0.7, 0.8)

// white is the specular highlight color
var white = core.NewVec3(1, 1, 1)

// CastRay evaluates the light arriving along the ray. On a hit it recurses
// into a reflection ray and, unless total internal reflection makes the
// direction degenerate, a refraction ray, then sums the direct diffuse and
// specular contributions of every unoccluded light, weighting the four terms
// by the material albedo. The result is an unclamped linear color; tone
// mapping happens downstream, never here.
func (r *Renderer) CastRay(ray core.Ray, depth, maxDepth int) core.Vec3 {
	if depth > maxDepth {
		return BackgroundColor
	}
	hit, ok := r.scene.Intersect(ray)
	if !ok {
		return BackgroundColor
	}
	material := hit.Material

	reflectDir := Reflect(ray.Direction, hit.Normal).Normalize()
	reflectRay := core.NewRay(biasedOrigin(hit.Point, hit.Normal, reflectDir), reflectDir)
	reflectColor := r.CastRay(reflectRay, depth+1, maxDepth)

	// A zero refraction direction is the total-internal-reflection sentinel:
	// skip the recursion and contribute nothing for that term.
	var refractColor core.Vec3
	if refractDir := Refract(ray.Direction, hit.Normal, material.RefractiveIndex); !refractDir.IsZero() {
		refractDir = refractDir.Normalize()
		refractRay := core.NewRay(biasedOrigin(hit.Point, hit.Normal, refractDir), refractDir)
		refractColor = r.CastRay(refractRay, depth+1, maxDepth)
	}

	var diffuseIntensity, specularIntensity float32
	for _, light := range r.scene.Lights {
		toLight := light.Position.Subtract(hit.Point)
		lightDistance := toLight.Length()
		lightDir := toLight.Multiply(1 / lightDistance)

		shadowRay := core.NewRay(biasedOrigin(hit.Point, hit.Normal, lightDir), lightDir)
		if occluder, blocked := r.scene.Intersect(shadowRay); blocked && occluder.T < lightDistance {
			continue
		}

		diffuseIntensity += light.Intensity * math32.Max(0, lightDir.Dot(hit.Normal))
		specularBase := math32.Max(0, Reflect(lightDir.Negate(), hit.Normal).Negate().Dot(ray.Direction))
		specularIntensity += light.Intensity * math32.Pow(specularBase, material.SpecularExponent)
	}

	color := material.DiffuseColor.Multiply(diffuseIntensity * material.Albedo.X)
	color = color.Add(white.Multiply(specularIntensity * material.Albedo.Y))
	color = color.Add(reflectColor.Multiply(material.Albedo.Z))
	color = color.Add(refractColor.Multiply(material.Albedo.W))
	return color
}

// biasedOrigin offsets point along the normal, on whichever side keeps a ray
// headed in dir from immediately re-hitting the surface it starts on
func biasedOrigin(point, normal, dir core.Vec3) core.Vec3 {
	if dir.Dot(normal) < 0 {
		return point.Subtract(normal.Multiply(rayBias))
	}
	return point.Add(normal.Multiply(rayBias))
}
