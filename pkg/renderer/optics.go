package renderer

import (
	"github.com/chewxy/math32"

	"github.com/raypath/whitted/pkg/core"
)

// Reflect calculates the mirror reflection of direction i off a surface with
// unit normal n: i - 2*dot(i,n)*n
func Reflect(i, n core.Vec3) core.Vec3 {
	return i.Subtract(n.Multiply(2 * i.Dot(n)))
}

// Refract calculates the transmitted direction through a surface using
// Snell's law. When the incidence cosine shows the ray originates inside the
// medium, the refraction ratio is swapped and the normal flipped so the
// formula works in both directions. Returns the zero vector on total
// internal reflection; callers must treat that as "no transmission" rather
// than normalizing it.
func Refract(i, n core.Vec3, refractiveIndex float32) core.Vec3 {
	cosi := -math32.Max(-1, math32.Min(1, i.Dot(n)))
	etai, etat := float32(1), refractiveIndex
	if cosi < 0 { // ray is inside the object
		cosi = -cosi
		etai, etat = etat, etai
		n = n.Negate()
	}
	eta := etai / etat
	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 { // total internal reflection
		return core.Vec3{}
	}
	return i.Multiply(eta).Add(n.Multiply(eta*cosi - math32.Sqrt(k)))
}
