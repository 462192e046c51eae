package material

import "github.com/df07/go-adaptive-raytracer/pkg/core"

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo core.Vec3 // Metal color
	Fuzz   float64   // 0.0 = perfect mirror, 1.0 = very fuzzy; clamped to [0, 1] when scattering
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzz float64) Metal {
	return Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter implements the Material interface for metal scattering
func (m Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	fuzz := max(0, min(m.Fuzz, 1))

	reflected := rayIn.Direction.UnitVector().Reflect(hit.Normal)
	scattered := core.NewRay(hit.Point, reflected.Add(core.RandomInUnitSphere(sampler).Multiply(fuzz)))

	// Rays fuzzed below the surface are absorbed
	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
	}, true
}
