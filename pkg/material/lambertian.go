package material

import "github.com/df07/go-adaptive-raytracer/pkg/core"

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) Lambertian {
	return Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering
func (l Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	direction := hit.Normal.Add(core.RandomUnitVector(sampler))

	// Catch degenerate scatter direction
	if direction.NearZero() {
		direction = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: l.Albedo,
	}, true
}
