package material

import "github.com/df07/go-adaptive-raytracer/pkg/core"

// HitRecord contains information about a ray-surface intersection.
// It lives for a single ray evaluation.
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal, always facing against the incoming ray
	T         float64   // Ray parameter at the intersection
	FrontFace bool      // Whether the ray hit the outside of the surface
	Material  Material  // Material of the intersected surface
}

// SetFaceNormal orients the normal against the ray and records which side was hit
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // Scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter returns the scattered ray and attenuation, or false if the ray was absorbed
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)
}
