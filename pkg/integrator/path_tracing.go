package integrator

import (
	"math"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
	"github.com/df07/go-adaptive-raytracer/pkg/material"
)

// MinDistance is the lower bound on hit distances. It keeps scattered rays
// from re-hitting the surface they left (shadow acne).
const MinDistance = 0.001

// Scene is the read-only world the integrator traces against
type Scene interface {
	Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool)
}

// skyColor is the zenith color of the background gradient
var skyColor = core.NewVec3(0.5, 0.7, 1.0)

// Sky returns the background gradient for a ray that escaped the scene:
// white at the horizon blending to sky blue at the zenith.
func Sky(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.UnitVector()
	t := 0.5 * (unitDirection.Y + 1.0)
	return core.White().Multiply(1.0 - t).Add(skyColor.Multiply(t))
}

// NormalColor maps a unit normal to a color, 0.5·(n + 1)
func NormalColor(normal core.Vec3) core.Vec3 {
	return normal.Add(core.White()).Multiply(0.5)
}

// PathTracer accumulates color along a ray's scatter chain
type PathTracer struct {
	MaxBounces   int  // Bounce depth before a ray is forced to black
	DebugNormals bool // Return surface normals instead of scattering
}

// NewPathTracer creates a path tracer
func NewPathTracer(maxBounces int, debugNormals bool) *PathTracer {
	return &PathTracer{MaxBounces: maxBounces, DebugNormals: debugNormals}
}

// RayColor traces a ray with the configured bounce budget
func (pt *PathTracer) RayColor(ray core.Ray, scene Scene, sampler core.Sampler) core.Vec3 {
	return RayColor(ray, scene, pt.MaxBounces, pt.DebugNormals, sampler)
}

// RayColor returns the color seen along ray. Each bounce multiplies the
// running attenuation; exhausting bounces or absorption yields black and a
// miss yields the sky gradient.
func RayColor(ray core.Ray, scene Scene, bounces int, debugNormals bool, sampler core.Sampler) core.Vec3 {
	throughput := core.White()

	for ; bounces > 0; bounces-- {
		hit, isHit := scene.Hit(ray, MinDistance, math.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(Sky(ray))
		}

		if debugNormals {
			return throughput.MultiplyVec(NormalColor(hit.Normal))
		}

		scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
		if !didScatter {
			return core.Vec3{}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	return core.Vec3{}
}
