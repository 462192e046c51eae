package scene

import (
	"github.com/df07/go-adaptive-raytracer/pkg/core"
	"github.com/df07/go-adaptive-raytracer/pkg/geometry"
	"github.com/df07/go-adaptive-raytracer/pkg/material"
)

// DemoSphereCount is the number of random spheres placed on the ground
const DemoSphereCount = 100

// Camera placement used with the demo world
var (
	DefaultEye    = core.NewVec3(-2, 2, 1)
	DefaultTarget = core.NewVec3(0, 0, -1)
)

// NewDemoWorld builds a large yellow ground sphere plus DemoSphereCount
// randomly placed spheres. A draw below 0.2 yields glass, a draw in
// (0.2, 0.6) a diffuse sphere, and anything else (including exactly 0.2)
// a fuzzy metal.
func NewDemoWorld(sampler core.Sampler) *geometry.World {
	world := geometry.NewWorld()

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	world.Add(geometry.NewSphere(core.NewVec3(0.0, -100.5, -1.0), 100.0, ground))

	for range DemoSphereCount {
		r := sampler.Float64()

		diffuse := material.NewLambertian(core.RandomVec(sampler))
		glass := material.NewDielectric(1.5)
		metal := material.NewMetal(core.RandomVec(sampler), 1.0)

		radius := sampler.Range(0.1, 1.0)
		center := core.NewVec3(
			sampler.Range(-10, 10),
			sampler.Range(0, 1),
			sampler.Range(-10, 10),
		)

		var mat material.Material
		switch {
		case r < 0.2:
			mat = glass
		case r > 0.2 && r < 0.6:
			mat = diffuse
		default:
			mat = metal
		}
		world.Add(geometry.NewSphere(center, radius, mat))
	}

	core.Logger().Info("demo world built", "spheres", world.Len())
	return world
}
