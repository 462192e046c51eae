package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
	"github.com/df07/go-adaptive-raytracer/pkg/material"
)

func TestWorld_Hit_Nearest(t *testing.T) {
	near := material.NewLambertian(core.NewVec3(1, 0, 0))
	far := material.NewLambertian(core.NewVec3(0, 1, 0))

	// Far sphere added first so order cannot decide the result
	world := NewWorld(
		NewSphere(core.NewVec3(0, 0, -10), 1, far),
		NewSphere(core.NewVec3(0, 0, -3), 1, near),
	)

	hit, isHit := world.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-2) > 1e-9 {
		t.Errorf("Expected nearest t=2, got %f", hit.T)
	}
	if hit.Material != material.Material(near) {
		t.Errorf("Expected near material, got %v", hit.Material)
	}
}

func TestWorld_Hit_TieKeepsFirst(t *testing.T) {
	first := material.NewLambertian(core.NewVec3(1, 0, 0))
	second := material.NewLambertian(core.NewVec3(0, 0, 1))

	world := NewWorld()
	world.Add(NewSphere(core.NewVec3(0, 0, -3), 1, first))
	world.Add(NewSphere(core.NewVec3(0, 0, -3), 1, second))

	hit, isHit := world.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit")
	}
	if hit.Material != material.Material(first) {
		t.Errorf("Expected first-added material on tie, got %v", hit.Material)
	}
}

func TestWorld_Hit_Empty(t *testing.T) {
	world := NewWorld()
	if world.Len() != 0 {
		t.Fatalf("Expected empty world, got %d items", world.Len())
	}
	if _, isHit := world.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, math.Inf(1)); isHit {
		t.Error("Expected miss in empty world")
	}
}

func TestWorld_Hit_OutOfRange(t *testing.T) {
	world := NewWorld(NewSphere(core.NewVec3(0, 0, -3), 1, material.NewDielectric(1.5)))
	if _, isHit := world.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), 0.001, 1); isHit {
		t.Error("Expected miss when surface lies beyond tMax")
	}
}
