package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
)

func vecNear(a, b core.Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}

func TestNewCamera_Defaults(t *testing.T) {
	camera := NewCamera(2.0, 90)

	if camera.Eye() != (core.Vec3{}) || camera.Target() != core.NewVec3(0, 0, 1) || camera.Up() != core.UnitY() {
		t.Errorf("Unexpected default view eye=%v target=%v up=%v", camera.Eye(), camera.Target(), camera.Up())
	}

	width, height := camera.ViewportSize()
	if math.Abs(height-2) > 1e-9 {
		t.Errorf("Expected viewport height 2 for 90 degree fov, got %f", height)
	}
	if math.Abs(width-4) > 1e-9 {
		t.Errorf("Expected viewport width 4 for aspect 2, got %f", width)
	}

	center := camera.GetRay(0.5, 0.5)
	if !vecNear(center.Direction, core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected center ray along +Z, got %v", center.Direction)
	}
}

func TestCamera_LookAt(t *testing.T) {
	camera := NewCamera(1.0, 90)
	eye := core.NewVec3(1, 2, 3)
	camera.LookAt(eye, core.NewVec3(1, 2, 0), core.UnitY())

	tests := []struct {
		name     string
		s, t     float64
		expected core.Vec3
	}{
		{"center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
		{"lower left", 0, 0, core.NewVec3(-1, -1, -1)},
		{"upper right", 1, 1, core.NewVec3(1, 1, -1)},
		{"lower right", 1, 0, core.NewVec3(1, -1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.s, tt.t)
			if ray.Origin != eye {
				t.Errorf("Expected origin %v, got %v", eye, ray.Origin)
			}
			if !vecNear(ray.Direction, tt.expected, 1e-9) {
				t.Errorf("Expected direction %v, got %v", tt.expected, ray.Direction)
			}
		})
	}
}

func TestCamera_LookAt_OrthonormalBasis(t *testing.T) {
	camera := NewCamera(16.0/9.0, 60)
	camera.LookAt(core.NewVec3(-2, 2, 1), core.NewVec3(0, 0, -1), core.UnitY())

	if d := camera.horizontal.Dot(camera.vertical); math.Abs(d) > 1e-9 {
		t.Errorf("Horizontal and vertical not orthogonal: dot=%g", d)
	}

	width, height := camera.ViewportSize()
	if math.Abs(camera.horizontal.Length()-width) > 1e-9 {
		t.Errorf("Expected horizontal length %f, got %f", width, camera.horizontal.Length())
	}
	if math.Abs(camera.vertical.Length()-height) > 1e-9 {
		t.Errorf("Expected vertical length %f, got %f", height, camera.vertical.Length())
	}

	// The center ray points at the target since the focal plane sits at distance 1
	center := camera.GetRay(0.5, 0.5).Direction.UnitVector()
	expected := core.NewVec3(0, 0, -1).Subtract(core.NewVec3(-2, 2, 1)).UnitVector()
	if !vecNear(center, expected, 1e-9) {
		t.Errorf("Expected center direction %v, got %v", expected, center)
	}
}
