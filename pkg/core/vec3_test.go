package core

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func vecNear(a, b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(5, -3, 9)},
		{"subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"divide", a.Divide(2), NewVec3(0.5, 1, 1.5)},
		{"multiply vec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"clamp", NewVec3(-1, 0.5, 300).Clamp(0, 255), NewVec3(0, 0.5, 255)},
		{"sqrt", NewVec3(4, 9, 0.25).Sqrt(), NewVec3(2, 3, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecNear(tt.got, tt.expected, tolerance) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}

	if d := a.Dot(b); d != 12 {
		t.Errorf("Expected dot 12, got %f", d)
	}
	if l := NewVec3(3, 4, 0).Length(); l != 5 {
		t.Errorf("Expected length 5, got %f", l)
	}
	if l := a.LengthSquared(); l != 14 {
		t.Errorf("Expected squared length 14, got %f", l)
	}
}

func TestVec3_UnitVector(t *testing.T) {
	v := NewVec3(3, -4, 12).UnitVector()
	if math.Abs(v.Length()-1) > tolerance {
		t.Errorf("Expected unit length, got %f", v.Length())
	}

	if z := NewVec3(0, 0, 0).Normalize(); z != (Vec3{}) {
		t.Errorf("Expected zero vector from Normalize, got %v", z)
	}
}

func TestVec3_NearZero(t *testing.T) {
	tests := []struct {
		v        Vec3
		expected bool
	}{
		{NewVec3(0, 0, 0), true},
		{NewVec3(1e-9, -1e-9, 5e-9), true},
		{NewVec3(1e-8, 0, 0), false},
		{NewVec3(0, 0, -0.1), false},
	}

	for _, tt := range tests {
		if got := tt.v.NearZero(); got != tt.expected {
			t.Errorf("NearZero(%v) = %t, expected %t", tt.v, got, tt.expected)
		}
	}
}

func TestVec3_Reflect(t *testing.T) {
	v := NewVec3(1, -1, 0)
	n := NewVec3(0, 1, 0)
	if got := v.Reflect(n); !vecNear(got, NewVec3(1, 1, 0), tolerance) {
		t.Errorf("Expected (1,1,0), got %v", got)
	}
}

func TestVec3_Refract(t *testing.T) {
	n := NewVec3(0, 1, 0)

	// Normal incidence passes straight through
	straight := NewVec3(0, -1, 0).Refract(n, 1/1.5)
	if !vecNear(straight, NewVec3(0, -1, 0), tolerance) {
		t.Errorf("Expected straight refraction, got %v", straight)
	}

	// Snell's law: sin(out) = ratio * sin(in)
	in := NewVec3(1, -1, 0).UnitVector()
	ratio := 1 / 1.5
	out := in.Refract(n, ratio)
	sinIn := in.X
	sinOut := out.X / out.Length()
	if math.Abs(sinOut-ratio*sinIn) > 1e-9 {
		t.Errorf("Expected sin(out)=%f, got %f", ratio*sinIn, sinOut)
	}
	if math.Abs(out.Length()-1) > 1e-9 {
		t.Errorf("Expected unit refracted vector, got length %f", out.Length())
	}
}

func TestRay_At(t *testing.T) {
	r := NewRay(NewVec3(1, 1, 1), NewVec3(0, 0, -2))
	if got := r.At(1.5); !vecNear(got, NewVec3(1, 1, -2), tolerance) {
		t.Errorf("Expected (1,1,-2), got %v", got)
	}
}
