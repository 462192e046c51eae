package core

import "math/rand"

// maxSphereAttempts bounds rejection sampling in RandomInUnitSphere
const maxSphereAttempts = 10

// Sampler provides uniform random numbers for materials and anti-aliasing.
// Can be swapped out for deterministic testing.
type Sampler interface {
	// Float64 returns a value in [0, 1)
	Float64() float64
	// Range returns a value in [min, max)
	Range(min, max float64) float64
}

// RandomSampler wraps a standard Go random generator.
// It is not safe for concurrent use; give each task its own.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with a deterministic seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Float64 returns a random float64 in [0, 1)
func (r *RandomSampler) Float64() float64 {
	return r.random.Float64()
}

// Range returns a random float64 in [min, max)
func (r *RandomSampler) Range(min, max float64) float64 {
	return min + (max-min)*r.random.Float64()
}

// RandomVec returns a vector with each component in [0, 1)
func RandomVec(s Sampler) Vec3 {
	return Vec3{X: s.Float64(), Y: s.Float64(), Z: s.Float64()}
}

// RandomVecRange returns a vector with each component in [min, max)
func RandomVecRange(s Sampler, min, max float64) Vec3 {
	return Vec3{X: s.Range(min, max), Y: s.Range(min, max), Z: s.Range(min, max)}
}

// RandomInUnitSphere rejection-samples a point inside the unit sphere.
// After maxSphereAttempts misses it falls back to a normalized [0,1)^3
// vector so the call always terminates.
func RandomInUnitSphere(s Sampler) Vec3 {
	for range maxSphereAttempts {
		p := RandomVecRange(s, -1, 1)
		if p.LengthSquared() <= 1 {
			return p
		}
	}
	return RandomVec(s).UnitVector()
}

// RandomUnitVector returns a random direction on the unit sphere
func RandomUnitVector(s Sampler) Vec3 {
	return RandomInUnitSphere(s).UnitVector()
}

// RandomInHemisphere returns a point in the unit sphere on the same side as normal
func RandomInHemisphere(s Sampler, normal Vec3) Vec3 {
	p := RandomInUnitSphere(s)
	if p.Dot(normal) > 0 {
		return p
	}
	return p.Negate()
}
