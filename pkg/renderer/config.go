package renderer

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned for resolutions with a non-positive dimension
	ErrInvalidSize = errors.New("invalid render size")
	// ErrInvalidConfig is returned when a Config fails validation
	ErrInvalidConfig = errors.New("invalid render config")
)

// Config contains rendering configuration
type Config struct {
	AASamples          int     // Extra jittered rays per pixel on top of the primary ray
	PostProcessAA      bool    // Run the neighbor-averaging filter after the primary pass
	PrimaryRayStrength int     // Weight of a pixel's own color in the post filter
	DebugNormals       bool    // Shade surfaces by normal instead of scattering
	MaxBounces         int     // Maximum scatter chain length
	VerticalFOV        float64 // Vertical field of view in degrees
	Workers            int     // Parallel scanline workers (0 = use CPU count)
	Seed               int64   // Seed for scene generation and per-row samplers
}

// DefaultConfig returns the settings the demo runs with
func DefaultConfig() Config {
	return Config{
		AASamples:          0,
		PostProcessAA:      false,
		PrimaryRayStrength: 5,
		DebugNormals:       false,
		MaxBounces:         50,
		VerticalFOV:        90,
		Workers:            0,
		Seed:               42,
	}
}

// Validate checks the config for values the renderer cannot work with
func (c Config) Validate() error {
	switch {
	case c.AASamples < 0:
		return fmt.Errorf("%w: aa samples %d is negative", ErrInvalidConfig, c.AASamples)
	case c.PrimaryRayStrength < 0:
		return fmt.Errorf("%w: primary ray strength %d is negative", ErrInvalidConfig, c.PrimaryRayStrength)
	case c.PostProcessAA && c.PrimaryRayStrength == 0:
		return fmt.Errorf("%w: post filter needs a positive primary ray strength", ErrInvalidConfig)
	case c.MaxBounces < 0:
		return fmt.Errorf("%w: max bounces %d is negative", ErrInvalidConfig, c.MaxBounces)
	case !(c.VerticalFOV > 0 && c.VerticalFOV < 180):
		return fmt.Errorf("%w: vertical fov %v outside (0, 180)", ErrInvalidConfig, c.VerticalFOV)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d is negative", ErrInvalidConfig, c.Workers)
	}
	return nil
}

func validateSize(size Size) error {
	if size.Width <= 0 || size.Height <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidSize, size)
	}
	return nil
}
