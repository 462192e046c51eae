package renderer

import (
	"math"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
)

// Camera generates rays for rendering
type Camera struct {
	origin core.Vec3
	target core.Vec3
	up     core.Vec3

	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3

	viewportWidth  float64
	viewportHeight float64
}

// NewCamera creates a camera with focal length 1 looking from the origin down +Z.
// aspectRatio must be positive.
func NewCamera(aspectRatio, vfovDegrees float64) *Camera {
	theta := core.DegreesToRadians(vfovDegrees)
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := aspectRatio * viewportHeight

	c := &Camera{
		viewportWidth:  viewportWidth,
		viewportHeight: viewportHeight,
	}
	c.LookAt(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), core.UnitY())
	return c
}

// LookAt repositions the camera. up must not be parallel to eye-target;
// a degenerate basis produces NaN rays.
func (c *Camera) LookAt(eye, target, up core.Vec3) {
	w := eye.Subtract(target).UnitVector()
	u := up.Cross(w).UnitVector()
	v := w.Cross(u)

	c.origin = eye
	c.target = target
	c.up = up

	c.horizontal = u.Multiply(c.viewportWidth)
	c.vertical = v.Multiply(c.viewportHeight)
	c.lowerLeftCorner = eye.
		Subtract(c.horizontal.Multiply(0.5)).
		Subtract(c.vertical.Multiply(0.5)).
		Subtract(w)
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1
// and (0, 0) is the lower left corner of the viewport
func (c *Camera) GetRay(s, t float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}

// Eye returns the camera position
func (c *Camera) Eye() core.Vec3 { return c.origin }

// Target returns the point the camera looks at
func (c *Camera) Target() core.Vec3 { return c.target }

// Up returns the camera up vector
func (c *Camera) Up() core.Vec3 { return c.up }

// ViewportSize returns the viewport width and height at focal distance 1
func (c *Camera) ViewportSize() (width, height float64) {
	return c.viewportWidth, c.viewportHeight
}
