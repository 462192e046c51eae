package renderer

import "time"

// Render divisor bounds. A larger divisor means a coarser, faster frame.
const (
	MinRenderScalar = 12
	MaxRenderScalar = 120
)

// HzToDuration converts a frame rate to a frame budget
func HzToDuration(hz int) time.Duration {
	return time.Second / time.Duration(hz)
}

// ResolutionController steers the render divisor so frames land on a target
// duration. It moves one step per observed frame.
type ResolutionController struct {
	divisor  int
	min, max int
	target   time.Duration
}

// NewResolutionController starts at initial (clamped to the divisor bounds)
func NewResolutionController(initial int, target time.Duration) *ResolutionController {
	return &ResolutionController{
		divisor: max(MinRenderScalar, min(initial, MaxRenderScalar)),
		min:     MinRenderScalar,
		max:     MaxRenderScalar,
		target:  target,
	}
}

// Divisor returns the current render divisor
func (rc *ResolutionController) Divisor() int { return rc.divisor }

// Target returns the frame budget
func (rc *ResolutionController) Target() time.Duration { return rc.target }

// Observe feeds the duration of a completed frame. A slow frame coarsens the
// resolution, a fast one refines it, an exact hit leaves it alone. changed
// reports whether the caller needs to resize.
func (rc *ResolutionController) Observe(elapsed time.Duration) (divisor int, changed bool) {
	switch {
	case elapsed > rc.target && rc.divisor < rc.max:
		rc.divisor++
		changed = true
	case elapsed < rc.target && rc.divisor > rc.min:
		rc.divisor--
		changed = true
	}
	return rc.divisor, changed
}

// RenderSize divides the window by the current divisor, keeping at least one
// pixel in each dimension
func (rc *ResolutionController) RenderSize(window Size) Size {
	return ScaledSize(window, rc.divisor)
}

// ScaledSize divides window by divisor (treated as at least 1), keeping at
// least one pixel in each dimension
func ScaledSize(window Size, divisor int) Size {
	divisor = max(divisor, 1)
	return Size{
		Width:  max(window.Width/divisor, 1),
		Height: max(window.Height/divisor, 1),
	}
}
