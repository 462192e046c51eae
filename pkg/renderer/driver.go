package renderer

import (
	"time"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
)

// DriverOption configures a Driver
type DriverOption func(*Driver)

// WithClock replaces time.Now for frame timing
func WithClock(now func() time.Time) DriverOption {
	return func(d *Driver) {
		d.now = now
	}
}

// WithController enables adaptive resolution
func WithController(rc *ResolutionController) DriverOption {
	return func(d *Driver) {
		d.controller = rc
	}
}

// WithRenderScalar sets a fixed divisor when no controller is used
func WithRenderScalar(divisor int) DriverOption {
	return func(d *Driver) {
		d.scalar = max(divisor, 1)
	}
}

// Driver runs frames for a window, timing each one and adjusting the
// engine resolution between frames
type Driver struct {
	engine     *Engine
	controller *ResolutionController
	window     Size
	scalar     int
	now        func() time.Time
}

// NewDriver sizes engine for window and returns a driver for it
func NewDriver(engine *Engine, window Size, opts ...DriverOption) (*Driver, error) {
	d := &Driver{
		engine: engine,
		window: window,
		scalar: 1,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}

	if err := validateSize(window); err != nil {
		return nil, err
	}
	if err := d.engine.Resize(d.renderSize()); err != nil {
		return nil, err
	}
	return d, nil
}

// Engine returns the driven engine
func (d *Driver) Engine() *Engine { return d.engine }

// Window returns the window size
func (d *Driver) Window() Size { return d.window }

// Divisor returns the divisor in effect for the next frame
func (d *Driver) Divisor() int {
	if d.controller != nil {
		return d.controller.Divisor()
	}
	return d.scalar
}

// ResizeWindow handles a window resize event
func (d *Driver) ResizeWindow(window Size) error {
	if err := validateSize(window); err != nil {
		return err
	}
	d.window = window
	return d.engine.Resize(d.renderSize())
}

// Frame renders one frame into sink. When adaptive resolution is enabled
// the next frame's size is decided here, after the full frame was timed.
func (d *Driver) Frame(sink Sink) (FrameStats, error) {
	start := d.now()
	stats, err := d.engine.ExecuteRender(sink)
	if err != nil {
		return stats, err
	}
	stats.Elapsed = d.now().Sub(start)

	if d.controller == nil {
		return stats, nil
	}

	divisor, changed := d.controller.Observe(stats.Elapsed)
	if changed {
		core.Logger().Debug("render scalar changed",
			"divisor", divisor,
			"elapsed", stats.Elapsed,
			"target", d.controller.Target())
		if err := d.engine.Resize(d.renderSize()); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

func (d *Driver) renderSize() Size {
	return ScaledSize(d.window, d.Divisor())
}
