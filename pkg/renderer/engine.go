package renderer

import (
	"fmt"
	"image/color"
	"time"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
	"github.com/df07/go-adaptive-raytracer/pkg/geometry"
	"github.com/df07/go-adaptive-raytracer/pkg/integrator"
	"github.com/df07/go-adaptive-raytracer/pkg/scene"
)

// Engine traces a World through a Camera into a Framebuffer once per frame.
// An Engine is not safe for concurrent use; resize and camera changes
// happen between frames.
type Engine struct {
	config Config
	world  *geometry.World
	tracer *integrator.PathTracer
	pool   *WorkerPool

	size   Size
	camera *Camera

	// Requested view, applied to the camera at the start of a frame
	eye, target, up core.Vec3

	output   *Framebuffer
	frame    uint64
	profiler *Profiler
}

// Build creates an engine rendering the demo world from the default viewpoint
func Build(size Size, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if err := validateSize(size); err != nil {
		return nil, err
	}

	world := scene.NewDemoWorld(core.NewSeededSampler(config.Seed))
	return NewEngine(size, config, world)
}

// NewEngine creates an engine for an arbitrary world
func NewEngine(size Size, config Config, world *geometry.World) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		config: config,
		world:  world,
		tracer: integrator.NewPathTracer(config.MaxBounces, config.DebugNormals),
		pool:   NewWorkerPool(config.Workers),
		eye:    scene.DefaultEye,
		target: scene.DefaultTarget,
		up:     core.UnitY(),
	}
	if err := e.Resize(size); err != nil {
		return nil, err
	}
	return e, nil
}

// SetProfiler enables stage timing; nil disables it
func (e *Engine) SetProfiler(p *Profiler) {
	e.profiler = p
}

// Resize rebuilds the camera for the new aspect ratio and allocates a
// framebuffer of size. Calling it again with the same size is harmless.
func (e *Engine) Resize(size Size) error {
	if err := validateSize(size); err != nil {
		return err
	}

	camera := NewCamera(size.AspectRatio(), e.config.VerticalFOV)
	camera.LookAt(e.eye, e.target, e.up)

	e.camera = camera
	e.output = NewFramebuffer(size.Width, size.Height)
	e.size = size

	core.Logger().Debug("raytracer resized", "size", size)
	return nil
}

// LookAt requests a new viewpoint. A nil up defaults to +Y. The change
// takes effect at the start of the next ExecuteRender.
func (e *Engine) LookAt(eye, target core.Vec3, up *core.Vec3) {
	e.eye = eye
	e.target = target
	e.up = core.UnitY()
	if up != nil {
		e.up = *up
	}
}

// Size returns the current render resolution
func (e *Engine) Size() Size { return e.size }

// Config returns the engine configuration
func (e *Engine) Config() Config { return e.config }

// Camera returns the camera used for the last or upcoming frame
func (e *Engine) Camera() *Camera { return e.camera }

// Framebuffer returns the pixels emitted by the last frame
func (e *Engine) Framebuffer() *Framebuffer { return e.output }

// ExecuteRender traces one full frame and emits every pixel to sink in
// row-major order.
func (e *Engine) ExecuteRender(sink Sink) (FrameStats, error) {
	defer e.profiler.Track("raytracer - execute")()

	e.frame++
	e.syncCamera()

	stats := FrameStats{
		Frame:  e.frame,
		Size:   e.size,
		Pixels: e.size.Pixels(),
		Rays:   e.size.Pixels() * (e.config.AASamples + 1),
	}

	start := time.Now()
	primary := e.renderPrimary(*e.camera)
	stats.Primary = time.Since(start)
	e.profiler.Add("raytracer - commands", stats.Primary)

	// renderPrimary has joined every row, so the filter sees a complete frame
	out := primary
	if e.config.PostProcessAA {
		start = time.Now()
		out = PostFilter(primary, e.config.PrimaryRayStrength, e.pool)
		stats.Post = time.Since(start)
		e.profiler.Add("raytracer - post", stats.Post)
	}
	e.output = out

	start = time.Now()
	for _, cmd := range out.Cells() {
		if err := sink.Put(cmd); err != nil {
			return stats, fmt.Errorf("emit pixel (%d, %d): %w", cmd.X, cmd.Y, err)
		}
	}
	stats.Emit = time.Since(start)

	return stats, nil
}

// syncCamera applies a pending LookAt
func (e *Engine) syncCamera() {
	c := e.camera
	if c.Eye() != e.eye || c.Target() != e.target || c.Up() != e.up {
		c.LookAt(e.eye, e.target, e.up)
	}
}

// renderPrimary traces every pixel of the frame in parallel, one task per
// row, against a camera snapshot. Each row owns its sampler.
func (e *Engine) renderPrimary(camera Camera) *Framebuffer {
	width, height := e.size.Width, e.size.Height
	fb := NewFramebuffer(width, height)

	_ = e.pool.Run(height, func(y int) error {
		sampler := core.NewSeededSampler(rowSeed(e.config.Seed, e.frame, y))
		for x := range width {
			fb.Set(Command{
				X:     x,
				Y:     y,
				Color: e.samplePixel(&camera, x, y, sampler),
			})
		}
		return nil
	})

	return fb
}

// samplePixel sums the primary ray through the pixel center with AASamples
// jittered rays and converts the sum to a display color
func (e *Engine) samplePixel(camera *Camera, x, y int, sampler core.Sampler) color.RGBA {
	u, v := pixelUV(x, y, e.size, 0.5, 0.5)
	sum := e.tracer.RayColor(camera.GetRay(u, v), e.world, sampler)

	for range e.config.AASamples {
		u, v := pixelUV(x, y, e.size, sampler.Float64(), sampler.Float64())
		sum = sum.Add(e.tracer.RayColor(camera.GetRay(u, v), e.world, sampler))
	}

	return ToRGBA(sum, e.config.AASamples)
}

// pixelUV maps a pixel plus a sub-pixel offset in [0,1) to viewport
// coordinates. Rows grow downwards while v grows upwards.
func pixelUV(x, y int, size Size, uOffset, vOffset float64) (u, v float64) {
	u = (float64(x) + uOffset) / float64(size.Width)
	v = (float64(size.Height-1-y) + vOffset) / float64(size.Height)
	return u, v
}

// ToRGBA averages a color sum over aaSamples+1 rays, applies gamma 2 and
// scales to 8 bits
func ToRGBA(sum core.Vec3, aaSamples int) color.RGBA {
	c := sum.Divide(float64(aaSamples + 1)).Sqrt().Multiply(255).Clamp(0, 255)
	return color.RGBA{
		R: uint8(c.X),
		G: uint8(c.Y),
		B: uint8(c.Z),
		A: 255,
	}
}

// rowSeed derives an independent sampler seed for one row of one frame
func rowSeed(seed int64, frame uint64, row int) int64 {
	// splitmix64 finalizer
	z := uint64(seed) + frame*0x9E3779B97F4A7C15 + uint64(row)*0xBF58476D1CE4E5B9
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return int64(z ^ (z >> 31))
}
