package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-adaptive-raytracer/pkg/canvas"
	"github.com/df07/go-adaptive-raytracer/pkg/core"
	"github.com/df07/go-adaptive-raytracer/pkg/renderer"
)

const profileDumpInterval = 100

// options holds the command line settings
type options struct {
	window  renderer.Size
	scalar  int
	frames  int
	hz      int
	save    bool
	verbose bool
	config  renderer.Config
}

func parseFlags(args []string) (options, bool, error) {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)

	defaults := renderer.DefaultConfig()
	opts := options{config: defaults}

	fs.IntVar(&opts.window.Width, "width", 1920, "Window width in pixels")
	fs.IntVar(&opts.window.Height, "height", 1080, "Window height in pixels")
	fs.IntVar(&opts.scalar, "scalar", renderer.MaxRenderScalar, "Initial render divisor (window / divisor = traced resolution)")
	fs.IntVar(&opts.frames, "frames", 300, "Number of frames to render")
	fs.IntVar(&opts.hz, "hz", 90, "Target frame rate for adaptive resolution (0 = fixed resolution)")
	fs.BoolVar(&opts.save, "save", false, "Save the last frame to output/render_<timestamp>.png")
	fs.BoolVar(&opts.verbose, "v", false, "Enable debug logging")
	fs.IntVar(&opts.config.AASamples, "aa", defaults.AASamples, "Extra jittered samples per pixel")
	fs.BoolVar(&opts.config.PostProcessAA, "post", defaults.PostProcessAA, "Enable neighbor-averaging post filter")
	fs.IntVar(&opts.config.PrimaryRayStrength, "strength", defaults.PrimaryRayStrength, "Weight of a pixel's own color in the post filter")
	fs.BoolVar(&opts.config.DebugNormals, "normals", defaults.DebugNormals, "Shade by surface normal")
	fs.IntVar(&opts.config.MaxBounces, "bounces", defaults.MaxBounces, "Maximum ray bounces")
	fs.IntVar(&opts.config.Workers, "workers", defaults.Workers, "Parallel workers (0 = CPU count)")
	fs.Int64Var(&opts.config.Seed, "seed", defaults.Seed, "Scene and sampling seed")
	help := fs.Bool("help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return opts, false, err
	}
	if *help {
		fmt.Println("Adaptive Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		fs.SetOutput(os.Stdout)
		fs.PrintDefaults()
		return opts, true, nil
	}
	if opts.frames <= 0 {
		return opts, false, fmt.Errorf("frames must be positive, got %d", opts.frames)
	}
	if opts.hz < 0 {
		return opts, false, fmt.Errorf("hz must not be negative, got %d", opts.hz)
	}
	return opts, false, nil
}

func main() {
	opts, help, err := parseFlags(os.Args[1:])
	if help {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	logger := core.Logger()

	var driverOpts []renderer.DriverOption
	if opts.hz > 0 {
		controller := renderer.NewResolutionController(opts.scalar, renderer.HzToDuration(opts.hz))
		driverOpts = append(driverOpts, renderer.WithController(controller))
	} else {
		driverOpts = append(driverOpts, renderer.WithRenderScalar(opts.scalar))
	}

	initial := renderer.ScaledSize(opts.window, opts.scalar)
	engine, err := renderer.Build(initial, opts.config)
	if err != nil {
		return fmt.Errorf("build raytracer: %w", err)
	}
	profiler := renderer.NewProfiler()
	engine.SetProfiler(profiler)

	driver, err := renderer.NewDriver(engine, opts.window, driverOpts...)
	if err != nil {
		return fmt.Errorf("create driver: %w", err)
	}

	out := canvas.New(engine.Size())
	orbit := newOrbit()

	logger.Info("starting render",
		"window", opts.window,
		"divisor", driver.Divisor(),
		"frames", opts.frames)

	for frame := 1; frame <= opts.frames; frame++ {
		eye, target := orbit.step()
		engine.LookAt(eye, target, nil)

		if out.Size() != engine.Size() {
			out.Reset(engine.Size())
		}

		stats, err := driver.Frame(out)
		if err != nil {
			return fmt.Errorf("frame %d: %w", frame, err)
		}
		logger.Debug("frame",
			"n", stats.Frame,
			"size", stats.Size,
			"elapsed", stats.Elapsed,
			"rays_per_sec", int(stats.RaysPerSecond()))

		if frame%profileDumpInterval == 0 {
			profiler.Log(logger)
		}
	}

	if opts.save {
		timestamp := time.Now().Format("20060102_150405")
		filename := filepath.Join("output", fmt.Sprintf("render_%s.png", timestamp))
		if err := out.SavePNG(filename, opts.window); err != nil {
			return err
		}
	}

	logger.Info("render completed", "final_divisor", driver.Divisor(), "size", engine.Size())
	return nil
}

// orbit slides the eye diagonally past the origin, one step per frame
type orbit struct {
	x, y float64
}

func newOrbit() *orbit {
	return &orbit{x: -3, y: 0.1}
}

func (o *orbit) step() (eye, target core.Vec3) {
	o.x += 0.01
	o.y += 0.01
	return core.NewVec3(o.x, o.y, 1), core.NewVec3(0, 0, 0)
}
