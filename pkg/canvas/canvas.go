// Package canvas collects rendered pixel commands into images for display
// layers or for saving to disk.
package canvas

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/image/draw"

	"github.com/df07/go-adaptive-raytracer/pkg/core"
	"github.com/df07/go-adaptive-raytracer/pkg/renderer"
)

// Canvas is a renderer.Sink that aggregates commands into an RGBA image.
// Commands outside the current size wrap around.
type Canvas struct {
	mu  sync.Mutex
	img *image.RGBA
}

// New creates a canvas for the given render size
func New(size renderer.Size) *Canvas {
	c := &Canvas{}
	c.Reset(size)
	return c
}

// Reset reallocates the canvas for a new render size
func (c *Canvas) Reset(size renderer.Size) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.img = image.NewRGBA(image.Rect(0, 0, max(size.Width, 1), max(size.Height, 1)))
}

// Size returns the canvas size
func (c *Canvas) Size() renderer.Size {
	c.mu.Lock()
	defer c.mu.Unlock()
	b := c.img.Bounds()
	return renderer.Size{Width: b.Dx(), Height: b.Dy()}
}

// Put implements renderer.Sink
func (c *Canvas) Put(cmd renderer.Command) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	b := c.img.Bounds()
	c.img.SetRGBA(cmd.X%b.Dx(), cmd.Y%b.Dy(), cmd.Color)
	return nil
}

// Image returns a copy of the canvas at render resolution
func (c *Canvas) Image() *image.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := image.NewRGBA(c.img.Bounds())
	copy(out.Pix, c.img.Pix)
	return out
}

// Scaled returns the canvas stretched to window with nearest-neighbor
// sampling, so every render pixel stays a sharp block
func (c *Canvas) Scaled(window renderer.Size) *image.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()

	dst := image.NewRGBA(image.Rect(0, 0, max(window.Width, 1), max(window.Height, 1)))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), c.img, c.img.Bounds(), draw.Src, nil)
	return dst
}

// SavePNG writes the canvas scaled to window as a PNG, creating parent
// directories as needed. A zero window saves at render resolution.
func (c *Canvas) SavePNG(path string, window renderer.Size) error {
	img := c.Image()
	if window.Width > 0 && window.Height > 0 {
		img = c.Scaled(window)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	core.Logger().Info("render saved", "path", path, "size", img.Bounds().Size())
	return nil
}
