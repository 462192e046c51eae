package renderer

import (
	"fmt"
	"image/color"
)

// Size is a resolution in pixels
type Size struct {
	Width  int
	Height int
}

// AspectRatio returns width / height
func (s Size) AspectRatio() float64 {
	return float64(s.Width) / float64(s.Height)
}

// Pixels returns width × height
func (s Size) Pixels() int {
	return s.Width * s.Height
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Command is the output record for one pixel
type Command struct {
	X, Y  int
	Color color.RGBA
}

// Index2DTo1D converts pixel coordinates to a row-major index
func Index2DTo1D(x, y, rowSize int) int {
	return x + rowSize*y
}

// Index1DTo2D converts a row-major index to pixel coordinates
func Index1DTo2D(i, rowSize int) (x, y int) {
	return i % rowSize, i / rowSize
}

// Framebuffer is a flat, row-major grid of pixel commands
type Framebuffer struct {
	width  int
	height int
	cells  []Command
}

// NewFramebuffer creates a framebuffer of opaque black pixels
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		width:  width,
		height: height,
		cells:  make([]Command, width*height),
	}
	for i := range fb.cells {
		x, y := Index1DTo2D(i, width)
		fb.cells[i] = Command{X: x, Y: y, Color: color.RGBA{A: 255}}
	}
	return fb
}

// Width returns the framebuffer width
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the framebuffer height
func (fb *Framebuffer) Height() int { return fb.height }

// Size returns the framebuffer dimensions
func (fb *Framebuffer) Size() Size { return Size{Width: fb.width, Height: fb.height} }

// At returns the command stored for pixel (x, y)
func (fb *Framebuffer) At(x, y int) Command {
	return fb.cells[Index2DTo1D(x, y, fb.width)]
}

// Set stores a command at its own coordinates
func (fb *Framebuffer) Set(cmd Command) {
	fb.cells[Index2DTo1D(cmd.X, cmd.Y, fb.width)] = cmd
}

// Cells returns the underlying row-major storage
func (fb *Framebuffer) Cells() []Command {
	return fb.cells
}
