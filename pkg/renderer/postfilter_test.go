package renderer

import (
	"image/color"
	"testing"
)

func gray(v uint8) color.RGBA {
	return color.RGBA{R: v, G: v, B: v, A: 255}
}

func TestPostFilter_Neighborhood(t *testing.T) {
	src := NewFramebuffer(3, 3)
	src.Set(Command{X: 1, Y: 1, Color: gray(100)})

	dst := PostFilter(src, 1, NewWorkerPool(2))

	tests := []struct {
		name     string
		x, y     int
		expected uint8
	}{
		// center: (1*100 + 4*0) / (1 + 4)
		{"center", 1, 1, 20},
		// edge: (0 + 100) / (1 + 3)
		{"top edge", 1, 0, 25},
		{"left edge", 0, 1, 25},
		// corners only touch edges, both black
		{"corner", 0, 0, 0},
		{"far corner", 2, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dst.At(tt.x, tt.y).Color
			if got != gray(tt.expected) {
				t.Errorf("Expected %v, got %v", gray(tt.expected), got)
			}
		})
	}

	if src.At(1, 1).Color != gray(100) {
		t.Error("PostFilter modified its source")
	}
}

func TestPostFilter_EdgeWeighting(t *testing.T) {
	// 2x1: each pixel has exactly one neighbor
	src := NewFramebuffer(2, 1)
	src.Set(Command{X: 0, Y: 0, Color: color.RGBA{R: 200, G: 10, B: 7, A: 255}})
	src.Set(Command{X: 1, Y: 0, Color: color.RGBA{R: 0, G: 40, B: 0, A: 255}})

	dst := PostFilter(src, 5, NewWorkerPool(1))

	// (5*200 + 0) / 6 = 166, (5*10 + 40) / 6 = 15, (5*7 + 0) / 6 = 5
	if got := dst.At(0, 0).Color; got != (color.RGBA{R: 166, G: 15, B: 5, A: 255}) {
		t.Errorf("Unexpected left pixel %v", got)
	}
	// (0 + 200) / 6 = 33, (5*40 + 10) / 6 = 35, (0 + 7) / 6 = 1
	if got := dst.At(1, 0).Color; got != (color.RGBA{R: 33, G: 35, B: 1, A: 255}) {
		t.Errorf("Unexpected right pixel %v", got)
	}
}

func TestPostFilter_SinglePixel(t *testing.T) {
	src := NewFramebuffer(1, 1)
	src.Set(Command{Color: gray(77)})

	dst := PostFilter(src, 3, NewWorkerPool(1))
	if got := dst.At(0, 0).Color; got != gray(77) {
		t.Errorf("Expected isolated pixel unchanged, got %v", got)
	}
}

func TestPostFilter_Uniform(t *testing.T) {
	src := NewFramebuffer(4, 3)
	for i := range src.Cells() {
		src.Cells()[i].Color = gray(128)
	}

	dst := PostFilter(src, 2, NewWorkerPool(0))
	for _, cmd := range dst.Cells() {
		if cmd.Color != gray(128) {
			t.Fatalf("Uniform image changed at (%d,%d): %v", cmd.X, cmd.Y, cmd.Color)
		}
	}
}
