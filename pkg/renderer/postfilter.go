package renderer

import "image/color"

// PostFilter blurs src by averaging each pixel with its in-bounds
// axis-aligned neighbors. The pixel's own color is weighted by
// primaryRayStrength, so edge and corner pixels (fewer neighbors) keep more
// of their own sample. src is only read; the result is a new framebuffer.
func PostFilter(src *Framebuffer, primaryRayStrength int, pool *WorkerPool) *Framebuffer {
	dst := NewFramebuffer(src.width, src.height)
	strength := uint32(primaryRayStrength)

	// Every task reads src and writes only its own row of dst
	_ = pool.Run(src.height, func(y int) error {
		for x := range src.width {
			center := src.At(x, y)

			r := uint32(center.Color.R) * strength
			g := uint32(center.Color.G) * strength
			b := uint32(center.Color.B) * strength
			count := uint32(0)

			add := func(nx, ny int) {
				c := src.At(nx, ny).Color
				r += uint32(c.R)
				g += uint32(c.G)
				b += uint32(c.B)
				count++
			}
			if x > 0 {
				add(x-1, y)
			}
			if x < src.width-1 {
				add(x+1, y)
			}
			if y > 0 {
				add(x, y-1)
			}
			if y < src.height-1 {
				add(x, y+1)
			}

			n := strength + count
			if n == 0 {
				dst.Set(center)
				continue
			}
			dst.Set(Command{
				X: x,
				Y: y,
				Color: color.RGBA{
					R: uint8(r / n),
					G: uint8(g / n),
					B: uint8(b / n),
					A: center.Color.A,
				},
			})
		}
		return nil
	})

	return dst
}
