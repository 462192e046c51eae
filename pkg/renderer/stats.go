package renderer

import "time"

// FrameStats contains statistics about one rendered frame
type FrameStats struct {
	Frame   uint64        // Frame number, starting at 1
	Size    Size          // Resolution the frame was traced at
	Pixels  int           // Pixels emitted
	Rays    int           // Camera rays traced (primary plus AA samples)
	Primary time.Duration // Time spent in the parallel primary pass
	Post    time.Duration // Time spent in the post filter (zero when disabled)
	Emit    time.Duration // Time spent handing commands to the sink
	Elapsed time.Duration // Whole-frame time as measured by the Driver
}

// RaysPerSecond returns the primary pass throughput, or 0 when unmeasured
func (s FrameStats) RaysPerSecond() float64 {
	if s.Primary <= 0 {
		return 0
	}
	return float64(s.Rays) / s.Primary.Seconds()
}
