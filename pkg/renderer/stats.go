package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels  int           // Total number of pixels rendered
	TotalSamples int           // Total number of camera rays
	RaysTraced   int64         // Scene queries including every bounce
	NumWorkers   int           // Workers used for the render
	Duration     time.Duration // Wall-clock render time
}

// Add accumulates the counters of other into s
func (s *RenderStats) Add(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
	s.RaysTraced += other.RaysTraced
}

// AverageBounces returns the mean number of scene queries per camera ray
func (s RenderStats) AverageBounces() float64 {
	if s.TotalSamples == 0 {
		return 0
	}
	return float64(s.RaysTraced) / float64(s.TotalSamples)
}

// RaysPerSecond returns the scene query throughput
func (s RenderStats) RaysPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.RaysTraced) / s.Duration.Seconds()
}
