package renderer

import (
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Pixels           int           // Total number of pixels rendered
	Samples          int           // Total number of camera rays traced
	Rows             int           // Number of rows rendered
	Elapsed          time.Duration // Wall time of the render
	AverageLuminance float64       // Mean linear luminance of the image
}

// SamplesPerSecond returns the tracing throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Samples) / s.Elapsed.Seconds()
}

// Luminance returns the Rec. 709 luminance of a linear color
func Luminance(c core.Color) float64 {
	return 0.2126*c.X + 0.7152*c.Y + 0.0722*c.Z
}

// CalculateAverageLuminance returns the mean luminance over all pixels
func CalculateAverageLuminance(pixels [][]core.Color) float64 {
	total := 0.0
	count := 0
	for _, row := range pixels {
		for _, c := range row {
			total += Luminance(c)
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}
