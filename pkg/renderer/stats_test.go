package renderer

import (
	"math"
	"testing"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestCalculateAverageLuminance(t *testing.T) {
	// Red 0.2126, green 0.7152, blue 0.0722, black 0 average to 0.25
	pixels := [][]core.Color{
		{core.NewColor(1, 0, 0), core.NewColor(0, 1, 0)},
		{core.NewColor(0, 0, 1), core.NewColor(0, 0, 0)},
	}

	if got := CalculateAverageLuminance(pixels); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("Expected average luminance 0.25, got %f", got)
	}
	if got := CalculateAverageLuminance(nil); got != 0 {
		t.Errorf("Expected 0 for an empty image, got %f", got)
	}
}

func TestLuminance_White(t *testing.T) {
	if got := Luminance(core.NewColor(1, 1, 1)); math.Abs(got-1) > 1e-9 {
		t.Errorf("Expected luminance 1, got %f", got)
	}
}

func TestRenderStats_SamplesPerSecond(t *testing.T) {
	stats := RenderStats{Samples: 1000, Elapsed: 2 * time.Second}
	if got := stats.SamplesPerSecond(); got != 500 {
		t.Errorf("SamplesPerSecond() = %v, want 500", got)
	}
	if got := (RenderStats{Samples: 10}).SamplesPerSecond(); got != 0 {
		t.Errorf("SamplesPerSecond() with no elapsed time = %v, want 0", got)
	}
}
