package texture

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// checkerFrequency sets the number of checks per world unit (times 2π)
const checkerFrequency = 10.0

// Checker alternates between two textures in a 3D checkerboard pattern
type Checker struct {
	Even Texture
	Odd  Texture
}

// NewChecker creates a checker from two sub-textures
func NewChecker(even, odd Texture) *Checker {
	return &Checker{Even: even, Odd: odd}
}

// NewCheckerColors creates a checker from two solid colors
func NewCheckerColors(even, odd core.Color) *Checker {
	return NewChecker(NewSolidColor(even), NewSolidColor(odd))
}

// Value selects the odd texture where the product of sines is negative
func (c *Checker) Value(u, v float64, point core.Point3) core.Color {
	sines := math.Sin(checkerFrequency*point.X) *
		math.Sin(checkerFrequency*point.Y) *
		math.Sin(checkerFrequency*point.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, point)
	}
	return c.Even.Value(u, v, point)
}
