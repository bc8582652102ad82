package integrator

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the linear radiance arriving along ray.
	// depth bounds the number of remaining bounces.
	RayColor(ray core.Ray, world geometry.Hittable, background Background, depth int, random *rand.Rand) core.Color
}

// Background supplies the radiance for rays that escape the scene
type Background interface {
	Color(ray core.Ray) core.Color
}

// Flat is a constant background color
type Flat struct {
	Value core.Color
}

// NewFlat creates a constant background
func NewFlat(color core.Color) Flat {
	return Flat{Value: color}
}

// Color returns the constant color regardless of direction
func (f Flat) Color(ray core.Ray) core.Color {
	return f.Value
}

// Gradient blends vertically from Bottom to Top based on ray direction
type Gradient struct {
	Bottom core.Color
	Top    core.Color
}

// NewSkyGradient creates the white to light blue sky background
func NewSkyGradient() Gradient {
	return Gradient{
		Bottom: core.NewColor(1.0, 1.0, 1.0),
		Top:    core.NewColor(0.5, 0.7, 1.0),
	}
}

// Color blends between Bottom and Top by the Y component of the unit direction
func (g Gradient) Color(ray core.Ray) core.Color {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return g.Bottom.Multiply(1.0 - t).Add(g.Top.Multiply(t))
}
