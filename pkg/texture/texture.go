// Package texture provides spatially varying colors for materials.
package texture

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Texture provides a color for a surface coordinate (u, v) and 3D point.
// Implementations are immutable and safe for concurrent use.
type Texture interface {
	// Value returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Value(u, v float64, point core.Point3) core.Color
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Color
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Color) *SolidColor {
	return &SolidColor{Color: color}
}

// NewSolidRGB creates a solid color texture from individual channels
func NewSolidRGB(r, g, b float64) *SolidColor {
	return &SolidColor{Color: core.NewColor(r, g, b)}
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(u, v float64, point core.Point3) core.Color {
	return s.Color
}
