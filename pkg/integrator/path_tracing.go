package integrator

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ShadowAcneEpsilon is the minimum hit distance for secondary rays
const ShadowAcneEpsilon = 0.001

// PathTracingIntegrator implements unidirectional path tracing with fixed depth truncation
type PathTracingIntegrator struct{}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator() *PathTracingIntegrator {
	return &PathTracingIntegrator{}
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, background Background, depth int, random *rand.Rand) core.Color {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Color{}
	}

	hit, isHit := world.Hit(ray, ShadowAcneEpsilon, math.Inf(1), random)
	if !isHit {
		return background.Color(ray)
	}

	// Start with emitted light from the hit material
	colorEmitted := material.Emitted(hit)

	scatter, didScatter := hit.Material.Scatter(ray, hit, random)
	if !didScatter {
		// Material absorbed the ray, only return emitted light
		return colorEmitted
	}

	colorScattered := scatter.Attenuation.MultiplyVec(
		pt.RayColor(scatter.Scattered, world, background, depth-1, random))

	return colorEmitted.Add(colorScattered)
}
