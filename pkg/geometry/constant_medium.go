package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/texture"
)

// boundaryExitEpsilon separates the entry and exit boundary crossings
const boundaryExitEpsilon = 0.0001

// ConstantMedium is a homogeneous participating medium such as smoke or fog
// filling a closed boundary shape
type ConstantMedium struct {
	Boundary      Hittable
	PhaseFunction material.Material
	negInvDensity float64
}

// NewConstantMedium creates a medium of the given density colored by a texture
func NewConstantMedium(boundary Hittable, density float64, albedo texture.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: material.NewTexturedIsotropic(albedo),
		negInvDensity: -1 / density,
	}
}

// NewConstantMediumColor creates a medium of the given density and color
func NewConstantMediumColor(boundary Hittable, density float64, albedo core.Color) *ConstantMedium {
	return NewConstantMedium(boundary, density, texture.NewSolidColor(albedo))
}

// Hit samples a free-flight distance inside the boundary. The ray passes
// through unscattered if the distance exceeds the segment inside the medium.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	entry, ok := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), random)
	if !ok {
		return nil, false
	}

	exit, ok := m.Boundary.Hit(ray, entry.T+boundaryExitEpsilon, math.Inf(1), random)
	if !ok {
		return nil, false
	}

	t0 := math.Max(entry.T, tMin)
	t1 := math.Min(exit.T, tMax)
	if t0 >= t1 {
		return nil, false
	}
	if t0 < 0 {
		t0 = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t1 - t0) * rayLength
	hitDistance := m.negInvDensity * math.Log(random.Float64())

	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := t0 + hitDistance/rayLength
	return &material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		FrontFace: true,                  // also arbitrary
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.Boundary.BoundingBox(time0, time1)
}
