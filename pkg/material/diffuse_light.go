package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/texture"
)

// DiffuseLight represents a light-emitting material
type DiffuseLight struct {
	Emit texture.Texture // Emitted light color/intensity
}

// NewDiffuseLight creates a new emissive material with a uniform color
func NewDiffuseLight(emission core.Color) *DiffuseLight {
	return NewTexturedDiffuseLight(texture.NewSolidColor(emission))
}

// NewTexturedDiffuseLight creates a new emissive material driven by a texture
func NewTexturedDiffuseLight(emit texture.Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter implements the Material interface for emissive materials.
// Lights absorb every incoming ray.
func (e *DiffuseLight) Scatter(rayIn core.Ray, hit *HitRecord, random *rand.Rand) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emitted returns the emitted light for this material
func (e *DiffuseLight) Emitted(u, v float64, point core.Point3) core.Color {
	return e.Emit.Value(u, v, point)
}
