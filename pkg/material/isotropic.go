package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/texture"
)

// Isotropic is the phase function of a participating medium: it scatters in
// a uniformly random direction
type Isotropic struct {
	Albedo texture.Texture
}

// NewIsotropic creates an isotropic phase function with a solid color
func NewIsotropic(albedo core.Color) *Isotropic {
	return &Isotropic{Albedo: texture.NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates an isotropic phase function with a texture
func NewTexturedIsotropic(albedo texture.Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter always succeeds
func (i *Isotropic) Scatter(rayIn core.Ray, hit *HitRecord, random *rand.Rand) (ScatterResult, bool) {
	return ScatterResult{
		Scattered:   core.NewRayWithTime(hit.Point, core.RandomInUnitSphere(random), rayIn.Time),
		Attenuation: i.Albedo.Value(hit.U, hit.V, hit.Point),
	}, true
}
