package material

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter returns the attenuation and outgoing ray for an incoming ray,
	// or false if the ray is absorbed
	Scatter(rayIn core.Ray, hit *HitRecord, random *rand.Rand) (ScatterResult, bool)
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emitted(u, v float64, point core.Point3) core.Color
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray   // The scattered ray
	Attenuation core.Color // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Point3 // Point of intersection
	Normal    core.Vec3   // Unit surface normal, always facing against the incoming ray
	Material  Material    // Material of the hit object
	T         float64     // Parameter t along the ray
	U, V      float64     // Surface coordinates
	FrontFace bool        // Whether ray hit the front face
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Emitted returns the light emitted by the hit material, black for non-emitters
func Emitted(hit *HitRecord) core.Color {
	if emitter, isEmissive := hit.Material.(Emitter); isEmissive {
		return emitter.Emitted(hit.U, hit.V, hit.Point)
	}
	return core.Color{}
}
