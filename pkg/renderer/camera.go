package renderer

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Camera generates rays for rendering with depth of field and motion blur
type Camera struct {
	origin          core.Point3
	lowerLeftCorner core.Point3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
	time0, time1    float64 // Shutter open/close times
}

// NewCamera creates a camera with the shutter open and closed at time 0
func NewCamera(lookFrom, lookAt core.Point3, vup core.Vec3, vfov, aspectRatio, aperture, focusDistance float64) *Camera {
	return NewCameraWithTime(lookFrom, lookAt, vup, vfov, aspectRatio, aperture, focusDistance, 0, 0)
}

// NewCameraWithTime creates a camera. vfov is the vertical field of view in
// degrees; rays are stamped with a time uniform in [time0, time1].
func NewCameraWithTime(lookFrom, lookAt core.Point3, vup core.Vec3, vfov, aspectRatio, aperture, focusDistance, time0, time1 float64) *Camera {
	theta := core.DegreesToRadians(vfov)
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := aspectRatio * viewportHeight

	// Orthonormal camera basis
	w := lookFrom.Subtract(lookAt).Normalize()
	u := vup.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(focusDistance * viewportWidth)
	vertical := v.Multiply(focusDistance * viewportHeight)
	lowerLeftCorner := lookFrom.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          lookFrom,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      aperture / 2,
		time0:           time0,
		time1:           time1,
	}
}

// GetRay generates a ray for viewport coordinates (s, t) where 0 <= s,t <= 1
// and t = 0 is the bottom edge
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)

	return core.NewRayWithTime(c.origin.Add(offset), direction, core.RandomFloat(random, c.time0, c.time1))
}
