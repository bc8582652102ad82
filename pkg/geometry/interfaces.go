package geometry

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Hittable interface for objects that can be hit by rays.
// Implementations are immutable once constructed and safe for concurrent use;
// random is only consumed by primitives that sample their own intersections.
type Hittable interface {
	// Hit returns the nearest intersection with t in [tMin, tMax]
	Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool)
	// BoundingBox returns a box enclosing the object over the shutter
	// interval, or false if the object is unbounded
	BoundingBox(time0, time1 float64) (core.AABB, bool)
}
