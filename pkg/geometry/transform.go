package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Translate moves an object by a fixed offset
type Translate struct {
	Object Hittable
	Offset core.Vec3
}

// NewTranslate creates a translated instance of object
func NewTranslate(object Hittable, offset core.Vec3) *Translate {
	return &Translate{Object: object, Offset: offset}
}

// Hit moves the ray into object space, tests the object and moves the hit back
func (tr *Translate) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	moved := core.NewRayWithTime(ray.Origin.Subtract(tr.Offset), ray.Direction, ray.Time)

	hit, ok := tr.Object.Hit(moved, tMin, tMax, random)
	if !ok {
		return nil, false
	}

	result := *hit
	result.Point = hit.Point.Add(tr.Offset)
	result.SetFaceNormal(ray, outwardNormal(hit))
	return &result, true
}

// BoundingBox returns the object's box shifted by the offset
func (tr *Translate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := tr.Object.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}
	return box.Translate(tr.Offset), true
}

// RotateY rotates an object about the Y axis
type RotateY struct {
	Object   Hittable
	sinTheta float64
	cosTheta float64
	box      core.AABB
	hasBox   bool
}

// NewRotateY creates an instance of object rotated by angle degrees about Y
func NewRotateY(object Hittable, angle float64) *RotateY {
	radians := core.DegreesToRadians(angle)
	r := &RotateY{
		Object:   object,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	box, ok := object.BoundingBox(0, 1)
	if !ok {
		return r
	}

	// Rotation does not commute with axis alignment: rebox all 8 corners
	corners := box.Corners()
	rotated := make([]core.Point3, len(corners))
	for i, corner := range corners {
		rotated[i] = r.toWorld(corner)
	}
	r.box = core.NewAABBFromPoints(rotated...)
	r.hasBox = true

	return r
}

// toLocal rotates a world space vector by -theta
func (r *RotateY) toLocal(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// toWorld rotates an object space vector by theta
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// Hit rotates the ray into object space, tests the object and rotates the hit back
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	rotated := core.NewRayWithTime(r.toLocal(ray.Origin), r.toLocal(ray.Direction), ray.Time)

	hit, ok := r.Object.Hit(rotated, tMin, tMax, random)
	if !ok {
		return nil, false
	}

	result := *hit
	result.Point = r.toWorld(hit.Point)
	result.SetFaceNormal(ray, r.toWorld(outwardNormal(hit)))
	return &result, true
}

// BoundingBox returns the box computed at construction
func (r *RotateY) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return r.box, r.hasBox
}

// outwardNormal recovers the geometric normal before it was flipped to face the ray
func outwardNormal(hit *material.HitRecord) core.Vec3 {
	if hit.FrontFace {
		return hit.Normal
	}
	return hit.Normal.Negate()
}

// FlipFace reverses the outward orientation of an object
type FlipFace struct {
	Object Hittable
}

// NewFlipFace creates an instance of object whose outward normal points the other way
func NewFlipFace(object Hittable) *FlipFace {
	return &FlipFace{Object: object}
}

// Hit delegates to the object and inverts the front face flag
func (f *FlipFace) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	hit, ok := f.Object.Hit(ray, tMin, tMax, random)
	if !ok {
		return nil, false
	}
	result := *hit
	result.FrontFace = !hit.FrontFace
	return &result, true
}

// BoundingBox returns the object's box
func (f *FlipFace) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return f.Object.BoundingBox(time0, time1)
}
