package geometry

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// RectPlane identifies which pair of axes an AxisRect spans
type RectPlane int

const (
	PlaneXY RectPlane = iota // constant z
	PlaneXZ              // constant y
	PlaneYZ              // constant x
)

// rectPadding keeps the bounding box of a flat rectangle non-degenerate
const rectPadding = 0.0001

// axes returns the two in-plane axes and the fixed axis
func (p RectPlane) axes() (a, b, k int) {
	switch p {
	case PlaneXY:
		return 0, 1, 2
	case PlaneXZ:
		return 0, 2, 1
	case PlaneYZ:
		return 1, 2, 0
	}
	panic("geometry: invalid plane")
}

// AxisRect is an axis-aligned rectangle spanning [A0, A1] x [B0, B1] in its
// plane at offset K along the remaining axis
type AxisRect struct {
	Plane    RectPlane
	A0, A1   float64
	B0, B1   float64
	K        float64
	Material material.Material
}

// NewXYRect creates a rectangle in the plane z = k
func NewXYRect(x0, x1, y0, y1, k float64, material material.Material) *AxisRect {
	return &AxisRect{Plane: PlaneXY, A0: x0, A1: x1, B0: y0, B1: y1, K: k, Material: material}
}

// NewXZRect creates a rectangle in the plane y = k
func NewXZRect(x0, x1, z0, z1, k float64, material material.Material) *AxisRect {
	return &AxisRect{Plane: PlaneXZ, A0: x0, A1: x1, B0: z0, B1: z1, K: k, Material: material}
}

// NewYZRect creates a rectangle in the plane x = k
func NewYZRect(y0, y1, z0, z1, k float64, material material.Material) *AxisRect {
	return &AxisRect{Plane: PlaneYZ, A0: y0, A1: y1, B0: z0, B1: z1, K: k, Material: material}
}

// Hit tests if a ray intersects the rectangle
func (r *AxisRect) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	a, b, k := r.Plane.axes()

	t := (r.K - ray.Origin.Axis(k)) / ray.Direction.Axis(k)
	// Written so NaN from a parallel ray is rejected
	if !(t >= tMin && t <= tMax) {
		return nil, false
	}

	pa := ray.Origin.Axis(a) + t*ray.Direction.Axis(a)
	pb := ray.Origin.Axis(b) + t*ray.Direction.Axis(b)
	if pa < r.A0 || pa > r.A1 || pb < r.B0 || pb > r.B1 {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: r.Material,
		U:        (pa - r.A0) / (r.A1 - r.A0),
		V:        (pb - r.B0) / (r.B1 - r.B0),
	}

	var normal [3]float64
	normal[k] = 1
	hitRecord.SetFaceNormal(ray, fromAxes(normal))

	return hitRecord, true
}

// BoundingBox returns the rectangle's box padded along the fixed axis
func (r *AxisRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	a, b, k := r.Plane.axes()

	var lo, hi [3]float64
	lo[a], hi[a] = r.A0, r.A1
	lo[b], hi[b] = r.B0, r.B1
	lo[k], hi[k] = r.K-rectPadding, r.K+rectPadding

	return core.NewAABB(fromAxes(lo), fromAxes(hi)), true
}

func fromAxes(c [3]float64) core.Vec3 {
	return core.NewVec3(c[0], c[1], c[2])
}
