package geometry

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Box represents an axis-aligned box made up of 6 rectangles
type Box struct {
	Min, Max core.Point3
	sides    *HittableList
}

// NewBox creates a box spanning the corners p0 and p1.
// Faces on the min side are flipped so every face points outward.
func NewBox(p0, p1 core.Point3, material material.Material) *Box {
	sides := NewHittableList(
		NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p1.Z, material),
		NewFlipFace(NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p0.Z, material)),

		NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p1.Y, material),
		NewFlipFace(NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p0.Y, material)),

		NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p1.X, material),
		NewFlipFace(NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p0.X, material)),
	)

	return &Box{Min: p0, Max: p1, sides: sides}
}

// Hit tests the ray against all six faces
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax, random)
}

// BoundingBox returns the box itself
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
