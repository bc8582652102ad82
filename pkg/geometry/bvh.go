package geometry

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// BVHNode represents a node in the Bounding Volume Hierarchy.
// Leaves with a single object store it as both children.
type BVHNode struct {
	Left  Hittable
	Right Hittable
	Box   core.AABB
}

// NewBVH constructs a BVH over the objects for the shutter interval
// [time0, time1]. The split axis at each node is drawn from random.
// It panics if objects is empty or any object has no bounding box.
func NewBVH(objects []Hittable, time0, time1 float64, random *rand.Rand) *BVHNode {
	if len(objects) == 0 {
		panic("geometry: cannot build a BVH over zero objects")
	}

	// Sorting happens in place, leave the caller's slice alone
	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)

	return buildBVH(objectsCopy, time0, time1, random)
}

// NewBVHFromList constructs a BVH over the objects in a list
func NewBVHFromList(list *HittableList, time0, time1 float64, random *rand.Rand) *BVHNode {
	return NewBVH(list.Objects, time0, time1, random)
}

func buildBVH(objects []Hittable, time0, time1 float64, random *rand.Rand) *BVHNode {
	axis := core.RandomInt(random, 0, 2)
	node := &BVHNode{}

	switch len(objects) {
	case 1:
		node.Left = objects[0]
		node.Right = objects[0]
	case 2:
		if boxMin(objects[0], axis, time0, time1) < boxMin(objects[1], axis, time0, time1) {
			node.Left, node.Right = objects[0], objects[1]
		} else {
			node.Left, node.Right = objects[1], objects[0]
		}
	default:
		sort.SliceStable(objects, func(i, j int) bool {
			return boxMin(objects[i], axis, time0, time1) < boxMin(objects[j], axis, time0, time1)
		})
		mid := len(objects) / 2
		node.Left = buildBVH(objects[:mid], time0, time1, random)
		node.Right = buildBVH(objects[mid:], time0, time1, random)
	}

	leftBox := mustBoundingBox(node.Left, time0, time1)
	rightBox := mustBoundingBox(node.Right, time0, time1)
	node.Box = core.SurroundingBox(leftBox, rightBox)

	return node
}

func mustBoundingBox(object Hittable, time0, time1 float64) core.AABB {
	box, ok := object.BoundingBox(time0, time1)
	if !ok {
		panic(fmt.Sprintf("geometry: no bounding box for %T in BVH construction", object))
	}
	return box
}

func boxMin(object Hittable, axis int, time0, time1 float64) float64 {
	return mustBoundingBox(object, time0, time1).Min.Axis(axis)
}

// Hit tests the children left then right, narrowing tMax to the nearest hit
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*material.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax, random)

	// A one-object leaf holds the same child twice; testing it again would
	// resample stochastic objects such as media
	if n.Right == n.Left {
		return leftHit, hitLeft
	}

	if hitLeft {
		tMax = leftHit.T
	}

	if rightHit, hitRight := n.Right.Hit(ray, tMin, tMax, random); hitRight {
		return rightHit, true
	}

	return leftHit, hitLeft
}

// BoundingBox returns the cached box of the node
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.Box, true
}
