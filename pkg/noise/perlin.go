// Package noise implements Perlin gradient noise for procedural textures.
package noise

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

const pointCount = 256

// Perlin holds the gradient lattice and permutation tables. It is read-only
// after construction and safe for concurrent use.
type Perlin struct {
	randomVectors [pointCount]core.Vec3
	permX         [pointCount]int
	permY         [pointCount]int
	permZ         [pointCount]int
}

// NewPerlin builds gradient and permutation tables from the given generator
func NewPerlin(random *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := range p.randomVectors {
		p.randomVectors[i] = core.RandomVec3(random, -1, 1).Normalize()
	}
	generatePermutation(&p.permX, random)
	generatePermutation(&p.permY, random)
	generatePermutation(&p.permZ, random)
	return p
}

// generatePermutation fills perm with a Fisher-Yates shuffle of [0, pointCount)
func generatePermutation(perm *[pointCount]int, random *rand.Rand) {
	for i := range perm {
		perm[i] = i
	}
	for i := pointCount - 1; i > 0; i-- {
		target := core.RandomInt(random, 0, i)
		perm[i], perm[target] = perm[target], perm[i]
	}
}

// Noise returns gradient noise at point p, roughly in [-1, 1]
func (p *Perlin) Noise(point core.Point3) float64 {
	fx, fy, fz := math.Floor(point.X), math.Floor(point.Y), math.Floor(point.Z)
	u, v, w := point.X-fx, point.Y-fy, point.Z-fz
	i, j, k := int(fx), int(fy), int(fz)

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.randomVectors[p.permX[(i+di)&255]^
					p.permY[(j+dj)&255]^
					p.permZ[(k+dk)&255]]
			}
		}
	}

	return trilinearInterp(&c, u, v, w)
}

// trilinearInterp blends the eight corner gradients with Hermite smoothing
func trilinearInterp(c *[2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// Turbulence sums depth octaves of noise at doubling frequency and halving
// amplitude and returns the absolute value
func (p *Perlin) Turbulence(point core.Point3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(point)
		weight *= 0.5
		point = point.Multiply(2)
	}
	return math.Abs(accum)
}
