package texture

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/noise"
)

// turbulenceDepth is the octave count used for the marble veins
const turbulenceDepth = 7

// Noise renders a grey marble pattern whose stripes run along Axis
type Noise struct {
	perlin *noise.Perlin
	Scale  float64
	Axis   int // 0=X, 1=Y, 2=Z
}

// NewNoise creates a marble texture with freshly generated Perlin tables
func NewNoise(scale float64, axis int, random *rand.Rand) *Noise {
	return NewNoiseWithPerlin(noise.NewPerlin(random), scale, axis)
}

// NewNoiseWithPerlin creates a marble texture sharing existing Perlin tables
func NewNoiseWithPerlin(perlin *noise.Perlin, scale float64, axis int) *Noise {
	if axis < 0 || axis > 2 {
		panic("texture: noise axis must be 0, 1 or 2")
	}
	return &Noise{perlin: perlin, Scale: scale, Axis: axis}
}

// Value evaluates 0.5 * (1 + sin(s[axis] + 10*turb(s))) with s = scale*p
func (n *Noise) Value(u, v float64, point core.Point3) core.Color {
	s := point.Multiply(n.Scale)
	grey := 0.5 * (1 + math.Sin(s.Axis(n.Axis)+10*n.perlin.Turbulence(s, turbulenceDepth)))
	return core.NewColor(grey, grey, grey)
}
