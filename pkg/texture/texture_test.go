package texture

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/noise"
	"github.com/google/go-cmp/cmp"
)

func TestSolidColor_Value(t *testing.T) {
	tex := NewSolidRGB(0.1, 0.2, 0.3)
	got := tex.Value(0.9, 0.1, core.NewVec3(5, 5, 5))
	if diff := cmp.Diff(core.NewColor(0.1, 0.2, 0.3), got); diff != "" {
		t.Errorf("SolidColor mismatch (-want +got):\n%s", diff)
	}
}

func TestChecker_Value(t *testing.T) {
	even := core.NewColor(1, 1, 1)
	odd := core.NewColor(0, 0, 0)
	checker := NewCheckerColors(even, odd)

	tests := []struct {
		name     string
		point    core.Point3
		expected core.Color
	}{
		// sin(1)^3 > 0
		{"all positive sines", core.NewVec3(0.1, 0.1, 0.1), even},
		// sin(-1)*sin(1)*sin(1) < 0
		{"one negative sine", core.NewVec3(-0.1, 0.1, 0.1), odd},
		// two negative factors cancel
		{"two negative sines", core.NewVec3(-0.1, -0.1, 0.1), even},
		// product exactly zero falls on the even side
		{"on a zero plane", core.NewVec3(0, 0.1, -0.1), even},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, checker.Value(0, 0, tt.point)); diff != "" {
				t.Errorf("Checker mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestChecker_DelegatesToSubTextures(t *testing.T) {
	inner := NewCheckerColors(core.NewColor(1, 0, 0), core.NewColor(0, 1, 0))
	outer := NewChecker(inner, NewSolidRGB(0, 0, 1))

	got := outer.Value(0, 0, core.NewVec3(0.1, 0.1, 0.1))
	if diff := cmp.Diff(core.NewColor(1, 0, 0), got); diff != "" {
		t.Errorf("Nested checker mismatch (-want +got):\n%s", diff)
	}
}

func TestNoise_ValueIsGreyInUnitRange(t *testing.T) {
	random := rand.New(rand.NewSource(11))
	texture := NewNoise(4, 2, random)

	for i := 0; i < 2000; i++ {
		p := core.RandomVec3(random, -10, 10)
		c := texture.Value(0, 0, p)
		if c.X != c.Y || c.Y != c.Z {
			t.Fatalf("Expected grey, got %v", c)
		}
		if c.X < 0 || c.X > 1 {
			t.Fatalf("Expected grey level in [0, 1], got %f", c.X)
		}
	}
}

func TestNoise_SharedPerlinAndAxis(t *testing.T) {
	perlin := noise.NewPerlin(rand.New(rand.NewSource(3)))
	alongX := NewNoiseWithPerlin(perlin, 1, 0)
	alongZ := NewNoiseWithPerlin(perlin, 1, 2)

	p := core.NewVec3(1.25, 0, 0)
	turb := perlin.Turbulence(p, turbulenceDepth)
	if got, want := alongX.Value(0, 0, p).X, 0.5*(1+math.Sin(1.25+10*turb)); math.Abs(got-want) > 1e-12 {
		t.Errorf("X-axis marble = %f, want %f", got, want)
	}
	if got, want := alongZ.Value(0, 0, p).X, 0.5*(1+math.Sin(10*turb)); math.Abs(got-want) > 1e-12 {
		t.Errorf("Z-axis marble = %f, want %f", got, want)
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for invalid axis")
		}
	}()
	NewNoiseWithPerlin(perlin, 1, 3)
}

func TestImage_PlaceholderAndPanic(t *testing.T) {
	img := NewImage("earthmap.jpg")
	if diff := cmp.Diff(core.NewColor(0, 1, 1), img.Value(0.5, 0.5, core.Vec3{})); diff != "" {
		t.Errorf("Expected cyan placeholder (-want +got):\n%s", diff)
	}

	img.Width, img.Height, img.Data = 1, 1, []byte{255, 0, 0}
	defer func() {
		if recover() == nil {
			t.Error("Expected sampling real image data to panic")
		}
	}()
	img.Value(0.5, 0.5, core.Vec3{})
}
