package integrator

import (
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

var sky = NewFlat(core.NewColor(0.7, 0.8, 1.0))

func towardOrigin() core.Ray {
	return core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
}

func TestPathTracing_DepthExhausted(t *testing.T) {
	pt := NewPathTracingIntegrator()
	world := geometry.NewHittableList()

	got := pt.RayColor(towardOrigin(), world, sky, 0, rand.New(rand.NewSource(1)))
	if got != (core.Color{}) {
		t.Errorf("depth 0 color = %v, want black", got)
	}
}

func TestPathTracing_MissReturnsBackground(t *testing.T) {
	pt := NewPathTracingIntegrator()
	world := geometry.NewHittableList(geometry.NewSphere(core.NewVec3(10, 0, 0), 1, material.NewLambertian(core.NewColor(1, 0, 0))))

	got := pt.RayColor(towardOrigin(), world, sky, 50, rand.New(rand.NewSource(1)))
	if got != sky.Value {
		t.Errorf("miss color = %v, want background %v", got, sky.Value)
	}
}

func TestPathTracing_DiffuseSphere(t *testing.T) {
	pt := NewPathTracingIntegrator()
	albedo := core.NewColor(0.5, 0.25, 1.0)
	world := geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, 0), 1, material.NewLambertian(albedo)))
	random := rand.New(rand.NewSource(3))

	tests := []struct {
		name  string
		depth int
		want  core.Color
	}{
		// The bounce recurses into an exhausted depth
		{"depth 1", 1, core.Color{}},
		// A convex sphere never shadows its own scattered rays
		{"depth 2", 2, albedo.MultiplyVec(sky.Value)},
		{"depth 50", 50, albedo.MultiplyVec(sky.Value)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 100; i++ {
				got := pt.RayColor(towardOrigin(), world, sky, tt.depth, random)
				if diff := cmp.Diff(tt.want, got, approx); diff != "" {
					t.Fatalf("color mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestPathTracing_EmissiveSurface(t *testing.T) {
	pt := NewPathTracingIntegrator()
	emission := core.NewColor(4, 3, 2)
	world := geometry.NewHittableList(geometry.NewXYRect(-1, 1, -1, 1, 0, material.NewDiffuseLight(emission)))

	got := pt.RayColor(towardOrigin(), world, NewFlat(core.Color{}), 10, rand.New(rand.NewSource(1)))
	if got != emission {
		t.Errorf("light color = %v, want %v", got, emission)
	}
}

func TestPathTracing_MirrorReflectsBackground(t *testing.T) {
	pt := NewPathTracingIntegrator()
	tint := core.NewColor(0.9, 0.8, 0.7)
	world := geometry.NewHittableList(geometry.NewXYRect(-1, 1, -1, 1, 0, material.NewMetal(tint, 0)))
	background := NewSkyGradient()

	ray := towardOrigin()
	got := pt.RayColor(ray, world, background, 5, rand.New(rand.NewSource(1)))
	want := tint.MultiplyVec(background.Color(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))))
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("mirror color mismatch (-want +got):\n%s", diff)
	}
}

func TestBackgrounds(t *testing.T) {
	gradient := NewSkyGradient()

	tests := []struct {
		name       string
		background Background
		direction  core.Vec3
		want       core.Color
	}{
		{"flat ignores direction", sky, core.NewVec3(0, 1, 0), sky.Value},
		{"gradient straight up", gradient, core.NewVec3(0, 2, 0), gradient.Top},
		{"gradient straight down", gradient, core.NewVec3(0, -3, 0), gradient.Bottom},
		{"gradient horizon", gradient, core.NewVec3(1, 0, 0), core.NewColor(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.background.Color(core.NewRay(core.NewVec3(0, 0, 0), tt.direction))
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("background mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
