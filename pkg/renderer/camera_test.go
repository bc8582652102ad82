package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestCamera_CenterRayLooksAtTarget(t *testing.T) {
	lookFrom := core.NewVec3(3, 2, 5)
	lookAt := core.NewVec3(-1, 0, 0)
	camera := NewCamera(lookFrom, lookAt, core.NewVec3(0, 1, 0), 40, 16.0/9.0, 0, 10)

	ray := camera.GetRay(0.5, 0.5, rand.New(rand.NewSource(1)))
	if diff := cmp.Diff(lookFrom, ray.Origin, approx); diff != "" {
		t.Errorf("origin mismatch (-want +got):\n%s", diff)
	}
	want := lookAt.Subtract(lookFrom).Normalize()
	if diff := cmp.Diff(want, ray.Direction.Normalize(), approx); diff != "" {
		t.Errorf("direction mismatch (-want +got):\n%s", diff)
	}
	if ray.Time != 0 {
		t.Errorf("ray time = %v, want 0 for a camera without shutter", ray.Time)
	}
}

func TestCamera_FieldOfView(t *testing.T) {
	camera := NewCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 90, 2.0, 0, 1)
	random := rand.New(rand.NewSource(1))

	tests := []struct {
		name  string
		s, t  float64
		angle float64 // degrees from the view direction
	}{
		{"top edge", 0.5, 1, 45},
		{"bottom edge", 0.5, 0, 45},
		{"right edge", 1, 0.5, math.Atan(2) * 180 / math.Pi},
	}

	forward := core.NewVec3(0, 0, -1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			direction := camera.GetRay(tt.s, tt.t, random).Direction.Normalize()
			got := math.Acos(direction.Dot(forward)) * 180 / math.Pi
			if math.Abs(got-tt.angle) > 1e-6 {
				t.Errorf("angle = %v degrees, want %v", got, tt.angle)
			}
		})
	}

	// Viewport orientation: t grows upward, s grows to the right
	up := camera.GetRay(0.5, 1, random).Direction
	right := camera.GetRay(1, 0.5, random).Direction
	if up.Y <= 0 || right.X <= 0 {
		t.Errorf("unexpected viewport orientation: up=%v right=%v", up, right)
	}
}

func TestCamera_DepthOfField(t *testing.T) {
	lookFrom := core.NewVec3(0, 0, 0)
	camera := NewCamera(lookFrom, core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 60, 1.0, 0.5, 4)
	random := rand.New(rand.NewSource(9))

	// Every lens sample for the same viewport point passes through the same
	// point on the focus plane
	focus := camera.GetRay(0.3, 0.7, random).At(1)
	for i := 0; i < 200; i++ {
		ray := camera.GetRay(0.3, 0.7, random)
		if diff := cmp.Diff(focus, ray.At(1), approx); diff != "" {
			t.Fatalf("focus point mismatch (-want +got):\n%s", diff)
		}
		offset := ray.Origin.Subtract(lookFrom)
		if offset.Length() >= 0.25 {
			t.Fatalf("lens sample %v outside radius 0.25", offset)
		}
		if math.Abs(offset.Z) > 1e-12 {
			t.Fatalf("lens sample %v not in the lens plane", offset)
		}
	}
	if math.Abs(focus.Z+4) > 1e-9 {
		t.Errorf("focus plane at z=%v, want -4", focus.Z)
	}
}

func TestCamera_ShutterTimes(t *testing.T) {
	camera := NewCameraWithTime(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), 40, 1.0, 0, 1, 0.25, 0.75)
	random := rand.New(rand.NewSource(2))

	minTime, maxTime := math.Inf(1), math.Inf(-1)
	for i := 0; i < 1000; i++ {
		ray := camera.GetRay(random.Float64(), random.Float64(), random)
		minTime = math.Min(minTime, ray.Time)
		maxTime = math.Max(maxTime, ray.Time)
	}
	if minTime < 0.25 || maxTime >= 0.75 {
		t.Errorf("ray times span [%v, %v], want within [0.25, 0.75)", minTime, maxTime)
	}
	if maxTime-minTime < 0.4 {
		t.Errorf("ray times span [%v, %v], want close to the whole shutter interval", minTime, maxTime)
	}
}
