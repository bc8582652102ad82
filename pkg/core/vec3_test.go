package core

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 9)},
		{"Subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"Divide", a.Divide(2), NewVec3(0.5, 1, 1.5)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"Cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, tt.got, approx); diff != "" {
				t.Errorf("%s mismatch (-want +got):\n%s", tt.name, diff)
			}
		})
	}

	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot = %f, want 12", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", v.Length())
	}

	zero := Vec3{}.Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Expected zero vector to normalize to zero, got %v", zero)
	}
}

func TestVec3_Axis(t *testing.T) {
	v := NewVec3(7, 8, 9)
	for axis, want := range []float64{7, 8, 9} {
		if got := v.Axis(axis); got != want {
			t.Errorf("Axis(%d) = %f, want %f", axis, got, want)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for axis 3")
		}
	}()
	v.Axis(3)
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(0, 1e-3, 0).NearZero() {
		t.Error("Expected vector with 1e-3 component not to be near zero")
	}
}

func TestVec3_ReflectRefract(t *testing.T) {
	normal := NewVec3(0, 1, 0)
	incoming := NewVec3(1, -1, 0).Normalize()

	reflected := incoming.Reflect(normal)
	if diff := cmp.Diff(NewVec3(1, 1, 0).Normalize(), reflected, approx); diff != "" {
		t.Errorf("Reflect mismatch (-want +got):\n%s", diff)
	}

	// Equal indices: the ray passes straight through
	refracted := incoming.Refract(normal, 1.0)
	if diff := cmp.Diff(incoming, refracted, approx); diff != "" {
		t.Errorf("Refract with ratio 1 mismatch (-want +got):\n%s", diff)
	}

	// Entering a denser medium bends toward the normal
	bent := incoming.Refract(normal, 1.0/1.5)
	if math.Abs(bent.Length()-1) > 1e-9 {
		t.Errorf("Expected refracted unit vector, got length %f", bent.Length())
	}
	if math.Abs(bent.X) >= math.Abs(incoming.X) {
		t.Errorf("Expected refraction toward normal, got %v", bent)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRayWithTime(NewVec3(1, 2, 3), NewVec3(1, 0, -1), 0.5)
	if diff := cmp.Diff(NewVec3(3, 2, 1), ray.At(2), approx); diff != "" {
		t.Errorf("At mismatch (-want +got):\n%s", diff)
	}
	if ray.Time != 0.5 {
		t.Errorf("Expected time 0.5, got %f", ray.Time)
	}
	if NewRay(Vec3{}, NewVec3(0, 0, 1)).Time != 0 {
		t.Error("Expected NewRay to default to time 0")
	}
}
