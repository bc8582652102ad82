package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomInUnitSphere(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		if p := RandomInUnitSphere(random); p.LengthSquared() >= 1.0 {
			t.Fatalf("Point %v outside unit sphere", p)
		}
	}
}

func TestRandomUnitVector(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	var sum Vec3
	for i := 0; i < 10000; i++ {
		v := RandomUnitVector(random)
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit vector, got length %f", v.Length())
		}
		sum = sum.Add(v)
	}

	// Uniform directions average out near the origin
	if mean := sum.Divide(10000); mean.Length() > 0.05 {
		t.Errorf("Expected mean direction near zero, got %v", mean)
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(random)
		if p.Z != 0 || p.LengthSquared() >= 1.0 {
			t.Fatalf("Point %v outside unit disk", p)
		}
	}
}

func TestRandomRanges(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		f := RandomFloat(random, -2, 3)
		if f < -2 || f >= 3 {
			t.Fatalf("RandomFloat out of range: %f", f)
		}
		n := RandomInt(random, 0, 2)
		if n < 0 || n > 2 {
			t.Fatalf("RandomInt out of range: %d", n)
		}
		seen[n] = true
	}
	if len(seen) != 3 {
		t.Errorf("Expected RandomInt to cover [0, 2] inclusively, saw %v", seen)
	}
}

func TestDegreesToRadians(t *testing.T) {
	if got := DegreesToRadians(180); math.Abs(got-math.Pi) > 1e-12 {
		t.Errorf("DegreesToRadians(180) = %f, want π", got)
	}
}
