package geom

import (
	"math"
	"testing"
)

const slerpTol = 1e-9

func TestSlerpEndpoints(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{0, 1, 0}

	if got := Slerp(a, b, 0); got.Distance(a) > slerpTol {
		t.Errorf("Slerp(a, b, 0) = %v, want %v", got, a)
	}
	if got := Slerp(a, b, 1); got.Distance(b) > slerpTol {
		t.Errorf("Slerp(a, b, 1) = %v, want %v", got, b)
	}
}

func TestSlerpMidpoint(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{0, 1, 0}
	mid := Slerp(a, b, 0.5)

	want := Vec3{math.Sqrt2 / 2, math.Sqrt2 / 2, 0}
	if mid.Distance(want) > slerpTol {
		t.Errorf("Slerp midpoint = %v, want %v", mid, want)
	}
}

func TestSlerpUnitLength(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{0, 0.6, 0.8}
	for _, tt := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		got := Slerp(a, b, tt)
		if math.Abs(got.Length()-1) > slerpTol {
			t.Errorf("Slerp(t=%v).Length() = %v, want 1", tt, got.Length())
		}
	}
}

func TestSlerpNearParallel(t *testing.T) {
	// Vectors within the epsilon regime must not produce NaN from the
	// sin division; the lerp fallback handles them.
	a := Vec3{1, 0, 0}
	b := Vec3{1, 1e-7, 0}.Normalize()

	got := Slerp(a, b, 0.5)
	if math.IsNaN(got.X) || math.IsNaN(got.Y) || math.IsNaN(got.Z) {
		t.Fatalf("Slerp near-parallel produced NaN: %v", got)
	}
	if math.Abs(got.Length()-1) > slerpTol {
		t.Errorf("Slerp near-parallel length = %v, want 1", got.Length())
	}
}

func TestSlerpConstantAngularSpeed(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{0, 0, 1}

	prev := a
	var first float64
	for i := 1; i <= 4; i++ {
		cur := Slerp(a, b, float64(i)/4)
		step := math.Acos(Clamp(prev.Dot(cur), -1, 1))
		if i == 1 {
			first = step
		} else if math.Abs(step-first) > 1e-9 {
			t.Errorf("angular step %d = %v, want %v", i, step, first)
		}
		prev = cur
	}
}

func TestSlerp3Corners(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{0, 1, 0}
	c := Vec3{0, 0, 1}

	tests := []struct {
		wa, wb, wc float64
		want       Vec3
	}{
		{1, 0, 0, a},
		{0, 1, 0, b},
		{0, 0, 1, c},
	}
	for _, tt := range tests {
		got := Slerp3(a, b, c, tt.wa, tt.wb, tt.wc)
		if got.Distance(tt.want) > slerpTol {
			t.Errorf("Slerp3(%v, %v, %v) = %v, want %v", tt.wa, tt.wb, tt.wc, got, tt.want)
		}
	}
}

func TestSlerp3UnitLength(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{0, 1, 0}
	c := Vec3{0, 0, 1}

	got := Slerp3(a, b, c, 1.0/3, 1.0/3, 1.0/3)
	if math.Abs(got.Length()-1) > slerpTol {
		t.Errorf("Slerp3 centroid length = %v, want 1", got.Length())
	}
}
