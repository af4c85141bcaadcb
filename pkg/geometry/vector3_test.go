package geometry

import (
	"math"
	"testing"
)

func TestVectorArithmetic(t *testing.T) {
	a := NewVector3(1, 2, 3)
	b := NewVector3(4, 5, 6)

	sum := a.Add(b)
	if sum != NewVector3(5, 7, 9) {
		t.Errorf("Add failed: got %v", sum)
	}

	diff := b.Sub(a)
	if diff != NewVector3(3, 3, 3) {
		t.Errorf("Sub failed: got %v", diff)
	}

	scaled := a.Mul(2)
	if scaled != NewVector3(2, 4, 6) {
		t.Errorf("Mul failed: got %v", scaled)
	}
}

func TestVectorDotCross(t *testing.T) {
	x := NewVector3(1, 0, 0)
	y := NewVector3(0, 1, 0)

	if d := x.Dot(y); d != 0 {
		t.Errorf("Dot of orthogonal vectors: expected 0, got %v", d)
	}

	z := x.Cross(y)
	if z != NewVector3(0, 0, 1) {
		t.Errorf("Cross failed: expected (0,0,1), got %v", z)
	}
}

func TestVectorLength(t *testing.T) {
	v := NewVector3(3, 4, 0)

	if l := v.Length(); math.Abs(l-5.0) > 1e-10 {
		t.Errorf("Length failed: expected 5, got %v", l)
	}
	if sq := v.LengthSq(); math.Abs(sq-25.0) > 1e-10 {
		t.Errorf("LengthSq failed: expected 25, got %v", sq)
	}
}

func TestVectorNormalize(t *testing.T) {
	v := NewVector3(0, 0, 7).Normalize()
	if v != NewVector3(0, 0, 1) {
		t.Errorf("Normalize failed: got %v", v)
	}

	// Zero vector normalizes to zero, not NaN.
	zero := Vector3{}.Normalize()
	if zero != (Vector3{}) {
		t.Errorf("Normalize of zero vector: got %v", zero)
	}
}

func TestVectorLerp(t *testing.T) {
	a := NewVector3(0, 0, 0)
	b := NewVector3(10, -4, 2)

	mid := a.Lerp(b, 0.5)
	if mid != NewVector3(5, -2, 1) {
		t.Errorf("Lerp at 0.5 failed: got %v", mid)
	}
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp at 0 failed: got %v", got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp at 1 failed: got %v", got)
	}
}

func TestVectorIsFinite(t *testing.T) {
	if !NewVector3(1, 2, 3).IsFinite() {
		t.Error("finite vector reported as non-finite")
	}
	if NewVector3(math.NaN(), 0, 0).IsFinite() {
		t.Error("NaN component not detected")
	}
	if NewVector3(0, math.Inf(1), 0).IsFinite() {
		t.Error("infinite component not detected")
	}
}
