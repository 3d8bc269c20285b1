package domain

import (
	"math"
	"strings"
	"testing"
)

func unitVector(t *testing.T) Vector {
	t.Helper()
	v := ZeroVector()
	v[0] = 3
	v[1] = 4
	v.Normalize()
	return v
}

func TestCosine_SelfIsOne(t *testing.T) {
	v := unitVector(t)
	if got := Cosine(v, v); math.Abs(got-1) > 1e-12 {
		t.Errorf("Cosine(v, v) = %v, want 1", got)
	}
}

func TestCosine_NegationIsMinusOne(t *testing.T) {
	v := unitVector(t)
	neg := make(Vector, len(v))
	for i := range v {
		neg[i] = -v[i]
	}
	if got := Cosine(v, neg); math.Abs(got+1) > 1e-12 {
		t.Errorf("Cosine(v, -v) = %v, want -1", got)
	}
}

func TestCosine_DegenerateCases(t *testing.T) {
	v := unitVector(t)

	if got := Cosine(v, ZeroVector()); got != 0 {
		t.Errorf("Cosine(v, 0) = %v, want 0", got)
	}
	if got := Cosine(v, Vector{1, 2}); got != 0 {
		t.Errorf("Cosine with dimension mismatch = %v, want 0", got)
	}
	if got := Cosine(ZeroVector(), ZeroVector()); got != 0 {
		t.Errorf("Cosine(0, 0) = %v, want 0", got)
	}
}

func TestNormalize(t *testing.T) {
	v := Vector{3, 4}
	v.Normalize()
	if math.Abs(v.Norm()-1) > 1e-12 {
		t.Errorf("norm after Normalize = %v, want 1", v.Norm())
	}

	z := ZeroVector()
	z.Normalize()
	if z.Norm() != 0 {
		t.Errorf("zero vector changed by Normalize: norm %v", z.Norm())
	}
}

func TestSerialize_Format(t *testing.T) {
	v := Vector{0.123456789, -0.045678, 0}
	s := v.Serialize()

	want := "[0.123457,-0.045678,0.000000]"
	if s != want {
		t.Errorf("Serialize = %q, want %q", s, want)
	}
}

func TestSerialize_RoundTrip(t *testing.T) {
	v := unitVector(t)
	v[50] = -0.25
	v.Normalize()

	decoded := ParseVector(v.Serialize())
	if len(decoded) != len(v) {
		t.Fatalf("decoded length %d, want %d", len(decoded), len(v))
	}
	for i := range v {
		if math.Abs(decoded[i]-v[i]) > 1e-6 {
			t.Errorf("component %d: %v vs %v", i, decoded[i], v[i])
		}
	}
}

func TestParseVector_Tolerant(t *testing.T) {
	v := ParseVector("[0.5, oops ,-0.25]")
	if len(v) != 3 {
		t.Fatalf("length %d, want 3", len(v))
	}
	if v[0] != 0.5 || v[1] != 0 || v[2] != -0.25 {
		t.Errorf("unexpected components: %v", v)
	}
}

func TestParseVector_EmptyYieldsZeroVector(t *testing.T) {
	v := ParseVector("")
	if len(v) != VectorDim {
		t.Fatalf("length %d, want %d", len(v), VectorDim)
	}
	if v.Norm() != 0 {
		t.Errorf("expected zero vector, norm %v", v.Norm())
	}
}

func TestParseVector_AnyLengthAccepted(t *testing.T) {
	short := ParseVector("[1.0,2.0]")
	if len(short) != 2 {
		t.Errorf("short vector length %d, want 2", len(short))
	}

	// A short stored vector must not match the query dimension, so cosine
	// degrades to 0 instead of failing.
	if got := Cosine(ZeroVector(), short); got != 0 {
		t.Errorf("cosine with short vector = %v, want 0", got)
	}
}

func TestSerialize_DimensionCount(t *testing.T) {
	s := ZeroVector().Serialize()
	if n := strings.Count(s, ","); n != VectorDim-1 {
		t.Errorf("serialized component count %d, want %d", n+1, VectorDim)
	}
}
