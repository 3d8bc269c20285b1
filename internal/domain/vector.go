package domain

import (
	"math"
	"strconv"
	"strings"
)

// VectorDim is the fixed embedding dimensionality.
const VectorDim = 100

// Vector is a dense embedding. A produced vector has L2-norm 0 (empty
// input) or 1.
type Vector []float64

// ZeroVector returns the zero vector of the standard dimensionality.
func ZeroVector() Vector {
	return make(Vector, VectorDim)
}

// Norm returns the L2 norm.
func (v Vector) Norm() float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Normalize scales v to unit length in place. The zero vector is left as is.
func (v Vector) Normalize() {
	norm := v.Norm()
	if norm == 0 {
		return
	}
	for i := range v {
		v[i] /= norm
	}
}

// Cosine returns the cosine similarity of a and b, or 0 for any degenerate
// case (dimension mismatch, zero norm).
func Cosine(a, b Vector) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	normA = math.Sqrt(normA)
	normB = math.Sqrt(normB)
	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (normA * normB)
}

// Serialize renders v as a bracketed comma-separated decimal list with six
// fractional digits, the storage format for catalog embeddings.
func (v Vector) Serialize() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range v {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(x, 'f', 6, 64))
	}
	b.WriteByte(']')
	return b.String()
}

// ParseVector decodes a serialized vector. The decoder is deliberately
// tolerant: any length is accepted and unparseable components read as 0.
// An empty string yields the zero vector.
func ParseVector(s string) Vector {
	if s == "" {
		return ZeroVector()
	}

	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")

	parts := strings.Split(s, ",")
	v := make(Vector, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			continue
		}
		v[i] = f
	}
	return v
}
