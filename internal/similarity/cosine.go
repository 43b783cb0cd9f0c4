package similarity

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEmptyVector       = errors.New("empty embedding vector")
	ErrZeroVector        = errors.New("zero magnitude embedding vector")
	ErrDimensionMismatch = errors.New("embedding dimensions differ")
)

// Cosine returns the cosine similarity of two embedding vectors clamped to [0,1].
func Cosine(a, b []float32) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, ErrEmptyVector
	}
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}

	var dot, magA, magB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		magA += x * x
		magB += y * y
	}
	if magA == 0 || magB == 0 {
		return 0, ErrZeroVector
	}

	return clamp01(dot / (math.Sqrt(magA) * math.Sqrt(magB))), nil
}
