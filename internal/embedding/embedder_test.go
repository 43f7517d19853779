package embedding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity_IdenticalVectors(t *testing.T) {
	v := []float32{0.5, 0.3, 0.2}
	assert.InDelta(t, 1.0, CosineSimilarity(v, v), 1e-6)
}

func TestCosineSimilarity_OrthogonalVectors(t *testing.T) {
	a := []float32{1, 0}
	b := []float32{0, 1}
	assert.InDelta(t, 0.0, CosineSimilarity(a, b), 1e-6)
}

func TestCosineSimilarity_OppositeVectors(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{-1, -2, -3}
	assert.InDelta(t, -1.0, CosineSimilarity(a, b), 1e-6)
}

func TestCosineSimilarity_ZeroVector(t *testing.T) {
	a := []float32{0, 0, 0}
	b := []float32{1, 2, 3}
	assert.Equal(t, 0.0, CosineSimilarity(a, b))
}

func TestCosineSimilarity_MismatchedLengths(t *testing.T) {
	a := []float32{1, 2}
	b := []float32{1, 2, 3}
	assert.Equal(t, 0.0, CosineSimilarity(a, b))
}

func TestCosineSimilarity_Empty(t *testing.T) {
	assert.Equal(t, 0.0, CosineSimilarity(nil, nil))
}
