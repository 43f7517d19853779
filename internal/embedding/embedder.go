// Package embedding provides the sentence-embedding dependency used for
// semantic similarity. The model is pretrained and external; this package
// only performs inference calls against it.
package embedding

import (
	"context"
	"math"
)

// Embedder turns a text into a dense vector. Implementations must be safe
// for concurrent use: the model is loaded once and treated as read-only.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// CosineSimilarity returns the cosine of the angle between two vectors.
// It returns 0 for mismatched lengths or zero-magnitude vectors.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
