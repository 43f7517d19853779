package embedding

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"google.golang.org/genai"
)

// DefaultEmbeddingModel is the Gemini embedding model used for inference.
const DefaultEmbeddingModel = "gemini-embedding-001"

const (
	// maxEmbedChars caps the text length sent per embedding call.
	maxEmbedChars = 10000

	maxRetries = 3
	baseDelay  = time.Second
	maxDelay   = 30 * time.Second
)

// GeminiEmbedder implements Embedder against the Gemini embedding API with
// bounded retries on transient failures.
type GeminiEmbedder struct {
	client *genai.Client
	model  string
}

// NewGeminiEmbedder creates an embedder backed by the Gemini API.
func NewGeminiEmbedder(ctx context.Context, apiKey, model string) (*GeminiEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultEmbeddingModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiEmbedder{client: client, model: model}, nil
}

// Embed returns the embedding vector for text.
func (e *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("text for embedding cannot be empty")
	}
	if len(trimmed) > maxEmbedChars {
		trimmed = trimmed[:maxEmbedChars]
	}

	contents := []*genai.Content{genai.NewContentFromText(trimmed, genai.RoleUser)}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(backoff(attempt)):
			case <-ctx.Done():
				return nil, fmt.Errorf("context done during retry: %w", ctx.Err())
			}
		}

		result, err := e.client.Models.EmbedContent(ctx, e.model, contents, nil)
		if err == nil {
			return validateEmbedding(result)
		}

		lastErr = err
		if !isRetryable(err) {
			return nil, fmt.Errorf("embedding call failed: %w", err)
		}
	}

	return nil, fmt.Errorf("max retries (%d) exceeded for embedding: %w", maxRetries, lastErr)
}

func backoff(attempt int) time.Duration {
	delay := baseDelay * time.Duration(math.Pow(2, float64(attempt-1)))
	if delay > maxDelay {
		delay = maxDelay
	}
	return delay
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	msg := err.Error()
	if strings.Contains(msg, "context canceled") ||
		strings.Contains(msg, "context deadline exceeded") {
		return false
	}

	if apiErr, ok := err.(*genai.APIError); ok {
		switch apiErr.Code {
		case 429, 500, 502, 503, 504:
			return true
		default:
			return false
		}
	}

	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "EOF")
}

func validateEmbedding(resp *genai.EmbedContentResponse) ([]float32, error) {
	if resp == nil || len(resp.Embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings in response")
	}

	values := resp.Embeddings[0].Values
	if len(values) == 0 {
		return nil, fmt.Errorf("embedding vector is empty")
	}
	for i, v := range values {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return nil, fmt.Errorf("invalid embedding value at index %d: %v", i, v)
		}
	}

	return values, nil
}
