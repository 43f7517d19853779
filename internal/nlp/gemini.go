package nlp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultAnnotatorModel is the Gemini model used for linguistic annotation.
const DefaultAnnotatorModel = "gemini-2.5-flash"

// maxAnnotationChars caps the text sent per annotation call.
const maxAnnotationChars = 10000

const entitiesPrompt = `Extract named entities from the text below.
Return a JSON array of objects with fields "text" and "label", where label is
one of: ORG (organizations), PRODUCT (products, tools, technologies).
Return only entities present verbatim in the text. Return [] if none.

Text:
%s`

const nounChunksPrompt = `Extract the noun phrases of at most three words from
the text below. Return a JSON array of lower-cased strings, without
duplicates. Return [] if none.

Text:
%s`

// GeminiAnnotator implements Annotator using the Gemini API in JSON mode.
type GeminiAnnotator struct {
	client *genai.Client
	model  string
}

// NewGeminiAnnotator creates an annotator backed by the Gemini API.
func NewGeminiAnnotator(ctx context.Context, apiKey, model string) (*GeminiAnnotator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultAnnotatorModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiAnnotator{client: client, model: model}, nil
}

// Entities returns the named entities Gemini finds in text.
func (a *GeminiAnnotator) Entities(ctx context.Context, text string) ([]Entity, error) {
	raw, err := a.generateJSON(ctx, fmt.Sprintf(entitiesPrompt, truncate(text)))
	if err != nil {
		return nil, err
	}

	var entities []Entity
	if err := json.Unmarshal([]byte(raw), &entities); err != nil {
		return nil, fmt.Errorf("failed to parse entities response: %w", err)
	}
	return entities, nil
}

// NounChunks returns short noun phrases Gemini finds in text.
func (a *GeminiAnnotator) NounChunks(ctx context.Context, text string) ([]string, error) {
	raw, err := a.generateJSON(ctx, fmt.Sprintf(nounChunksPrompt, truncate(text)))
	if err != nil {
		return nil, err
	}

	var chunks []string
	if err := json.Unmarshal([]byte(raw), &chunks); err != nil {
		return nil, fmt.Errorf("failed to parse noun chunks response: %w", err)
	}
	return chunks, nil
}

func (a *GeminiAnnotator) generateJSON(ctx context.Context, prompt string) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(float32(0.1)),
		ResponseMIMEType: "application/json",
	}

	result, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("annotation call failed: %w", err)
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty annotation response")
	}
	return cleanJSONBlock(text), nil
}

func truncate(text string) string {
	if len(text) > maxAnnotationChars {
		return text[:maxAnnotationChars]
	}
	return text
}

// cleanJSONBlock removes markdown code block wrappers from JSON.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
