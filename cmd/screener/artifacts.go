package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-screener/internal/analysis"
	"github.com/jonathan/resume-screener/internal/embedding"
	"github.com/jonathan/resume-screener/internal/nlp"
	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/schemas"
)

// apiKeyEnvVar is consulted when no --api-key flag is given.
const apiKeyEnvVar = "GEMINI_API_KEY"

// writeArtifact marshals v to indented JSON, writes it to outputPath, and
// validates it against the named schema. Validation is a safety check, not a
// requirement: failures are warnings.
func writeArtifact(outputPath string, v any, schemaRelPath string) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output to JSON: %w", err)
	}

	outputDir := filepath.Dir(outputPath)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(outputPath, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outputPath, err)
	}

	if schemaRelPath == "" {
		return nil
	}

	if schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", schemaRelPath)); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, outputPath); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
		}
	}

	return nil
}

// resolveAPIKey returns the key from the flag or the environment.
func resolveAPIKey(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(apiKeyEnvVar)
}

// warnToStderr is the degradation-warning sink used by all commands.
func warnToStderr(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}

// buildAnnotator creates the Gemini annotator, or returns nil (degraded
// mode) when disabled or when no API key is available.
func buildAnnotator(ctx context.Context, apiKey, model string, disabled bool) nlp.Annotator {
	if disabled {
		return nil
	}
	if apiKey == "" {
		warnToStderr("no API key set; entity and key-phrase extraction disabled")
		return nil
	}

	annotator, err := nlp.NewGeminiAnnotator(ctx, apiKey, model)
	if err != nil {
		warnToStderr("annotator unavailable, continuing without it: %v", err)
		return nil
	}
	return annotator
}

// buildExtractor creates the field extractor with the optional annotator.
func buildExtractor(annotator nlp.Annotator) *parsing.Extractor {
	opts := []parsing.Option{parsing.WithWarnFunc(warnToStderr)}
	if annotator != nil {
		opts = append(opts, parsing.WithAnnotator(annotator))
	}
	return parsing.NewExtractor(opts...)
}

// buildAnalyzer creates the job analyzer with the optional annotator.
func buildAnalyzer(annotator nlp.Annotator) *analysis.Analyzer {
	opts := []analysis.Option{analysis.WithWarnFunc(warnToStderr)}
	if annotator != nil {
		opts = append(opts, analysis.WithAnnotator(annotator))
	}
	return analysis.NewAnalyzer(opts...)
}

// buildEmbedder creates the Gemini embedder. Unlike the annotator, scoring
// cannot run without an embedding model, so a missing key is an error.
func buildEmbedder(ctx context.Context, apiKey, model string) (embedding.Embedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("an API key is required for similarity scoring: set --api-key or %s", apiKeyEnvVar)
	}
	return embedding.NewGeminiEmbedder(ctx, apiKey, model)
}
