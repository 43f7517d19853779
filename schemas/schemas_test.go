package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/schemas"
)

var schemaFiles = []string{
	"job_analysis.schema.json",
	"screening_result.schema.json",
	"match_explanation.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "schema file should exist")

			var parsed map[string]any
			require.NoError(t, json.Unmarshal(data, &parsed), "schema should be valid JSON")

			assert.Contains(t, parsed, "$schema")
			assert.Contains(t, parsed, "type")
		})
	}
}

func TestAllSchemaFiles_Loadable(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			// A schema that fails to load surfaces as a SchemaLoadError even
			// against an empty document; a ValidationError means it loaded.
			jsonPath := filepath.Join(t.TempDir(), "empty.json")
			require.NoError(t, os.WriteFile(jsonPath, []byte(`{}`), 0644))

			err := schemas.ValidateJSON(schemaFile, jsonPath)
			if err != nil {
				var loadErr *schemas.SchemaLoadError
				assert.NotErrorAs(t, err, &loadErr, "schema should load cleanly")
			}
		})
	}
}

func TestScreeningResultSchema_AcceptsCompleteArtifact(t *testing.T) {
	artifact := map[string]any{
		"run_id": "550e8400-e29b-41d4-a716-446655440000",
		"job_analysis": map[string]any{
			"word_count":                42,
			"character_count":           280,
			"skills":                    []string{"python"},
			"experience":                []string{"experience"},
			"education":                 []string{"degree"},
			"required_experience_years": 3,
			"key_phrases":               []string{},
		},
		"batch": map[string]any{
			"candidates": []any{
				map[string]any{
					"filename": "jane.pdf",
					"facts": map[string]any{
						"skills":              []string{"python"},
						"education":           []string{"bachelor of science"},
						"experience":          []string{"software engineer"},
						"contact":             map[string]any{"email": "jane@example.com"},
						"years_of_experience": 5,
					},
					"similarity_score": 0.87,
					"score_breakdown": map[string]any{
						"overall_similarity":    0.87,
						"skills_similarity":     0.8,
						"experience_similarity": 0.7,
						"education_similarity":  0.5,
						"weighted_score":        0.778,
					},
				},
			},
		},
		"errors": []any{
			map[string]any{"filename": "bad.txt", "reason": "unsupported document format"},
		},
		"warnings": []string{"no text extracted from empty.pdf"},
	}

	data, err := json.Marshal(artifact)
	require.NoError(t, err)

	jsonPath := filepath.Join(t.TempDir(), "result.json")
	require.NoError(t, os.WriteFile(jsonPath, data, 0644))

	assert.NoError(t, schemas.ValidateJSON("screening_result.schema.json", jsonPath))
}

func TestScreeningResultSchema_RejectsMissingRunID(t *testing.T) {
	artifact := map[string]any{
		"job_analysis": map[string]any{
			"word_count":      1,
			"character_count": 1,
			"skills":          []string{},
			"experience":      []string{},
			"education":       []string{},
			"key_phrases":     []string{},
		},
		"batch": map[string]any{"candidates": []any{}},
	}

	data, err := json.Marshal(artifact)
	require.NoError(t, err)

	jsonPath := filepath.Join(t.TempDir(), "result.json")
	require.NoError(t, os.WriteFile(jsonPath, data, 0644))

	err = schemas.ValidateJSON("screening_result.schema.json", jsonPath)
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestScreeningResultSchema_RejectsOutOfRangeScore(t *testing.T) {
	artifact := map[string]any{
		"run_id": "run-1",
		"job_analysis": map[string]any{
			"word_count":      1,
			"character_count": 1,
			"skills":          []string{},
			"experience":      []string{},
			"education":       []string{},
			"key_phrases":     []string{},
		},
		"batch": map[string]any{
			"candidates": []any{
				map[string]any{
					"filename": "jane.pdf",
					"facts": map[string]any{
						"skills":     []string{},
						"education":  []string{},
						"experience": []string{},
						"contact":    map[string]any{},
					},
					"similarity_score": 1.5,
					"score_breakdown": map[string]any{
						"overall_similarity":    1.5,
						"skills_similarity":     0,
						"experience_similarity": 0,
						"education_similarity":  0,
						"weighted_score":        0.6,
					},
				},
			},
		},
	}

	data, err := json.Marshal(artifact)
	require.NoError(t, err)

	jsonPath := filepath.Join(t.TempDir(), "result.json")
	require.NoError(t, os.WriteFile(jsonPath, data, 0644))

	assert.Error(t, schemas.ValidateJSON("screening_result.schema.json", jsonPath))
}
