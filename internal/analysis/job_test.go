package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/nlp"
)

type stubAnnotator struct {
	entities []nlp.Entity
	chunks   []string
	err      error
}

func (s *stubAnnotator) Entities(_ context.Context, _ string) ([]nlp.Entity, error) {
	return s.entities, s.err
}

func (s *stubAnnotator) NounChunks(_ context.Context, _ string) ([]string, error) {
	return s.chunks, s.err
}

const sampleJob = "Bachelor's degree in Computer Science required. 3+ years of experience in Python and React."

func TestAnalyzeJob_Counts(t *testing.T) {
	analysis := NewAnalyzer().AnalyzeJob(context.Background(), sampleJob)

	assert.Equal(t, 14, analysis.WordCount)
	assert.Equal(t, len(sampleJob), analysis.CharacterCount)
}

func TestAnalyzeJob_Skills(t *testing.T) {
	analysis := NewAnalyzer().AnalyzeJob(context.Background(), sampleJob)

	assert.Contains(t, analysis.Skills, "python")
	assert.Contains(t, analysis.Skills, "react")
	assert.IsIncreasing(t, analysis.Skills)
}

func TestAnalyzeJob_ExperienceAndEducationSignals(t *testing.T) {
	analysis := NewAnalyzer().AnalyzeJob(context.Background(), sampleJob)

	assert.Contains(t, analysis.Experience, "experience")
	assert.Contains(t, analysis.Experience, "years")
	assert.Contains(t, analysis.Education, "bachelor")
	assert.Contains(t, analysis.Education, "degree")
	assert.Contains(t, analysis.Education, "computer science")
}

func TestAnalyzeJob_RequiredYears(t *testing.T) {
	analysis := NewAnalyzer().AnalyzeJob(context.Background(), sampleJob)

	require.NotNil(t, analysis.RequiredExperienceYears)
	assert.Equal(t, 3, *analysis.RequiredExperienceYears)
}

func TestAnalyzeJob_NoRequiredYears(t *testing.T) {
	analysis := NewAnalyzer().AnalyzeJob(context.Background(), "Looking for a Python developer.")
	assert.Nil(t, analysis.RequiredExperienceYears)
}

func TestAnalyzeJob_KeyPhrasesWithoutAnnotator(t *testing.T) {
	analysis := NewAnalyzer().AnalyzeJob(context.Background(), sampleJob)

	require.NotNil(t, analysis.KeyPhrases)
	assert.Empty(t, analysis.KeyPhrases)
}

func TestAnalyzeJob_KeyPhrases(t *testing.T) {
	annotator := &stubAnnotator{
		chunks: []string{"distributed systems", "Machine Learning", "a very long noun phrase"},
		entities: []nlp.Entity{
			{Text: "Kubernetes", Label: nlp.LabelProduct},
			{Text: "Jane", Label: "PERSON"},
		},
	}

	analysis := NewAnalyzer(WithAnnotator(annotator)).AnalyzeJob(context.Background(), sampleJob)

	assert.Contains(t, analysis.KeyPhrases, "distributed systems")
	assert.Contains(t, analysis.KeyPhrases, "machine learning")
	assert.Contains(t, analysis.KeyPhrases, "kubernetes")
	assert.NotContains(t, analysis.KeyPhrases, "a very long noun phrase")
	assert.NotContains(t, analysis.KeyPhrases, "jane")
}

func TestAnalyzeJob_AnnotatorFailureDegrades(t *testing.T) {
	var warnings int
	analyzer := NewAnalyzer(
		WithAnnotator(&stubAnnotator{err: errors.New("model unavailable")}),
		WithWarnFunc(func(string, ...any) { warnings++ }),
	)

	analysis := analyzer.AnalyzeJob(context.Background(), sampleJob)

	assert.Positive(t, warnings)
	assert.Empty(t, analysis.KeyPhrases)
	assert.Contains(t, analysis.Skills, "python")
}
