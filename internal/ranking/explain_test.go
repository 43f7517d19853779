package ranking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/matching"
	"github.com/jonathan/resume-screener/internal/types"
)

type failingEmbedder struct{}

func (failingEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	return nil, errors.New("embedding unavailable")
}

func TestExplain_SkillOverlap(t *testing.T) {
	matcher := matching.NewMatcher(&stubEmbedder{fixed: []float32{1, 1}})

	explanation := Explain(context.Background(), matcher,
		"python and react, bachelor degree, 3 years of experience",
		"python developer, bachelor degree, 5 years of experience")

	assert.Contains(t, explanation.MatchingSkills, "python")
	assert.Contains(t, explanation.MissingSkills, "react")
	assert.InDelta(t, 0.5, explanation.SkillMatchPercentage, 1e-9)
}

func TestExplain_StrongMatchFewRecommendations(t *testing.T) {
	matcher := matching.NewMatcher(&stubEmbedder{fixed: []float32{1, 1}})
	text := "python react bachelor degree 3 years of experience"

	explanation := Explain(context.Background(), matcher, text, text)

	assert.Empty(t, explanation.MissingSkills)
	assert.InDelta(t, 1.0, explanation.SkillMatchPercentage, 1e-9)
	assert.Empty(t, explanation.Recommendations)
}

func TestExplain_WeakMatchRecommendations(t *testing.T) {
	matcher := matching.NewMatcher(failingEmbedder{})

	explanation := Explain(context.Background(), matcher,
		"python react bachelor degree years of experience",
		"pastry chef")

	// Missing skills, weak experience, weak education, weak overall: one
	// recommendation per condition.
	require.Len(t, explanation.Recommendations, 4)
	assert.Contains(t, explanation.Recommendations[0], "python")
	assert.Contains(t, explanation.Recommendations[1], "experience")
	assert.Contains(t, explanation.Recommendations[2], "education")
}

func TestExplain_NoJobSkills(t *testing.T) {
	matcher := matching.NewMatcher(&stubEmbedder{fixed: []float32{1, 1}})

	explanation := Explain(context.Background(), matcher, "friendly team player wanted", "python developer")

	assert.Empty(t, explanation.MatchingSkills)
	assert.Empty(t, explanation.MissingSkills)
	assert.Equal(t, 0.0, explanation.SkillMatchPercentage)
}

func TestExplain_SlicesNeverNil(t *testing.T) {
	matcher := matching.NewMatcher(&stubEmbedder{fixed: []float32{1, 1}})

	explanation := Explain(context.Background(), matcher, "anything", "anything")

	assert.NotNil(t, explanation.MatchingSkills)
	assert.NotNil(t, explanation.MissingSkills)
	assert.NotNil(t, explanation.Recommendations)
}

func TestRecommendations_SuggestedSkillsCapped(t *testing.T) {
	missing := []string{"a", "b", "c", "d", "e", "f", "g"}
	strong := types.SimilarityResult{Overall: 1, Skills: 1, Experience: 1, Education: 1, Weighted: 1}

	recs := recommendations(missing, strong)

	require.NotEmpty(t, recs)
	assert.Contains(t, recs[0], "a, b, c, d, e")
	assert.NotContains(t, recs[0], "f")
}
