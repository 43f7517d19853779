package matching

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/types"
)

// stubEmbedder returns a fixed vector per input, or a fixed error.
type stubEmbedder struct {
	vectors map[string][]float32
	fixed   []float32
	err     error
}

func (s *stubEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if s.err != nil {
		return nil, s.err
	}
	if vec, ok := s.vectors[text]; ok {
		return vec, nil
	}
	return s.fixed, nil
}

func TestSimilarity_IdenticalEmbeddings(t *testing.T) {
	matcher := NewMatcher(&stubEmbedder{fixed: []float32{0.5, 0.5}})

	score := matcher.Similarity(context.Background(), "python developer", "python engineer")
	assert.InDelta(t, 1.0, score, 1e-6)
}

func TestSimilarity_UsesPreprocessedText(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float32{
		"cpp developer": {1, 0},
		"java engineer": {0, 1},
	}}
	matcher := NewMatcher(embedder)

	// "C++ Developer" reaches the embedder as "cpp developer".
	score := matcher.Similarity(context.Background(), "C++ Developer", "Java Engineer")
	assert.InDelta(t, 0.0, score, 1e-6)
}

func TestSimilarity_EmbeddingFailureDegradesToZero(t *testing.T) {
	var warned bool
	matcher := NewMatcher(
		&stubEmbedder{err: errors.New("quota exceeded")},
		WithWarnFunc(func(string, ...any) { warned = true }),
	)

	score := matcher.Similarity(context.Background(), "job", "resume")
	assert.Equal(t, 0.0, score)
	assert.True(t, warned)
}

func TestSimilarity_NegativeCosineClamped(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float32{
		"job":    {1, 0},
		"resume": {-1, 0},
	}}
	matcher := NewMatcher(embedder)

	score := matcher.Similarity(context.Background(), "job", "resume")
	assert.Equal(t, 0.0, score)
}

func TestWeightedSimilarity_IdenticalTexts(t *testing.T) {
	matcher := NewMatcher(&stubEmbedder{fixed: []float32{1, 1}})
	text := "python react degree bachelor 3 years of experience"

	result := matcher.WeightedSimilarity(context.Background(), text, text)

	assert.InDelta(t, 1.0, result.Overall, 1e-6)
	assert.InDelta(t, 1.0, result.Skills, 1e-6)
	assert.InDelta(t, 1.0, result.Experience, 1e-6)
	assert.InDelta(t, 1.0, result.Education, 1e-6)
	assert.InDelta(t, 1.0, result.Weighted, 1e-6)
}

func TestWeightedSimilarity_Invariant(t *testing.T) {
	matcher := NewMatcher(&stubEmbedder{fixed: []float32{1, 1}})

	result := matcher.WeightedSimilarity(context.Background(),
		"python react required, 3 years of experience, bachelor degree",
		"python developer")

	expected := result.Overall*types.OverallWeight +
		result.Skills*types.SkillsWeight +
		result.Experience*types.ExperienceWeight +
		result.Education*types.EducationWeight
	assert.InDelta(t, expected, result.Weighted, 1e-9)
}

func TestWeightedSimilarity_EmbeddingFailureKeepsKeywordSignals(t *testing.T) {
	matcher := NewMatcher(&stubEmbedder{err: errors.New("down")})

	result := matcher.WeightedSimilarity(context.Background(),
		"python developer with experience", "python developer with experience")

	assert.Equal(t, 0.0, result.Overall)
	assert.InDelta(t, 1.0, result.Skills, 1e-6)
	assert.InDelta(t, 1.0, result.Experience, 1e-6)
}

func TestSkillsSimilarity_Jaccard(t *testing.T) {
	// Job: {python, react}; resume: {python} -> 1/2.
	score := skillsSimilarity("python and react", "python only")
	assert.InDelta(t, 0.5, score, 1e-9)
}

func TestSkillsSimilarity_NoJobSkills(t *testing.T) {
	assert.Equal(t, 0.0, skillsSimilarity("gardening role", "python developer"))
}

func TestSkillsSimilarity_SetAlgebraSymmetric(t *testing.T) {
	a := "python react aws"
	b := "python docker"
	assert.InDelta(t, skillsSimilarity(a, b), skillsSimilarity(b, a), 1e-9)
}

func TestExperienceSimilarity(t *testing.T) {
	// Job hits: {experience, years}; resume has both.
	score := experienceSimilarity("5 years of experience", "10 years of experience")
	assert.InDelta(t, 1.0, score, 1e-9)

	// Resume covers half the job hits.
	score = experienceSimilarity("years of experience", "many years")
	assert.InDelta(t, 0.5, score, 1e-9)
}

func TestExperienceSimilarity_NoJobHits(t *testing.T) {
	assert.Equal(t, 0.0, experienceSimilarity("friendly team", "experience"))
}

func TestEducationSimilarity_NeutralWhenJobSilent(t *testing.T) {
	score := educationSimilarity("python developer wanted", "bachelor degree holder")
	assert.Equal(t, neutralEducationScore, score)
}

func TestEducationSimilarity_Overlap(t *testing.T) {
	// Job hits: {bachelor, degree}; resume hits both.
	score := educationSimilarity("bachelor degree required", "bachelor degree in cs")
	assert.InDelta(t, 1.0, score, 1e-9)

	score = educationSimilarity("bachelor degree required", "no formal schooling")
	assert.Equal(t, 0.0, score)
}

func TestSkillSets(t *testing.T) {
	matcher := NewMatcher(&stubEmbedder{fixed: []float32{1}})

	job, resume := matcher.SkillSets("Python and React", "Python only")
	assert.True(t, job["python"])
	assert.True(t, job["react"])
	assert.True(t, resume["python"])
	assert.False(t, resume["react"])
}

func TestNewMatcher_NilWarnFuncSafe(t *testing.T) {
	matcher := NewMatcher(&stubEmbedder{err: errors.New("down")})
	require.NotPanics(t, func() {
		matcher.Similarity(context.Background(), "a", "b")
	})
}
