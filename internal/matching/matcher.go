package matching

import (
	"context"
	"strings"

	"github.com/jonathan/resume-screener/internal/catalog"
	"github.com/jonathan/resume-screener/internal/embedding"
	"github.com/jonathan/resume-screener/internal/types"
)

// neutralEducationScore is returned when the job states no education
// requirement: absence of a requirement must not penalize a candidate.
const neutralEducationScore = 0.5

// Matcher scores resumes against job descriptions. Construct it with the
// embedding model injected so tests can substitute a deterministic stub.
type Matcher struct {
	embedder embedding.Embedder
	warnf    func(format string, args ...any)
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithWarnFunc sets the sink for degradation warnings.
func WithWarnFunc(warnf func(format string, args ...any)) Option {
	return func(m *Matcher) { m.warnf = warnf }
}

// NewMatcher creates a Matcher backed by the given embedder.
func NewMatcher(embedder embedding.Embedder, opts ...Option) *Matcher {
	m := &Matcher{embedder: embedder}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Similarity returns the semantic similarity between a job description and a
// resume as cosine similarity over independent embeddings, clamped to [0,1].
// Any embedding failure degrades to 0.0 instead of propagating, so a single
// bad document cannot abort a batch.
func (m *Matcher) Similarity(ctx context.Context, jobText, resumeText string) float64 {
	jobClean := PreprocessText(jobText)
	resumeClean := PreprocessText(resumeText)

	jobVec, err := m.embedder.Embed(ctx, jobClean)
	if err != nil {
		m.warn("job embedding failed, scoring 0.0: %v", err)
		return 0.0
	}
	resumeVec, err := m.embedder.Embed(ctx, resumeClean)
	if err != nil {
		m.warn("resume embedding failed, scoring 0.0: %v", err)
		return 0.0
	}

	return types.Clamp01(embedding.CosineSimilarity(jobVec, resumeVec))
}

// WeightedSimilarity combines the semantic score with the three
// keyword-overlap signals using the fixed 0.4/0.3/0.2/0.1 weights. Each
// signal is clamped to [0,1] before combination. A failed semantic
// computation has already degraded to 0.0; the keyword signals cannot fail.
func (m *Matcher) WeightedSimilarity(ctx context.Context, jobText, resumeText string) types.SimilarityResult {
	overall := m.Similarity(ctx, jobText, resumeText)

	jobLower := strings.ToLower(jobText)
	resumeLower := strings.ToLower(resumeText)

	return types.Combine(
		overall,
		skillsSimilarity(jobLower, resumeLower),
		experienceSimilarity(jobLower, resumeLower),
		educationSimilarity(jobLower, resumeLower),
	)
}

// SkillSets returns the catalogue skill sets of the job and the resume, for
// explanation output.
func (m *Matcher) SkillSets(jobText, resumeText string) (job, resume map[string]bool) {
	return catalog.SkillSet(strings.ToLower(jobText)), catalog.SkillSet(strings.ToLower(resumeText))
}

// skillsSimilarity is the Jaccard index over the two skill sets, with 0.0
// when the job lists no catalogue skills. The set algebra itself is
// symmetric; only the job-emptiness check is not.
func skillsSimilarity(jobLower, resumeLower string) float64 {
	jobSkills := catalog.SkillSet(jobLower)
	if len(jobSkills) == 0 {
		return 0.0
	}
	resumeSkills := catalog.SkillSet(resumeLower)

	intersection := intersectionSize(jobSkills, resumeSkills)
	union := len(jobSkills) + len(resumeSkills) - intersection
	if union == 0 {
		return 0.0
	}

	return float64(intersection) / float64(union)
}

// experienceSimilarity is the fraction of the job's experience keywords also
// present in the resume; 0.0 when the job has none.
func experienceSimilarity(jobLower, resumeLower string) float64 {
	jobHits := catalog.KeywordHits(jobLower, catalog.MatchExperienceKeywords)
	if len(jobHits) == 0 {
		return 0.0
	}
	resumeHits := catalog.KeywordHits(resumeLower, catalog.MatchExperienceKeywords)

	return float64(intersectionSize(jobHits, resumeHits)) / float64(len(jobHits))
}

// educationSimilarity mirrors experienceSimilarity but returns the neutral
// 0.5 when the job states no education keywords at all.
func educationSimilarity(jobLower, resumeLower string) float64 {
	jobHits := catalog.KeywordHits(jobLower, catalog.MatchEducationKeywords)
	if len(jobHits) == 0 {
		return neutralEducationScore
	}
	resumeHits := catalog.KeywordHits(resumeLower, catalog.MatchEducationKeywords)

	return float64(intersectionSize(jobHits, resumeHits)) / float64(len(jobHits))
}

func intersectionSize(a, b map[string]bool) int {
	count := 0
	for v := range a {
		if b[v] {
			count++
		}
	}
	return count
}

func (m *Matcher) warn(format string, args ...any) {
	if m.warnf != nil {
		m.warnf(format, args...)
	}
}
