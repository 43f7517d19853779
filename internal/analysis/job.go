// Package analysis derives aggregate statistics and requirement signals from
// a job description string.
package analysis

import (
	"context"
	"strconv"
	"strings"

	"github.com/jonathan/resume-screener/internal/catalog"
	"github.com/jonathan/resume-screener/internal/nlp"
	"github.com/jonathan/resume-screener/internal/types"
)

// maxKeyPhraseWords caps noun-chunk length in key-phrase extraction.
const maxKeyPhraseWords = 3

// Analyzer analyzes job descriptions. The annotator is optional; without it
// key phrases are empty and everything else still works.
type Analyzer struct {
	annotator nlp.Annotator
	warnf     func(format string, args ...any)
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithAnnotator attaches a linguistic annotator for key-phrase extraction.
func WithAnnotator(annotator nlp.Annotator) Option {
	return func(a *Analyzer) { a.annotator = annotator }
}

// WithWarnFunc sets the sink for degradation warnings.
func WithWarnFunc(warnf func(format string, args ...any)) Option {
	return func(a *Analyzer) { a.warnf = warnf }
}

// NewAnalyzer creates a job description analyzer.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AnalyzeJob extracts keyword signals, counts, the required experience
// years, and key phrases from a job description. One JobAnalysis is derived
// per screening run; the job text does not vary per candidate.
func (a *Analyzer) AnalyzeJob(ctx context.Context, jobText string) types.JobAnalysis {
	lower := strings.ToLower(jobText)

	analysis := types.JobAnalysis{
		WordCount:      len(strings.Fields(jobText)),
		CharacterCount: len(jobText),
		Skills:         catalog.SetToSorted(catalog.SkillSet(lower)),
		Experience:     catalog.SetToSorted(catalog.KeywordHits(lower, catalog.MatchExperienceKeywords)),
		Education:      catalog.SetToSorted(catalog.KeywordHits(lower, catalog.MatchEducationKeywords)),
		KeyPhrases:     a.extractKeyPhrases(ctx, jobText),
	}

	if match := catalog.RequiredYearsPattern.FindStringSubmatch(jobText); match != nil {
		if years, err := strconv.Atoi(match[1]); err == nil {
			analysis.RequiredExperienceYears = &years
		}
	}

	return analysis
}

// extractKeyPhrases collects short noun chunks and named entities. It
// degrades to an empty list when the annotator is missing or fails.
func (a *Analyzer) extractKeyPhrases(ctx context.Context, jobText string) []string {
	if a.annotator == nil {
		return []string{}
	}

	phrases := make(map[string]bool)

	chunks, err := a.annotator.NounChunks(ctx, jobText)
	if err != nil {
		a.warn("noun chunk extraction degraded, continuing without it: %v", err)
	}
	for _, chunk := range chunks {
		if len(strings.Fields(chunk)) <= maxKeyPhraseWords {
			phrases[strings.ToLower(chunk)] = true
		}
	}

	entities, err := a.annotator.Entities(ctx, jobText)
	if err != nil {
		a.warn("entity extraction degraded, continuing without it: %v", err)
	}
	for _, ent := range entities {
		if ent.Label == nlp.LabelOrganization || ent.Label == nlp.LabelProduct {
			phrases[strings.ToLower(ent.Text)] = true
		}
	}

	return catalog.SetToSorted(phrases)
}

func (a *Analyzer) warn(format string, args ...any) {
	if a.warnf != nil {
		a.warnf(format, args...)
	}
}
