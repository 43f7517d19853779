// Package parsing extracts structured facts (skills, education, experience,
// contact data, years of experience) from plain resume text using the fixed
// catalogues in internal/catalog.
package parsing

import (
	"context"
	"strconv"
	"strings"
	"unicode"

	"github.com/jonathan/resume-screener/internal/catalog"
	"github.com/jonathan/resume-screener/internal/nlp"
	"github.com/jonathan/resume-screener/internal/types"
)

// minExperienceSentenceLen filters out trivially short sentences during
// experience extraction.
const minExperienceSentenceLen = 10

// Extractor extracts structured facts from resume text. The annotator is
// optional: when nil or failing, entity-derived skill candidates are simply
// absent and extraction proceeds on the catalogues alone.
type Extractor struct {
	annotator nlp.Annotator
	warnf     func(format string, args ...any)
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithAnnotator attaches a linguistic annotator for entity-derived skills.
func WithAnnotator(annotator nlp.Annotator) Option {
	return func(e *Extractor) { e.annotator = annotator }
}

// WithWarnFunc sets the sink for degradation warnings.
func WithWarnFunc(warnf func(format string, args ...any)) Option {
	return func(e *Extractor) { e.warnf = warnf }
}

// NewExtractor creates a field extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractInformation extracts all structured facts from resume text.
// It is deterministic for a given annotator and never fails: a missing or
// erroring annotator degrades to catalogue-only results.
func (e *Extractor) ExtractInformation(ctx context.Context, text string) types.ExtractedFacts {
	lower := strings.ToLower(text)

	return types.ExtractedFacts{
		Skills:            e.extractSkills(ctx, lower),
		Education:         extractEducation(lower),
		Experience:        extractExperience(lower),
		Contact:           extractContact(text),
		YearsOfExperience: extractYearsOfExperience(lower),
	}
}

// extractSkills matches the skill catalogue against lower-cased text and
// merges in entity-derived candidates, then cleans, deduplicates, and caps.
func (e *Extractor) extractSkills(ctx context.Context, lower string) []string {
	var candidates []string
	for _, pattern := range catalog.ResumeSkillPatterns {
		for _, match := range pattern.FindAllString(lower, -1) {
			candidates = append(candidates, strings.ToLower(match))
		}
	}

	if e.annotator != nil {
		entities, err := e.annotator.Entities(ctx, lower)
		if err != nil {
			e.warn("entity extraction degraded, continuing without it: %v", err)
		}
		for _, ent := range entities {
			if ent.Label == nlp.LabelOrganization || ent.Label == nlp.LabelProduct {
				candidates = append(candidates, strings.ToLower(ent.Text))
			}
		}
	}

	skills := make([]string, 0, len(candidates))
	seen := make(map[string]bool)
	for _, candidate := range candidates {
		skill := strings.TrimSpace(candidate)
		if !keepSkill(skill) || seen[skill] {
			continue
		}
		seen[skill] = true
		skills = append(skills, skill)
		if len(skills) == types.MaxSkills {
			break
		}
	}

	return skills
}

// keepSkill implements the skill-cleaning rule literally, precedence
// included: a token passes if it is alphabetic and longer than one
// character, or if it contains '.', '+', or '#' at all. The second clause is
// deliberately not guarded by the length check.
func keepSkill(skill string) bool {
	return (len(skill) > 1 && isAlpha(skill)) || strings.ContainsAny(skill, ".+#")
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// extractEducation collects sentences mentioning education keywords plus
// direct degree-pattern matches.
func extractEducation(lower string) []string {
	var candidates []string
	sentences := strings.Split(lower, ".")

	for _, keyword := range catalog.EducationKeywords {
		if !strings.Contains(lower, keyword) {
			continue
		}
		for _, sentence := range sentences {
			if strings.Contains(sentence, keyword) {
				candidates = append(candidates, strings.TrimSpace(sentence))
			}
		}
	}

	for _, pattern := range catalog.DegreePatterns {
		candidates = append(candidates, pattern.FindAllString(lower, -1)...)
	}

	return dedupeCapped(candidates, types.MaxEducation)
}

// extractExperience collects sentences mentioning experience keywords
// (skipping sentences of 10 characters or fewer) plus job-title matches.
func extractExperience(lower string) []string {
	var candidates []string
	sentences := strings.Split(lower, ".")

	for _, keyword := range catalog.ExperienceKeywords {
		if !strings.Contains(lower, keyword) {
			continue
		}
		for _, sentence := range sentences {
			trimmed := strings.TrimSpace(sentence)
			if strings.Contains(sentence, keyword) && len(trimmed) > minExperienceSentenceLen {
				candidates = append(candidates, trimmed)
			}
		}
	}

	for _, pattern := range catalog.JobTitlePatterns {
		candidates = append(candidates, pattern.FindAllString(lower, -1)...)
	}

	return dedupeCapped(candidates, types.MaxExperience)
}

// extractContact runs the contact patterns against the original-case text.
// Only the first match per field is kept.
func extractContact(text string) types.ContactInfo {
	return types.ContactInfo{
		Email:    catalog.EmailPattern.FindString(text),
		Phone:    catalog.PhonePattern.FindString(text),
		LinkedIn: catalog.LinkedInPattern.FindString(text),
		GitHub:   catalog.GitHubPattern.FindString(text),
	}
}

// extractYearsOfExperience tries the years patterns in order and returns the
// first successfully parsed integer, or nil when nothing matches.
func extractYearsOfExperience(lower string) *int {
	for _, pattern := range catalog.YearsOfExperiencePatterns {
		match := pattern.FindStringSubmatch(lower)
		if match == nil {
			continue
		}
		years, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		return &years
	}
	return nil
}

func dedupeCapped(values []string, limit int) []string {
	result := make([]string, 0, limit)
	seen := make(map[string]bool)
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		result = append(result, v)
		if len(result) == limit {
			break
		}
	}
	return result
}

func (e *Extractor) warn(format string, args ...any) {
	if e.warnf != nil {
		e.warnf(format, args...)
	}
}
