package parsing

import (
	"context"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// topSkillsCount is the number of skills surfaced in a summary.
const topSkillsCount = 5

// Summarize produces an aggregate view of a resume: counts over the raw text
// plus the extracted facts.
func (e *Extractor) Summarize(ctx context.Context, text string) types.ResumeSummary {
	facts := e.ExtractInformation(ctx, text)

	topSkills := facts.Skills
	if len(topSkills) > topSkillsCount {
		topSkills = topSkills[:topSkillsCount]
	}

	return types.ResumeSummary{
		WordCount:         len(strings.Fields(text)),
		CharacterCount:    len(text),
		SkillsCount:       len(facts.Skills),
		EducationCount:    len(facts.Education),
		ExperienceCount:   len(facts.Experience),
		HasContactInfo:    !facts.Contact.IsEmpty(),
		YearsOfExperience: facts.YearsOfExperience,
		TopSkills:         topSkills,
		Facts:             facts,
	}
}
