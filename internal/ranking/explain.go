package ranking

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/matching"
	"github.com/jonathan/resume-screener/internal/types"
)

// Thresholds driving improvement recommendations.
const (
	lowSignalThreshold  = 0.5
	lowOverallThreshold = 0.6
	maxSuggestedSkills  = 5
)

// Explain computes the weighted score for one job/resume pair along with the
// skill overlap breakdown and human-readable improvement suggestions.
func Explain(ctx context.Context, matcher *matching.Matcher, jobText, resumeText string) types.MatchExplanation {
	scores := matcher.WeightedSimilarity(ctx, jobText, resumeText)
	jobSkills, resumeSkills := matcher.SkillSets(jobText, resumeText)

	matchingSkills := []string{}
	missingSkills := []string{}
	for skill := range jobSkills {
		if resumeSkills[skill] {
			matchingSkills = append(matchingSkills, skill)
		} else {
			missingSkills = append(missingSkills, skill)
		}
	}
	sort.Strings(matchingSkills)
	sort.Strings(missingSkills)

	matchPercentage := 0.0
	if len(jobSkills) > 0 {
		matchPercentage = float64(len(matchingSkills)) / float64(len(jobSkills))
	}

	return types.MatchExplanation{
		OverallScore:         scores.Weighted,
		MatchingSkills:       matchingSkills,
		MissingSkills:        missingSkills,
		SkillMatchPercentage: matchPercentage,
		DetailedScores:       scores,
		Recommendations:      recommendations(missingSkills, scores),
	}
}

// recommendations generates fixed-threshold improvement suggestions.
func recommendations(missingSkills []string, scores types.SimilarityResult) []string {
	recs := []string{}

	if len(missingSkills) > 0 {
		suggested := missingSkills
		if len(suggested) > maxSuggestedSkills {
			suggested = suggested[:maxSuggestedSkills]
		}
		recs = append(recs, fmt.Sprintf("Consider highlighting these skills: %s", strings.Join(suggested, ", ")))
	}
	if scores.Experience < lowSignalThreshold {
		recs = append(recs, "Emphasize relevant work experience and achievements")
	}
	if scores.Education < lowSignalThreshold {
		recs = append(recs, "Highlight relevant educational background and certifications")
	}
	if scores.Overall < lowOverallThreshold {
		recs = append(recs, "Consider tailoring the resume to better match the job requirements")
	}

	return recs
}
