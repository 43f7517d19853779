package types

// Weights for combining similarity signals into a single score.
// Weighted = 0.4*Overall + 0.3*Skills + 0.2*Experience + 0.1*Education,
// with every term clamped to [0,1] before combination.
const (
	OverallWeight    = 0.4
	SkillsWeight     = 0.3
	ExperienceWeight = 0.2
	EducationWeight  = 0.1
)

// SimilarityResult holds the per-signal similarity scores between one job
// description and one resume. Every field lies in [0,1].
type SimilarityResult struct {
	Overall    float64 `json:"overall_similarity"`
	Skills     float64 `json:"skills_similarity"`
	Experience float64 `json:"experience_similarity"`
	Education  float64 `json:"education_similarity"`
	Weighted   float64 `json:"weighted_score"`
}

// Clamp01 clamps v to the [0,1] range.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Combine clamps each signal and recomputes the weighted score, returning a
// result that satisfies the weighted-combination invariant.
func Combine(overall, skills, experience, education float64) SimilarityResult {
	overall = Clamp01(overall)
	skills = Clamp01(skills)
	experience = Clamp01(experience)
	education = Clamp01(education)

	return SimilarityResult{
		Overall:    overall,
		Skills:     skills,
		Experience: experience,
		Education:  education,
		Weighted: overall*OverallWeight +
			skills*SkillsWeight +
			experience*ExperienceWeight +
			education*EducationWeight,
	}
}
