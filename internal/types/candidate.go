package types

// CandidateResult is the screened outcome for one uploaded document.
type CandidateResult struct {
	Filename string         `json:"filename"`
	Facts    ExtractedFacts `json:"facts"`
	// SimilarityScore duplicates Score.Overall as a flat field for
	// persistence collaborators that store a single float.
	SimilarityScore float64          `json:"similarity_score"`
	Score           SimilarityResult `json:"score_breakdown"`
}

// RankedBatch is the ordered result of one screening run, sorted descending
// by overall similarity. Ties keep their original input order (stable sort).
type RankedBatch struct {
	Candidates []CandidateResult `json:"candidates"`
}

// DocumentError records a per-document failure that did not abort the batch.
type DocumentError struct {
	Filename string `json:"filename"`
	Reason   string `json:"reason"`
}

// ScreeningResult is the full output of a screening run: the job analysis,
// the ranked candidates, and the failures accumulated along the way. A run
// where every document failed has an empty batch and a non-empty Errors
// slice, which callers must report distinctly from "no matches".
type ScreeningResult struct {
	RunID    string          `json:"run_id"`
	Analysis JobAnalysis     `json:"job_analysis"`
	Batch    RankedBatch     `json:"batch"`
	Errors   []DocumentError `json:"errors,omitempty"`
	Warnings []string        `json:"warnings,omitempty"`
}

// MatchExplanation explains a single job/resume score for a human reader.
type MatchExplanation struct {
	OverallScore         float64          `json:"overall_score"`
	MatchingSkills       []string         `json:"matching_skills"`
	MissingSkills        []string         `json:"missing_skills"`
	SkillMatchPercentage float64          `json:"skill_match_percentage"`
	DetailedScores       SimilarityResult `json:"detailed_scores"`
	Recommendations      []string         `json:"recommendations"`
}
