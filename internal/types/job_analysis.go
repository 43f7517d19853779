package types

// JobAnalysis is the aggregate view of a job description. One instance is
// derived per screening run; the job text does not change per candidate.
type JobAnalysis struct {
	WordCount      int      `json:"word_count"`
	CharacterCount int      `json:"character_count"`
	Skills         []string `json:"skills"`
	Experience     []string `json:"experience"`
	Education      []string `json:"education"`
	// RequiredExperienceYears is nil when the description states no
	// "<N>+ years of experience" requirement.
	RequiredExperienceYears *int `json:"required_experience_years,omitempty"`
	// KeyPhrases come from the linguistic annotator and are empty when the
	// annotator is unavailable.
	KeyPhrases []string `json:"key_phrases"`
}
