// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Caps on extracted collections. Extraction keeps the first N unique values.
const (
	MaxSkills     = 20
	MaxEducation  = 10
	MaxExperience = 15
)

// ContactInfo holds contact details extracted from a resume.
// Every field is optional; an empty string means the field was not found.
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// IsEmpty reports whether no contact field was extracted.
func (c ContactInfo) IsEmpty() bool {
	return c.Email == "" && c.Phone == "" && c.LinkedIn == "" && c.GitHub == ""
}

// ExtractedFacts is the structured information pulled from a single resume.
// It is a value object: built once by parsing.ExtractInformation and never
// mutated afterwards. Skills, Education and Experience are deduplicated and
// order-irrelevant; they serialize as JSON arrays of strings.
type ExtractedFacts struct {
	Skills     []string    `json:"skills"`
	Education  []string    `json:"education"`
	Experience []string    `json:"experience"`
	Contact    ContactInfo `json:"contact"`
	// YearsOfExperience is nil when no years pattern matched.
	YearsOfExperience *int `json:"years_of_experience,omitempty"`
}

// ResumeSummary aggregates counts over a resume text and its extracted facts.
type ResumeSummary struct {
	WordCount         int            `json:"word_count"`
	CharacterCount    int            `json:"character_count"`
	SkillsCount       int            `json:"skills_count"`
	EducationCount    int            `json:"education_count"`
	ExperienceCount   int            `json:"experience_count"`
	HasContactInfo    bool           `json:"has_contact_info"`
	YearsOfExperience *int           `json:"years_of_experience,omitempty"`
	TopSkills         []string       `json:"top_skills"`
	Facts             ExtractedFacts `json:"extracted_info"`
}
