package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillSet_KeywordsAndPatterns(t *testing.T) {
	skills := SkillSet("we use python and react, deployed with docker on aws")

	assert.True(t, skills["python"])
	assert.True(t, skills["react"])
	assert.True(t, skills["docker"])
	assert.True(t, skills["aws"])
	assert.False(t, skills["kubernetes"])
}

func TestSkillSet_SubstringContainment(t *testing.T) {
	// "javascript" contains "java" as a substring, so keyword matching
	// reports both; only the regex side is word-bounded.
	skills := SkillSet("javascript developer")

	assert.True(t, skills["javascript"])
	assert.True(t, skills["java"])
}

func TestSkillSet_Empty(t *testing.T) {
	assert.Empty(t, SkillSet("gardening and carpentry"))
}

func TestKeywordHits(t *testing.T) {
	hits := KeywordHits("5 years of experience building systems", MatchExperienceKeywords)

	assert.True(t, hits["years"])
	assert.True(t, hits["experience"])
	assert.False(t, hits["managed"])
}

func TestSetToSorted(t *testing.T) {
	sorted := SetToSorted(map[string]bool{"python": true, "aws": true, "react": true})
	assert.Equal(t, []string{"aws", "python", "react"}, sorted)
}

func TestSetToSorted_Empty(t *testing.T) {
	sorted := SetToSorted(map[string]bool{})
	require.NotNil(t, sorted)
	assert.Empty(t, sorted)
}

func TestYearsOfExperiencePatterns_Variants(t *testing.T) {
	cases := []struct {
		text  string
		years string
	}{
		{"5 years of experience", "5"},
		{"3+ years experience", "3"},
		{"experience of 7 years", "7"},
		{"10 yrs exp", "10"},
		{"exp of 2 yrs", "2"},
	}

	for _, tc := range cases {
		matched := false
		for _, pattern := range YearsOfExperiencePatterns {
			if m := pattern.FindStringSubmatch(tc.text); m != nil {
				assert.Equal(t, tc.years, m[1], "text: %s", tc.text)
				matched = true
				break
			}
		}
		assert.True(t, matched, "no pattern matched %q", tc.text)
	}
}

func TestRequiredYearsPattern(t *testing.T) {
	m := RequiredYearsPattern.FindStringSubmatch("Requires 3+ years of experience with Go.")
	require.NotNil(t, m)
	assert.Equal(t, "3", m[1])

	assert.Nil(t, RequiredYearsPattern.FindStringSubmatch("No requirement stated."))
}

func TestContactPatterns(t *testing.T) {
	text := "Jane Doe — jane.doe@example.com, (555) 123-4567, linkedin.com/in/janedoe, github.com/janedoe"

	assert.Equal(t, "jane.doe@example.com", EmailPattern.FindString(text))
	assert.Equal(t, "(555) 123-4567", PhonePattern.FindString(text))
	assert.Equal(t, "linkedin.com/in/janedoe", LinkedInPattern.FindString(text))
	assert.Equal(t, "github.com/janedoe", GitHubPattern.FindString(text))
}

func TestDegreePatterns_MatchAbbreviations(t *testing.T) {
	text := "b.tech in computer science, later an mba"

	matched := 0
	for _, pattern := range DegreePatterns {
		if pattern.MatchString(text) {
			matched++
		}
	}
	assert.GreaterOrEqual(t, matched, 2)
}

func TestJobTitlePatterns(t *testing.T) {
	text := "worked as a software engineer and later senior developer"

	var matches []string
	for _, pattern := range JobTitlePatterns {
		matches = append(matches, pattern.FindAllString(text, -1)...)
	}
	assert.Contains(t, matches, "software engineer")
	assert.Contains(t, matches, "senior developer")
}

func TestTokenNormalizations_Order(t *testing.T) {
	require.NotEmpty(t, TokenNormalizations)
	assert.Equal(t, "c++", TokenNormalizations[0].From)
	assert.Equal(t, "cpp", TokenNormalizations[0].To)
}
