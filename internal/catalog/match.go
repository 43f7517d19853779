package catalog

import (
	"sort"
	"strings"
)

// SkillSet returns the set of catalogue skills present in lower-cased text:
// substring hits from SkillKeywords plus MatchSkillPatterns regex matches.
func SkillSet(lower string) map[string]bool {
	skills := make(map[string]bool)
	for _, keyword := range SkillKeywords {
		if strings.Contains(lower, keyword) {
			skills[keyword] = true
		}
	}
	for _, pattern := range MatchSkillPatterns {
		for _, match := range pattern.FindAllString(lower, -1) {
			skills[strings.ToLower(match)] = true
		}
	}
	return skills
}

// KeywordHits returns the subset of keywords present in lower-cased text.
func KeywordHits(lower string, keywords []string) map[string]bool {
	hits := make(map[string]bool)
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			hits[keyword] = true
		}
	}
	return hits
}

// SetToSorted converts a string set to a sorted slice for stable output.
func SetToSorted(set map[string]bool) []string {
	result := make([]string, 0, len(set))
	for v := range set {
		result = append(result, v)
	}
	sort.Strings(result)
	return result
}
