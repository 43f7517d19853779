// Package report formats screening results for export: score strings,
// match categories, the tabular CSV report, and batch statistics.
package report

import (
	"fmt"
	"strings"
)

// Category thresholds for similarity scores.
const (
	excellentThreshold = 0.8
	goodThreshold      = 0.6
	fairThreshold      = 0.4
)

// FormatScore renders a [0,1] similarity score as a percentage string with
// one decimal place, e.g. 0.873 -> "87.3%".
func FormatScore(score float64) string {
	return fmt.Sprintf("%.1f%%", score*100)
}

// ScoreCategory maps a similarity score to its match category.
func ScoreCategory(score float64) string {
	switch {
	case score >= excellentThreshold:
		return "Excellent Match"
	case score >= goodThreshold:
		return "Good Match"
	case score >= fairThreshold:
		return "Fair Match"
	default:
		return "Poor Match"
	}
}

// FormatList joins up to maxItems values with commas, appending a "+N more"
// suffix when truncated. An empty list renders as "None".
func FormatList(items []string, maxItems int) string {
	if len(items) == 0 {
		return "None"
	}
	if len(items) <= maxItems {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s (+%d more)", strings.Join(items[:maxItems], ", "), len(items)-maxItems)
}

// firstN returns at most n items from the front of the list.
func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
