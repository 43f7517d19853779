package report

import (
	"math"
	"sort"

	"github.com/jonathan/resume-screener/internal/types"
)

// Statistics summarizes the distribution of overall scores in a batch.
type Statistics struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"std"`
}

// CategoryCounts buckets candidates by match category.
type CategoryCounts struct {
	Excellent int `json:"excellent"`
	Good      int `json:"good"`
	Fair      int `json:"fair"`
	Poor      int `json:"poor"`
}

// Summary is the aggregate report over one screening run.
type Summary struct {
	TotalResumes         int            `json:"total_resumes"`
	Statistics           Statistics     `json:"statistics"`
	Categories           CategoryCounts `json:"categories"`
	TopCandidate         string         `json:"top_candidate,omitempty"`
	TopScore             float64        `json:"top_score"`
	JobDescriptionLength int            `json:"job_description_length"`
}

// ComputeStatistics calculates distribution statistics for a score list.
// An empty list yields all zeros.
func ComputeStatistics(scores []float64) Statistics {
	if len(scores) == 0 {
		return Statistics{}
	}

	sorted := make([]float64, len(scores))
	copy(sorted, scores)
	sort.Float64s(sorted)

	var sum float64
	for _, s := range sorted {
		sum += s
	}
	mean := sum / float64(len(sorted))

	var median float64
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		median = sorted[mid]
	}

	// Sample standard deviation; zero for a single score.
	var stddev float64
	if len(sorted) > 1 {
		var sumSquares float64
		for _, s := range sorted {
			diff := s - mean
			sumSquares += diff * diff
		}
		stddev = math.Sqrt(sumSquares / float64(len(sorted)-1))
	}

	return Statistics{
		Mean:   mean,
		Median: median,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		StdDev: stddev,
	}
}

// Summarize builds the aggregate report for a ranked batch. Returns the zero
// Summary for an empty batch.
func Summarize(batch types.RankedBatch, jobWordCount int) Summary {
	if len(batch.Candidates) == 0 {
		return Summary{JobDescriptionLength: jobWordCount}
	}

	scores := make([]float64, 0, len(batch.Candidates))
	var counts CategoryCounts
	for _, candidate := range batch.Candidates {
		scores = append(scores, candidate.SimilarityScore)
		switch ScoreCategory(candidate.SimilarityScore) {
		case "Excellent Match":
			counts.Excellent++
		case "Good Match":
			counts.Good++
		case "Fair Match":
			counts.Fair++
		default:
			counts.Poor++
		}
	}

	return Summary{
		TotalResumes:         len(batch.Candidates),
		Statistics:           ComputeStatistics(scores),
		Categories:           counts,
		TopCandidate:         batch.Candidates[0].Filename,
		TopScore:             batch.Candidates[0].SimilarityScore,
		JobDescriptionLength: jobWordCount,
	}
}
