// Package ranking orders scored candidates and explains individual matches.
package ranking

import (
	"context"
	"sort"

	"github.com/jonathan/resume-screener/internal/matching"
	"github.com/jonathan/resume-screener/internal/types"
)

// Candidate pairs a filename with its extracted resume text, ready to score.
type Candidate struct {
	Filename string
	Text     string
	Facts    types.ExtractedFacts
}

// Rank scores every candidate against the job description and returns the
// batch ordered descending by overall similarity. The sort is stable:
// candidates with equal scores keep their input order.
func Rank(ctx context.Context, matcher *matching.Matcher, jobText string, candidates []Candidate) types.RankedBatch {
	results := make([]types.CandidateResult, 0, len(candidates))
	for _, candidate := range candidates {
		score := matcher.WeightedSimilarity(ctx, jobText, candidate.Text)
		results = append(results, types.CandidateResult{
			Filename:        candidate.Filename,
			Facts:           candidate.Facts,
			SimilarityScore: score.Overall,
			Score:           score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].SimilarityScore > results[j].SimilarityScore
	})

	return types.RankedBatch{Candidates: results}
}
