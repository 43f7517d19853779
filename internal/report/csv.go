package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// Column caps for the tabular report.
const (
	csvMaxSkills     = 5
	csvMaxEducation  = 3
	csvMaxExperience = 3
)

var csvHeader = []string{"Rank", "Filename", "Similarity Score", "Skills", "Education", "Experience"}

// WriteCSV writes the ranked batch as the tabular report: one row per
// candidate in rank order, scores as percentage strings, skills capped at 5
// and education/experience at 3 entries each.
func WriteCSV(w io.Writer, batch types.RankedBatch) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, candidate := range batch.Candidates {
		row := []string{
			strconv.Itoa(i + 1),
			candidate.Filename,
			FormatScore(candidate.SimilarityScore),
			strings.Join(firstN(candidate.Facts.Skills, csvMaxSkills), ", "),
			strings.Join(firstN(candidate.Facts.Education, csvMaxEducation), ", "),
			strings.Join(firstN(candidate.Facts.Experience, csvMaxExperience), ", "),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i+1, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
