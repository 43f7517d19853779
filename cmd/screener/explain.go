package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/matching"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/ranking"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Explain how one resume scores against a job",
	Long:  "Scores a single resume against a job description and produces a MatchExplanation JSON with the score breakdown, matching and missing skills, and improvement suggestions.",
	RunE:  runExplain,
}

var (
	explainJob    string
	explainResume string
	explainOutput string
	explainAPIKey string
)

func init() {
	explainCmd.Flags().StringVarP(&explainJob, "job", "j", "", "Path to job description text file (required)")
	explainCmd.Flags().StringVarP(&explainResume, "resume", "r", "", "Path to resume file (required)")
	explainCmd.Flags().StringVarP(&explainOutput, "out", "o", "", "Path to output MatchExplanation JSON file (required)")
	explainCmd.Flags().StringVar(&explainAPIKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY)")

	if err := explainCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := explainCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := explainCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	jobText, err := os.ReadFile(explainJob)
	if err != nil {
		return fmt.Errorf("failed to read job description file %s: %w", explainJob, err)
	}

	format, ok := extraction.DetectFormat(explainResume)
	if !ok {
		return fmt.Errorf("unsupported file type %q: only .pdf and .docx are supported", filepath.Ext(explainResume))
	}
	data, err := os.ReadFile(explainResume)
	if err != nil {
		return fmt.Errorf("failed to read resume file %s: %w", explainResume, err)
	}
	resumeText, err := extraction.Extract(extraction.Document{Data: data, Format: format})
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}
	if resumeText == "" {
		warnToStderr("no text extracted from %s", explainResume)
	}

	embedder, err := buildEmbedder(ctx, resolveAPIKey(explainAPIKey), "")
	if err != nil {
		return err
	}
	matcher := matching.NewMatcher(embedder, matching.WithWarnFunc(warnToStderr))

	explanation := ranking.Explain(ctx, matcher, string(jobText), resumeText)

	if err := writeArtifact(explainOutput, explanation, "match_explanation.schema.json"); err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintExplanation(&explanation)
	return nil
}
