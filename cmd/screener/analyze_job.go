package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var analyzeJobCmd = &cobra.Command{
	Use:   "analyze-job",
	Short: "Analyze a job description",
	Long:  "Extracts keyword signals, word/character counts, the required experience years, and key phrases from a job description, producing a JobAnalysis JSON.",
	RunE:  runAnalyzeJob,
}

var (
	analyzeJobInput       string
	analyzeJobOutput      string
	analyzeJobAPIKey      string
	analyzeJobNoAnnotator bool
)

func init() {
	analyzeJobCmd.Flags().StringVarP(&analyzeJobInput, "job", "j", "", "Path to job description text file (required)")
	analyzeJobCmd.Flags().StringVarP(&analyzeJobOutput, "out", "o", "", "Path to output JobAnalysis JSON file (required)")
	analyzeJobCmd.Flags().StringVar(&analyzeJobAPIKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY)")
	analyzeJobCmd.Flags().BoolVar(&analyzeJobNoAnnotator, "no-annotator", false, "Disable the linguistic annotator")

	if err := analyzeJobCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	if err := analyzeJobCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeJobCmd)
}

func runAnalyzeJob(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	jobText, err := os.ReadFile(analyzeJobInput)
	if err != nil {
		return fmt.Errorf("failed to read job description file %s: %w", analyzeJobInput, err)
	}

	annotator := buildAnnotator(ctx, resolveAPIKey(analyzeJobAPIKey), "", analyzeJobNoAnnotator)
	analysis := buildAnalyzer(annotator).AnalyzeJob(ctx, string(jobText))

	if err := writeArtifact(analyzeJobOutput, analysis, "job_analysis.schema.json"); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Successfully analyzed job description to %s\n", analyzeJobOutput)
	return nil
}
