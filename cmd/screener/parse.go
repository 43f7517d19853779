package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/extraction"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a single resume into structured facts",
	Long:  "Extracts text from one PDF or DOCX resume and produces a ResumeSummary JSON with skills, education, experience, contact info, and counts.",
	RunE:  runParse,
}

var (
	parseFile        string
	parseOutput      string
	parseAPIKey      string
	parseNoAnnotator bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseFile, "file", "f", "", "Path to resume file (required)")
	parseCmd.Flags().StringVarP(&parseOutput, "out", "o", "", "Path to output ResumeSummary JSON file (required)")
	parseCmd.Flags().StringVar(&parseAPIKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY)")
	parseCmd.Flags().BoolVar(&parseNoAnnotator, "no-annotator", false, "Disable the linguistic annotator")

	if err := parseCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}
	if err := parseCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	format, ok := extraction.DetectFormat(parseFile)
	if !ok {
		return fmt.Errorf("unsupported file type %q: only .pdf and .docx are supported", filepath.Ext(parseFile))
	}

	data, err := os.ReadFile(parseFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file %s: %w", parseFile, err)
	}

	text, err := extraction.Extract(extraction.Document{Data: data, Format: format})
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}
	if text == "" {
		warnToStderr("no text extracted from %s", parseFile)
	}

	annotator := buildAnnotator(ctx, resolveAPIKey(parseAPIKey), "", parseNoAnnotator)
	summary := buildExtractor(annotator).Summarize(ctx, text)

	if err := writeArtifact(parseOutput, summary, ""); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Successfully parsed %s to %s\n", parseFile, parseOutput)
	return nil
}
