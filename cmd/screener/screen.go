package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/matching"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/report"
	"github.com/jonathan/resume-screener/internal/screening"
	"github.com/jonathan/resume-screener/internal/types"
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Screen a batch of resumes against a job description",
	Long:  "Extracts text and structured facts from every resume in a directory, scores each against the job description, and writes a ranked ScreeningResult JSON plus an optional CSV report.",
	RunE:  runScreen,
}

var (
	screenJob         string
	screenResumes     string
	screenOutput      string
	screenCSV         string
	screenConfig      string
	screenAPIKey      string
	screenWorkers     int
	screenVerbose     bool
	screenNoAnnotator bool
)

func init() {
	screenCmd.Flags().StringVarP(&screenJob, "job", "j", "", "Path to job description text file (required)")
	screenCmd.Flags().StringVarP(&screenResumes, "resumes", "r", "", "Directory containing resume files (required)")
	screenCmd.Flags().StringVarP(&screenOutput, "out", "o", "", "Path to output ScreeningResult JSON file (required)")
	screenCmd.Flags().StringVar(&screenCSV, "csv", "", "Path to optional CSV report")
	screenCmd.Flags().StringVarP(&screenConfig, "config", "c", "", "Path to JSON config file")
	screenCmd.Flags().StringVar(&screenAPIKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY)")
	screenCmd.Flags().IntVar(&screenWorkers, "workers", 1, "Number of documents processed concurrently")
	screenCmd.Flags().BoolVarP(&screenVerbose, "verbose", "v", false, "Print detailed progress information")
	screenCmd.Flags().BoolVar(&screenNoAnnotator, "no-annotator", false, "Disable the linguistic annotator")

	rootCmd.AddCommand(screenCmd)
}

func runScreen(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	var embeddingModel, annotatorModel string

	// Merge config file values under the CLI flags.
	if screenConfig != "" {
		cfg, err := config.LoadConfig(screenConfig)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		merged := (&config.Config{
			Job:     screenJob,
			Resumes: screenResumes,
			Output:  screenOutput,
			CSV:     screenCSV,
			APIKey:  screenAPIKey,
			Workers: screenWorkers,
		}).MergeWithDefaults(*cfg)
		screenJob = merged.Job
		screenResumes = merged.Resumes
		screenOutput = merged.Output
		screenCSV = merged.CSV
		screenAPIKey = merged.APIKey
		screenWorkers = merged.Workers
		embeddingModel = merged.EmbeddingModel
		annotatorModel = merged.AnnotatorModel
		screenVerbose = screenVerbose || cfg.Verbose
		screenNoAnnotator = screenNoAnnotator || cfg.NoAnnotator
	}
	if screenJob == "" || screenResumes == "" || screenOutput == "" {
		return fmt.Errorf("--job, --resumes, and --out are required (via flags or config)")
	}

	jobText, err := os.ReadFile(screenJob)
	if err != nil {
		return fmt.Errorf("failed to read job description file %s: %w", screenJob, err)
	}

	files, err := loadResumeFiles(screenResumes)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no PDF or DOCX files found in %s", screenResumes)
	}

	apiKey := resolveAPIKey(screenAPIKey)
	embedder, err := buildEmbedder(ctx, apiKey, embeddingModel)
	if err != nil {
		return err
	}
	annotator := buildAnnotator(ctx, apiKey, annotatorModel, screenNoAnnotator)

	screenerOpts := []screening.Option{screening.WithWorkers(screenWorkers)}
	if screenVerbose {
		screenerOpts = append(screenerOpts, screening.WithProgress(func(event screening.ProgressEvent) {
			if event.Filename != "" {
				fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", event.Stage, event.Filename, event.Message)
			} else {
				fmt.Fprintf(os.Stderr, "[%s] %s\n", event.Stage, event.Message)
			}
		}))
	}

	screener := screening.NewScreener(
		buildExtractor(annotator),
		buildAnalyzer(annotator),
		matching.NewMatcher(embedder, matching.WithWarnFunc(warnToStderr)),
		screenerOpts...,
	)

	result, err := screener.Run(ctx, string(jobText), files)
	if err != nil {
		return err
	}

	if err := writeArtifact(screenOutput, result, "screening_result.schema.json"); err != nil {
		return err
	}

	if screenCSV != "" {
		if err := writeCSVReport(screenCSV, result); err != nil {
			return err
		}
	}

	if screenVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintJobAnalysis(&result.Analysis)
		printer.PrintRankedBatch(&result.Batch)
		printer.PrintErrors(result.Errors)
	}

	// A run where every document failed is reported distinctly from a run
	// that ranked candidates poorly.
	if len(result.Batch.Candidates) == 0 {
		fmt.Fprintf(os.Stdout, "No documents could be processed (%d failed); see %s for details\n",
			len(result.Errors), screenOutput)
		return nil
	}

	fmt.Fprintf(os.Stdout, "Ranked %d candidates (%d failed) to %s\n",
		len(result.Batch.Candidates), len(result.Errors), screenOutput)
	return nil
}

// loadResumeFiles reads every supported document in dir, sorted by filename
// so input order (and therefore tie-breaking) is deterministic.
func loadResumeFiles(dir string) ([]screening.InputFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read resumes directory %s: %w", dir, err)
	}

	var files []screening.InputFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := extraction.DetectFormat(entry.Name()); !ok {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read resume file %s: %w", entry.Name(), err)
		}
		files = append(files, screening.InputFile{Filename: entry.Name(), Data: data})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Filename < files[j].Filename })
	return files, nil
}

func writeCSVReport(path string, result *types.ScreeningResult) error {
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file %s: %w", path, err)
	}
	defer file.Close()

	if err := report.WriteCSV(file, result.Batch); err != nil {
		return fmt.Errorf("failed to write CSV report: %w", err)
	}
	return nil
}
