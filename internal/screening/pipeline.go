// Package screening provides the high-level orchestration for one screening
// run: extract every document, parse facts, score against the job
// description, and rank.
package screening

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/analysis"
	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/matching"
	"github.com/jonathan/resume-screener/internal/parsing"
	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/types"
)

// InputFile is one uploaded document: a filename plus raw bytes. The format
// is detected from the filename extension.
type InputFile struct {
	Filename string
	Data     []byte
}

// ProgressEvent represents a progress update during a screening run.
type ProgressEvent struct {
	Stage    string `json:"stage"`
	Filename string `json:"filename,omitempty"`
	Message  string `json:"message"`
}

// ProgressCallback is called as the run advances.
type ProgressCallback func(event ProgressEvent)

// Screener runs screening batches. Construct it once with the models
// injected; it is safe to reuse across runs.
type Screener struct {
	extractor  *parsing.Extractor
	analyzer   *analysis.Analyzer
	matcher    *matching.Matcher
	workers    int
	onProgress ProgressCallback
}

// Option configures a Screener.
type Option func(*Screener)

// WithWorkers sets the number of documents extracted and parsed
// concurrently. The default of 1 processes documents sequentially; results
// are identical either way.
func WithWorkers(workers int) Option {
	return func(s *Screener) {
		if workers > 0 {
			s.workers = workers
		}
	}
}

// WithProgress attaches a progress callback.
func WithProgress(callback ProgressCallback) Option {
	return func(s *Screener) { s.onProgress = callback }
}

// NewScreener creates a Screener from its component parts.
func NewScreener(extractor *parsing.Extractor, analyzer *analysis.Analyzer, matcher *matching.Matcher, opts ...Option) *Screener {
	s := &Screener{
		extractor: extractor,
		analyzer:  analyzer,
		matcher:   matcher,
		workers:   1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run screens a batch of documents against a job description. Per-document
// failures are accumulated into the result instead of aborting the batch; a
// run in which every document failed returns an empty batch plus the errors,
// which callers must report distinctly from "no matches". Run itself returns
// an error only when the context is cancelled.
func (s *Screener) Run(ctx context.Context, jobText string, files []InputFile) (*types.ScreeningResult, error) {
	result := &types.ScreeningResult{RunID: uuid.NewString()}

	s.emit("analyze", "", "analyzing job description")
	result.Analysis = s.analyzer.AnalyzeJob(ctx, jobText)

	outcomes := make([]fileOutcome, len(files))

	var mu sync.Mutex
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.workers)

	for i, file := range files {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			s.emit("extract", file.Filename, "extracting text")

			outcome := s.processFile(groupCtx, file)

			mu.Lock()
			outcomes[i] = outcome
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("screening run cancelled: %w", err)
	}

	// Reassemble in input order so stable-sort ties are deterministic no
	// matter how many workers ran.
	var candidates []ranking.Candidate
	for _, outcome := range outcomes {
		if outcome.docErr != nil {
			result.Errors = append(result.Errors, *outcome.docErr)
			continue
		}
		if outcome.warning != "" {
			result.Warnings = append(result.Warnings, outcome.warning)
		}
		candidates = append(candidates, outcome.candidate)
	}

	s.emit("rank", "", fmt.Sprintf("ranking %d candidates", len(candidates)))
	result.Batch = ranking.Rank(ctx, s.matcher, jobText, candidates)

	return result, nil
}

// fileOutcome is the result of extracting and parsing one document.
type fileOutcome struct {
	candidate ranking.Candidate
	docErr    *types.DocumentError
	warning   string
}

// processFile extracts and parses one document. Failures become
// DocumentErrors; an empty extraction is a warning, not a failure.
func (s *Screener) processFile(ctx context.Context, file InputFile) fileOutcome {
	var outcome fileOutcome

	format, ok := extraction.DetectFormat(file.Filename)
	if !ok {
		err := &extraction.UnsupportedFormatError{Format: strings.TrimPrefix(filepath.Ext(file.Filename), ".")}
		outcome.docErr = &types.DocumentError{Filename: file.Filename, Reason: err.Error()}
		return outcome
	}

	text, err := extraction.Extract(extraction.Document{Data: file.Data, Format: format})
	if err != nil {
		outcome.docErr = &types.DocumentError{Filename: file.Filename, Reason: err.Error()}
		return outcome
	}
	if text == "" {
		outcome.warning = fmt.Sprintf("no text extracted from %s", file.Filename)
	}

	outcome.candidate = ranking.Candidate{
		Filename: file.Filename,
		Text:     text,
		Facts:    s.extractor.ExtractInformation(ctx, text),
	}
	return outcome
}

func (s *Screener) emit(stage, filename, message string) {
	if s.onProgress != nil {
		s.onProgress(ProgressEvent{Stage: stage, Filename: filename, Message: message})
	}
}
