// Package analyzer drives the per-file analysis run: it discovers candidate
// files, dispatches each one to the inference client, and collects one
// Result per file in discovery order.
package analyzer

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hibernatus-hacker/deepwalker/internal/inference"
	"github.com/hibernatus-hacker/deepwalker/internal/logging"
	"github.com/hibernatus-hacker/deepwalker/internal/prompt"
)

// Stats accumulates run-level counters across files.
type Stats struct {
	FilesAnalyzed int
	Errors        int
}

// Analyzer analyzes source files one at a time, sequentially, in
// directory-traversal order. It is not safe for concurrent use; a single
// run loop owns it.
type Analyzer struct {
	Client       *inference.Client
	Clock        inference.Clock
	Model        string
	SystemPrompt string
	MaxTokens    int
	Extensions   []string

	stats Stats
}

// Stats returns the counters accumulated so far.
func (a *Analyzer) Stats() Stats { return a.stats }

func (a *Analyzer) clock() inference.Clock {
	if a.Clock != nil {
		return a.Clock
	}
	return inference.SystemClock{}
}

// AnalyzeFile analyzes a single file and returns its Result.
//
// An unreadable file or an exhausted-retries inference error produces a
// failed result and the run continues; a file that is empty after trimming
// whitespace is skipped without any network call.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) Result {
	logging.Info("Analyzing file: " + logging.Path(path))

	data, err := os.ReadFile(path)
	if err != nil {
		a.stats.Errors++
		logging.Error(fmt.Sprintf("Error analyzing %s: %v", path, err))
		return Result{File: path, Status: StatusFailed, Error: err.Error()}
	}

	content := strings.TrimSpace(string(data))
	if content == "" {
		logging.Warn("File is empty: " + path)
		return Result{File: path, Status: StatusSkipped, Reason: "empty file"}
	}

	logging.Debug("Sending file to AI model for analysis: " + path)
	analysis, err := a.Client.Analyze(ctx, inference.Request{
		Prompt:       prompt.BuildAnalysisPrompt(content),
		SystemPrompt: a.SystemPrompt,
		Model:        a.Model,
		MaxTokens:    a.MaxTokens,
	})
	if err != nil {
		a.stats.Errors++
		logging.Error(fmt.Sprintf("Failed to get AI analysis for %s: %v", path, err))
		return Result{File: path, Status: StatusFailed, Error: err.Error()}
	}

	a.stats.FilesAnalyzed++
	logging.Info("Completed analysis of: " + logging.Path(path))
	return Result{
		File:      path,
		Status:    StatusCompleted,
		Analysis:  analysis,
		Timestamp: a.clock().Now(),
	}
}

// AnalyzeDirectory analyzes all matching files under directory, one at a
// time in discovery order. If the context is canceled mid-run the results
// collected so far are returned along with the context's error; no partial
// result is recorded for the in-flight file.
func (a *Analyzer) AnalyzeDirectory(ctx context.Context, directory string) ([]Result, error) {
	logging.Info("Starting analysis of directory: " + logging.Path(directory))

	files, err := FindSourceFiles(directory, a.Extensions)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		logging.Warn("No matching files found in " + directory)
		return nil, nil
	}
	logging.Info(fmt.Sprintf("Found %d files to analyze", len(files)))

	var results []Result
	for i, path := range files {
		if ctx.Err() != nil {
			return results, ctx.Err()
		}
		logging.Info(fmt.Sprintf("Processing file %d/%d: %s", i+1, len(files), logging.Path(path)))

		result := a.AnalyzeFile(ctx, path)
		if ctx.Err() != nil {
			// Interrupted mid-file: drop the in-flight result.
			return results, ctx.Err()
		}
		results = append(results, result)
	}

	logging.Info("Completed analysis of directory: " + logging.Path(directory))
	return results, nil
}
