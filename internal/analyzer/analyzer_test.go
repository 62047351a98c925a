package analyzer_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hibernatus-hacker/deepwalker/internal/analyzer"
	"github.com/hibernatus-hacker/deepwalker/internal/inference"
)

// fakeClock records sleeps instead of performing them.
type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.sleeps = append(f.sleeps, d)
	f.now = f.now.Add(d)
	return nil
}

func (f *fakeClock) totalSlept() time.Duration {
	var total time.Duration
	for _, d := range f.sleeps {
		total += d
	}
	return total
}

// fakeStreamer emits fixed chunks, or fails every call when err is set.
type fakeStreamer struct {
	chunks []string
	err    error
	calls  int
}

func (f *fakeStreamer) Name() string { return "fake" }

func (f *fakeStreamer) Stream(ctx context.Context, req inference.Request, emit func(chunk string)) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	for _, c := range f.chunks {
		emit(c)
	}
	return nil
}

func newAnalyzer(streamer inference.Streamer, clk inference.Clock) *analyzer.Analyzer {
	return &analyzer.Analyzer{
		Client:       &inference.Client{Provider: streamer, Retry: inference.RetryConfig{Clock: clk}},
		Clock:        clk,
		Model:        "anthropic/claude-3.5-sonnet",
		SystemPrompt: "test prompt",
		MaxTokens:    8192,
		Extensions:   []string{"js", "mjs"},
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestAnalyzeFile(t *testing.T) {
	t.Run("completed result carries analysis and timestamp", func(t *testing.T) {
		clk := newFakeClock()
		a := newAnalyzer(&fakeStreamer{chunks: []string{"looks ", "fine"}}, clk)
		path := writeFile(t, t.TempDir(), "app.js", "var x = 1;")

		result := a.AnalyzeFile(context.Background(), path)

		assert.Equal(t, analyzer.StatusCompleted, result.Status)
		assert.Equal(t, "looks fine", result.Analysis)
		assert.Equal(t, clk.now, result.Timestamp)
		assert.Empty(t, result.Error)
		assert.Empty(t, result.Reason)
		assert.Equal(t, 1, a.Stats().FilesAnalyzed)
	})

	t.Run("empty file is skipped without a network call", func(t *testing.T) {
		streamer := &fakeStreamer{chunks: []string{"never"}}
		a := newAnalyzer(streamer, newFakeClock())
		path := writeFile(t, t.TempDir(), "empty.js", "   \n\t\n")

		result := a.AnalyzeFile(context.Background(), path)

		assert.Equal(t, analyzer.StatusSkipped, result.Status)
		assert.Equal(t, "empty file", result.Reason)
		assert.Zero(t, streamer.calls, "no network call for empty files")
	})

	t.Run("unreadable file produces a failed result", func(t *testing.T) {
		a := newAnalyzer(&fakeStreamer{}, newFakeClock())

		result := a.AnalyzeFile(context.Background(), filepath.Join(t.TempDir(), "missing.js"))

		assert.Equal(t, analyzer.StatusFailed, result.Status)
		assert.NotEmpty(t, result.Error)
		assert.Equal(t, 1, a.Stats().Errors)
	})

	t.Run("exhausted retries produce a failed result", func(t *testing.T) {
		clk := newFakeClock()
		streamer := &fakeStreamer{err: errors.New("remote unavailable")}
		a := newAnalyzer(streamer, clk)
		path := writeFile(t, t.TempDir(), "app.js", "var x = 1;")

		result := a.AnalyzeFile(context.Background(), path)

		assert.Equal(t, analyzer.StatusFailed, result.Status)
		assert.Contains(t, result.Error, "after 3 attempts")
		assert.Equal(t, 3, streamer.calls)
		assert.Equal(t, 1, a.Stats().Errors)
	})
}

func TestAnalyzeDirectory(t *testing.T) {
	t.Run("one completed file", func(t *testing.T) {
		// End-to-end scenario: one non-empty file, endpoint streams "ok".
		dir := t.TempDir()
		writeFile(t, dir, "app.js", "var x = 1;")
		a := newAnalyzer(&fakeStreamer{chunks: []string{"ok"}}, newFakeClock())

		results, err := a.AnalyzeDirectory(context.Background(), dir)
		require.NoError(t, err)

		require.Len(t, results, 1)
		assert.Equal(t, analyzer.StatusCompleted, results[0].Status)
		assert.Equal(t, "ok", results[0].Analysis)

		counts := analyzer.Summarize(results)
		assert.Equal(t, analyzer.Counts{Total: 1, Completed: 1}, counts)
	})

	t.Run("persistently failing endpoint", func(t *testing.T) {
		// End-to-end scenario: every attempt fails; the result records the
		// exhausted retries and the backoff slept at least 2+4 seconds.
		dir := t.TempDir()
		writeFile(t, dir, "app.js", "var x = 1;")
		clk := newFakeClock()
		a := newAnalyzer(&fakeStreamer{err: errors.New("boom")}, clk)

		results, err := a.AnalyzeDirectory(context.Background(), dir)
		require.NoError(t, err)

		require.Len(t, results, 1)
		assert.Equal(t, analyzer.StatusFailed, results[0].Status)
		assert.Contains(t, results[0].Error, "after 3 attempts")
		assert.GreaterOrEqual(t, clk.totalSlept(), 6*time.Second)
	})

	t.Run("empty file among two files", func(t *testing.T) {
		// End-to-end scenario: one empty and one non-empty file; one skipped
		// and one processed result, in discovery order.
		dir := t.TempDir()
		writeFile(t, dir, "a_empty.js", "")
		writeFile(t, dir, "b_code.js", "var x = 1;")
		a := newAnalyzer(&fakeStreamer{chunks: []string{"ok"}}, newFakeClock())

		results, err := a.AnalyzeDirectory(context.Background(), dir)
		require.NoError(t, err)

		require.Len(t, results, 2)
		assert.Equal(t, analyzer.StatusSkipped, results[0].Status)
		assert.Equal(t, analyzer.StatusCompleted, results[1].Status)

		counts := analyzer.Summarize(results)
		assert.Equal(t, analyzer.Counts{Total: 2, Completed: 1, Skipped: 1}, counts)
	})

	t.Run("exactly one result per discovered file", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.js", "1")
		writeFile(t, dir, "b.js", "")
		writeFile(t, dir, "c.mjs", "2")
		writeFile(t, dir, "d.txt", "not discovered")
		a := newAnalyzer(&fakeStreamer{chunks: []string{"ok"}}, newFakeClock())

		results, err := a.AnalyzeDirectory(context.Background(), dir)
		require.NoError(t, err)

		require.Len(t, results, 3)
		for _, r := range results {
			assert.Contains(t, []analyzer.Status{
				analyzer.StatusCompleted,
				analyzer.StatusFailed,
				analyzer.StatusSkipped,
			}, r.Status)
		}
	})

	t.Run("no matching files yields no results", func(t *testing.T) {
		a := newAnalyzer(&fakeStreamer{}, newFakeClock())

		results, err := a.AnalyzeDirectory(context.Background(), t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("cancellation stops the run without a partial result", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.js", "1")
		writeFile(t, dir, "b.js", "2")
		a := newAnalyzer(&fakeStreamer{chunks: []string{"ok"}}, newFakeClock())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		results, err := a.AnalyzeDirectory(ctx, dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, results)
	})
}

func TestSummarize(t *testing.T) {
	results := []analyzer.Result{
		{Status: analyzer.StatusCompleted},
		{Status: analyzer.StatusCompleted},
		{Status: analyzer.StatusFailed},
		{Status: analyzer.StatusSkipped},
	}

	counts := analyzer.Summarize(results)
	assert.Equal(t, analyzer.Counts{Total: 4, Completed: 2, Failed: 1, Skipped: 1}, counts)
}
