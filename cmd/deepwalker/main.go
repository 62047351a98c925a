package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hibernatus-hacker/deepwalker/internal/analyzer"
	"github.com/hibernatus-hacker/deepwalker/internal/banner"
	"github.com/hibernatus-hacker/deepwalker/internal/cli"
	"github.com/hibernatus-hacker/deepwalker/internal/config"
	"github.com/hibernatus-hacker/deepwalker/internal/exitcode"
	"github.com/hibernatus-hacker/deepwalker/internal/inference"
	"github.com/hibernatus-hacker/deepwalker/internal/logging"
	"github.com/hibernatus-hacker/deepwalker/internal/prompt"
	"github.com/hibernatus-hacker/deepwalker/internal/report"
	sighandler "github.com/hibernatus-hacker/deepwalker/internal/signal"
)

// version vars injected via ldflags at build time
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// projectConfigFile is the per-project config checked in the working directory.
const projectConfigFile = ".deepwalker.conf"

func main() {
	cfg := config.NewDefaultConfig()

	rootCmd := &cobra.Command{
		Use:     "deepwalker <directory>",
		Short:   "AI-assisted JavaScript security analysis",
		Long:    "Deepwalker walks a directory tree, sends each matching source file to a remote model for security analysis, and writes the results into a consolidated text report.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Directory = args[0]
			// Validate flags after parsing
			if err := cli.ValidateFlags(cmd, cfg); err != nil {
				return err
			}
			return runAnalysis(cmd, cfg)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Bind all CLI flags to the config
	cli.BindFlags(rootCmd, cfg)

	// Set custom help template
	cli.SetCustomHelp(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitcode.Error)
	}
}

// buildCLIOverrides creates a map of CLI flag overrides from the config.
// Uses cmd.Flags().Changed() to only include flags explicitly set by the user,
// ensuring config file values are not accidentally overridden by default values.
func buildCLIOverrides(cmd *cobra.Command, cfg *config.Config) map[string]string {
	overrides := make(map[string]string)

	stringFlags := map[string]struct {
		key string
		val string
	}{
		"model":         {"MODEL", cfg.Model},
		"provider":      {"PROVIDER", cfg.Provider},
		"output":        {"OUTPUT", cfg.Output},
		"system-prompt": {"SYSTEM_PROMPT", cfg.SystemPrompt},
	}
	for flag, mapping := range stringFlags {
		if cmd.Flags().Changed(flag) {
			overrides[mapping.key] = mapping.val
		}
	}

	if cmd.Flags().Changed("ext") {
		overrides["EXTENSIONS"] = strings.Join(cfg.Extensions, ",")
	}
	if cmd.Flags().Changed("max-tokens") {
		overrides["MAX_TOKENS"] = fmt.Sprintf("%d", cfg.MaxTokens)
	}
	if cmd.Flags().Changed("summary") {
		overrides["SUMMARY"] = fmt.Sprintf("%t", cfg.Summary)
	}
	if cmd.Flags().Changed("verbose") {
		overrides["VERBOSE"] = fmt.Sprintf("%t", cfg.Verbose)
	}

	return overrides
}

func runAnalysis(cmd *cobra.Command, cfg *config.Config) error {
	// Load config with full precedence chain: defaults < project file <
	// explicit file < CLI flags explicitly set by the user.
	cliOverrides := buildCLIOverrides(cmd, cfg)
	finalCfg, err := config.LoadWithPrecedence("", projectConfigFile, cfg.ConfigFile, cliOverrides)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Merge CLI-only fields (not loaded from config files)
	finalCfg.ConfigFile = cfg.ConfigFile
	finalCfg.Directory = cfg.Directory
	cfg = finalCfg

	logging.SetVerbose(cfg.Verbose)

	// Validate the positional directory argument
	info, err := os.Stat(cfg.Directory)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("invalid directory: %s", cfg.Directory)
	}

	// Resolve the system prompt once and pass it down; surface fallbacks.
	systemPrompt, source := prompt.ResolveSystemPrompt(cfg.SystemPrompt)
	switch source {
	case prompt.SourceDefault:
		logging.Warn("No system prompt configured; using the built-in default")
	default:
		logging.Debug("System prompt loaded from " + string(source))
	}

	provider, err := inference.New(cfg.Provider, cfg.Model)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	banner.PrintStartupBanner(runID, cfg.Model, provider.Name(), cfg.Directory)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Interrupts abandon the in-flight file; collected results still get reported.
	sighandler.SetupSignalHandler(ctx, cancel, func() {
		logging.Warn("Interrupted, finishing up...")
	})

	walker := &analyzer.Analyzer{
		Client: &inference.Client{
			Provider: provider,
			Retry:    inference.RetryConfig{MaxAttempts: 3, BaseDelay: 2},
		},
		Model:        cfg.Model,
		SystemPrompt: systemPrompt,
		MaxTokens:    cfg.MaxTokens,
		Extensions:   cfg.Extensions,
	}

	logging.Info("Starting security analysis of: " + logging.Path(cfg.Directory))
	start := time.Now()

	results, runErr := walker.AnalyzeDirectory(ctx, cfg.Directory)
	interrupted := errors.Is(runErr, context.Canceled)
	if runErr != nil && !interrupted {
		return runErr
	}

	logging.Info("Saving report to: " + logging.Path(cfg.Output))
	writer := &report.Writer{Generated: time.Now(), RunID: runID}
	if err := writer.Save(cfg.Output, results); err != nil {
		logging.Error("Failed to save report: " + err.Error())
	} else {
		logging.Success("Report saved to: " + logging.Path(cfg.Output))
	}

	// The summary box is always shown; --summary is kept for compatibility.
	banner.PrintSummaryBox(analyzer.Summarize(results))

	if interrupted {
		banner.PrintInterruptedBanner()
	}
	logging.Success("Analysis complete in " + logging.FormatDuration(int(time.Since(start).Seconds())))
	return nil
}
