// Package cli provides flag binding and validation for the deepwalker CLI.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hibernatus-hacker/deepwalker/internal/config"
)

// BindFlags registers all CLI flags on the given cobra command.
// The flags directly modify fields in the provided config pointer.
// Call ValidateFlags after parsing to check flag values.
func BindFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	// Model selection
	flags.StringVar(&cfg.Model, "model", config.DefaultModel, "Model identifier for analysis")
	flags.StringVar(&cfg.Provider, "provider", "", "Inference provider: replicate or openai (default: derived from model)")

	// Output
	flags.StringVar(&cfg.Output, "output", config.DefaultOutput, "Path to save the analysis report")

	// Prompting
	flags.StringVar(&cfg.SystemPrompt, "system-prompt", "", "System prompt literal or path to a prompt file")
	flags.IntVar(&cfg.MaxTokens, "max-tokens", config.DefaultMaxTokens, "Response token budget per request")

	// File selection
	flags.StringSliceVar(&cfg.Extensions, "ext", []string{"js", "mjs"}, "File extensions to analyze (dot-optional, repeatable)")

	// Display
	flags.BoolVar(&cfg.Summary, "summary", false, "Display the analysis summary (always shown; kept for compatibility)")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable verbose logging")

	// Config file
	flags.StringVar(&cfg.ConfigFile, "config", "", "Path to additional config file")
}

// ValidateFlags checks flag values after parsing.
// Must be called after cmd.Execute() or cmd.ParseFlags().
func ValidateFlags(cmd *cobra.Command, cfg *config.Config) error {
	// --config must exist if provided
	if cfg.ConfigFile != "" {
		if _, err := os.Stat(cfg.ConfigFile); err != nil {
			return fmt.Errorf("--config: %w", err)
		}
	}

	// Validate provider value; empty means derive from the model id
	if cfg.Provider != "" && cfg.Provider != "replicate" && cfg.Provider != "openai" {
		return fmt.Errorf("--provider must be 'replicate' or 'openai', got: %s", cfg.Provider)
	}

	if cfg.MaxTokens <= 0 {
		return fmt.Errorf("--max-tokens must be positive, got: %d", cfg.MaxTokens)
	}

	if len(cfg.Extensions) == 0 {
		return fmt.Errorf("--ext must name at least one extension")
	}

	return nil
}
