// Package cli provides help text and usage formatting for the deepwalker CLI.
package cli

import (
	"github.com/spf13/cobra"
)

const helpTemplate = `deepwalker - AI-assisted JavaScript security analysis

USAGE
  deepwalker <directory> [flags]

ARGUMENTS
  <directory>                  Path to the directory tree to analyze

FLAGS
  Model Selection:
    --model <id>               Model identifier (default: anthropic/claude-3.5-sonnet)
    --provider <name>          Inference provider: replicate or openai (default: derived from model)

  Output:
    --output <path>            Report path (default: security_analysis_report.txt)

  Prompting:
    --system-prompt <value>    System prompt literal or path to a prompt file
                               (default: ./system_prompt.txt, then built-in)
    --max-tokens <int>         Response token budget per request (default: 8192)

  File Selection:
    --ext <list>               Extensions to analyze, dot-optional, repeatable
                               or comma-separated (default: js,mjs)

  Display:
    --summary                  Display the analysis summary (always shown; kept for compatibility)
    -v, --verbose              Enable verbose logging

  Configuration:
    --config <path>            Additional KEY=VALUE config file

  Help & Version:
    -h, --help                 Show this help
    --version                  Show version information

EXIT CODES
  0  Run finished (or was interrupted by the user)
  1  Invalid directory, bad flags, or uncaught top-level error

EXAMPLES
  deepwalker ./src
  deepwalker ./src --model meta/meta-llama-3-70b-instruct --output audit.txt
  deepwalker ./app --ext js,ts,tsx --system-prompt prompts/strict.txt
`

// SetCustomHelp installs the custom help template on the root command.
func SetCustomHelp(cmd *cobra.Command) {
	cmd.SetHelpTemplate(helpTemplate)
}
