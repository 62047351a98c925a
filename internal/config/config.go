// Package config defines the deepwalker configuration model and default values.
//
// Configuration is assembled from multiple sources with a strict precedence
// chain: built-in defaults < global config file < project config file <
// explicit config file < CLI flag overrides.
package config

// DefaultModel is the model identifier used when none is configured.
const DefaultModel = "anthropic/claude-3.5-sonnet"

// DefaultOutput is the report path used when none is configured.
const DefaultOutput = "security_analysis_report.txt"

// DefaultMaxTokens is the response token budget sent with every request.
const DefaultMaxTokens = 8192

// WhitelistedVars lists every configuration variable name that may appear in
// config files. Variables not in this list are silently ignored during loading.
var WhitelistedVars = [8]string{
	"MODEL",
	"PROVIDER",
	"OUTPUT",
	"SYSTEM_PROMPT",
	"EXTENSIONS",
	"MAX_TOKENS",
	"SUMMARY",
	"VERBOSE",
}

// Config holds every configuration field for the deepwalker CLI.
type Config struct {
	// Model and provider selection.
	Model    string
	Provider string // "replicate" or "openai"; empty means derive from Model

	// Report output path.
	Output string

	// System prompt: literal string or path to a file. Empty means resolve
	// from system_prompt.txt or the built-in default.
	SystemPrompt string

	// Extension filter, dot-optional (e.g. "js" or ".js").
	Extensions []string

	// Response token budget.
	MaxTokens int

	// Runtime flags.
	Summary bool // kept for compatibility; the summary box is always shown
	Verbose bool

	// CLI-only flags (not loaded from config files).
	ConfigFile string
	Directory  string
}

// NewDefaultConfig returns a Config populated with all built-in default values.
func NewDefaultConfig() *Config {
	return &Config{
		Model:      DefaultModel,
		Output:     DefaultOutput,
		Extensions: []string{"js", "mjs"},
		MaxTokens:  DefaultMaxTokens,
	}
}
