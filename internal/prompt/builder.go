package prompt

import (
	"os"
	"strings"
)

// BuildAnalysisPrompt constructs the per-file analysis prompt from the
// file's full text content.
func BuildAnalysisPrompt(content string) string {
	return strings.ReplaceAll(AnalysisTemplate, "{{CONTENT}}", content)
}

// Source identifies where a resolved system prompt came from.
type Source string

const (
	SourceFlagFile    Source = "flag file"    // --system-prompt pointed at an existing file
	SourceFlagLiteral Source = "flag literal" // --system-prompt used verbatim
	SourceConvention  Source = "system_prompt.txt"
	SourceDefault     Source = "built-in default"
)

// ResolveSystemPrompt resolves the system prompt once at startup.
//
// Resolution order:
//  1. If explicit is non-empty and names a readable file, the file contents.
//  2. If explicit is non-empty otherwise, the value itself.
//  3. The contents of system_prompt.txt in the working directory.
//  4. The built-in default prompt.
//
// The returned Source tells the caller which branch was taken so fallbacks
// can be surfaced as a warning rather than happening silently.
func ResolveSystemPrompt(explicit string) (string, Source) {
	if explicit != "" {
		if data, err := os.ReadFile(explicit); err == nil {
			return strings.TrimSpace(string(data)), SourceFlagFile
		}
		return explicit, SourceFlagLiteral
	}

	if data, err := os.ReadFile(DefaultSystemPromptFile); err == nil {
		return strings.TrimSpace(string(data)), SourceConvention
	}

	return DefaultSystemPrompt, SourceDefault
}
