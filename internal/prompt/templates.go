// Package prompt builds the prompts sent to the inference provider and
// resolves the system prompt from its configured source.
package prompt

// DefaultSystemPromptFile is the conventional file checked in the working
// directory when no system prompt is supplied explicitly.
const DefaultSystemPromptFile = "system_prompt.txt"

// DefaultSystemPrompt is used when no other source yields a system prompt.
const DefaultSystemPrompt = `You are a senior application security engineer reviewing JavaScript code.
Identify security vulnerabilities, exposed secrets, unsafe patterns, and
potential issues. For each finding give the severity, the affected code,
and a concrete remediation. Be precise and avoid speculation.`

// AnalysisTemplate is the per-file user prompt. {{CONTENT}} is replaced with
// the full text of the file under analysis.
const AnalysisTemplate = `
Analyze the following JavaScript code for security vulnerabilities, exposed secrets, and potential issues:

{{CONTENT}}
`
